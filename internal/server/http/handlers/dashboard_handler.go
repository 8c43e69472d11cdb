package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderboard/internal/dashboard"
	domainErrors "github.com/polkiloo/orderboard/internal/domain/errors"
	"github.com/polkiloo/orderboard/internal/server/http/dto"
)

// DashboardHandler serves the order dashboard and its table state.
type DashboardHandler struct {
	facade DashboardFacade
}

// NewDashboardHandler creates DashboardHandler instance.
func NewDashboardHandler(facade DashboardFacade) *DashboardHandler {
	return &DashboardHandler{facade: facade}
}

// View handles GET /api/admin/dashboard.
// Query parameters named after searchable columns override committed filters for this request.
func (h *DashboardHandler) View(c *gin.Context) {
	overrides := dashboard.Filters{}
	for _, column := range dashboard.SearchableColumns() {
		if value, ok := c.GetQuery(column); ok {
			overrides[column] = value
		}
	}

	view, err := h.facade.View(c.Request.Context(), CurrentUserID(c), overrides)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Orders handles GET /api/admin/orders.
func (h *DashboardHandler) Orders(c *gin.Context) {
	state, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrdersResponse(state))
}

// Search handles PUT /api/admin/dashboard/filters/:column.
func (h *DashboardHandler) Search(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.Search(c.Request.Context(), CurrentUserID(c), c.Param("column"), req.Value); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reset handles DELETE /api/admin/dashboard/filters/:column.
func (h *DashboardHandler) Reset(c *gin.Context) {
	if err := h.facade.Reset(c.Request.Context(), CurrentUserID(c), c.Param("column")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Select handles PUT /api/admin/dashboard/selection.
func (h *DashboardHandler) Select(c *gin.Context) {
	var req dto.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.Select(c.Request.Context(), CurrentUserID(c), req.Key); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrUnknownColumn), errors.Is(err, domainErrors.ErrInvalidSelection):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusUnauthorized)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

package dto

import (
	"github.com/polkiloo/orderboard/internal/domain/model"
	"github.com/polkiloo/orderboard/internal/pkg/query"
)

// FilterRequest commits a search value for one column.
type FilterRequest struct {
	Value string `json:"value"`
}

// SelectionRequest selects a table row by key.
type SelectionRequest struct {
	Key string `json:"key" binding:"required"`
}

// OrdersResponse mirrors the loader state of the raw order query.
type OrdersResponse struct {
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
	Data    []model.Order `json:"data"`
}

// NewOrdersResponse converts a query state into its wire form.
func NewOrdersResponse(state query.State[[]model.Order]) OrdersResponse {
	resp := OrdersResponse{
		Loading: state.Status == query.StatusLoading,
		Data:    []model.Order{},
	}
	if state.HasData && state.Data != nil {
		resp.Data = state.Data
	}
	if state.Err != nil {
		resp.Error = state.Err.Error()
	}
	return resp
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status string `json:"status"`
}

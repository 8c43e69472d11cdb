package dashboard

import (
	"context"

	"github.com/samber/lo"

	"github.com/polkiloo/orderboard/internal/domain/model"
	"github.com/polkiloo/orderboard/internal/pkg/query"
)

// Title is the dashboard heading.
const Title = "Quản Lý Đơn Hàng"

// TableRow is a rendered table row.
type TableRow struct {
	Key      string            `json:"key"`
	Cells    map[string]string `json:"cells"`
	Image    string            `json:"image,omitempty"`
	NameItem string            `json:"nameItem"`
}

// View is the complete dashboard payload.
type View struct {
	Title    string       `json:"title"`
	Loading  bool         `json:"loading"`
	Error    string       `json:"error,omitempty"`
	Columns  []Column     `json:"columns"`
	Rows     []TableRow   `json:"rows"`
	Chart    []ChartSlice `json:"chart"`
	Selected string       `json:"selected,omitempty"`
	Total    int          `json:"total"`
}

// Service composes the loader and per-admin state into dashboard views.
type Service struct {
	loader *Loader
	states *StateStore
}

// NewService constructs Service.
func NewService(loader *Loader, states *StateStore) *Service {
	return &Service{loader: loader, states: states}
}

// View renders the dashboard for the admin. overrides replace committed filters for this call only.
func (s *Service) View(ctx context.Context, userID int64, session model.Session, overrides Filters) View {
	state := s.loader.Load(ctx, session)
	ui := s.states.Snapshot(userID)
	filters := ui.Filters.Merge(overrides)
	columns := Columns(filters)

	var orders []model.Order
	if state.HasData {
		orders = state.Data
	}
	rows := BuildRows(orders, session)
	visible := filters.Apply(rows)

	view := View{
		Title:    Title,
		Loading:  state.Status == query.StatusLoading,
		Columns:  columns,
		Rows:     renderRows(visible, columns),
		Chart:    BuildChart(orders),
		Selected: ui.Selected,
		Total:    len(rows),
	}
	if state.Err != nil {
		view.Error = state.Err.Error()
	}
	return view
}

// Orders returns the raw order query state for the session.
func (s *Service) Orders(ctx context.Context, session model.Session) query.State[[]model.Order] {
	return s.loader.Load(ctx, session)
}

// Search commits a column filter for the admin.
func (s *Service) Search(userID int64, column, value string) error {
	return s.states.Search(userID, column, value)
}

// Reset clears a column filter for the admin.
func (s *Service) Reset(userID int64, column string) error {
	return s.states.Reset(userID, column)
}

// Select records the selected row for the admin.
func (s *Service) Select(userID int64, key string) error {
	return s.states.Select(userID, key)
}

// Forget drops the admin's dashboard state and cached orders.
func (s *Service) Forget(userID int64, session model.Session) {
	s.states.Forget(userID)
	s.loader.Forget(session)
}

func renderRows(rows []Row, columns []Column) []TableRow {
	return lo.Map(rows, func(r Row, _ int) TableRow {
		cells := make(map[string]string, len(columns)+1)
		for _, c := range columns {
			cells[c.DataIndex] = c.Cell(r)
		}
		return TableRow{Key: r.Key, Cells: cells, Image: r.Image, NameItem: r.NameItem}
	})
}

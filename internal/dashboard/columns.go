package dashboard

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// Column data indexes.
const (
	ColumnEmail         = "email"
	ColumnName          = "name"
	ColumnType          = "type"
	ColumnPhone         = "phone"
	ColumnAddress       = "address"
	ColumnPaymentMethod = "paymentMethod"
	ColumnTotalPrice    = "totalPrice"
	ColumnIsPaid        = "isPaid"
	ColumnIsDelivered   = "isDelivered"
)

const (
	ActionSearch = "Search"
	ActionReset  = "Reset"

	// focusDelayMillis is how long the client waits after opening a filter panel before focusing its input.
	focusDelayMillis = 100
)

// FilterPanel describes the search dropdown attached to a searchable column.
type FilterPanel struct {
	Placeholder  string   `json:"placeholder"`
	Value        string   `json:"value"`
	Actions      []string `json:"actions"`
	FocusDelayMS int      `json:"focusDelayMs"`
}

// Column is a table column descriptor.
type Column struct {
	Title      string       `json:"title"`
	DataIndex  string       `json:"dataIndex"`
	Searchable bool         `json:"searchable"`
	Filtered   bool         `json:"filtered"`
	Filter     *FilterPanel `json:"filter,omitempty"`

	render func(Row) string
}

// SearchColumn builds a column with a case-insensitive substring filter over dataIndex.
func SearchColumn(dataIndex, title string) Column {
	return Column{
		Title:      title,
		DataIndex:  dataIndex,
		Searchable: true,
		Filter: &FilterPanel{
			Placeholder:  "Search " + dataIndex,
			Actions:      []string{ActionSearch, ActionReset},
			FocusDelayMS: focusDelayMillis,
		},
	}
}

func renderedColumn(dataIndex, title string, render func(Row) string) Column {
	return Column{Title: title, DataIndex: dataIndex, render: render}
}

func baseColumns() []Column {
	return []Column{
		SearchColumn(ColumnEmail, "Email"),
		SearchColumn(ColumnName, "Name"),
		SearchColumn(ColumnType, "Type"),
		SearchColumn(ColumnPhone, "Phone"),
		SearchColumn(ColumnAddress, "Address"),
		SearchColumn(ColumnPaymentMethod, "Payment Method"),
		renderedColumn(ColumnTotalPrice, "Total Price", func(r Row) string { return FormatPrice(r.TotalPrice) }),
		renderedColumn(ColumnIsPaid, "Is Paid", func(r Row) string { return YesNo(r.IsPaid) }),
		renderedColumn(ColumnIsDelivered, "Is Delivered", func(r Row) string { return YesNo(r.IsDelivered) }),
	}
}

var searchable = lo.SliceToMap(
	lo.Filter(baseColumns(), func(c Column, _ int) bool { return c.Searchable }),
	func(c Column) (string, struct{}) { return c.DataIndex, struct{}{} },
)

// IsSearchable reports whether dataIndex names a column with a search filter.
func IsSearchable(dataIndex string) bool {
	_, ok := searchable[dataIndex]
	return ok
}

// SearchableColumns lists the data indexes of searchable columns in display order.
func SearchableColumns() []string {
	return lo.FilterMap(baseColumns(), func(c Column, _ int) (string, bool) {
		return c.DataIndex, c.Searchable
	})
}

// Columns returns the table columns with filter panels seeded from filters.
func Columns(filters Filters) []Column {
	cols := baseColumns()
	for i := range cols {
		if cols[i].Filter == nil {
			continue
		}
		value := filters[cols[i].DataIndex]
		cols[i].Filter.Value = value
		cols[i].Filtered = value != ""
	}
	return cols
}

// Cell renders the column's value for r.
func (c Column) Cell(r Row) string {
	if c.render != nil {
		return c.render(r)
	}
	v, _ := r.Field(c.DataIndex)
	return v
}

// Match reports whether r satisfies term on this column.
func (c Column) Match(r Row, term string) bool {
	v, ok := r.Field(c.DataIndex)
	if !ok {
		return false
	}
	return Match(v, term)
}

// Match reports whether value contains term, ignoring case. An empty value never matches.
func Match(value, term string) bool {
	if value == "" {
		return false
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(value), fold.String(term))
}

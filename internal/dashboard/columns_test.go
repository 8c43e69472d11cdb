package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/orderboard/internal/domain/model"
)

func TestMatch(t *testing.T) {
	assert.True(t, Match("Receipt", "REC"))
	assert.True(t, Match("Receipt", "eip"))
	assert.False(t, Match("Receipt", "xyz"))
	assert.False(t, Match("", "REC"))
	assert.False(t, Match("", ""))
	assert.True(t, Match("Thanh toán bằng paypal", "TOÁN"))
}

func TestSearchColumn(t *testing.T) {
	col := SearchColumn(ColumnPhone, "Phone")

	assert.Equal(t, "Phone", col.Title)
	assert.Equal(t, ColumnPhone, col.DataIndex)
	assert.True(t, col.Searchable)
	assert.False(t, col.Filtered)
	require.NotNil(t, col.Filter)
	assert.Equal(t, "Search phone", col.Filter.Placeholder)
	assert.Empty(t, col.Filter.Value)
	assert.Equal(t, []string{"Search", "Reset"}, col.Filter.Actions)
	assert.Equal(t, 100, col.Filter.FocusDelayMS)
}

func TestColumnsFixedOrder(t *testing.T) {
	cols := Columns(nil)

	titles := make([]string, 0, len(cols))
	for _, c := range cols {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{
		"Email", "Name", "Type", "Phone", "Address", "Payment Method",
		"Total Price", "Is Paid", "Is Delivered",
	}, titles)
	assert.Equal(t, []string{
		ColumnEmail, ColumnName, ColumnType, ColumnPhone, ColumnAddress, ColumnPaymentMethod,
	}, SearchableColumns())
	for _, c := range cols[6:] {
		assert.False(t, c.Searchable)
		assert.Nil(t, c.Filter)
	}
}

func TestColumnsSeedFilterPanels(t *testing.T) {
	cols := Columns(Filters{ColumnName: "nguyen"})

	for _, c := range cols {
		if c.DataIndex == ColumnName {
			assert.True(t, c.Filtered)
			assert.Equal(t, "nguyen", c.Filter.Value)
			continue
		}
		assert.False(t, c.Filtered, c.DataIndex)
	}

	fresh := Columns(nil)
	assert.Empty(t, fresh[1].Filter.Value)
}

func TestColumnCell(t *testing.T) {
	r := BuildRows([]model.Order{shirtOrder()}, tokenSession("t", "admin@shop.vn"))[0]
	cells := map[string]string{}
	for _, c := range Columns(nil) {
		cells[c.DataIndex] = c.Cell(r)
	}

	assert.Equal(t, "100,000 VNĐ", cells[ColumnTotalPrice])
	assert.Equal(t, "Yes", cells[ColumnIsPaid])
	assert.Equal(t, "No", cells[ColumnIsDelivered])
	assert.Equal(t, "Shirt Blue", cells[ColumnType])
	assert.Equal(t, PaymentMethods["cod"], cells[ColumnPaymentMethod])
}

func TestColumnMatch(t *testing.T) {
	r := BuildRows([]model.Order{shirtOrder()}, tokenSession("t", "admin@shop.vn"))[0]
	col := SearchColumn(ColumnType, "Type")

	assert.True(t, col.Match(r, "BLUE"))
	assert.False(t, col.Match(r, "red"))

	r.Type = ""
	assert.False(t, col.Match(r, "blue"))
}

func TestIsSearchable(t *testing.T) {
	assert.True(t, IsSearchable(ColumnEmail))
	assert.True(t, IsSearchable(ColumnPaymentMethod))
	assert.False(t, IsSearchable(ColumnTotalPrice))
	assert.False(t, IsSearchable("nope"))
}

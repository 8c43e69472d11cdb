package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polkiloo/orderboard/internal/domain/model"
)

func filterRows() []Row {
	a := shirtOrder()
	b := shirtOrder()
	b.ID = "order-2"
	b.ShippingAddress.FullName = "Tran Thi B"
	b.ShippingAddress.City = "Da Nang"
	b.PaymentMethod = "paypal"
	c := shirtOrder()
	c.ID = "order-3"
	c.ShippingAddress.FullName = "Le Van C"
	c.PaymentMethod = "unknown"
	return BuildRows([]model.Order{a, b, c}, tokenSession("t", "admin@shop.vn"))
}

func keys(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Key)
	}
	return out
}

func TestFiltersApply(t *testing.T) {
	rows := filterRows()

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"none", nil, []string{"order-1", "order-2", "order-3"}},
		{"empty term ignored", Filters{ColumnName: ""}, []string{"order-1", "order-2", "order-3"}},
		{"case insensitive", Filters{ColumnName: "TRAN"}, []string{"order-2"}},
		{"address", Filters{ColumnAddress: "hue"}, []string{"order-1", "order-3"}},
		{"and across columns", Filters{ColumnAddress: "hue", ColumnName: "le van"}, []string{"order-3"}},
		{"blank label never matches", Filters{ColumnPaymentMethod: "thanh"}, []string{"order-1", "order-2"}},
		{"no match", Filters{ColumnPhone: "xyz"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys(tt.filters.Apply(rows)))
		})
	}
}

func TestFiltersMerge(t *testing.T) {
	base := Filters{ColumnName: "a", ColumnPhone: "09"}

	merged := base.Merge(Filters{ColumnName: "b", ColumnPhone: "", ColumnEmail: "x"})

	assert.Equal(t, Filters{ColumnName: "b", ColumnEmail: "x"}, merged)
	assert.Equal(t, Filters{ColumnName: "a", ColumnPhone: "09"}, base)
}

func TestFiltersActive(t *testing.T) {
	assert.False(t, Filters(nil).Active())
	assert.False(t, Filters{ColumnName: ""}.Active())
	assert.True(t, Filters{ColumnName: "a"}.Active())
}

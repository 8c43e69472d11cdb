package dashboard

import (
	"github.com/samber/lo"

	"github.com/polkiloo/orderboard/internal/domain/model"
)

// ChartSlice is one segment of the payment method summary.
type ChartSlice struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// BuildChart counts orders per payment method in order of first appearance.
// Codes without a label are named by the code itself.
func BuildChart(orders []model.Order) []ChartSlice {
	codeOf := func(o model.Order) string { return o.PaymentMethod }
	counts := lo.CountValuesBy(orders, codeOf)
	codes := lo.Uniq(lo.Map(orders, func(o model.Order, _ int) string { return codeOf(o) }))

	return lo.Map(codes, func(code string, _ int) ChartSlice {
		name := PaymentLabel(code)
		if name == "" {
			name = code
		}
		return ChartSlice{Code: code, Name: name, Value: counts[code]}
	})
}

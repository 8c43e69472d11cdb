package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0 VNĐ"},
		{999, "999 VNĐ"},
		{100000, "100,000 VNĐ"},
		{1234567, "1,234,567 VNĐ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(decimal.NewFromInt(tt.amount)))
	}
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", YesNo(true))
	assert.Equal(t, "No", YesNo(false))
}

func TestPaymentLabel(t *testing.T) {
	assert.Equal(t, "Thanh toán tiền mặt khi nhận hàng", PaymentLabel("later_money"))
	assert.Equal(t, "Thanh toán tiền mặt khi nhận hàng", PaymentLabel("cod"))
	assert.Equal(t, "Thanh toán bằng paypal", PaymentLabel("paypal"))
	assert.Empty(t, PaymentLabel("unknown"))
	assert.Empty(t, PaymentLabel(""))
}

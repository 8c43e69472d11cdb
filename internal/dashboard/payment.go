package dashboard

// PaymentMethods maps order service payment codes to their display labels.
var PaymentMethods = map[string]string{
	"later_money": "Thanh toán tiền mặt khi nhận hàng",
	"cod":         "Thanh toán tiền mặt khi nhận hàng",
	"paypal":      "Thanh toán bằng paypal",
}

// PaymentLabel resolves a payment code. Unknown codes yield an empty label.
func PaymentLabel(code string) string {
	return PaymentMethods[code]
}

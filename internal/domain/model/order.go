package model

import "github.com/shopspring/decimal"

// ShippingAddress is the delivery destination recorded on an order.
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
}

// OrderItem is a single purchased product line.
type OrderItem struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Image string          `json:"image"`
	Price decimal.Decimal `json:"price"`
	// Amount is the ordered quantity.
	Amount int `json:"amount"`
}

// Order is a read-only snapshot of a customer purchase as returned by the order service.
type Order struct {
	ID              string          `json:"_id"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	OrderItems      []OrderItem     `json:"orderItems"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	IsPaid          bool            `json:"isPaid"`
	IsDelivered     bool            `json:"isDelivered"`
	User            string          `json:"user,omitempty"`
}

// FirstItem returns the leading order item when present.
func (o Order) FirstItem() (OrderItem, bool) {
	if len(o.OrderItems) == 0 {
		return OrderItem{}, false
	}
	return o.OrderItems[0], true
}

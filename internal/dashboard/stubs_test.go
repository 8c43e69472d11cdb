package dashboard

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderboard/internal/domain/model"
)

type sourceStub struct {
	orders []model.Order
	err    error
	calls  atomic.Int32
	tokens chan string
}

func (s *sourceStub) AllOrders(_ context.Context, accessToken string) ([]model.Order, error) {
	s.calls.Add(1)
	if s.tokens != nil {
		s.tokens <- accessToken
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.orders, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func tokenSession(token, email string) model.Session {
	return model.Session{AccessToken: &token, Email: email}
}

func shirtOrder() model.Order {
	return model.Order{
		ID: "order-1",
		ShippingAddress: model.ShippingAddress{
			FullName: "Nguyen Van A",
			Address:  "12 Le Loi",
			City:     "Hue",
			Phone:    "0901234567",
		},
		OrderItems:    []model.OrderItem{{Name: "Shirt", Type: "Blue", Image: "shirt.png"}},
		PaymentMethod: "cod",
		TotalPrice:    decimal.NewFromInt(100000),
		IsPaid:        true,
		IsDelivered:   false,
	}
}

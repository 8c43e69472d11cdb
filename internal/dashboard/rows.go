package dashboard

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderboard/internal/domain/model"
)

const (
	unknownItem = "Unknown"
	// undefinedField is what the dashboard has always printed for a missing item attribute.
	undefinedField = "undefined"
)

// Row is the flattened projection of one order shown in the table.
type Row struct {
	Key           string          `json:"key"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Image         string          `json:"image"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	IsPaid        bool            `json:"isPaid"`
	IsDelivered   bool            `json:"isDelivered"`
	NameItem      string          `json:"nameItem"`
	PaymentMethod string          `json:"paymentMethod"`
}

// BuildRows projects orders into table rows, one per order and in the same order.
// Every row carries the session email, not the customer's.
func BuildRows(orders []model.Order, session model.Session) []Row {
	return lo.Map(orders, func(o model.Order, _ int) Row {
		return buildRow(o, session.Email)
	})
}

func buildRow(o model.Order, email string) Row {
	item, _ := o.FirstItem()
	nameItem := unknownItem
	if item.Name != "" {
		nameItem = item.Name
	}
	return Row{
		Key:           o.ID,
		Email:         email,
		Name:          o.ShippingAddress.FullName,
		Type:          itemType(item),
		Phone:         o.ShippingAddress.Phone,
		Address:       o.ShippingAddress.Address + ", " + o.ShippingAddress.City,
		Image:         item.Image,
		TotalPrice:    o.TotalPrice,
		IsPaid:        o.IsPaid,
		IsDelivered:   o.IsDelivered,
		NameItem:      nameItem,
		PaymentMethod: PaymentLabel(o.PaymentMethod),
	}
}

func itemType(item model.OrderItem) string {
	name, typ := undefinedField, undefinedField
	if item.Name != "" {
		name = item.Name
	}
	if item.Type != "" {
		typ = item.Type
	}
	label := name + " " + typ
	// The label always contains a separator, so this fallback never fires.
	if label == "" {
		return unknownItem
	}
	return label
}

// Field returns the raw value behind a column, reporting false for unknown
// columns and for empty values.
func (r Row) Field(dataIndex string) (string, bool) {
	var v string
	switch dataIndex {
	case ColumnEmail:
		v = r.Email
	case ColumnName:
		v = r.Name
	case ColumnType:
		v = r.Type
	case ColumnPhone:
		v = r.Phone
	case ColumnAddress:
		v = r.Address
	case ColumnPaymentMethod:
		v = r.PaymentMethod
	case ColumnTotalPrice:
		v = r.TotalPrice.String()
	case ColumnIsPaid:
		v = YesNo(r.IsPaid)
	case ColumnIsDelivered:
		v = YesNo(r.IsDelivered)
	default:
		return "", false
	}
	return v, v != ""
}

package ledger

import (
	"github.com/angelmondragon/shopfront/pkg/enums"
	"github.com/shopspring/decimal"
)

// LineItem is one row of a cart, wishlist or order list.
type LineItem struct {
	ID       string            `json:"id" validate:"required"`
	Name     string            `json:"name" validate:"required"`
	Price    decimal.Decimal   `json:"price" validate:"gte=0"`
	Quantity int               `json:"quantity" validate:"gte=1"`
	Status   enums.OrderStatus `json:"status,omitempty" validate:"omitempty,order_status"`
}

// Subtotal is price times quantity.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SameProduct reports whether other describes the same product as i: same
// id, name and unit price.
func (i LineItem) SameProduct(other LineItem) bool {
	return i.ID == other.ID && i.Name == other.Name && i.Price.Equal(other.Price)
}

// OrderStatus lets line items be narrowed with FilterByStatus.
func (i LineItem) OrderStatus() enums.OrderStatus {
	return i.Status
}

// StatusCarrier is anything with an order status.
type StatusCarrier interface {
	OrderStatus() enums.OrderStatus
}

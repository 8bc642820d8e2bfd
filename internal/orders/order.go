package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/shopfront/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront/pkg/errors"
	"github.com/angelmondragon/shopfront/pkg/money"
	"github.com/shopspring/decimal"
)

// TimestampLayout is how order timestamps are written and displayed.
const TimestampLayout = "2006-01-02 03:04 PM"

// Order is one entry in the order history.
type Order struct {
	ID          string
	Item        string
	Status      enums.OrderStatus
	OrderedAt   time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CanceledAt  *time.Time
	Cost        decimal.Decimal
	Currency    enums.Currency
}

// OrderStatus lets orders be narrowed with ledger.FilterByStatus.
func (o Order) OrderStatus() enums.OrderStatus {
	return o.Status
}

// CostText is the formatted order cost.
func (o Order) CostText() string {
	return money.Format(o.Cost, o.Currency)
}

// StatusColor is the badge color for the order's status.
func (o Order) StatusColor() string {
	return o.Status.Color()
}

// Record is the textual form orders are seeded from.
type Record struct {
	ID          string
	Item        string
	Status      string
	OrderedAt   string
	ShippedAt   string
	DeliveredAt string
	CanceledAt  string
	Cost        string
}

// Parse converts a record into an Order.
func Parse(rec Record) (Order, error) {
	status, err := enums.ParseOrderStatus(rec.Status)
	if err != nil {
		return Order{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("order %s", rec.ID))
	}
	orderedAt, err := parseTime(rec.OrderedAt)
	if err != nil || orderedAt == nil {
		return Order{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("order %s: invalid ordered at %q", rec.ID, rec.OrderedAt))
	}
	cost, currency, err := money.Parse(rec.Cost, enums.CurrencyUSD)
	if err != nil {
		return Order{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("order %s", rec.ID))
	}

	order := Order{
		ID:        strings.TrimSpace(rec.ID),
		Item:      strings.TrimSpace(rec.Item),
		Status:    status,
		OrderedAt: *orderedAt,
		Cost:      cost,
		Currency:  currency,
	}
	for _, field := range []struct {
		raw  string
		dest **time.Time
	}{
		{rec.ShippedAt, &order.ShippedAt},
		{rec.DeliveredAt, &order.DeliveredAt},
		{rec.CanceledAt, &order.CanceledAt},
	} {
		parsed, err := parseTime(field.raw)
		if err != nil {
			return Order{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("order %s", rec.ID))
		}
		*field.dest = parsed
	}
	return order, nil
}

func parseTime(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.Parse(TimestampLayout, trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// Event is one step of an order's timeline.
type Event struct {
	Label string
	At    time.Time
}

// Text renders the event as "Shipped: 2025-10-01 10:00 AM".
func (e Event) Text() string {
	return e.Label + ": " + e.At.Format(TimestampLayout)
}

// Timeline lists the timestamps the order has, in lifecycle order.
func Timeline(order Order) []Event {
	events := []Event{{Label: "Ordered", At: order.OrderedAt}}
	if order.ShippedAt != nil {
		events = append(events, Event{Label: "Shipped", At: *order.ShippedAt})
	}
	if order.DeliveredAt != nil {
		events = append(events, Event{Label: "Delivered", At: *order.DeliveredAt})
	}
	if order.CanceledAt != nil {
		events = append(events, Event{Label: "Canceled", At: *order.CanceledAt})
	}
	return events
}

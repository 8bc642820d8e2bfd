package orders

import (
	"sync"

	"github.com/angelmondragon/shopfront/internal/ledger"
	"github.com/angelmondragon/shopfront/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront/pkg/errors"
	"go.uber.org/multierr"
)

var mockRecords = []Record{
	{ID: "1", Item: "Wireless Headphones", Status: "Processing", OrderedAt: "2025-10-03 09:15 AM", Cost: "$120"},
	{ID: "2", Item: "Bluetooth Speaker", Status: "Delivered", OrderedAt: "2025-09-30 11:00 AM", ShippedAt: "2025-10-01 10:00 AM", DeliveredAt: "2025-10-02 02:30 PM", Cost: "$80"},
	{ID: "3", Item: "Phone Charger", Status: "Shipped", OrderedAt: "2025-10-04 08:45 AM", ShippedAt: "2025-10-04 02:00 PM", Cost: "$25"},
	{ID: "4", Item: "Smartwatch", Status: "Canceled", OrderedAt: "2025-10-02 01:00 PM", CanceledAt: "2025-10-02 05:00 PM", Cost: "$150"},
	{ID: "5", Item: "Gaming Mouse", Status: "Processing", OrderedAt: "2025-10-05 09:00 AM", Cost: "$45"},
	{ID: "6", Item: "Laptop Stand", Status: "Delivered", OrderedAt: "2025-09-29 10:15 AM", ShippedAt: "2025-09-30 09:00 AM", DeliveredAt: "2025-10-01 03:30 PM", Cost: "$60"},
	{ID: "7", Item: "Mechanical Keyboard", Status: "Shipped", OrderedAt: "2025-10-03 07:30 AM", ShippedAt: "2025-10-03 04:00 PM", Cost: "$100"},
	{ID: "8", Item: "USB-C Hub", Status: "Canceled", OrderedAt: "2025-10-01 11:20 AM", CanceledAt: "2025-10-01 01:00 PM", Cost: "$35"},
}

// MockRecords returns the order history a fresh session starts with.
func MockRecords() []Record {
	return append([]Record(nil), mockRecords...)
}

// ParseAll converts every record, collecting all failures.
func ParseAll(records []Record) ([]Order, error) {
	var errs error
	out := make([]Order, 0, len(records))
	for _, rec := range records {
		order, err := Parse(rec)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, order)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// Filter keeps the orders allowed by filter, in their original order.
func Filter(orders []Order, filter enums.OrderStatusFilter) []Order {
	return ledger.FilterByStatus(orders, filter)
}

// ParseFilter reads a filter selector such as "All" or "Delivered".
func ParseFilter(value string) (enums.OrderStatusFilter, error) {
	filter, err := enums.ParseOrderStatusFilter(value)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order filter")
	}
	return filter, nil
}

// Counts tallies orders per status.
func Counts(orders []Order) map[enums.OrderStatus]int {
	counts := make(map[enums.OrderStatus]int, len(enums.OrderStatuses()))
	for _, order := range orders {
		counts[order.Status]++
	}
	return counts
}

// History is the orders screen state: the order list plus the selected
// status filter.
type History struct {
	mu     sync.Mutex
	orders []Order
	filter enums.OrderStatusFilter
}

// NewHistory returns a history over the mock orders with the All filter.
func NewHistory() (*History, error) {
	orders, err := ParseAll(MockRecords())
	if err != nil {
		return nil, err
	}
	return NewHistoryWith(orders), nil
}

// NewHistoryWith returns a history over orders.
func NewHistoryWith(orders []Order) *History {
	return &History{
		orders: append([]Order(nil), orders...),
		filter: enums.OrderStatusFilterAll,
	}
}

// SetFilter selects the status to show.
func (h *History) SetFilter(filter enums.OrderStatusFilter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.filter = filter
}

// Selected is the current filter.
func (h *History) Selected() enums.OrderStatusFilter {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.filter
}

// Visible returns the orders passing the current filter.
func (h *History) Visible() []Order {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Filter(h.orders, h.filter)
}

// All returns every order regardless of the filter.
func (h *History) All() []Order {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Order(nil), h.orders...)
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.orders)
}

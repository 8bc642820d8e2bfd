package enums

import (
	"fmt"
	"strings"
)

// OrderStatusFilter selects a status subset of an order list. The zero value
// behaves like OrderStatusFilterAll.
type OrderStatusFilter string

// OrderStatusFilterAll is the synthetic selector that keeps every entry.
const OrderStatusFilterAll OrderStatusFilter = "All"

// FilterFor narrows a filter to a single status.
func FilterFor(status OrderStatus) OrderStatusFilter {
	return OrderStatusFilter(status)
}

// OrderStatusFilters lists the selectors in the order the filter row shows them.
func OrderStatusFilters() []OrderStatusFilter {
	return []OrderStatusFilter{
		OrderStatusFilterAll,
		FilterFor(OrderStatusProcessing),
		FilterFor(OrderStatusDelivered),
		FilterFor(OrderStatusShipped),
		FilterFor(OrderStatusCanceled),
	}
}

// String implements fmt.Stringer.
func (f OrderStatusFilter) String() string {
	if f == "" {
		return string(OrderStatusFilterAll)
	}
	return string(f)
}

// IsAll reports whether the filter keeps every status.
func (f OrderStatusFilter) IsAll() bool {
	return f == "" || f == OrderStatusFilterAll
}

// Allows reports whether an entry with the given status passes the filter.
func (f OrderStatusFilter) Allows(status OrderStatus) bool {
	return f.IsAll() || OrderStatus(f) == status
}

// ParseOrderStatusFilter accepts "All" (any case, or empty) or a known status.
func ParseOrderStatusFilter(value string) (OrderStatusFilter, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, string(OrderStatusFilterAll)) {
		return OrderStatusFilterAll, nil
	}
	for _, candidate := range validOrderStatuses {
		if strings.EqualFold(string(candidate), trimmed) {
			return FilterFor(candidate), nil
		}
	}
	return "", fmt.Errorf("invalid order status filter %q", value)
}

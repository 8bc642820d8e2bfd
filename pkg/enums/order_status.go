package enums

import "fmt"

// OrderStatus tracks where a placed order is in its lifecycle.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCanceled   OrderStatus = "Canceled"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

// OrderStatuses returns the known statuses in display order.
func OrderStatuses() []OrderStatus {
	return append([]OrderStatus(nil), validOrderStatuses...)
}

// String implements fmt.Stringer.
func (o OrderStatus) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderStatus.
func (o OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// Color is the badge color the orders view paints for the status.
func (o OrderStatus) Color() string {
	switch o {
	case OrderStatusProcessing:
		return "lightgreen"
	case OrderStatusDelivered:
		return "yellowgreen"
	case OrderStatusShipped:
		return "skyblue"
	case OrderStatusCanceled:
		return "tomato"
	}
	return "#ccc"
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}

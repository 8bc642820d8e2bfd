package ledger

import (
	"github.com/angelmondragon/shopfront/pkg/enums"
	"github.com/shopspring/decimal"
)

// ActionKind names a ledger mutation.
type ActionKind string

const (
	ActionIncrease ActionKind = "increase"
	ActionDecrease ActionKind = "decrease"
	ActionRemove   ActionKind = "remove"
	ActionClear    ActionKind = "clear"
)

// Action is a single mutation request. ID is ignored by ActionClear.
type Action struct {
	Kind ActionKind
	ID   string
}

func Increase(id string) Action { return Action{Kind: ActionIncrease, ID: id} }
func Decrease(id string) Action { return Action{Kind: ActionDecrease, ID: id} }
func Remove(id string) Action   { return Action{Kind: ActionRemove, ID: id} }
func Clear() Action             { return Action{Kind: ActionClear} }

// Reduce applies action to items and returns the new list. The input slice
// is never modified. Unknown ids and unknown kinds leave the list unchanged.
func Reduce(items []LineItem, action Action) []LineItem {
	switch action.Kind {
	case ActionIncrease:
		return IncreaseQuantity(items, action.ID)
	case ActionDecrease:
		return DecreaseQuantity(items, action.ID)
	case ActionRemove:
		return RemoveItem(items, action.ID)
	case ActionClear:
		return []LineItem{}
	}
	return clone(items)
}

// IncreaseQuantity adds one to the matching item.
func IncreaseQuantity(items []LineItem, id string) []LineItem {
	out := clone(items)
	for i := range out {
		if out[i].ID == id {
			out[i].Quantity++
		}
	}
	return out
}

// DecreaseQuantity subtracts one from the matching item but never goes
// below 1.
func DecreaseQuantity(items []LineItem, id string) []LineItem {
	out := clone(items)
	for i := range out {
		if out[i].ID == id && out[i].Quantity > 1 {
			out[i].Quantity--
		}
	}
	return out
}

// RemoveItem drops every item with the given id.
func RemoveItem(items []LineItem, id string) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// Total sums price times quantity. An empty list totals zero.
func Total(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// FilterByStatus keeps the entries allowed by filter, in their original order.
func FilterByStatus[T StatusCarrier](items []T, filter enums.OrderStatusFilter) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if filter.Allows(item.OrderStatus()) {
			out = append(out, item)
		}
	}
	return out
}

func clone(items []LineItem) []LineItem {
	return append(make([]LineItem, 0, len(items)), items...)
}

package ledger

import (
	"fmt"
	"sync"

	pkgerrors "github.com/angelmondragon/shopfront/pkg/errors"
	"github.com/angelmondragon/shopfront/pkg/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// Ledger is a mutable, ordered list of line items. Mutations are applied one
// at a time in the order they are called.
type Ledger struct {
	mu    sync.Mutex
	items []LineItem
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{items: []LineItem{}}
}

// Seed replaces the contents with items. Every item is validated first; if
// any fails the ledger is left untouched and all failures are returned.
func (l *Ledger) Seed(items []LineItem) error {
	var errs error
	seen := make(map[string]struct{}, len(items))
	for idx, item := range items {
		if err := validation.Struct(item); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("item %d: %w", idx, err))
			continue
		}
		if _, dup := seen[item.ID]; dup {
			errs = multierr.Append(errs, pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("item %d: duplicate id %q", idx, item.ID)))
			continue
		}
		seen[item.ID] = struct{}{}
	}
	if errs != nil {
		return errs
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = clone(items)
	return nil
}

// Add appends a new item, or raises the quantity of an existing item with
// the same id by item.Quantity. An existing id holding a different name or
// price is a conflict and leaves the ledger unchanged.
func (l *Ledger) Add(item LineItem) error {
	if err := validation.Struct(item); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		existing := &l.items[i]
		if existing.ID != item.ID {
			continue
		}
		if !existing.SameProduct(item) {
			return pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("id %q already holds %q at %s", item.ID, existing.Name, existing.Price))
		}
		existing.Quantity += item.Quantity
		return nil
	}
	l.items = append(l.items, item)
	return nil
}

// Dispatch applies action and returns the resulting items.
func (l *Ledger) Dispatch(action Action) []LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = Reduce(l.items, action)
	return clone(l.items)
}

func (l *Ledger) Increase(id string) []LineItem { return l.Dispatch(Increase(id)) }
func (l *Ledger) Decrease(id string) []LineItem { return l.Dispatch(Decrease(id)) }
func (l *Ledger) Remove(id string) []LineItem   { return l.Dispatch(Remove(id)) }
func (l *Ledger) Clear() []LineItem             { return l.Dispatch(Clear()) }

// Items returns a copy of the current items.
func (l *Ledger) Items() []LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return clone(l.items)
}

// Get looks up an item by id.
func (l *Ledger) Get(id string) (LineItem, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, item := range l.items {
		if item.ID == id {
			return item, true
		}
	}
	return LineItem{}, false
}

// Contains reports whether an item with id is present.
func (l *Ledger) Contains(id string) bool {
	_, ok := l.Get(id)
	return ok
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Total is the sum of price times quantity over all items.
func (l *Ledger) Total() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Total(l.items)
}

package cart

import (
	"github.com/angelmondragon/shopfront/internal/catalog"
	"github.com/angelmondragon/shopfront/internal/ledger"
	"github.com/angelmondragon/shopfront/pkg/enums"
	"github.com/angelmondragon/shopfront/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmptyMessage is shown instead of the item list when the cart is empty.
const EmptyMessage = "Your cart is empty. Go back to shopping by clicking Home"

// MockItems is the cart a fresh session starts with. Its ids are disjoint
// from catalog product ids.
func MockItems() []ledger.LineItem {
	return []ledger.LineItem{
		{ID: "cart-1", Name: "Smart Watch", Price: decimal.NewFromInt(4500), Quantity: 1},
		{ID: "cart-2", Name: "USB Cable", Price: decimal.NewFromInt(800), Quantity: 2},
		{ID: "cart-3", Name: "Power Bank", Price: decimal.NewFromInt(2500), Quantity: 1},
	}
}

// Cart is the cart screen's state.
type Cart struct {
	items    *ledger.Ledger
	currency enums.Currency
}

// NewCart returns a cart seeded with MockItems.
func NewCart() (*Cart, error) {
	return NewCartWith(MockItems())
}

// NewCartWith returns a cart seeded with items.
func NewCartWith(items []ledger.LineItem) (*Cart, error) {
	l := ledger.New()
	if err := l.Seed(items); err != nil {
		return nil, err
	}
	return &Cart{items: l, currency: enums.CurrencyKES}, nil
}

// AddProduct puts one unit of product in the cart at its current price, or
// bumps the quantity when it is already there. Lines are keyed by catalog
// product id.
func (c *Cart) AddProduct(product catalog.DisplayProduct) error {
	id := string(product.ID)
	if id == "" {
		id = uuid.NewString()
	}
	return c.items.Add(ledger.LineItem{
		ID:       id,
		Name:     product.Name,
		Price:    product.NewPrice,
		Quantity: 1,
	})
}

// Add puts item in the cart, merging quantities with a line for the same
// product. A different product under an existing id is a CONFLICT error.
func (c *Cart) Add(item ledger.LineItem) error {
	return c.items.Add(item)
}

func (c *Cart) Increase(id string) { c.items.Increase(id) }
func (c *Cart) Decrease(id string) { c.items.Decrease(id) }
func (c *Cart) Remove(id string)   { c.items.Remove(id) }
func (c *Cart) Clear()             { c.items.Clear() }

func (c *Cart) Items() []ledger.LineItem { return c.items.Items() }
func (c *Cart) Len() int                 { return c.items.Len() }
func (c *Cart) Total() decimal.Decimal   { return c.items.Total() }

// Line is a cart row ready for display.
type Line struct {
	ledger.LineItem
	PriceText    string
	SubtotalText string
}

// Summary is the rendered cart screen.
type Summary struct {
	Lines        []Line
	Total        decimal.Decimal
	TotalText    string
	Empty        bool
	EmptyMessage string
}

// Summary renders the current cart.
func (c *Cart) Summary() Summary {
	items := c.items.Items()
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, Line{
			LineItem:     item,
			PriceText:    money.Format(item.Price, c.currency),
			SubtotalText: money.Format(item.Subtotal(), c.currency),
		})
	}
	total := ledger.Total(items)
	summary := Summary{
		Lines:     lines,
		Total:     total,
		TotalText: money.Format(total, c.currency),
		Empty:     len(items) == 0,
	}
	if summary.Empty {
		summary.EmptyMessage = EmptyMessage
	}
	return summary
}

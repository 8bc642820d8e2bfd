package wishlist

import (
	"github.com/angelmondragon/shopfront/internal/cart"
	"github.com/angelmondragon/shopfront/internal/catalog"
	"github.com/angelmondragon/shopfront/internal/ledger"
	"github.com/angelmondragon/shopfront/pkg/enums"
	"github.com/angelmondragon/shopfront/pkg/money"
	pkgerrors "github.com/angelmondragon/shopfront/pkg/errors"
	"github.com/shopspring/decimal"
)

// EmptyMessage is shown when nothing is saved.
const EmptyMessage = "Your wishlist is empty"

// MockItems is the wishlist a fresh session starts with.
func MockItems() []ledger.LineItem {
	return []ledger.LineItem{
		{ID: "wish-1", Name: "Gaming Mouse", Price: decimal.NewFromInt(1800), Quantity: 1},
		{ID: "wish-2", Name: "Mechanical Keyboard", Price: decimal.NewFromInt(5400), Quantity: 1},
		{ID: "wish-3", Name: "Monitor Stand", Price: decimal.NewFromInt(3200), Quantity: 1},
	}
}

// Wishlist holds saved products. Each product appears at most once.
type Wishlist struct {
	items *ledger.Ledger
}

// NewWishlist returns a wishlist seeded with MockItems.
func NewWishlist() (*Wishlist, error) {
	return NewWishlistWith(MockItems())
}

// NewWishlistWith returns a wishlist seeded with items.
func NewWishlistWith(items []ledger.LineItem) (*Wishlist, error) {
	l := ledger.New()
	if err := l.Seed(items); err != nil {
		return nil, err
	}
	return &Wishlist{items: l}, nil
}

// AddProduct saves product. Saving it twice is a no-op.
func (w *Wishlist) AddProduct(product catalog.DisplayProduct) error {
	id := string(product.ID)
	if id == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if w.items.Contains(id) {
		return nil
	}
	return w.items.Add(ledger.LineItem{ID: id, Name: product.Name, Price: product.NewPrice, Quantity: 1})
}

// Remove drops the entry with id. Unknown ids are ignored.
func (w *Wishlist) Remove(id string) {
	w.items.Remove(id)
}

// MoveToCart adds the entry to dst and drops it from the wishlist. It
// reports false when id is not saved. When dst rejects the entry it stays
// saved.
func (w *Wishlist) MoveToCart(id string, dst *cart.Cart) (bool, error) {
	item, ok := w.items.Get(id)
	if !ok {
		return false, nil
	}
	if dst == nil {
		return false, pkgerrors.New(pkgerrors.CodeInternal, "cart is required")
	}
	item.Quantity = 1
	if err := dst.Add(item); err != nil {
		return false, err
	}
	w.items.Remove(id)
	return true, nil
}

func (w *Wishlist) Items() []ledger.LineItem { return w.items.Items() }
func (w *Wishlist) Len() int                 { return w.items.Len() }

// Entry is a wishlist row ready for display.
type Entry struct {
	ID        string
	Name      string
	PriceText string
}

// Entries renders the saved products.
func (w *Wishlist) Entries() []Entry {
	items := w.items.Items()
	out := make([]Entry, 0, len(items))
	for _, item := range items {
		out = append(out, Entry{ID: item.ID, Name: item.Name, PriceText: money.Format(item.Price, enums.CurrencyKES)})
	}
	return out
}

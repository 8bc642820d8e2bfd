package wishlist

import (
	"testing"

	"github.com/angelmondragon/shopfront/internal/cart"
	"github.com/angelmondragon/shopfront/internal/catalog"
	"github.com/angelmondragon/shopfront/internal/ledger"
	pkgerrors "github.com/angelmondragon/shopfront/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistSeedAndEntries(t *testing.T) {
	t.Parallel()

	w, err := NewWishlist()
	require.NoError(t, err)
	entries := w.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{ID: "wish-2", Name: "Mechanical Keyboard", PriceText: "Ksh 5,400"}, entries[1])
}

func TestWishlistAddProductIsIdempotent(t *testing.T) {
	t.Parallel()

	w, err := NewWishlistWith(nil)
	require.NoError(t, err)
	product := catalog.Normalize(catalog.SampleProducts()[4])

	require.NoError(t, w.AddProduct(product))
	require.NoError(t, w.AddProduct(product))
	require.Equal(t, 1, w.Len())
	assert.Equal(t, 1, w.Items()[0].Quantity)

	assert.Error(t, w.AddProduct(catalog.DisplayProduct{Name: "no id"}))
}

func TestWishlistMoveToCart(t *testing.T) {
	t.Parallel()

	w, err := NewWishlist()
	require.NoError(t, err)
	c, err := cart.NewCartWith(nil)
	require.NoError(t, err)

	moved, err := w.MoveToCart("wish-1", c)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, 2, w.Len())
	require.Equal(t, 1, c.Len())
	assert.True(t, c.Total().Equal(decimal.NewFromInt(1800)))

	moved, err = w.MoveToCart("wish-1", c)
	require.NoError(t, err)
	assert.False(t, moved, "already moved")

	w.Remove("404")
	w.Remove("wish-2")
	assert.Equal(t, 1, w.Len())
}

func TestWishlistMoveToSeededCart(t *testing.T) {
	t.Parallel()

	w, err := NewWishlist()
	require.NoError(t, err)
	c, err := cart.NewCart()
	require.NoError(t, err)

	moved, err := w.MoveToCart("wish-1", c)
	require.NoError(t, err)
	require.True(t, moved)

	items := c.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "Gaming Mouse", items[3].Name)
	assert.Equal(t, 1, items[3].Quantity)
	assert.Equal(t, 1, items[0].Quantity, "seeded lines keep their quantity")
	assert.True(t, c.Total().Equal(decimal.NewFromInt(10400)))
	assert.Equal(t, 2, w.Len())
}

func TestWishlistMoveKeepsEntryOnConflict(t *testing.T) {
	t.Parallel()

	w, err := NewWishlist()
	require.NoError(t, err)
	c, err := cart.NewCartWith([]ledger.LineItem{
		{ID: "wish-1", Name: "Desk Lamp", Price: decimal.NewFromInt(900), Quantity: 1},
	})
	require.NoError(t, err)

	moved, err := w.MoveToCart("wish-1", c)
	assert.False(t, moved)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeConflict))
	assert.Equal(t, 3, w.Len())
	assert.True(t, c.Total().Equal(decimal.NewFromInt(900)))
}

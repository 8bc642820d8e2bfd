package profile

import (
	"testing"

	"github.com/angelmondragon/shopfront/internal/cart"
	"github.com/angelmondragon/shopfront/internal/orders"
	"github.com/angelmondragon/shopfront/internal/wishlist"
	pkgerrors "github.com/angelmondragon/shopfront/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSaveValidatesDraft(t *testing.T) {
	s := NewSettings(Default())

	require.NoError(t, s.Set("town", "Kilimani"))
	assert.Equal(t, "Westlands", s.Profile().Town, "unsaved edits stay in the draft")
	require.NoError(t, s.Save())
	assert.Equal(t, "Kilimani", s.Profile().Town)

	require.NoError(t, s.Set("email", "not-an-email"))
	require.NoError(t, s.Set("phone", "07x"))
	err := s.Save()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	details := typed.Details().(map[string]string)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Contains(t, details, "phone")
	assert.Equal(t, "ian@example.com", s.Profile().Email)

	s.Reset()
	assert.Equal(t, s.Profile(), s.Draft())
}

func TestSettingsRejectsUnknownField(t *testing.T) {
	s := NewSettings(Default())
	err := s.Set("password", "hunter2")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestAltPhoneIsOptional(t *testing.T) {
	s := NewSettings(Default())
	require.NoError(t, s.Set("altPhone", ""))
	assert.NoError(t, s.Save())
}

func TestFieldsCoverProfile(t *testing.T) {
	p := Default()
	for _, f := range Fields() {
		value, ok := p.Get(f.Key)
		assert.Truef(t, ok, "field %s", f.Key)
		assert.NotEmptyf(t, value, "field %s", f.Key)
	}
	_, ok := p.Get("missing")
	assert.False(t, ok)
}

func TestStatsForLiveLists(t *testing.T) {
	c, err := cart.NewCart()
	require.NoError(t, err)
	w, err := wishlist.NewWishlist()
	require.NoError(t, err)
	h, err := orders.NewHistory()
	require.NoError(t, err)

	assert.Equal(t, Stats{Orders: 8, Wishlist: 3, Cart: 3}, StatsFor(h, w, c))

	c.Remove("cart-1")
	assert.Equal(t, 2, StatsFor(h, w, c).Cart)
	assert.Equal(t, Stats{}, StatsFor(nil, nil, nil))
}

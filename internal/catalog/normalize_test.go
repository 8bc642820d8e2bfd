package catalog

import (
	"strings"
	"testing"

	"github.com/angelmondragon/shopfront/pkg/enums"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDerivesOldPriceWhenPreviousMissing(t *testing.T) {
	cases := []struct {
		current int64
		want    int64
	}{
		{current: 12000, want: 13800},
		{current: 4500, want: 5175},
		{current: 2500, want: 2875},
		{current: 999, want: 1149},
		{current: 1, want: 1},
		{current: 0, want: 0},
	}
	for _, tc := range cases {
		record := ProductRecord{ID: "x", Name: "x", CurrentPrice: decimal.NewFromInt(tc.current)}
		got := Normalize(record).OldPrice
		assert.Truef(t, got.Equal(decimal.NewFromInt(tc.want)), "current %d: got old price %s, want %d", tc.current, got, tc.want)
	}
}

func TestNormalizeOldPriceIsDeterministic(t *testing.T) {
	record := ProductRecord{CurrentPrice: decimal.RequireFromString("1999.99")}
	first := Normalize(record).OldPrice
	for i := 0; i < 5; i++ {
		require.True(t, first.Equal(Normalize(record).OldPrice))
	}
	assert.True(t, first.Equal(decimal.NewFromInt(2300)))
}

func TestNormalizePrefersPreviousPrice(t *testing.T) {
	record := ProductRecord{CurrentPrice: decimal.NewFromInt(12000), PreviousPrice: decPtr(14500)}
	assert.True(t, Normalize(record).OldPrice.Equal(decimal.NewFromInt(14500)))

	zero := decimal.Zero
	record.PreviousPrice = &zero
	assert.True(t, Normalize(record).OldPrice.Equal(decimal.NewFromInt(13800)), "zero previous price falls back to the markup")
}

func TestNormalizeStockBands(t *testing.T) {
	cases := []struct {
		stock float64
		band  enums.StockBand
		color string
	}{
		{0, enums.StockBandLow, "red"},
		{19, enums.StockBandLow, "red"},
		{20, enums.StockBandMid, "blue"},
		{35, enums.StockBandMid, "blue"},
		{36, enums.StockBandHigh, "green"},
		{100, enums.StockBandHigh, "green"},
	}
	for _, tc := range cases {
		got := Normalize(ProductRecord{CountInStock: floatPtr(tc.stock)})
		assert.Equalf(t, tc.band, got.StockBand, "stock %v", tc.stock)
		assert.Equalf(t, tc.color, got.StockColor, "stock %v", tc.stock)
	}

	missing := Normalize(ProductRecord{})
	assert.Equal(t, 0, missing.StockCount)
	assert.Equal(t, enums.StockBandLow, missing.StockBand)
}

func TestNormalizeStockFillIsClamped(t *testing.T) {
	assert.Equal(t, 0.0, Normalize(ProductRecord{}).StockFillPercent)
	assert.Equal(t, 50.0, Normalize(ProductRecord{CountInStock: floatPtr(25)}).StockFillPercent)
	assert.Equal(t, 100.0, Normalize(ProductRecord{CountInStock: floatPtr(50)}).StockFillPercent)
	assert.Equal(t, 100.0, Normalize(ProductRecord{CountInStock: floatPtr(100)}).StockFillPercent)
	assert.Equal(t, 0.0, Normalize(ProductRecord{CountInStock: floatPtr(-3)}).StockFillPercent)
}

func TestNormalizeDescriptionPreview(t *testing.T) {
	got := Normalize(ProductRecord{Description: strPtr("Comfortable running shoes")})
	assert.Equal(t, "Comfortable ru...", got.DescriptionPreview)
	assert.Equal(t, "Comfortable running shoes", got.Description)

	assert.Equal(t, "Fourteen chars", PreviewDescription("Fourteen chars"))
	assert.Equal(t, "Short", PreviewDescription("Short"))
	assert.Equal(t, "", Normalize(ProductRecord{}).DescriptionPreview)
	assert.Equal(t, "Viatu vya kuki...", PreviewDescription("Viatu vya kukimbia"))
	assert.Equal(t, strings.Repeat("ñ", 14), PreviewDescription(strings.Repeat("ñ", 14)), "preview counts characters, not bytes")
	assert.Equal(t, strings.Repeat("ñ", 14)+"...", PreviewDescription(strings.Repeat("ñ", 15)))
}

func TestNormalizeStarCount(t *testing.T) {
	cases := []struct {
		rating *float64
		want   int
	}{
		{nil, 0},
		{floatPtr(0), 0},
		{floatPtr(2.5), 3},
		{floatPtr(4.4), 4},
		{floatPtr(4.6), 5},
		{floatPtr(7), 5},
		{floatPtr(-2), 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(ProductRecord{Rating: tc.rating}).Stars)
	}

	states := Normalize(ProductRecord{Rating: floatPtr(3)}).StarStates()
	assert.Equal(t, [5]bool{true, true, true, false, false}, states)
}

func TestNormalizeImageFallbacks(t *testing.T) {
	withImages := Normalize(ProductRecord{Images: []string{"a.jpg", "b.jpg"}, DisplayPhoto: "d.jpg"})
	assert.Equal(t, "a.jpg", withImages.Image)
	assert.True(t, withImages.HasImage)

	withPhoto := Normalize(ProductRecord{DisplayPhoto: "d.jpg"})
	assert.Equal(t, "d.jpg", withPhoto.Image)

	none := Normalize(ProductRecord{Images: []string{}})
	assert.False(t, none.HasImage)
	assert.Equal(t, "", none.Image)
	assert.Equal(t, "placeholder.png", none.ImageOr("placeholder.png"))
}

func TestNormalizeAllKeepsOrder(t *testing.T) {
	products := NormalizeAll(SampleProducts())
	require.Len(t, products, len(SampleProducts()))
	for i, record := range SampleProducts() {
		assert.Equal(t, record.ID, products[i].ID)
	}
}

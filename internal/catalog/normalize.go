package catalog

import (
	"math"
	"unicode/utf8"

	"github.com/angelmondragon/shopfront/pkg/enums"
	"github.com/shopspring/decimal"
)

const (
	descriptionPreviewLength = 14
	descriptionEllipsis      = "..."

	stockBarCapacity = 50
	maxStars         = 5
)

var previousPriceMarkup = decimal.RequireFromString("1.15")

// DisplayProduct carries the presentation fields derived from a ProductRecord.
type DisplayProduct struct {
	ID                 ProductID
	Name               string
	Image              string
	HasImage           bool
	Images             []string
	Description        string
	DescriptionPreview string
	OldPrice           decimal.Decimal
	NewPrice           decimal.Decimal
	StockCount         int
	StockBand          enums.StockBand
	StockColor         string
	StockFillPercent   float64
	Stars              int
}

// ImageOr returns the product image or the placeholder when none is known.
func (d DisplayProduct) ImageOr(placeholder string) string {
	if d.HasImage {
		return d.Image
	}
	return placeholder
}

// StarStates reports, for each of the five rating stars, whether it is filled.
func (d DisplayProduct) StarStates() [maxStars]bool {
	var states [maxStars]bool
	for i := range states {
		states[i] = i < d.Stars
	}
	return states
}

// Normalize derives display fields from a raw record. It never fails: every
// missing field resolves to its default.
func Normalize(record ProductRecord) DisplayProduct {
	image, hasImage := primaryImage(record)
	stock := stockCount(record.CountInStock)
	band := enums.StockBandFor(stock)
	description := record.DescriptionText()

	return DisplayProduct{
		ID:                 record.ID,
		Name:               record.Name,
		Image:              image,
		HasImage:           hasImage,
		Images:             append([]string(nil), record.Images...),
		Description:        description,
		DescriptionPreview: PreviewDescription(description),
		OldPrice:           OldPrice(record),
		NewPrice:           record.CurrentPrice,
		StockCount:         stock,
		StockBand:          band,
		StockColor:         band.Color(),
		StockFillPercent:   StockFillPercent(stock),
		Stars:              StarCount(record.Rating),
	}
}

// NormalizeAll maps Normalize over records preserving order.
func NormalizeAll(records []ProductRecord) []DisplayProduct {
	out := make([]DisplayProduct, 0, len(records))
	for _, record := range records {
		out = append(out, Normalize(record))
	}
	return out
}

// OldPrice is the struck-through price: the catalog's previous price when set
// and non-zero, otherwise the current price marked up 15% and rounded to the
// nearest whole unit.
func OldPrice(record ProductRecord) decimal.Decimal {
	if record.PreviousPrice != nil && !record.PreviousPrice.IsZero() {
		return *record.PreviousPrice
	}
	return record.CurrentPrice.Mul(previousPriceMarkup).Round(0)
}

// StockFillPercent is the stock bar width, capped at 100.
func StockFillPercent(stock int) float64 {
	if stock <= 0 {
		return 0
	}
	return math.Min(100, float64(stock)/stockBarCapacity*100)
}

// StarCount rounds a rating into [0,5].
func StarCount(rating *float64) int {
	if rating == nil || math.IsNaN(*rating) {
		return 0
	}
	stars := math.Round(*rating)
	switch {
	case stars < 0:
		return 0
	case stars > maxStars:
		return maxStars
	}
	return int(stars)
}

// PreviewDescription keeps the first 14 characters and appends an ellipsis
// when the text is longer.
func PreviewDescription(description string) string {
	if utf8.RuneCountInString(description) <= descriptionPreviewLength {
		return description
	}
	runes := []rune(description)
	return string(runes[:descriptionPreviewLength]) + descriptionEllipsis
}

func primaryImage(record ProductRecord) (string, bool) {
	if len(record.Images) > 0 && record.Images[0] != "" {
		return record.Images[0], true
	}
	if record.DisplayPhoto != "" {
		return record.DisplayPhoto, true
	}
	return "", false
}

func stockCount(raw *float64) int {
	if raw == nil || math.IsNaN(*raw) || *raw <= 0 {
		return 0
	}
	if math.IsInf(*raw, 1) || *raw > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(*raw))
}

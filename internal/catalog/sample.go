package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// SampleProducts returns a small catalog used by the local catalog stub and
// by tests. Several entries deliberately omit optional fields.
func SampleProducts() []ProductRecord {
	return []ProductRecord{
		{
			ID:            "1",
			Name:          "Nike Air Max",
			Description:   strPtr("Comfortable running shoes"),
			Images:        []string{"https://picsum.photos/id/21/600/600", "https://picsum.photos/id/22/600/600"},
			CurrentPrice:  decimal.NewFromInt(12000),
			PreviousPrice: decPtr(14500),
			CountInStock:  floatPtr(42),
			Rating:        floatPtr(4.6),
		},
		{
			ID:           "2",
			Name:         "Adidas Ultraboost",
			Description:  strPtr("Responsive cushioning for long runs"),
			Images:       []string{"https://picsum.photos/id/25/600/600"},
			CurrentPrice: decimal.NewFromInt(14000),
			CountInStock: floatPtr(28),
			Rating:       floatPtr(4.2),
		},
		{
			ID:           "3",
			Name:         "Puma Running Shoes",
			Description:  strPtr("Lightweight trainers"),
			DisplayPhoto: "https://picsum.photos/id/26/600/600",
			CurrentPrice: decimal.NewFromInt(10000),
			CountInStock: floatPtr(12),
			Rating:       floatPtr(3.4),
		},
		{
			ID:           "4",
			Name:         "Converse Classic",
			CurrentPrice: decimal.NewFromInt(8000),
		},
		{
			ID:           "5",
			Name:         "Smart Watch",
			Description:  strPtr("Tracks steps, sleep and heart rate"),
			Images:       []string{"https://picsum.photos/id/29/600/600"},
			CurrentPrice: decimal.NewFromInt(4500),
			CountInStock: floatPtr(75),
			Rating:       floatPtr(5),
		},
		{
			ID:           "6",
			Name:         "Power Bank",
			Description:  strPtr("20000mAh fast charging"),
			CurrentPrice: decimal.NewFromInt(2500),
			CountInStock: floatPtr(20),
			Rating:       floatPtr(2.5),
		},
	}
}

func strPtr(v string) *string {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// StaticSource serves a fixed product list.
type StaticSource struct {
	Records []ProductRecord
}

// ListProducts returns a copy of the configured records.
func (s StaticSource) ListProducts(ctx context.Context) ([]ProductRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]ProductRecord{}, s.Records...), nil
}

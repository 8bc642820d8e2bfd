package enums

import "fmt"

// StockBand buckets an in-stock count for the stock bar.
type StockBand string

const (
	StockBandLow  StockBand = "low"
	StockBandMid  StockBand = "mid"
	StockBandHigh StockBand = "high"
)

const (
	stockBandMidFloor = 20
	stockBandMidCeil  = 35
)

var validStockBands = []StockBand{
	StockBandLow,
	StockBandMid,
	StockBandHigh,
}

// StockBandFor returns low below 20, mid for 20 through 35 and high above 35.
func StockBandFor(count int) StockBand {
	switch {
	case count < stockBandMidFloor:
		return StockBandLow
	case count <= stockBandMidCeil:
		return StockBandMid
	default:
		return StockBandHigh
	}
}

// String implements fmt.Stringer.
func (s StockBand) String() string {
	return string(s)
}

// Color is the bar fill color for the band.
func (s StockBand) Color() string {
	switch s {
	case StockBandLow:
		return "red"
	case StockBandMid:
		return "blue"
	case StockBandHigh:
		return "green"
	}
	return "gray"
}

// IsValid reports whether the value is a known StockBand.
func (s StockBand) IsValid() bool {
	for _, candidate := range validStockBands {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockBand converts raw input into a StockBand.
func ParseStockBand(value string) (StockBand, error) {
	for _, candidate := range validStockBands {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock band %q", value)
}

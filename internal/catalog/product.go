package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductID identifies a catalog product. The remote catalog sends ids as
// either JSON strings or numbers; both decode to the same canonical string.
type ProductID string

// String implements fmt.Stringer.
func (id ProductID) String() string {
	return string(id)
}

// UnmarshalJSON accepts strings, numbers and null.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("decode product id: %w", err)
		}
		*id = ProductID(strings.TrimSpace(s))
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("decode product id: %w", err)
	}
	*id = ProductID(n.String())
	return nil
}

// ProductRecord is a raw, partially trusted entry from the product catalog.
// Optional fields are pointers so absence stays distinguishable from zero.
type ProductRecord struct {
	ID            ProductID        `json:"id"`
	Name          string           `json:"name"`
	Description   *string          `json:"description,omitempty"`
	Images        []string         `json:"images,omitempty"`
	DisplayPhoto  string           `json:"display_photo,omitempty"`
	CurrentPrice  decimal.Decimal  `json:"currentPrice"`
	PreviousPrice *decimal.Decimal `json:"previousPrice,omitempty"`
	CountInStock  *float64         `json:"countInStock,omitempty"`
	Rating        *float64         `json:"rating,omitempty"`
}

// UnmarshalJSON decodes a record and falls back to the document-store "_id"
// key when "id" is absent.
func (r *ProductRecord) UnmarshalJSON(data []byte) error {
	type plain ProductRecord
	var aux struct {
		plain
		DocumentID ProductID `json:"_id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = ProductRecord(aux.plain)
	if r.ID == "" {
		r.ID = aux.DocumentID
	}
	return nil
}

// DescriptionText returns the description or "" when absent.
func (r ProductRecord) DescriptionText() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}

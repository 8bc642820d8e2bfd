package catalog

// DefaultRelatedLimit caps the related products shown under a product.
const DefaultRelatedLimit = 4

// Related picks up to limit other products from the catalog, in catalog order.
func Related(records []ProductRecord, current ProductID, limit int) []ProductRecord {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	out := make([]ProductRecord, 0, limit)
	for _, record := range records {
		if record.ID == current {
			continue
		}
		out = append(out, record)
		if len(out) == limit {
			break
		}
	}
	return out
}

// FindByID returns the record with the given id.
func FindByID(records []ProductRecord, id ProductID) (ProductRecord, bool) {
	for _, record := range records {
		if record.ID == id {
			return record, true
		}
	}
	return ProductRecord{}, false
}

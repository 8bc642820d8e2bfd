package storefront

import (
	"context"
	"sync"

	"github.com/angelmondragon/shopfront/internal/catalog"
)

// DetailParams configures a product detail screen.
type DetailParams struct {
	ListParams
	Product      catalog.ProductRecord
	RelatedLimit int
	Placeholder  string
}

// ProductDetail shows one product, its image gallery and related products.
type ProductDetail struct {
	*listSession
	record       catalog.ProductRecord
	product      catalog.DisplayProduct
	relatedLimit int
	placeholder  string

	mu       sync.Mutex
	selected string
}

// NewProductDetail builds a detail screen for params.Product.
func NewProductDetail(params DetailParams) (*ProductDetail, error) {
	session, err := newListSession(params.ListParams, ScreenProductDetail)
	if err != nil {
		return nil, err
	}
	limit := params.RelatedLimit
	if limit <= 0 {
		limit = catalog.DefaultRelatedLimit
	}
	product := catalog.Normalize(params.Product)
	return &ProductDetail{
		listSession:  session,
		record:       params.Product,
		product:      product,
		relatedLimit: limit,
		placeholder:  params.Placeholder,
	}, nil
}

// Product is the normalized product on display.
func (d *ProductDetail) Product() catalog.DisplayProduct {
	return d.product
}

// MainImage is the selected gallery image, or the product's primary image.
func (d *ProductDetail) MainImage() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.selected != "" {
		return d.selected
	}
	return d.product.ImageOr(d.placeholder)
}

// SelectImage swaps the main image. Only the product's own images are
// accepted.
func (d *ProductDetail) SelectImage(url string) bool {
	for _, image := range d.product.Images {
		if image == url {
			d.mu.Lock()
			d.selected = url
			d.mu.Unlock()
			return true
		}
	}
	return false
}

// Load fetches the catalog and returns the related products.
func (d *ProductDetail) Load(ctx context.Context) []catalog.DisplayProduct {
	d.Fetch(ctx)
	return d.Related()
}

// Related lists other catalog products from the last applied fetch.
func (d *ProductDetail) Related() []catalog.DisplayProduct {
	return catalog.NormalizeAll(catalog.Related(d.Records(), d.record.ID, d.relatedLimit))
}

// Teardown drops any fetch still in flight.
func (d *ProductDetail) Teardown() {
	d.dispose()
}

package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/angelmondragon/shopfront/internal/catalog"
	"github.com/angelmondragon/shopfront/pkg/logger"
	"github.com/angelmondragon/shopfront/pkg/metrics"
)

// NoProductsMessage is shown when a loaded list has nothing to display.
const NoProductsMessage = "No products found"

// Screen names used in logs and metrics.
const (
	ScreenHome          = "home"
	ScreenSearch        = "search"
	ScreenProductDetail = "product_detail"
)

// ListView is what a product listing screen renders.
type ListView struct {
	Loading      bool
	Failed       bool
	Query        string
	Products     []catalog.DisplayProduct
	Empty        bool
	EmptyMessage string
}

// ListParams groups dependencies shared by the listing screens.
type ListParams struct {
	Source   catalog.ProductSource
	Logger   *logger.Logger
	Metrics  *metrics.CatalogFetchMetrics
	OnChange func(ListView)
}

// listSession is the fetch + query pipeline every listing screen uses.
type listSession struct {
	coord    *catalog.Coordinator
	onChange func(ListView)

	mu    sync.Mutex
	query string
}

func newListSession(params ListParams, screen string) (*listSession, error) {
	if params.Source == nil {
		return nil, fmt.Errorf("product source required")
	}
	s := &listSession{onChange: params.OnChange}
	coord, err := catalog.NewCoordinator(catalog.CoordinatorParams{
		Source:   params.Source,
		Logger:   params.Logger,
		Metrics:  params.Metrics,
		Screen:   screen,
		OnChange: s.snapshotChanged,
	})
	if err != nil {
		return nil, err
	}
	s.coord = coord
	return s, nil
}

// Fetch loads the catalog and returns the resulting view.
func (s *listSession) Fetch(ctx context.Context) ListView {
	return s.viewFrom(s.coord.Fetch(ctx))
}

// SetQuery changes the search text. The list is re-derived, not re-fetched.
func (s *listSession) SetQuery(query string) {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()
	s.emit()
}

func (s *listSession) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// View derives the current list from the last applied fetch and the query.
func (s *listSession) View() ListView {
	return s.viewFrom(s.coord.Snapshot())
}

// Records returns the raw records of the last applied fetch.
func (s *listSession) Records() []catalog.ProductRecord {
	return s.coord.Snapshot().Records
}

func (s *listSession) dispose() {
	s.coord.Dispose()
}

func (s *listSession) viewFrom(snap catalog.Snapshot) ListView {
	query := s.Query()
	view := ListView{Query: query}
	if snap.Loading() {
		view.Loading = true
		return view
	}
	view.Failed = snap.State == catalog.FetchStateFailed
	view.Products = catalog.NormalizeAll(catalog.Filter(snap.Records, query))
	if len(view.Products) == 0 {
		view.Empty = true
		view.EmptyMessage = NoProductsMessage
	}
	return view
}

func (s *listSession) snapshotChanged(snap catalog.Snapshot) {
	if s.onChange != nil {
		s.onChange(s.viewFrom(snap))
	}
}

func (s *listSession) emit() {
	if s.onChange == nil || s.coord.Disposed() {
		return
	}
	s.onChange(s.View())
}

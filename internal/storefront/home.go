package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/angelmondragon/shopfront/internal/banner"
)

// HomeParams configures the home screen.
type HomeParams struct {
	ListParams
	BannerImages   []string
	BannerInterval time.Duration
	// OnBanner is called each time the banner advances.
	OnBanner func(index int, image string)
}

// Home is the landing screen: a searchable product list under an
// auto-advancing banner.
type Home struct {
	*listSession
	carousel *banner.Carousel
	interval time.Duration
	onBanner func(int, string)

	mu         sync.Mutex
	stopBanner func()
	tornDown   bool
}

// NewHome builds a home screen session. Nothing runs until Mount.
func NewHome(params HomeParams) (*Home, error) {
	session, err := newListSession(params.ListParams, ScreenHome)
	if err != nil {
		return nil, err
	}
	return &Home{
		listSession: session,
		carousel:    banner.NewCarousel(params.BannerImages, params.Logger),
		interval:    params.BannerInterval,
		onBanner:    params.OnBanner,
	}, nil
}

// Mount starts the banner timer and loads the catalog. It blocks for the
// duration of the fetch.
func (h *Home) Mount(ctx context.Context) ListView {
	h.mu.Lock()
	if h.tornDown {
		h.mu.Unlock()
		return h.View()
	}
	if h.stopBanner == nil {
		h.stopBanner = h.carousel.Start(ctx, h.interval, h.onBanner)
	}
	h.mu.Unlock()
	return h.Fetch(ctx)
}

// Banner returns the visible banner slide.
func (h *Home) Banner() (int, string) {
	return h.carousel.Current()
}

// Teardown stops the banner timer and drops any fetch still in flight.
func (h *Home) Teardown() {
	h.mu.Lock()
	h.tornDown = true
	stop := h.stopBanner
	h.stopBanner = nil
	h.mu.Unlock()

	if stop != nil {
		stop()
	}
	h.dispose()
}

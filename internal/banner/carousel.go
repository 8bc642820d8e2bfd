package banner

import (
	"context"
	"sync"
	"time"

	"github.com/angelmondragon/shopfront/pkg/logger"
)

// DefaultInterval is how often the home banner advances.
const DefaultInterval = 3 * time.Second

// Carousel cycles through banner images. At most one auto-advance timer runs
// per carousel.
type Carousel struct {
	logg *logger.Logger

	mu     sync.Mutex
	images []string
	index  int
	stop   func()
}

// NewCarousel builds a carousel positioned on the first image.
func NewCarousel(images []string, logg *logger.Logger) *Carousel {
	return &Carousel{
		logg:   logg,
		images: append([]string(nil), images...),
	}
}

// Current returns the visible slide index and image. An empty carousel
// returns (0, "").
func (c *Carousel) Current() (int, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) == 0 {
		return 0, ""
	}
	return c.index, c.images[c.index]
}

// Images returns the slides in order.
func (c *Carousel) Images() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.images...)
}

// Advance moves to the next slide, wrapping to the first after the last.
func (c *Carousel) Advance() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) == 0 {
		return 0
	}
	c.index = (c.index + 1) % len(c.images)
	return c.index
}

// Start advances the carousel every interval until ctx is canceled or the
// returned stop func is called. Starting again replaces the running timer.
// stop is safe to call more than once and returns after the timer goroutine
// has exited, so onAdvance is never called after stop returns.
func (c *Carousel) Start(ctx context.Context, interval time.Duration, onAdvance func(index int, image string)) func() {
	if ctx == nil {
		ctx = context.Background()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	c.mu.Lock()
	previous := c.stop
	c.mu.Unlock()
	if previous != nil {
		previous()
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go c.run(runCtx, interval, onAdvance, done)

	var once sync.Once
	stop := func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
	c.mu.Lock()
	c.stop = stop
	c.mu.Unlock()
	return stop
}

// Stop cancels the running timer, if any.
func (c *Carousel) Stop() {
	c.mu.Lock()
	stop := c.stop
	c.stop = nil
	c.mu.Unlock()
	if stop != nil {
		stop()
	}
}

func (c *Carousel) run(ctx context.Context, interval time.Duration, onAdvance func(int, string), done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if c.logg != nil {
				c.logg.Debug(ctx, "banner.timer.stopped")
			}
			return
		case <-ticker.C:
			// A tick racing with cancellation must not advance.
			if ctx.Err() != nil {
				return
			}
			c.Advance()
			if onAdvance != nil {
				index, image := c.Current()
				onAdvance(index, image)
			}
		}
	}
}

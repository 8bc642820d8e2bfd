package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/angelmondragon/shopfront/internal/cart"
	"github.com/angelmondragon/shopfront/internal/catalog"
	"github.com/angelmondragon/shopfront/internal/orders"
	"github.com/angelmondragon/shopfront/internal/profile"
	"github.com/angelmondragon/shopfront/internal/storefront"
	"github.com/angelmondragon/shopfront/internal/wishlist"
	"github.com/angelmondragon/shopfront/pkg/config"
	"github.com/angelmondragon/shopfront/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront/pkg/errors"
	"github.com/angelmondragon/shopfront/pkg/logger"
	"github.com/angelmondragon/shopfront/pkg/metrics"
	"github.com/angelmondragon/shopfront/pkg/money"
)

// session carries what every command needs once config is loaded.
type session struct {
	out     io.Writer
	cfg     *config.Config
	logg    *logger.Logger
	metrics *metrics.CatalogFetchMetrics
	source  catalog.ProductSource
}

func newApp(out io.Writer) *cli.App {
	s := &session{out: out}
	return &cli.App{
		Name:   "shopfront",
		Usage:  "browse the shop catalog, cart, wishlist and orders from the terminal",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "base-url", Usage: "catalog base url", EnvVars: []string{config.EnvCatalogBaseURL}},
		},
		Before: s.load,
		Commands: []*cli.Command{
			{
				Name:  "products",
				Usage: "list catalog products",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "filter by name or description"},
				},
				Action: s.products,
			},
			{
				Name:  "product",
				Usage: "show one product and related picks",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
				},
				Action: s.product,
			},
			{
				Name:  "home",
				Usage: "mount the home screen and watch the banner rotate",
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: "watch", Value: 10 * time.Second, Usage: "how long to keep the screen mounted"},
				},
				Action: s.home,
			},
			{
				Name:  "cart",
				Usage: "show the cart",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "increase"},
					&cli.StringSliceFlag{Name: "decrease"},
					&cli.StringSliceFlag{Name: "remove"},
					&cli.StringSliceFlag{Name: "add", Usage: "catalog product id to add"},
					&cli.BoolFlag{Name: "clear"},
				},
				Action: s.cart,
			},
			{
				Name:  "wishlist",
				Usage: "show the wishlist",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "move", Usage: "wishlist id to move to the cart"},
					&cli.StringSliceFlag{Name: "remove"},
				},
				Action: s.wishlist,
			},
			{
				Name:  "orders",
				Usage: "show order history",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Value: string(enums.OrderStatusFilterAll), Usage: "All, Processing, Delivered, Shipped or Canceled"},
				},
				Action: s.orders,
			},
			{
				Name:  "profile",
				Usage: "show or edit the profile",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "set", Usage: "field=value, e.g. town=Kilimani"},
				},
				Action: s.profile,
			},
		},
	}
}

func (s *session) load(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if baseURL := c.String("base-url"); baseURL != "" {
		cfg.Catalog.BaseURL = strings.TrimRight(baseURL, "/")
	}
	s.cfg = cfg
	s.logg = logger.New(logger.Options{
		ServiceName: "shopfront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
		Output:      os.Stderr,
	})
	s.metrics = metrics.NewCatalogFetchMetrics(prometheus.NewRegistry())

	client, err := catalog.NewClient(cfg.Catalog.BaseURL,
		catalog.WithProductsPath(cfg.Catalog.ProductsPath),
		catalog.WithTimeout(cfg.Catalog.RequestTimeout),
	)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "catalog client")
	}
	s.source = client
	return nil
}

func (s *session) listParams() storefront.ListParams {
	return storefront.ListParams{Source: s.source, Logger: s.logg, Metrics: s.metrics}
}

func (s *session) products(c *cli.Context) error {
	search, err := storefront.NewSearch(s.listParams())
	if err != nil {
		return err
	}
	defer search.Teardown()

	search.Fetch(c.Context)
	search.SetQuery(c.String("query"))
	return s.printList(search.View())
}

func (s *session) printList(view storefront.ListView) error {
	if view.Failed {
		fmt.Fprintln(s.out, "catalog unavailable")
	}
	if view.Empty {
		fmt.Fprintln(s.out, view.EmptyMessage)
		return nil
	}
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tWAS\tSTOCK\tRATING\tDESCRIPTION")
	for _, p := range view.Products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d (%s)\t%s\t%s\n",
			p.ID, p.Name,
			money.Format(p.NewPrice, enums.CurrencyKES),
			money.Format(p.OldPrice, enums.CurrencyKES),
			p.StockCount, p.StockBand,
			stars(p),
			p.DescriptionPreview,
		)
	}
	return tw.Flush()
}

func stars(p catalog.DisplayProduct) string {
	var b strings.Builder
	for _, filled := range p.StarStates() {
		if filled {
			b.WriteString("★")
		} else {
			b.WriteString("☆")
		}
	}
	return b.String()
}

func (s *session) product(c *cli.Context) error {
	records, err := s.source.ListProducts(c.Context)
	if err != nil {
		return err
	}
	record, ok := catalog.FindByID(records, catalog.ProductID(c.String("id")))
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s not found", c.String("id")))
	}

	detail, err := storefront.NewProductDetail(storefront.DetailParams{
		ListParams:   storefront.ListParams{Source: catalog.StaticSource{Records: records}, Logger: s.logg},
		Product:      record,
		RelatedLimit: s.cfg.Catalog.RelatedLimit,
		Placeholder:  s.cfg.Catalog.PlaceholderImage,
	})
	if err != nil {
		return err
	}
	defer detail.Teardown()

	related := detail.Load(c.Context)
	p := detail.Product()
	fmt.Fprintf(s.out, "%s\n", p.Name)
	fmt.Fprintf(s.out, "  price:  %s (was %s)\n", money.Format(p.NewPrice, enums.CurrencyKES), money.Format(p.OldPrice, enums.CurrencyKES))
	fmt.Fprintf(s.out, "  stock:  %d %s, bar %.0f%%\n", p.StockCount, p.StockColor, p.StockFillPercent)
	fmt.Fprintf(s.out, "  rating: %s\n", stars(p))
	fmt.Fprintf(s.out, "  image:  %s\n", detail.MainImage())
	if p.Description != "" {
		fmt.Fprintf(s.out, "  %s\n", p.Description)
	}
	fmt.Fprintln(s.out, "\nRelated")
	return s.printList(storefront.ListView{Products: related, Empty: len(related) == 0, EmptyMessage: storefront.NoProductsMessage})
}

func (s *session) home(c *cli.Context) error {
	home, err := storefront.NewHome(storefront.HomeParams{
		ListParams:     s.listParams(),
		BannerImages:   s.cfg.Banner.Images,
		BannerInterval: s.cfg.Banner.Interval,
		OnBanner: func(index int, image string) {
			fmt.Fprintf(s.out, "banner %d: %s\n", index+1, image)
		},
	})
	if err != nil {
		return err
	}
	defer home.Teardown()

	ctx, cancel := context.WithTimeout(c.Context, c.Duration("watch"))
	defer cancel()

	_, image := home.Banner()
	fmt.Fprintf(s.out, "banner 1: %s\n", image)
	if err := s.printList(home.Mount(ctx)); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

func (s *session) cart(c *cli.Context) error {
	sc, err := cart.NewCart()
	if err != nil {
		return err
	}
	for _, id := range c.StringSlice("add") {
		if err := s.addToCart(c.Context, sc, id); err != nil {
			return err
		}
	}
	for _, id := range c.StringSlice("increase") {
		sc.Increase(id)
	}
	for _, id := range c.StringSlice("decrease") {
		sc.Decrease(id)
	}
	for _, id := range c.StringSlice("remove") {
		sc.Remove(id)
	}
	if c.Bool("clear") {
		sc.Clear()
	}
	return s.printCart(sc)
}

func (s *session) addToCart(ctx context.Context, sc *cart.Cart, id string) error {
	records, err := s.source.ListProducts(ctx)
	if err != nil {
		return err
	}
	record, ok := catalog.FindByID(records, catalog.ProductID(id))
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s not found", id))
	}
	return sc.AddProduct(catalog.Normalize(record))
}

func (s *session) printCart(sc *cart.Cart) error {
	summary := sc.Summary()
	if summary.Empty {
		fmt.Fprintln(s.out, summary.EmptyMessage)
		return nil
	}
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tITEM\tPRICE\tQTY\tSUBTOTAL")
	for _, line := range summary.Lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", line.ID, line.Name, line.PriceText, line.Quantity, line.SubtotalText)
	}
	fmt.Fprintf(tw, "\t\t\tTotal\t%s\n", summary.TotalText)
	return tw.Flush()
}

func (s *session) wishlist(c *cli.Context) error {
	w, err := wishlist.NewWishlist()
	if err != nil {
		return err
	}
	sc, err := cart.NewCart()
	if err != nil {
		return err
	}
	for _, id := range c.StringSlice("remove") {
		w.Remove(id)
	}
	moved := 0
	for _, id := range c.StringSlice("move") {
		ok, err := w.MoveToCart(id, sc)
		if err != nil {
			return err
		}
		if ok {
			moved++
		}
	}

	entries := w.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, wishlist.EmptyMessage)
	}
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID, e.Name, e.PriceText)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if moved > 0 {
		fmt.Fprintf(s.out, "\nmoved %d item(s) to the cart\n", moved)
		return s.printCart(sc)
	}
	return nil
}

func (s *session) orders(c *cli.Context) error {
	filter, err := orders.ParseFilter(c.String("status"))
	if err != nil {
		return err
	}
	history, err := orders.NewHistory()
	if err != nil {
		return err
	}
	history.SetFilter(filter)

	visible := history.Visible()
	if len(visible) == 0 {
		fmt.Fprintf(s.out, "No %s orders\n", filter)
		return nil
	}
	for _, order := range visible {
		fmt.Fprintf(s.out, "#%s %s  %s  [%s]\n", order.ID, order.Item, order.CostText(), order.Status)
		for _, event := range orders.Timeline(order) {
			fmt.Fprintf(s.out, "    %s\n", event.Text())
		}
	}
	return nil
}

func (s *session) profile(c *cli.Context) error {
	settings := profile.NewSettings(profile.Default())
	for _, pair := range c.StringSlice("set") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("expected field=value, got %q", pair))
		}
		if err := settings.Set(strings.TrimSpace(key), value); err != nil {
			return err
		}
	}
	if err := settings.Save(); err != nil {
		return err
	}

	sc, err := cart.NewCart()
	if err != nil {
		return err
	}
	w, err := wishlist.NewWishlist()
	if err != nil {
		return err
	}
	history, err := orders.NewHistory()
	if err != nil {
		return err
	}

	p := settings.Profile()
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, field := range profile.Fields() {
		value, _ := p.Get(field.Key)
		fmt.Fprintf(tw, "%s\t%s\n", field.Label, value)
	}
	stats := profile.StatsFor(history, w, sc)
	fmt.Fprintf(tw, "\nOrders\t%d\nWishlist\t%d\nCart\t%d\n", stats.Orders, stats.Wishlist, stats.Cart)
	return tw.Flush()
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopfront/api"
	"github.com/angelmondragon/shopfront/internal/catalog"
	"github.com/angelmondragon/shopfront/pkg/config"
	"github.com/angelmondragon/shopfront/pkg/instance"
	"github.com/angelmondragon/shopfront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "catalog-stub"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "catalog-stub",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	// The app reads prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	records, err := loadRecords(cfg.Stub.ProductsFile)
	if err != nil {
		logg.Error(context.Background(), "failed to load products", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server := api.NewServer(cfg, logg, catalog.StaticSource{Records: records}, reg)

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     server.Addr,
		"products": len(records),
		"instance": instance.GetID(),
	})

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		<-runCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "catalog stub shutdown failed", err)
		}
	}()

	logg.Info(ctx, "starting catalog stub")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Error(ctx, "catalog stub stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "catalog stub stopped")
}

func loadRecords(path string) ([]catalog.ProductRecord, error) {
	if path == "" {
		return catalog.SampleProducts(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read products file: %w", err)
	}
	var records []catalog.ProductRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode products file %s: %w", path, err)
	}
	return records, nil
}

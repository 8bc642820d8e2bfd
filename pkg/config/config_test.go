package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Catalog.BaseURL != "https://eco-backend-lime.vercel.app" {
		t.Fatalf("unexpected catalog base url %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.ProductsPath != "/api/products" {
		t.Fatalf("unexpected products path %q", cfg.Catalog.ProductsPath)
	}
	if cfg.Catalog.RequestTimeout != 0 {
		t.Fatalf("expected transport default timeout, got %v", cfg.Catalog.RequestTimeout)
	}
	if cfg.Catalog.RelatedLimit != 4 {
		t.Fatalf("expected related limit 4, got %d", cfg.Catalog.RelatedLimit)
	}
	if cfg.Banner.Interval != 3*time.Second {
		t.Fatalf("expected banner interval 3s, got %v", cfg.Banner.Interval)
	}
	if len(cfg.Banner.Images) != 3 {
		t.Fatalf("expected 3 banner images, got %d", len(cfg.Banner.Images))
	}
	if cfg.App.LogFormat != "json" {
		t.Fatalf("unexpected log format %q", cfg.App.LogFormat)
	}
	if cfg.Stub.Port != "5000" {
		t.Fatalf("unexpected stub port %q", cfg.Stub.Port)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvCatalogBaseURL, " http://10.132.72.106:5000/ ")
	t.Setenv(EnvCatalogTimeout, "2s")
	t.Setenv(EnvBannerImages, "https://a.test/1.jpg,https://a.test/2.jpg")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Catalog.BaseURL != "http://10.132.72.106:5000" {
		t.Fatalf("expected trimmed base url, got %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.RequestTimeout != 2*time.Second {
		t.Fatalf("expected 2s timeout, got %v", cfg.Catalog.RequestTimeout)
	}
	if len(cfg.Banner.Images) != 2 {
		t.Fatalf("expected 2 banner images, got %v", cfg.Banner.Images)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv(EnvCatalogBaseURL, "not a url")
	if _, err := Load(); err == nil {
		t.Fatal("expected invalid base url to return an error")
	}
}

func TestLoad_RejectsUnknownLogFormat(t *testing.T) {
	t.Setenv(EnvLogFormat, "xml")
	if _, err := Load(); err == nil {
		t.Fatal("expected unknown log format to return an error")
	}
}

func TestLoad_RejectsZeroBannerInterval(t *testing.T) {
	t.Setenv(EnvBannerInterval, "0s")
	if _, err := Load(); err == nil {
		t.Fatal("expected zero banner interval to return an error")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}

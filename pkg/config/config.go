package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Banner  BannerConfig
	Stub    StubConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Catalog.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags of every section.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

var validate = validator.New()

type AppConfig struct {
	Env          string `envconfig:"SHOPFRONT_APP_ENV" default:"dev" validate:"required"`
	LogLevel     string `envconfig:"SHOPFRONT_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"SHOPFRONT_LOG_FORMAT" default:"json" validate:"oneof=json console"`
	LogWarnStack bool   `envconfig:"SHOPFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	BaseURL          string        `envconfig:"SHOPFRONT_CATALOG_BASE_URL" default:"https://eco-backend-lime.vercel.app" validate:"required,url"`
	ProductsPath     string        `envconfig:"SHOPFRONT_CATALOG_PRODUCTS_PATH" default:"/api/products" validate:"required,startswith=/"`
	RequestTimeout   time.Duration `envconfig:"SHOPFRONT_CATALOG_REQUEST_TIMEOUT" default:"0s" validate:"gte=0"`
	PlaceholderImage string        `envconfig:"SHOPFRONT_CATALOG_PLACEHOLDER_IMAGE" default:"https://picsum.photos/id/0/300/300"`
	RelatedLimit     int           `envconfig:"SHOPFRONT_CATALOG_RELATED_LIMIT" default:"4" validate:"gte=1"`
}

func (c *CatalogConfig) normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.ProductsPath = strings.TrimSpace(c.ProductsPath)
}

type BannerConfig struct {
	Interval time.Duration `envconfig:"SHOPFRONT_BANNER_INTERVAL" default:"3s" validate:"gt=0"`
	Images   []string      `envconfig:"SHOPFRONT_BANNER_IMAGES" default:"https://picsum.photos/id/1018/600/300,https://picsum.photos/id/1015/600/300,https://picsum.photos/id/1019/600/300" validate:"dive,required"`
}

type StubConfig struct {
	Port           string   `envconfig:"SHOPFRONT_STUB_PORT" default:"5000" validate:"required,numeric"`
	MetricsEnabled bool     `envconfig:"SHOPFRONT_STUB_METRICS_ENABLED" default:"true"`
	AllowedOrigins []string `envconfig:"SHOPFRONT_STUB_ALLOWED_ORIGINS"`
	// ProductsFile optionally replaces the built-in sample catalog with a
	// JSON array read from disk.
	ProductsFile string `envconfig:"SHOPFRONT_STUB_PRODUCTS_FILE"`
}

package config

const (
	// EnvPrefix is handed to envconfig; every tag spells out its full key.
	EnvPrefix = "SHOPFRONT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv              = "SHOPFRONT_APP_ENV"
	EnvLogLevel            = "SHOPFRONT_LOG_LEVEL"
	EnvLogFormat           = "SHOPFRONT_LOG_FORMAT"
	EnvCatalogBaseURL      = "SHOPFRONT_CATALOG_BASE_URL"
	EnvCatalogProductsPath = "SHOPFRONT_CATALOG_PRODUCTS_PATH"
	EnvCatalogTimeout      = "SHOPFRONT_CATALOG_REQUEST_TIMEOUT"
	EnvCatalogRelatedLimit = "SHOPFRONT_CATALOG_RELATED_LIMIT"
	EnvBannerInterval      = "SHOPFRONT_BANNER_INTERVAL"
	EnvBannerImages        = "SHOPFRONT_BANNER_IMAGES"
	EnvStubPort            = "SHOPFRONT_STUB_PORT"
	EnvStubProductsFile    = "SHOPFRONT_STUB_PRODUCTS_FILE"
)

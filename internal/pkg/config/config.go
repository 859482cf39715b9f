package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, promotion timings), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Promotion PromotionConfig
	Pricing   PricingConfig
	Catalog   CatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type PromotionConfig struct {
	FlashSaleStartDelayMax      time.Duration `envconfig:"FLASH_SALE_START_DELAY_MAX" default:"10s"`
	FlashSaleInterval           time.Duration `envconfig:"FLASH_SALE_INTERVAL" default:"30s"`
	FlashSaleDuration           time.Duration `envconfig:"FLASH_SALE_DURATION" default:"10s"`
	RecommendationStartDelayMax time.Duration `envconfig:"RECOMMENDATION_START_DELAY_MAX" default:"20s"`
	RecommendationInterval      time.Duration `envconfig:"RECOMMENDATION_INTERVAL" default:"60s"`
	RecommendationDuration      time.Duration `envconfig:"RECOMMENDATION_DURATION" default:"8s"`
	// 0 seeds from the runtime
	Seed uint64 `envconfig:"PROMOTION_SEED" default:"0"`
}

type PricingConfig struct {
	TimeZone       string `envconfig:"PRICING_TIMEZONE" default:"Asia/Seoul"`
	TimeZoneOffset int    `envconfig:"PRICING_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type CatalogConfig struct {
	// empty uses the embedded default catalog
	File string `envconfig:"CATALOG_FILE" default:""`
}

func (c PricingConfig) Location() *time.Location {
	return time.FixedZone(c.TimeZone, c.TimeZoneOffset)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Promotion: PromotionConfig{
			FlashSaleStartDelayMax:      10 * time.Second,
			FlashSaleInterval:           30 * time.Second,
			FlashSaleDuration:           10 * time.Second,
			RecommendationStartDelayMax: 20 * time.Second,
			RecommendationInterval:      60 * time.Second,
			RecommendationDuration:      8 * time.Second,
			Seed:                        42,
		},
		Pricing: PricingConfig{
			TimeZone:       "Asia/Seoul",
			TimeZoneOffset: 32400,
		},
	}
}

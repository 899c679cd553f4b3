package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	ShopAPI ShopAPIConfig
	View    ViewConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LAREK_APP_ENV" default:"development"`
	Port         string `envconfig:"LAREK_APP_PORT" default:"8081"`
	LogLevel     string `envconfig:"LAREK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LAREK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Path of the sqlite database file; ":memory:" keeps everything
	// in-process, which is what the reference server defaults to.
	Path string `envconfig:"LAREK_DB_PATH" default:":memory:"`
}

type ShopAPIConfig struct {
	BaseURL      string        `envconfig:"LAREK_SHOP_API_URL" default:"http://localhost:8081/api"`
	Timeout      time.Duration `envconfig:"LAREK_SHOP_API_TIMEOUT" default:"10s"`
	FetchRetries uint64        `envconfig:"LAREK_SHOP_API_FETCH_RETRIES" default:"3"`
	FetchBackoff time.Duration `envconfig:"LAREK_SHOP_API_FETCH_BACKOFF" default:"250ms"`
}

type ViewConfig struct {
	CDNBaseURL    string `envconfig:"LAREK_CDN_URL" default:"http://localhost:8081/content"`
	CurrencyLabel string `envconfig:"LAREK_CURRENCY_LABEL" default:"synapses"`
}

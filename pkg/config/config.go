package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "STOREFRONT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Platform PlatformConfig
	Redis    RedisConfig
	Session  SessionConfig
	Menu     MenuConfig
	AdminJWT AdminJWTConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// PlatformConfig points the gateway at the remote menu platform API.
type PlatformConfig struct {
	BaseURL string        `envconfig:"STOREFRONT_PLATFORM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"STOREFRONT_PLATFORM_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether any redis endpoint was provided. The gateway
// falls back to in-memory sessions when redis is absent (dev mode).
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

type SessionConfig struct {
	TTL        time.Duration `envconfig:"STOREFRONT_SESSION_TTL" default:"12h"`
	CookieName string        `envconfig:"STOREFRONT_SESSION_COOKIE" default:"storefront_session"`
}

type MenuConfig struct {
	CacheTTL time.Duration `envconfig:"STOREFRONT_MENU_CACHE_TTL" default:"1m"`
}

// AdminJWTConfig guards the owner-facing proxy routes (tables, order status).
type AdminJWTConfig struct {
	Secret string `envconfig:"STOREFRONT_ADMIN_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"STOREFRONT_ADMIN_JWT_ISSUER" default:"daleel-balady"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"STOREFRONT_CORS_ALLOWED_ORIGINS" default:"*"`
}

package config

import (
	"time"
)

// Config is the root application configuration.
//
// Booleans that default to true are preset by defaults instead of an
// env-default tag: cleanenv treats false as unset and would restore the tag.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Review   ReviewConfig   `yaml:"review"`
	Redis    RedisConfig    `yaml:"redis"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds session and login settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"seo-review"`
	SessionTTL     time.Duration `yaml:"session_ttl"      env:"AUTH_SESSION_TTL"      env-default:"720h"`
	CookieName     string        `yaml:"cookie_name"      env:"AUTH_COOKIE_NAME"      env-default:"session"`
	CookieSecure   bool          `yaml:"cookie_secure"    env:"AUTH_COOKIE_SECURE"`
	LoginRateLimit int           `yaml:"login_rate_limit" env:"AUTH_LOGIN_RATE_LIMIT" env-default:"10"`
	PasswordCost   int           `yaml:"password_cost"    env:"AUTH_PASSWORD_COST"    env-default:"12"`
}

// ReviewConfig holds metadata review settings.
type ReviewConfig struct {
	DefaultPageSize int    `yaml:"default_page_size" env:"REVIEW_DEFAULT_PAGE_SIZE" env-default:"10"`
	MaxPageSize     int    `yaml:"max_page_size"     env:"REVIEW_MAX_PAGE_SIZE"     env-default:"200"`
	ExportPrefix    string `yaml:"export_prefix"     env:"REVIEW_EXPORT_PREFIX"     env-default:"seo-metadata-export"`
}

// RedisConfig holds the optional stats cache settings.
// An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"`
	StatsTTL time.Duration `yaml:"stats_ttl" env:"REDIS_STATS_TTL" env-default:"30s"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// defaults returns the values Load starts from before reading YAML and env.
func defaults() Config {
	var c Config
	c.CORS.AllowCredentials = true
	c.Auth.CookieSecure = true
	c.Metrics.Enabled = true
	return c
}

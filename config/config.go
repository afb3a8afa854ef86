package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Fetcher    FetcherConfig    `json:"fetcher"`
	Sync       SyncConfig       `json:"sync"`
	Search     SearchConfig     `json:"search"`
	Summarizer SummarizerConfig `json:"summarizer"`
	Redis      RedisConfig      `json:"redis"`
	Auth       AuthConfig       `json:"auth"`
	Logging    LoggingConfig    `json:"logging"`
	Otel       OtelConfig       `json:"otel"`
}

type ServerConfig struct {
	Port           int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout    time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout   time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"11m"`
	IdleTimeout    time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	AllowedOrigins []string      `json:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type DatabaseConfig struct {
	URL               string        `json:"-" env:"DATABASE_URL"`
	Host              string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port              int           `json:"port" env:"DB_PORT" default:"5432"`
	User              string        `json:"user" env:"DB_USER" default:"rss"`
	Password          string        `json:"-" env:"DB_PASSWORD"`
	Name              string        `json:"name" env:"DB_NAME" default:"rss_reader"`
	SSLMode           string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"20"`
	MinConnections    int           `json:"min_connections" env:"DB_MIN_CONNECTIONS" default:"2"`
	MaxConnLifetime   time.Duration `json:"max_conn_lifetime" env:"DB_MAX_CONN_LIFETIME" default:"30m"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type FetcherConfig struct {
	Timeout          time.Duration `json:"timeout" env:"FETCHER_TIMEOUT" default:"20s"`
	MaxItems         int           `json:"max_items" env:"FETCHER_MAX_ITEMS" default:"200"`
	MaxBodyBytes     int64         `json:"max_body_bytes" env:"FETCHER_MAX_BODY_BYTES" default:"10485760"`
	UserAgent        string        `json:"user_agent" env:"FETCHER_USER_AGENT" default:"rss-reader/0.1"`
	HostRateInterval time.Duration `json:"host_rate_interval" env:"FETCHER_HOST_RATE_INTERVAL" default:"1s"`
}

type SyncConfig struct {
	DefaultLimit     int           `json:"default_limit" env:"SYNC_DEFAULT_LIMIT" default:"10"`
	CronLimit        int           `json:"cron_limit" env:"SYNC_CRON_LIMIT" default:"20"`
	Workers          int           `json:"workers" env:"SYNC_WORKERS" default:"1"`
	SchedulerEnabled bool          `json:"scheduler_enabled" env:"SYNC_SCHEDULER_ENABLED" default:"false"`
	Interval         time.Duration `json:"interval" env:"SYNC_INTERVAL" default:"15m"`
	RunTimeout       time.Duration `json:"run_timeout" env:"SYNC_RUN_TIMEOUT" default:"10m"`
}

type SearchConfig struct {
	Enabled   bool   `json:"enabled" env:"SEARCH_ENABLED" default:"true"`
	Host      string `json:"host" env:"MEILISEARCH_HOST" default:"http://localhost:7700"`
	APIKey    string `json:"-" env:"MEILISEARCH_API_KEY"`
	IndexName string `json:"index_name" env:"MEILISEARCH_INDEX" default:"entries"`
}

type SummarizerConfig struct {
	URL      string        `json:"url" env:"SUMMARIZER_URL" default:"http://localhost:11434"`
	Model    string        `json:"model" env:"SUMMARIZER_MODEL" default:"gemma3:4b"`
	Timeout  time.Duration `json:"timeout" env:"SUMMARIZER_TIMEOUT" default:"60s"`
	MaxChars int           `json:"max_chars" env:"SUMMARIZER_MAX_CHARS" default:"12000"`
	Language string        `json:"language" env:"SUMMARIZER_LANGUAGE" default:"Japanese"`
}

type RedisConfig struct {
	URL         string        `json:"-" env:"REDIS_URL"`
	SyncLockKey string        `json:"sync_lock_key" env:"REDIS_SYNC_LOCK_KEY" default:"rss-reader:sync-lock"`
	LockTTL     time.Duration `json:"lock_ttl" env:"REDIS_SYNC_LOCK_TTL" default:"15m"`
}

type AuthConfig struct {
	BackendTokenSecret     string `json:"-" env:"BACKEND_TOKEN_SECRET"`
	BackendTokenSecretFile string `json:"-" env:"BACKEND_TOKEN_SECRET_FILE"`
	BackendTokenIssuer     string `json:"backend_token_issuer" env:"BACKEND_TOKEN_ISSUER" default:"auth-hub"`
	BackendTokenAudience   string `json:"backend_token_audience" env:"BACKEND_TOKEN_AUDIENCE" default:"rss-reader"`
	CronSecret             string `json:"-" env:"CRON_SECRET"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type OtelConfig struct {
	Enabled        bool    `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	ServiceName    string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"rss-reader"`
	ServiceVersion string  `json:"service_version" env:"SERVICE_VERSION" default:"0.1.0"`
	Environment    string  `json:"environment" env:"DEPLOYMENT_ENV" default:"development"`
	OTLPEndpoint   string  `json:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	SampleRatio    float64 `json:"sample_ratio" env:"OTEL_TRACE_SAMPLE_RATIO" default:"0.1"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values. A .env file in the working directory is
// loaded first when present; variables already set in the environment win.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	// Docker Secrets support
	if config.Auth.BackendTokenSecretFile != "" {
		content, err := os.ReadFile(config.Auth.BackendTokenSecretFile)
		if err == nil {
			config.Auth.BackendTokenSecret = strings.TrimSpace(string(content))
		}
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

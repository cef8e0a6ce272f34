package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/yanqian/faq-service/pkg/util"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Translation providers.
const (
	ProviderGoogle  = "google"
	ProviderChatGPT = "chatgpt"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Auth      AuthConfig      `yaml:"auth"`
	Store     StoreConfig     `yaml:"store"`
	Cache     CacheConfig     `yaml:"cache"`
	FAQ       FAQConfig       `yaml:"faq"`
	Translate TranslateConfig `yaml:"translate"`
	LLM       LLMConfig       `yaml:"llm"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	CORSOrigins  []string      `yaml:"corsOrigins"`
	Gzip         bool          `yaml:"gzip"`
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"tokenTtl"`
}

// StoreConfig selects and configures the record store.
type StoreConfig struct {
	Driver   string         `yaml:"driver"`
	Postgres PostgresConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// SQLiteConfig points at the embedded database file.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// CacheConfig contains connection information for the listing cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Addr    string        `yaml:"addr"`
	TTL     time.Duration `yaml:"ttl"`
	Prefix  string        `yaml:"prefix"`
}

// FAQConfig controls listing and translation targets.
type FAQConfig struct {
	Languages       []string `yaml:"languages"`
	DefaultPageSize int      `yaml:"defaultPageSize"`
	MaxPageSize     int      `yaml:"maxPageSize"`
}

// TranslateConfig selects the translation backend.
type TranslateConfig struct {
	Provider       string        `yaml:"provider"`
	BaseURL        string        `yaml:"baseUrl"`
	Timeout        time.Duration `yaml:"timeout"`
	MaxConcurrency int           `yaml:"maxConcurrency"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// TracingConfig controls OTLP trace export.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sampleRatio"`
}

// Load reads configuration from .env, a YAML file and environment variables.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	setString("HTTP_ADDRESS", &cfg.HTTP.Address)
	setDuration("HTTP_READ_TIMEOUT", &cfg.HTTP.ReadTimeout)
	setDuration("HTTP_WRITE_TIMEOUT", &cfg.HTTP.WriteTimeout)
	setCSV("HTTP_CORS_ORIGINS", &cfg.HTTP.CORSOrigins)
	setBool("HTTP_GZIP", &cfg.HTTP.Gzip)

	setString("AUTH_SECRET", &cfg.Auth.Secret)
	setDuration("AUTH_TOKEN_TTL", &cfg.Auth.TokenTTL)

	setString("STORE_DRIVER", &cfg.Store.Driver)
	setString("POSTGRES_DSN", &cfg.Store.Postgres.DSN)
	setInt32("POSTGRES_MAX_CONNS", &cfg.Store.Postgres.MaxConns)
	setInt32("POSTGRES_MIN_CONNS", &cfg.Store.Postgres.MinConns)
	setString("SQLITE_PATH", &cfg.Store.SQLite.Path)

	setBool("CACHE_ENABLED", &cfg.Cache.Enabled)
	setString("REDIS_URL", &cfg.Cache.Addr)
	setString("CACHE_ADDR", &cfg.Cache.Addr)
	setDuration("CACHE_TTL", &cfg.Cache.TTL)
	setString("CACHE_PREFIX", &cfg.Cache.Prefix)

	setCSV("FAQ_LANGUAGES", &cfg.FAQ.Languages)
	setInt("FAQ_PAGE_SIZE", &cfg.FAQ.DefaultPageSize)
	setInt("FAQ_MAX_PAGE_SIZE", &cfg.FAQ.MaxPageSize)

	setString("TRANSLATE_PROVIDER", &cfg.Translate.Provider)
	setString("TRANSLATE_BASE_URL", &cfg.Translate.BaseURL)
	setDuration("TRANSLATE_TIMEOUT", &cfg.Translate.Timeout)
	setInt("TRANSLATE_MAX_CONCURRENCY", &cfg.Translate.MaxConcurrency)

	setString("LLM_API_KEY", &cfg.LLM.APIKey)
	setString("LLM_BASE_URL", &cfg.LLM.BaseURL)
	setString("LLM_MODEL", &cfg.LLM.Model)
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}

	setBool("METRICS_ENABLED", &cfg.Metrics.Enabled)

	setBool("OTEL_ENABLED", &cfg.Tracing.Enabled)
	setString("OTEL_EXPORTER_OTLP_ENDPOINT", &cfg.Tracing.Endpoint)
	setBool("OTEL_EXPORTER_OTLP_INSECURE", &cfg.Tracing.Insecure)
	if v := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Tracing.SampleRatio = parsed
		}
	}
}

func setString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func setInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setInt32(key string, dst *int32) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 32); err == nil {
			*dst = int32(parsed)
		}
	}
}

func setCSV(key string, dst *[]string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = util.SplitCSV(v)
	}
}

// setDuration accepts Go durations ("90s") and bare integers as seconds.
func setDuration(key string, dst *time.Duration) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	if parsed, err := time.ParseDuration(v); err == nil {
		*dst = parsed
		return
	}
	if seconds, err := strconv.Atoi(v); err == nil {
		*dst = time.Duration(seconds) * time.Second
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8000",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			Gzip:         true,
		},
		Auth: AuthConfig{
			TokenTTL: 24 * time.Hour,
		},
		Store: StoreConfig{
			Driver: DriverMemory,
			Postgres: PostgresConfig{
				MaxConns: 4,
				MinConns: 0,
			},
			SQLite: SQLiteConfig{
				Path: "faq.db",
			},
		},
		Cache: CacheConfig{
			TTL:    3600 * time.Second,
			Prefix: "faqs",
		},
		FAQ: FAQConfig{
			Languages:       []string{"hi", "bn"},
			DefaultPageSize: 5,
			MaxPageSize:     100,
		},
		Translate: TranslateConfig{
			Provider:       ProviderGoogle,
			BaseURL:        "https://translate.googleapis.com",
			Timeout:        10 * time.Second,
			MaxConcurrency: 8,
		},
		LLM: LLMConfig{
			Model: "gpt-4o-mini",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
		Tracing: TracingConfig{
			Endpoint:    "localhost:4317",
			Insecure:    true,
			SampleRatio: 1.0,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Address) == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.Auth.Secret) == "" {
		return errors.New("auth.secret cannot be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTtl must be positive")
	}
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if strings.TrimSpace(c.Store.Postgres.DSN) == "" {
			return errors.New("store.postgres.dsn cannot be empty when the postgres driver is selected")
		}
	default:
		return fmt.Errorf("store.driver %q is not supported", c.Store.Driver)
	}
	if c.Store.Driver == DriverSQLite && strings.TrimSpace(c.Store.SQLite.Path) == "" {
		return errors.New("store.sqlite.path cannot be empty when the sqlite driver is selected")
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Addr) == "" {
		return errors.New("cache.addr cannot be empty when the cache is enabled")
	}
	if c.Cache.TTL <= 0 {
		return errors.New("cache.ttl must be positive")
	}
	if strings.TrimSpace(c.Cache.Prefix) == "" {
		return errors.New("cache.prefix cannot be empty")
	}
	if err := validateLanguages(c.FAQ.Languages); err != nil {
		return err
	}
	if c.FAQ.DefaultPageSize <= 0 {
		return errors.New("faq.defaultPageSize must be positive")
	}
	if c.FAQ.MaxPageSize < c.FAQ.DefaultPageSize {
		return errors.New("faq.maxPageSize cannot be smaller than faq.defaultPageSize")
	}
	switch c.Translate.Provider {
	case ProviderGoogle:
	case ProviderChatGPT:
		if strings.TrimSpace(c.LLM.APIKey) == "" {
			return errors.New("llm.apiKey cannot be empty when the chatgpt translator is selected")
		}
	default:
		return fmt.Errorf("translate.provider %q is not supported", c.Translate.Provider)
	}
	if c.Translate.Timeout <= 0 {
		return errors.New("translate.timeout must be positive")
	}
	if c.Translate.MaxConcurrency <= 0 {
		return errors.New("translate.maxConcurrency must be positive")
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return errors.New("tracing.sampleRatio must be within [0, 1]")
	}
	if c.Tracing.Enabled && strings.TrimSpace(c.Tracing.Endpoint) == "" {
		return errors.New("tracing.endpoint cannot be empty when tracing is enabled")
	}
	return nil
}

func validateLanguages(codes []string) error {
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			return fmt.Errorf("faq.languages: %q is not a language code: %w", code, err)
		}
		base, _ := tag.Base()
		if base.String() == "en" {
			return errors.New("faq.languages must not include the canonical language en")
		}
	}
	return nil
}

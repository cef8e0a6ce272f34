package faq

import "time"

// Config holds runtime knobs for the FAQ service.
type Config struct {
	// Languages are the translation targets besides the canonical language.
	Languages            []Language
	DefaultPageSize      int
	MaxPageSize          int
	CacheTTL             time.Duration
	CachePrefix          string
	TranslateTimeout     time.Duration
	TranslateConcurrency int
}

const (
	defaultPageSize             = 5
	defaultMaxPageSize          = 100
	defaultCacheTTL             = time.Hour
	defaultCachePrefix          = "faqs"
	defaultTranslateTimeout     = 10 * time.Second
	defaultTranslateConcurrency = 8
)

func (c Config) withDefaults() Config {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = defaultPageSize
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = defaultMaxPageSize
	}
	if c.MaxPageSize < c.DefaultPageSize {
		c.MaxPageSize = c.DefaultPageSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = defaultCacheTTL
	}
	if c.CachePrefix == "" {
		c.CachePrefix = defaultCachePrefix
	}
	if c.TranslateTimeout <= 0 {
		c.TranslateTimeout = defaultTranslateTimeout
	}
	if c.TranslateConcurrency <= 0 {
		c.TranslateConcurrency = defaultTranslateConcurrency
	}
	return c
}

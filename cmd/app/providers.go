package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/faq-service/internal/domain/auth"
	"github.com/yanqian/faq-service/internal/domain/faq"
	"github.com/yanqian/faq-service/internal/infra/config"
	"github.com/yanqian/faq-service/internal/infra/database"
	"github.com/yanqian/faq-service/internal/infra/faqcache"
	"github.com/yanqian/faq-service/internal/infra/faqrepo"
	"github.com/yanqian/faq-service/internal/infra/llm/chatgpt"
	"github.com/yanqian/faq-service/internal/infra/observability"
	"github.com/yanqian/faq-service/internal/infra/sanitize"
	"github.com/yanqian/faq-service/internal/infra/translate"
	"github.com/yanqian/faq-service/internal/infra/userrepo"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// stores groups the repositories backed by the configured driver.
type stores struct {
	FAQs  faq.Repository
	Users auth.Repository
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:   cfg.Auth.Secret,
		TokenTTL: cfg.Auth.TokenTTL,
	}
}

func provideFAQConfig(cfg *config.Config) (faq.Config, error) {
	langs := make([]faq.Language, 0, len(cfg.FAQ.Languages))
	for _, raw := range cfg.FAQ.Languages {
		lang, err := faq.ParseLanguage(raw)
		if err != nil {
			return faq.Config{}, err
		}
		langs = append(langs, lang)
	}
	return faq.Config{
		Languages:            langs,
		DefaultPageSize:      cfg.FAQ.DefaultPageSize,
		MaxPageSize:          cfg.FAQ.MaxPageSize,
		CacheTTL:             cfg.Cache.TTL,
		CachePrefix:          cfg.Cache.Prefix,
		TranslateTimeout:     cfg.Translate.Timeout,
		TranslateConcurrency: cfg.Translate.MaxConcurrency,
	}, nil
}

func provideStores(cfg *config.Config, logger *slog.Logger) (*stores, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool, err := database.OpenPostgres(ctx, database.PostgresConfig{
			DSN:      cfg.Store.Postgres.DSN,
			MaxConns: cfg.Store.Postgres.MaxConns,
			MinConns: cfg.Store.Postgres.MinConns,
		})
		if err != nil {
			return nil, nil, err
		}
		faqs := faqrepo.NewPostgresRepository(pool)
		users := userrepo.NewPostgresRepository(pool)
		if err := users.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		if err := faqs.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("postgres store enabled")
		return &stores{FAQs: faqs, Users: users}, pool.Close, nil
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.Store.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Tracing.Enabled {
			if err := database.TraceSQLite(db); err != nil {
				_ = database.CloseSQLite(db)
				return nil, nil, err
			}
		}
		faqs := faqrepo.NewGormRepository(db)
		users := userrepo.NewGormRepository(db)
		if err := users.AutoMigrate(); err != nil {
			_ = database.CloseSQLite(db)
			return nil, nil, err
		}
		if err := faqs.AutoMigrate(); err != nil {
			_ = database.CloseSQLite(db)
			return nil, nil, err
		}
		logger.Info("sqlite store enabled", "path", cfg.Store.SQLite.Path)
		cleanup := func() {
			if err := database.CloseSQLite(db); err != nil {
				logger.Error("failed to close sqlite", "error", err)
			}
		}
		return &stores{FAQs: faqs, Users: users}, cleanup, nil
	default:
		logger.Info("memory store enabled, data will not survive restarts")
		return &stores{
			FAQs:  faqrepo.NewMemoryRepository(),
			Users: userrepo.NewMemoryRepository(),
		}, func() {}, nil
	}
}

func provideFAQRepository(s *stores) faq.Repository {
	return s.FAQs
}

func provideUserRepository(s *stores) auth.Repository {
	return s.Users
}

func provideCache(cfg *config.Config, logger *slog.Logger) (faq.Cache, func()) {
	fallback := func() (faq.Cache, func()) {
		return faqcache.NewMemoryCache(time.Minute), func() {}
	}
	if !cfg.Cache.Enabled {
		return fallback()
	}
	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
		return fallback()
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
		return fallback()
	}
	cache := faqcache.NewValkeyCache(client)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		client.Close()
		return fallback()
	}
	logger.Info("valkey cache enabled", "addr", redactAddr(cfg.Cache.Addr))
	return cache, client.Close
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	addr := strings.TrimSpace(cfg.Cache.Addr)
	if addr == "" {
		return valkey.ClientOption{}, errors.New("cache address is empty")
	}
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

// redactAddr drops credentials from a redis:// URL before logging it.
func redactAddr(addr string) string {
	scheme, rest, ok := strings.Cut(addr, "://")
	if !ok {
		return addr
	}
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest = rest[at+1:]
	}
	return scheme + "://" + rest
}

func provideTranslator(cfg *config.Config) (faq.Translator, error) {
	switch cfg.Translate.Provider {
	case config.ProviderChatGPT:
		client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, &http.Client{Timeout: time.Minute})
		if err != nil {
			return nil, err
		}
		return translate.NewChatGPTTranslator(client, cfg.LLM.Model, cfg.LLM.Temperature), nil
	default:
		return translate.NewGoogleTranslator(cfg.Translate.BaseURL, &http.Client{Timeout: 30 * time.Second}), nil
	}
}

func provideSanitizer() faq.Sanitizer {
	return sanitize.NewHTMLSanitizer()
}

func provideTracing(cfg *config.Config, logger *slog.Logger) (observability.ShutdownFunc, error) {
	shutdown, err := observability.SetupTracing(context.Background(), observability.TracingConfig{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
		ServiceName: "faq-service",
	}, version)
	if err != nil {
		return nil, err
	}
	if cfg.Tracing.Enabled {
		logger.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint)
	}
	return shutdown, nil
}

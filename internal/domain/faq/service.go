package faq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/yanqian/faq-service/pkg/errors"
	"github.com/yanqian/faq-service/pkg/metrics"
	"github.com/yanqian/faq-service/pkg/util"
)

// Service exposes the FAQ listing and mutation workflows.
type Service interface {
	List(ctx context.Context, req ListRequest) (ListResponse, error)
	Create(ctx context.Context, ownerID int64, req CreateRequest) (Record, error)
	Delete(ctx context.Context, requesterID int64, id string) error
	Languages() LanguagesResponse
	InvalidateAll(ctx context.Context)
}

const invalidateTimeout = 5 * time.Second

var errEmptyTranslation = errors.New("translator returned empty text")

type service struct {
	cfg        Config
	repo       Repository
	cache      Cache
	translator Translator
	sanitizer  Sanitizer
	languages  languageSet
	logger     *slog.Logger
	now        func() time.Time
}

// NewService wires up the FAQ domain.
func NewService(cfg Config, repo Repository, cache Cache, translator Translator, sanitizer Sanitizer, logger *slog.Logger) Service {
	cfg = cfg.withDefaults()
	return &service{
		cfg:        cfg,
		repo:       repo,
		cache:      cache,
		translator: translator,
		sanitizer:  sanitizer,
		languages:  newLanguageSet(cfg.Languages),
		logger:     logger.With("component", "faq.service"),
		now:        util.NowUTC,
	}
}

func (s *service) List(ctx context.Context, req ListRequest) (ListResponse, error) {
	lang, err := ParseLanguage(req.Language)
	if err != nil || !s.languages.supports(lang) {
		return ListResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unsupported language %q", req.Language), err)
	}
	p := s.normalizePage(req.Page, req.PageSize)
	key := listKey(s.cfg.CachePrefix, lang, p)

	if cached, ok := s.readCache(ctx, key); ok {
		return cached, nil
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return ListResponse{}, apperrors.Wrap(apperrors.CodeFAQ, "failed to count faqs", err)
	}

	items := make([]Item, 0, p.size)
	if offset, ok := p.offset(); ok && int64(offset) < total {
		records, err := s.repo.List(ctx, offset, p.size)
		if err != nil {
			return ListResponse{}, apperrors.Wrap(apperrors.CodeFAQ, "failed to list faqs", err)
		}
		for _, record := range records {
			items = append(items, project(record, lang))
		}
	}

	resp := ListResponse{
		FAQs:       items,
		Pagination: buildPagination(p.number, p.size, total),
	}
	s.writeCache(ctx, key, resp)
	return resp, nil
}

func (s *service) Create(ctx context.Context, ownerID int64, req CreateRequest) (Record, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return Record{}, apperrors.Wrap(apperrors.CodeInvalidInput, "question cannot be empty", nil)
	}
	if strings.TrimSpace(req.Answer) == "" {
		return Record{}, apperrors.Wrap(apperrors.CodeInvalidInput, "answer cannot be empty", nil)
	}
	if ownerID <= 0 {
		return Record{}, apperrors.Wrap(apperrors.CodeInvalidInput, "owner is required", nil)
	}
	answer := strings.TrimSpace(s.sanitizer.Sanitize(req.Answer))
	if answer == "" {
		return Record{}, apperrors.Wrap(apperrors.CodeInvalidInput, "answer has no allowed content", nil)
	}

	translations, err := s.translateAll(ctx, question, answer)
	if err != nil {
		return Record{}, apperrors.Wrap(apperrors.CodeTranslation, "failed to translate faq", err)
	}

	record := Record{
		ID:           uuid.NewString(),
		Question:     question,
		Answer:       answer,
		Translations: translations,
		OwnerID:      ownerID,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Insert(ctx, record); err != nil {
		return Record{}, apperrors.Wrap(apperrors.CodeFAQ, "failed to store faq", err)
	}
	s.logger.Info("faq created", "faq_id", record.ID, "owner_id", ownerID, "languages", len(translations))

	s.InvalidateAll(ctx)
	return record, nil
}

func (s *service) Delete(ctx context.Context, requesterID int64, id string) error {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "invalid faq id", err)
	}
	id = parsed.String()

	record, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeFAQ, "failed to load faq", err)
	}
	if !found {
		return apperrors.Wrap(apperrors.CodeNotFound, "faq not found", nil)
	}
	if record.OwnerID != requesterID {
		return apperrors.Wrap(apperrors.CodeNotOwner, "not authorized to delete this faq", nil)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeFAQ, "failed to delete faq", err)
	}
	if !deleted {
		return apperrors.Wrap(apperrors.CodeNotFound, "faq not found", nil)
	}
	s.logger.Info("faq deleted", "faq_id", id, "owner_id", requesterID)

	s.InvalidateAll(ctx)
	return nil
}

func (s *service) Languages() LanguagesResponse {
	return LanguagesResponse{
		Default:   CanonicalLanguage,
		Languages: s.languages.all(),
	}
}

// InvalidateAll purges every cached listing page. The store write has
// already committed when this runs, so a failure only leaves a bounded
// staleness window and is not reported to the caller.
func (s *service) InvalidateAll(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidateTimeout)
	defer cancel()

	removed, err := s.cache.DeleteByPrefix(ctx, namespace(s.cfg.CachePrefix))
	if err != nil {
		metrics.CacheInvalidations.WithLabelValues(metrics.ResultError).Inc()
		s.logger.Warn("faq cache invalidation failed", "error", err)
		return
	}
	metrics.CacheInvalidations.WithLabelValues(metrics.ResultOK).Inc()
	s.logger.Debug("faq cache invalidated", "keys", removed)
}

func (s *service) readCache(ctx context.Context, key string) (ListResponse, bool) {
	payload, found, err := s.cache.Get(ctx, key)
	if err != nil {
		metrics.CacheLookups.WithLabelValues(metrics.ResultError).Inc()
		s.logger.Warn("faq cache read failed", "key", key, "error", err)
		return ListResponse{}, false
	}
	if !found {
		metrics.CacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return ListResponse{}, false
	}
	var resp ListResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		metrics.CacheLookups.WithLabelValues(metrics.ResultError).Inc()
		s.logger.Warn("faq cache payload undecodable", "key", key, "error", err)
		return ListResponse{}, false
	}
	if resp.FAQs == nil {
		resp.FAQs = []Item{}
	}
	metrics.CacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	return resp, true
}

func (s *service) writeCache(ctx context.Context, key string, resp ListResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		metrics.CacheWrites.WithLabelValues(metrics.ResultError).Inc()
		s.logger.Warn("faq cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.cfg.CacheTTL); err != nil {
		metrics.CacheWrites.WithLabelValues(metrics.ResultError).Inc()
		s.logger.Warn("faq cache write failed", "key", key, "error", err)
		return
	}
	metrics.CacheWrites.WithLabelValues(metrics.ResultOK).Inc()
}

// translateAll fans out one question and one answer translation per target
// language. Any failure cancels the rest and nothing is returned.
func (s *service) translateAll(ctx context.Context, question, answer string) (map[Language]Translation, error) {
	targets := s.languages.targets
	results := make([]Translation, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	for i, lang := range targets {
		g.Go(func() error {
			out, err := s.translate(gctx, question, lang)
			if err != nil {
				return err
			}
			results[i].Question = out
			return nil
		})
		g.Go(func() error {
			out, err := translateMarkup(gctx, answer, s.cfg.TranslateConcurrency, func(ctx context.Context, text string) (string, error) {
				return s.translate(ctx, text, lang)
			})
			if err != nil {
				return err
			}
			results[i].Answer = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	translations := make(map[Language]Translation, len(targets))
	for i, lang := range targets {
		translations[lang] = results[i]
	}
	return translations, nil
}

type translateResult struct {
	text string
	err  error
}

// translate performs a single adapter call bounded by the configured
// timeout, even when the adapter ignores its context.
func (s *service) translate(ctx context.Context, text string, lang Language) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.TranslateTimeout)
	defer cancel()

	start := time.Now()
	done := make(chan translateResult, 1)
	go func() {
		out, err := s.translator.Translate(callCtx, text, lang)
		done <- translateResult{text: out, err: err}
	}()

	var res translateResult
	select {
	case res = <-done:
	case <-callCtx.Done():
		res = translateResult{err: callCtx.Err()}
	}
	metrics.TranslationLatency.Observe(time.Since(start).Seconds())

	if res.err != nil {
		result := metrics.ResultError
		if errors.Is(res.err, context.DeadlineExceeded) {
			result = metrics.ResultTimeout
		}
		metrics.Translations.WithLabelValues(string(lang), result).Inc()
		return "", fmt.Errorf("translate to %s: %w", lang, res.err)
	}
	out := strings.TrimSpace(res.text)
	if out == "" {
		metrics.Translations.WithLabelValues(string(lang), metrics.ResultError).Inc()
		return "", fmt.Errorf("translate to %s: %w", lang, errEmptyTranslation)
	}
	metrics.Translations.WithLabelValues(string(lang), metrics.ResultOK).Inc()
	return out, nil
}

package faqrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/faq-service/internal/domain/faq"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS faqs (
	id           UUID PRIMARY KEY,
	question     TEXT NOT NULL,
	answer       TEXT NOT NULL,
	translations JSONB NOT NULL DEFAULT '{}'::jsonb,
	owner_id     BIGINT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS faqs_created_at_idx ON faqs (created_at DESC, id DESC);
`

// PostgresRepository implements faq.Repository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the faqs table when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, postgresSchema)
	return err
}

// Insert stores a new FAQ row.
func (r *PostgresRepository) Insert(ctx context.Context, record faq.Record) error {
	translations, err := encodeTranslations(record.Translations)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO faqs (id, question, answer, translations, owner_id, created_at)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6)
	`, record.ID, record.Question, record.Answer, translations, record.OwnerID, record.CreatedAt)
	return err
}

// GetByID fetches by primary key.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (faq.Record, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, question, answer, translations, owner_id, created_at
		FROM faqs
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return faq.Record{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return faq.Record{}, false, rows.Err()
	}
	record, err := scanRecord(rows)
	if err != nil {
		return faq.Record{}, false, err
	}
	return record, true, rows.Err()
}

// Delete removes a row and reports whether it existed.
func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Count returns the number of stored FAQs.
func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&total)
	return total, err
}

// List returns one page ordered newest first.
func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]faq.Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, question, answer, translations, owner_id, created_at
		FROM faqs
		ORDER BY created_at DESC, id DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	records := make([]faq.Record, 0, limit)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (faq.Record, error) {
	var (
		record  faq.Record
		payload []byte
		created time.Time
	)
	if err := row.Scan(&record.ID, &record.Question, &record.Answer, &payload, &record.OwnerID, &created); err != nil {
		return faq.Record{}, err
	}
	translations, err := decodeTranslations(payload)
	if err != nil {
		return faq.Record{}, err
	}
	record.Translations = translations
	record.CreatedAt = created.UTC()
	return record, nil
}

func encodeTranslations(translations map[faq.Language]faq.Translation) (string, error) {
	if translations == nil {
		return "{}", nil
	}
	payload, err := json.Marshal(translations)
	if err != nil {
		return "", fmt.Errorf("encode translations: %w", err)
	}
	return string(payload), nil
}

func decodeTranslations(payload []byte) (map[faq.Language]faq.Translation, error) {
	translations := make(map[faq.Language]faq.Translation)
	if len(payload) == 0 {
		return translations, nil
	}
	if err := json.Unmarshal(payload, &translations); err != nil {
		return nil, fmt.Errorf("decode translations: %w", err)
	}
	return translations, nil
}

var _ faq.Repository = (*PostgresRepository)(nil)

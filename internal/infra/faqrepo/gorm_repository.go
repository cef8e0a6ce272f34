package faqrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yanqian/faq-service/internal/domain/faq"
)

// faqRow is the gorm model behind GormRepository.
type faqRow struct {
	ID           string                           `gorm:"primaryKey;size:36"`
	Question     string                           `gorm:"not null"`
	Answer       string                           `gorm:"not null"`
	Translations map[faq.Language]faq.Translation `gorm:"serializer:json;not null"`
	OwnerID      int64                            `gorm:"not null;index"`
	CreatedAt    time.Time                        `gorm:"not null;index:faqs_created_at_idx,sort:desc"`
}

func (faqRow) TableName() string { return "faqs" }

// GormRepository implements faq.Repository on any gorm dialect; the service
// uses it with the embedded SQLite driver.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository constructs the repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// AutoMigrate creates or updates the faqs table.
func (r *GormRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&faqRow{})
}

// Insert implements faq.Repository.
func (r *GormRepository) Insert(ctx context.Context, record faq.Record) error {
	row := faqRow{
		ID:           record.ID,
		Question:     record.Question,
		Answer:       record.Answer,
		Translations: record.Translations,
		OwnerID:      record.OwnerID,
		CreatedAt:    record.CreatedAt.UTC(),
	}
	if row.Translations == nil {
		row.Translations = map[faq.Language]faq.Translation{}
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// GetByID implements faq.Repository.
func (r *GormRepository) GetByID(ctx context.Context, id string) (faq.Record, bool, error) {
	var row faqRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return faq.Record{}, false, nil
	}
	if err != nil {
		return faq.Record{}, false, err
	}
	return row.toRecord(), true, nil
}

// Delete implements faq.Repository.
func (r *GormRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&faqRow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Count implements faq.Repository.
func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&faqRow{}).Count(&total).Error
	return total, err
}

// List returns a page ordered (CreatedAt DESC, ID DESC).
func (r *GormRepository) List(ctx context.Context, offset, limit int) ([]faq.Record, error) {
	var rows []faqRow
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	records := make([]faq.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

func (row faqRow) toRecord() faq.Record {
	translations := row.Translations
	if translations == nil {
		translations = map[faq.Language]faq.Translation{}
	}
	return faq.Record{
		ID:           row.ID,
		Question:     row.Question,
		Answer:       row.Answer,
		Translations: translations,
		OwnerID:      row.OwnerID,
		CreatedAt:    row.CreatedAt.UTC(),
	}
}

var _ faq.Repository = (*GormRepository)(nil)

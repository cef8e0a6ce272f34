package faqrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/yanqian/faq-service/internal/domain/faq"
)

type memoryRecord struct {
	record faq.Record
	seq    int64
}

// MemoryRepository is an in-memory faq.Repository used for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	seq     int64
	records map[string]memoryRecord
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]memoryRecord)}
}

// Insert implements faq.Repository.
func (r *MemoryRepository) Insert(_ context.Context, record faq.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[record.ID]; exists {
		return fmt.Errorf("faq %s already exists", record.ID)
	}
	r.seq++
	r.records[record.ID] = memoryRecord{record: cloneRecord(record), seq: r.seq}
	return nil
}

// GetByID implements faq.Repository.
func (r *MemoryRepository) GetByID(_ context.Context, id string) (faq.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.records[id]
	if !ok {
		return faq.Record{}, false, nil
	}
	return cloneRecord(stored.record), true, nil
}

// Delete implements faq.Repository.
func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

// Count implements faq.Repository.
func (r *MemoryRepository) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.records)), nil
}

// List returns records newest first. Ties on CreatedAt fall back to insertion
// order so pages stay stable.
func (r *MemoryRepository) List(_ context.Context, offset, limit int) ([]faq.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]memoryRecord, 0, len(r.records))
	for _, stored := range r.records {
		all = append(all, stored)
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if !a.record.CreatedAt.Equal(b.record.CreatedAt) {
			return a.record.CreatedAt.After(b.record.CreatedAt)
		}
		return a.seq > b.seq
	})
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) || limit <= 0 {
		return []faq.Record{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	out := make([]faq.Record, 0, end-offset)
	for _, stored := range all[offset:end] {
		out = append(out, cloneRecord(stored.record))
	}
	return out, nil
}

func cloneRecord(record faq.Record) faq.Record {
	if record.Translations != nil {
		translations := make(map[faq.Language]faq.Translation, len(record.Translations))
		for lang, tr := range record.Translations {
			translations[lang] = tr
		}
		record.Translations = translations
	}
	return record
}

var _ faq.Repository = (*MemoryRepository)(nil)

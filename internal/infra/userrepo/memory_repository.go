package userrepo

import (
	"context"
	"sync"

	"github.com/yanqian/faq-service/internal/domain/auth"
	"github.com/yanqian/faq-service/pkg/util"
)

// MemoryRepository keeps accounts in process memory. Ids are handed out
// from 1 upwards, matching the BIGSERIAL column of the SQL stores.
type MemoryRepository struct {
	mu      sync.RWMutex
	users   []auth.User // users[i].ID == i+1
	byEmail map[string]int
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]int)}
}

// Create appends a user unless the email is already registered.
func (r *MemoryRepository) Create(_ context.Context, email, name, passwordHash string) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byEmail[email]; taken {
		return auth.User{}, auth.ErrEmailExists
	}
	user := auth.User{
		ID:           int64(len(r.users) + 1),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    util.NowUTC(),
	}
	r.byEmail[email] = len(r.users)
	r.users = append(r.users, user)
	return user, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (auth.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byEmail[email]
	if !ok {
		return auth.User{}, false, nil
	}
	return r.users[idx], true, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (auth.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 1 || id > int64(len(r.users)) {
		return auth.User{}, false, nil
	}
	return r.users[id-1], true, nil
}

var _ auth.Repository = (*MemoryRepository)(nil)

package userrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yanqian/faq-service/internal/domain/auth"
)

type userRow struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"not null;uniqueIndex"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (userRow) TableName() string { return "users" }

// GormRepository persists users through gorm.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// AutoMigrate creates or updates the users table.
func (r *GormRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&userRow{})
}

// Create inserts a new user row.
func (r *GormRepository) Create(ctx context.Context, email, name, passwordHash string) (auth.User, error) {
	row := userRow{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isDuplicate(err) {
			return auth.User{}, auth.ErrEmailExists
		}
		return auth.User{}, err
	}
	return row.toUser(), nil
}

// GetByEmail fetches a user by email.
func (r *GormRepository) GetByEmail(ctx context.Context, email string) (auth.User, bool, error) {
	return r.first(ctx, "email = ?", email)
}

// GetByID fetches by primary key.
func (r *GormRepository) GetByID(ctx context.Context, id int64) (auth.User, bool, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormRepository) first(ctx context.Context, query string, arg any) (auth.User, bool, error) {
	var row userRow
	err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return auth.User{}, false, nil
	}
	if err != nil {
		return auth.User{}, false, err
	}
	return row.toUser(), true, nil
}

func (row userRow) toUser() auth.User {
	return auth.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
	}
}

// isDuplicate covers drivers with and without gorm error translation.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

var _ auth.Repository = (*GormRepository)(nil)

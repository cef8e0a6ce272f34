package auth

import (
	"context"
	"errors"
)

// ErrEmailExists is returned by Repository.Create when the email is taken.
var ErrEmailExists = errors.New("email already exists")

// Repository abstracts user persistence. Emails arrive already normalised,
// so implementations compare them byte for byte.
type Repository interface {
	Create(ctx context.Context, email, name, passwordHash string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	GetByID(ctx context.Context, id int64) (User, bool, error)
}

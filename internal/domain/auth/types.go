package auth

import "time"

// Config drives authentication behavior.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// User represents a persisted account.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SignupRequest captures the registration payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest captures login details.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by signup and login.
type TokenResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// Claims are extracted from the JWT token.
type Claims struct {
	UserID    int64
	Email     string
	ExpiresAt time.Time
}

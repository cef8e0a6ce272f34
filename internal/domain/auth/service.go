package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/yanqian/faq-service/pkg/errors"
	"github.com/yanqian/faq-service/pkg/util"
)

// Service exposes authentication workflows.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	ValidateToken(ctx context.Context, token string) (Claims, error)
}

const (
	defaultTokenTTL = 24 * time.Hour
	maxNameLength   = 100
	minPasswordLen  = 8

	msgUserExists         = "user already exists"
	msgInvalidCredentials = "invalid credentials"
)

type service struct {
	cfg    Config
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a Service instance.
func NewService(cfg Config, repo Repository, logger *slog.Logger) Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return &service{
		cfg:    cfg,
		repo:   repo,
		logger: logger.With("component", "auth.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (TokenResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid email address", err)
	}
	name, err := normalizeName(req.Name)
	if err != nil {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), nil)
	}
	if err := validatePassword(req.Password); err != nil {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), nil)
	}
	_, exists, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeAuth, "failed to check user", err)
	}
	if exists {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeEmailExists, msgUserExists, nil)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeAuth, "failed to hash password", err)
	}
	user, err := s.repo.Create(ctx, email, name, string(hashed))
	if err != nil {
		// a concurrent signup can slip past the lookup above
		if errors.Is(err, ErrEmailExists) {
			return TokenResponse{}, apperrors.Wrap(apperrors.CodeEmailExists, msgUserExists, err)
		}
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeAuth, "failed to create user", err)
	}
	token, err := s.generateToken(user)
	if err != nil {
		return TokenResponse{}, err
	}
	s.logger.Info("user signed up", "user_id", user.ID)
	return TokenResponse{Msg: "user registered successfully", Token: token}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid email address", err)
	}
	if req.Password == "" {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "password cannot be empty", nil)
	}
	user, found, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeAuth, "failed to fetch user", err)
	}
	if !found {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeInvalidCredentials, msgInvalidCredentials, nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeInvalidCredentials, msgInvalidCredentials, nil)
	}
	token, err := s.generateToken(user)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{Msg: "login successful", Token: token}, nil
}

func (s *service) ValidateToken(_ context.Context, token string) (Claims, error) {
	if strings.TrimSpace(token) == "" {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token missing", nil)
	}
	return s.parseToken(token)
}

func (s *service) generateToken(user User) (string, error) {
	now := s.now()
	claims := tokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeAuth, "failed to sign token", err)
	}
	return signed, nil
}

func (s *service) parseToken(token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token validation failed", err)
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token invalid", nil)
	}
	if claims.UserID <= 0 {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token missing user", nil)
	}
	return Claims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(strings.ToLower(raw))
	if email == "" {
		return "", errors.New("email cannot be empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", err
	}
	if addr.Address != email {
		return "", errors.New("email must be a bare address")
	}
	return email, nil
}

func normalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", errors.New("name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", fmt.Errorf("name cannot exceed %d characters", maxNameLength)
	}
	return name, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

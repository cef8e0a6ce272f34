package auth

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/faq-service/pkg/errors"
)

func TestService_SignupLoginAndValidate(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(Config{Secret: "test-secret"}, repo, newTestLogger())

	signup, err := svc.Signup(context.Background(), SignupRequest{
		Name:     "Asha Rao",
		Email:    " User@Example.com ",
		Password: "pass1234",
	})
	require.NoError(t, err)
	require.NotEmpty(t, signup.Msg)
	require.NotEmpty(t, signup.Token)

	stored, found, err := repo.GetByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Asha Rao", stored.Name)
	require.NotEqual(t, "pass1234", stored.PasswordHash)

	login, err := svc.Login(context.Background(), LoginRequest{Email: "user@example.com", Password: "pass1234"})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)

	claims, err := svc.ValidateToken(context.Background(), login.Token)
	require.NoError(t, err)
	require.Equal(t, stored.ID, claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestService_DuplicateEmail(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(Config{Secret: "test-secret"}, repo, newTestLogger())

	_, err := svc.Signup(context.Background(), SignupRequest{Name: "One", Email: "user@example.com", Password: "pass1234"})
	require.NoError(t, err)

	resp, err := svc.Signup(context.Background(), SignupRequest{Name: "Two", Email: "USER@example.com", Password: "pass12345"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeEmailExists))
	require.Equal(t, "user already exists", apperrors.MessageOf(err))
	require.Empty(t, resp.Token)
	require.Len(t, repo.users, 1)
}

func TestService_DuplicateEmailRaceSurfacesFromStore(t *testing.T) {
	repo := newMemoryRepo()
	repo.hideLookups = true
	svc := NewService(Config{Secret: "test-secret"}, repo, newTestLogger())

	_, err := svc.Signup(context.Background(), SignupRequest{Name: "One", Email: "user@example.com", Password: "pass1234"})
	require.NoError(t, err)
	_, err = svc.Signup(context.Background(), SignupRequest{Name: "Two", Email: "user@example.com", Password: "pass1234"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeEmailExists))
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestService_SignupValidation(t *testing.T) {
	svc := NewService(Config{Secret: "test-secret"}, newMemoryRepo(), newTestLogger())

	cases := map[string]SignupRequest{
		"bad email":      {Name: "A", Email: "not-an-email", Password: "pass1234"},
		"display email":  {Name: "A", Email: "Asha <a@example.com>", Password: "pass1234"},
		"blank name":     {Name: "  ", Email: "a@example.com", Password: "pass1234"},
		"long name":      {Name: strings.Repeat("n", 101), Email: "a@example.com", Password: "pass1234"},
		"short password": {Name: "A", Email: "a@example.com", Password: "short"},
	}
	for name, req := range cases {
		_, err := svc.Signup(context.Background(), req)
		require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput), name)
	}
}

func TestService_LoginRejectsBadCredentials(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(Config{Secret: "test-secret"}, repo, newTestLogger())
	_, err := svc.Signup(context.Background(), SignupRequest{Name: "A", Email: "a@example.com", Password: "pass1234"})
	require.NoError(t, err)

	wrong, err := svc.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "wrongpass"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidCredentials))
	require.Empty(t, wrong.Token)

	_, unknownErr := svc.Login(context.Background(), LoginRequest{Email: "b@example.com", Password: "pass1234"})
	require.True(t, apperrors.IsCode(unknownErr, apperrors.CodeInvalidCredentials))
	require.Equal(t, apperrors.MessageOf(err), apperrors.MessageOf(unknownErr))
}

func TestService_ValidateTokenRejections(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(Config{Secret: "test-secret", TokenTTL: time.Hour}, repo, newTestLogger())
	resp, err := svc.Signup(context.Background(), SignupRequest{Name: "A", Email: "a@example.com", Password: "pass1234"})
	require.NoError(t, err)

	other := NewService(Config{Secret: "other-secret"}, repo, newTestLogger())
	_, err = other.ValidateToken(context.Background(), resp.Token)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken), "bad signature")

	_, err = svc.ValidateToken(context.Background(), "")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken), "empty")

	_, err = svc.ValidateToken(context.Background(), "not.a.jwt")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken), "malformed")

	none := jwt.NewWithClaims(jwt.SigningMethodNone, tokenClaims{UserID: 1})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(context.Background(), unsigned)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken), "alg none")

	expiring := svc.(*service)
	expiring.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = expiring.ValidateToken(context.Background(), resp.Token)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken), "expired")
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type memoryRepo struct {
	mu    sync.Mutex
	users map[int64]User
	seq   int64
	// hideLookups makes GetByEmail miss so uniqueness is enforced only by Create.
	hideLookups bool
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[int64]User)}
}

func (m *memoryRepo) Create(_ context.Context, email, name, passwordHash string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return User{}, ErrEmailExists
		}
	}
	m.seq++
	user := User{
		ID:           m.seq,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *memoryRepo) GetByEmail(_ context.Context, email string) (User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hideLookups {
		return User{}, false, nil
	}
	for _, user := range m.users {
		if user.Email == email {
			return user, true, nil
		}
	}
	return User{}, false, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id int64) (User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	return user, ok, nil
}

package service

import (
	"context"
	"testing"
	"time"

	"slotswap/core/config"
	coreErrors "slotswap/core/errors"
	"slotswap/core/utils"
	"slotswap/modules/auth/dto"
	"slotswap/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock AuthRepository ---

type mockAuthRepo struct {
	createUserFn     func(ctx context.Context, user *entity.User) error
	getUserByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	getUserByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

func (m *mockAuthRepo) CreateUser(ctx context.Context, user *entity.User) error {
	return m.createUserFn(ctx, user)
}
func (m *mockAuthRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.getUserByEmailFn(ctx, email)
}
func (m *mockAuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.getUserByIDFn(ctx, id)
}

// --- Mock Cache ---

type mockCache struct {
	blacklisted map[string]time.Duration
}

func (m *mockCache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if m.blacklisted == nil {
		m.blacklisted = map[string]time.Duration{}
	}
	m.blacklisted[token] = ttl
	return nil
}

func (m *mockCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	_, ok := m.blacklisted[token]
	return ok, nil
}

func (m *mockCache) Close() error { return nil }

// --- Tests ---

func initTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := config.Init()
	require.NoError(t, err)
}

func TestSignup_Success(t *testing.T) {
	initTestConfig(t)

	repo := &mockAuthRepo{
		getUserByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, nil
		},
		createUserFn: func(ctx context.Context, user *entity.User) error {
			user.ID = uuid.New()
			return nil
		},
	}

	svc := NewAuthService(repo, &mockCache{})
	resp, appErr := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})

	require.Nil(t, appErr)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)

	claims, err := utils.ValidateAndParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestSignup_EmailTaken(t *testing.T) {
	initTestConfig(t)

	existing := &entity.User{Name: "Alice", Email: "alice@example.com"}
	existing.ID = uuid.New()
	repo := &mockAuthRepo{
		getUserByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return existing, nil
		},
	}

	svc := NewAuthService(repo, &mockCache{})
	_, appErr := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Alice Again",
		Email:    "alice@example.com",
		Password: "supersecret",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrAlreadyExists, appErr.Code)
	assert.Equal(t, "User with this email already exists", appErr.Message)
}

func TestSignup_RaceOnUniqueIndex(t *testing.T) {
	initTestConfig(t)

	repo := &mockAuthRepo{
		getUserByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, nil
		},
		createUserFn: func(ctx context.Context, user *entity.User) error {
			return &pq.Error{Code: "23505"}
		},
	}

	svc := NewAuthService(repo, &mockCache{})
	_, appErr := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrAlreadyExists, appErr.Code)
}

func TestLogin_Success(t *testing.T) {
	initTestConfig(t)

	hash, err := utils.HashPassword("supersecret")
	require.NoError(t, err)
	user := &entity.User{Name: "Alice", Email: "alice@example.com", Password: hash}
	user.ID = uuid.New()

	repo := &mockAuthRepo{
		getUserByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
	}

	svc := NewAuthService(repo, &mockCache{})
	resp, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})

	require.Nil(t, appErr)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	initTestConfig(t)

	hash, err := utils.HashPassword("supersecret")
	require.NoError(t, err)
	user := &entity.User{Email: "alice@example.com", Password: hash}

	repo := &mockAuthRepo{
		getUserByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
	}

	svc := NewAuthService(repo, &mockCache{})
	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrUnauthorized, appErr.Code)
	assert.Equal(t, "Invalid email or password", appErr.Message)
}

func TestLogin_UnknownEmail(t *testing.T) {
	initTestConfig(t)

	repo := &mockAuthRepo{
		getUserByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, nil
		},
	}

	svc := NewAuthService(repo, &mockCache{})
	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrUnauthorized, appErr.Code)
	// Same message as wrong password so the response leaks nothing.
	assert.Equal(t, "Invalid email or password", appErr.Message)
}

func TestLogout_BlacklistsToken(t *testing.T) {
	initTestConfig(t)

	token, err := utils.GenerateToken(uuid.New())
	require.NoError(t, err)

	cache := &mockCache{}
	svc := NewAuthService(&mockAuthRepo{}, cache)

	appErr := svc.Logout(context.Background(), token)

	require.Nil(t, appErr)
	ttl, ok := cache.blacklisted[token]
	require.True(t, ok)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestGetProfile_NotFound(t *testing.T) {
	initTestConfig(t)

	repo := &mockAuthRepo{
		getUserByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return nil, nil
		},
	}

	svc := NewAuthService(repo, &mockCache{})
	_, appErr := svc.GetProfile(context.Background(), uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNotFound, appErr.Code)
}

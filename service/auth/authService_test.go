package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/perpetual-pelican/vidly-backend/model"
	"github.com/perpetual-pelican/vidly-backend/util/hash"
	jwtutil "github.com/perpetual-pelican/vidly-backend/util/jwt"
)

type mockRepo struct {
	listFn    func(ctx context.Context) ([]model.User, error)
	byIDFn    func(ctx context.Context, id string) (*model.User, error)
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn  func(ctx context.Context, u *model.User) error
}

func (m *mockRepo) List(ctx context.Context) ([]model.User, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}
func (m *mockRepo) ByID(ctx context.Context, id string) (*model.User, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}
func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, nil
	}
	return m.byEmailFn(ctx, email)
}
func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = "user-42"
			return nil
		},
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Register(ctx, model.RegisterReq{
		Name:     "Ada Lovelace",
		Email:    "  Ada@Example.COM ",
		Password: "Sup3rSecret!",
	})
	require.NoError(t, err)
	require.Equal(t, "user-42", u.ID)
	require.Equal(t, "ada@example.com", u.Email)
	require.NotEmpty(t, u.PasswordHash)
	require.NotEqual(t, "Sup3rSecret!", u.PasswordHash)

	claims, err := jwtutil.ParseAuth("Bearer "+tok, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "user-42", claims.UserID)
	require.False(t, claims.IsAdmin)
}

func TestRegister_EmailTaken(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Register(context.Background(), model.RegisterReq{
		Name:     "Ada Lovelace",
		Email:    "taken@example.com",
		Password: "Sup3rSecret!",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_CreateError(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return errors.New("db down")
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Register(context.Background(), model.RegisterReq{
		Name:     "Ada Lovelace",
		Email:    "ok@example.com",
		Password: "Sup3rSecret!",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	pw := "Sup3rSecret!"
	hashed := mustHash(t, pw)
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "user-7", Email: "ada@example.com", PasswordHash: hashed, IsAdmin: true}, nil
		},
	}
	svc := New(m, "test-secret")

	tok, err := svc.Login(context.Background(), model.LoginReq{Email: "ada@example.com", Password: pw})
	require.NoError(t, err)

	claims, err := jwtutil.ParseAuth(tok, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "user-7", claims.UserID)
	require.True(t, claims.IsAdmin)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc := New(&mockRepo{}, "test-secret")

	_, err := svc.Login(context.Background(), model.LoginReq{Email: "missing@example.com", Password: "whatever"})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed := mustHash(t, "correct-password")
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "user-101", Email: email, PasswordHash: hashed}, nil
		},
	}
	svc := New(m, "test-secret")

	_, err := svc.Login(context.Background(), model.LoginReq{Email: "ada@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

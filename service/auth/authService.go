package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/perpetual-pelican/vidly-backend/model"
	urepo "github.com/perpetual-pelican/vidly-backend/repository/user"
	"github.com/perpetual-pelican/vidly-backend/util/hash"
	jwtutil "github.com/perpetual-pelican/vidly-backend/util/jwt"
)

var (
	ErrEmailTaken   = errors.New("email already in use")
	ErrInvalidCreds = errors.New("invalid email or password")
)

const tokenTTLHours = 24

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginReq) (string, error)
	ByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type service struct {
	r      urepo.Repo
	secret string
}

func New(r urepo.Repo, secret string) Service {
	return &service{r: r, secret: secret}
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error) {
	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashed,
	}
	if err := s.r.Create(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u.ID, u.IsAdmin, tokenTTLHours)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (string, error) {
	u, err := s.r.ByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if u == nil || !hash.Check(u.PasswordHash, req.Password) {
		return "", ErrInvalidCreds
	}
	return jwtutil.Issue(s.secret, u.ID, u.IsAdmin, tokenTTLHours)
}

func (s *service) ByID(ctx context.Context, id string) (*model.User, error) {
	return s.r.ByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]model.User, error) {
	return s.r.List(ctx)
}

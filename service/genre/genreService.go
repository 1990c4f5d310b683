package genre

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/perpetual-pelican/vidly-backend/model"
	grepo "github.com/perpetual-pelican/vidly-backend/repository/genre"
)

var ErrNameTaken = errors.New("genre name already exists")

type Service interface {
	List(ctx context.Context) ([]model.Genre, error)
	ByID(ctx context.Context, id string) (*model.Genre, error)
	Create(ctx context.Context, name string) (*model.Genre, error)
	Update(ctx context.Context, g *model.Genre, name string) (*model.Genre, error)
	Delete(ctx context.Context, id string) error
}

type service struct{ r grepo.Repo }

func New(r grepo.Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Genre, error) {
	return s.r.List(ctx)
}

func (s *service) ByID(ctx context.Context, id string) (*model.Genre, error) {
	return s.r.ByID(ctx, id)
}

func (s *service) Create(ctx context.Context, name string) (*model.Genre, error) {
	g := &model.Genre{Name: name}
	if err := s.r.Create(ctx, g); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return g, nil
}

func (s *service) Update(ctx context.Context, g *model.Genre, name string) (*model.Genre, error) {
	g.Name = name
	if err := s.r.Update(ctx, g); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return g, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.r.Delete(ctx, id)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

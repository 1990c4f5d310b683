package movie

import (
	"context"
	"database/sql"
	"errors"

	"github.com/perpetual-pelican/vidly-backend/model"
	mrepo "github.com/perpetual-pelican/vidly-backend/repository/movie"
)

var ErrInvalidGenre = errors.New("invalid genre id")

type Tx interface {
	RunTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

// GenreRepo is the slice of the genre store used to resolve genre ids
// into the snapshots embedded on a movie.
type GenreRepo interface {
	ByIDs(ctx context.Context, ids []string) ([]model.Genre, error)
}

type Service interface {
	List(ctx context.Context) ([]model.Movie, error)
	ByID(ctx context.Context, id string) (*model.Movie, error)
	Create(ctx context.Context, req model.CreateMovieReq) (*model.Movie, error)
	Update(ctx context.Context, m *model.Movie, req model.UpdateMovieReq) (*model.Movie, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	tx Tx
	r  mrepo.Repo
	gr GenreRepo
}

func New(tx Tx, r mrepo.Repo, gr GenreRepo) Service {
	return &service{tx: tx, r: r, gr: gr}
}

func (s *service) List(ctx context.Context) ([]model.Movie, error) {
	return s.r.List(ctx)
}

func (s *service) ByID(ctx context.Context, id string) (*model.Movie, error) {
	return s.r.ByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req model.CreateMovieReq) (*model.Movie, error) {
	m := &model.Movie{
		Title:           req.Title,
		DailyRentalRate: *req.DailyRentalRate,
		NumberInStock:   *req.NumberInStock,
	}
	if len(req.GenreIDs) > 0 {
		genres, err := s.resolveGenres(ctx, req.GenreIDs)
		if err != nil {
			return nil, err
		}
		m.Genres = genres
	}
	err := s.tx.RunTx(ctx, func(tx *sql.Tx) error {
		return s.r.Create(ctx, tx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Update(ctx context.Context, m *model.Movie, req model.UpdateMovieReq) (*model.Movie, error) {
	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.DailyRentalRate != nil {
		m.DailyRentalRate = *req.DailyRentalRate
	}
	if req.NumberInStock != nil {
		m.NumberInStock = *req.NumberInStock
	}
	if len(req.GenreIDs) > 0 {
		genres, err := s.resolveGenres(ctx, req.GenreIDs)
		if err != nil {
			return nil, err
		}
		m.Genres = genres
	}
	err := s.tx.RunTx(ctx, func(tx *sql.Tx) error {
		return s.r.Update(ctx, tx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.r.Delete(ctx, id)
}

func (s *service) resolveGenres(ctx context.Context, ids []string) ([]model.Genre, error) {
	genres, err := s.gr.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(ids) {
		return nil, ErrInvalidGenre
	}
	return genres, nil
}

package movie

import (
	"context"
	"database/sql"
	"errors"

	"github.com/perpetual-pelican/vidly-backend/model"
)

type Repo interface {
	List(ctx context.Context) ([]model.Movie, error)
	ByID(ctx context.Context, id string) (*model.Movie, error)
	Create(ctx context.Context, tx *sql.Tx, m *model.Movie) error
	Update(ctx context.Context, tx *sql.Tx, m *model.Movie) error
	Delete(ctx context.Context, id string) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) List(ctx context.Context) ([]model.Movie, error) {
	const q = `
		SELECT id::text, title, daily_rental_rate, number_in_stock
		FROM movies
		ORDER BY title`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Movie
	idx := map[string]int{}
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.DailyRentalRate, &m.NumberInStock); err != nil {
			return nil, err
		}
		idx[m.ID] = len(out)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	const gq = `
		SELECT movie_id::text, genre_id::text, genre_name
		FROM movie_genres
		ORDER BY genre_name`
	grows, err := r.db.QueryContext(ctx, gq)
	if err != nil {
		return nil, err
	}
	defer grows.Close()

	for grows.Next() {
		var movieID string
		var g model.Genre
		if err := grows.Scan(&movieID, &g.ID, &g.Name); err != nil {
			return nil, err
		}
		if i, ok := idx[movieID]; ok {
			out[i].Genres = append(out[i].Genres, g)
		}
	}
	return out, grows.Err()
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Movie, error) {
	const q = `
		SELECT id::text, title, daily_rental_rate, number_in_stock
		FROM movies
		WHERE id = $1`
	m := &model.Movie{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Title, &m.DailyRentalRate, &m.NumberInStock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	const gq = `
		SELECT genre_id::text, genre_name
		FROM movie_genres
		WHERE movie_id = $1
		ORDER BY genre_name`
	rows, err := r.db.QueryContext(ctx, gq, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		m.Genres = append(m.Genres, g)
	}
	return m, rows.Err()
}

func (r *repo) Create(ctx context.Context, tx *sql.Tx, m *model.Movie) error {
	const q = `
		INSERT INTO movies(title, daily_rental_rate, number_in_stock)
		VALUES ($1, $2, $3)
		RETURNING id::text`
	if err := tx.QueryRowContext(ctx, q, m.Title, m.DailyRentalRate, m.NumberInStock).Scan(&m.ID); err != nil {
		return err
	}
	return r.insertGenres(ctx, tx, m)
}

// Update replaces the movie row and its genre snapshots.
func (r *repo) Update(ctx context.Context, tx *sql.Tx, m *model.Movie) error {
	const q = `
		UPDATE movies
		SET title = $2, daily_rental_rate = $3, number_in_stock = $4
		WHERE id = $1`
	if _, err := tx.ExecContext(ctx, q, m.ID, m.Title, m.DailyRentalRate, m.NumberInStock); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, m.ID); err != nil {
		return err
	}
	return r.insertGenres(ctx, tx, m)
}

func (r *repo) insertGenres(ctx context.Context, tx *sql.Tx, m *model.Movie) error {
	const q = `
		INSERT INTO movie_genres(movie_id, genre_id, genre_name)
		VALUES ($1, $2, $3)`
	for _, g := range m.Genres {
		if _, err := tx.ExecContext(ctx, q, m.ID, g.ID, g.Name); err != nil {
			return err
		}
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	return err
}

package genre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/perpetual-pelican/vidly-backend/model"
)

type Repo interface {
	List(ctx context.Context) ([]model.Genre, error)
	ByID(ctx context.Context, id string) (*model.Genre, error)
	ByIDs(ctx context.Context, ids []string) ([]model.Genre, error)
	Create(ctx context.Context, g *model.Genre) error
	Update(ctx context.Context, g *model.Genre) error
	Delete(ctx context.Context, id string) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) List(ctx context.Context) ([]model.Genre, error) {
	const q = `
		SELECT id::text, name
		FROM genres
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Genre, error) {
	const q = `
		SELECT id::text, name
		FROM genres
		WHERE id = $1`
	g := &model.Genre{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&g.ID, &g.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// ByIDs returns the genres matching ids; absent ids are simply missing
// from the result, the caller decides whether that is an error.
func (r *repo) ByIDs(ctx context.Context, ids []string) ([]model.Genre, error) {
	const q = `
		SELECT id::text, name
		FROM genres
		WHERE id = ANY($1::uuid[])
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *repo) Create(ctx context.Context, g *model.Genre) error {
	const q = `
		INSERT INTO genres(name)
		VALUES ($1)
		RETURNING id::text`
	return r.db.QueryRowContext(ctx, q, g.Name).Scan(&g.ID)
}

func (r *repo) Update(ctx context.Context, g *model.Genre) error {
	const q = `
		UPDATE genres
		SET name = $2
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, g.ID, g.Name)
	return err
}

func (r *repo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM genres WHERE id = $1`, id)
	return err
}

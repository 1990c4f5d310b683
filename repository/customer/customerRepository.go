package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/perpetual-pelican/vidly-backend/model"
)

type Repo interface {
	List(ctx context.Context) ([]model.Customer, error)
	ByID(ctx context.Context, id string) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id string) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) List(ctx context.Context) ([]model.Customer, error) {
	const q = `
		SELECT id::text, name, phone, is_gold
		FROM customers
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Customer, error) {
	const q = `
		SELECT id::text, name, phone, is_gold
		FROM customers
		WHERE id = $1`
	c := &model.Customer{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	const q = `
		INSERT INTO customers(name, phone, is_gold)
		VALUES ($1, $2, $3)
		RETURNING id::text`
	return r.db.QueryRowContext(ctx, q, c.Name, c.Phone, c.IsGold).Scan(&c.ID)
}

func (r *repo) Update(ctx context.Context, c *model.Customer) error {
	const q = `
		UPDATE customers
		SET name = $2, phone = $3, is_gold = $4
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, c.ID, c.Name, c.Phone, c.IsGold)
	return err
}

func (r *repo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}

package rental

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/perpetual-pelican/vidly-backend/model"
)

// Repo is the only component allowed to touch movies.number_in_stock
// outside of movie administration; all stock deltas go through tx-scoped
// methods so they stay inside a rental transaction.
type Repo interface {
	List(ctx context.Context) ([]model.Rental, error)
	ByID(ctx context.Context, id string) (*model.Rental, error)

	GetMovieForUpdate(ctx context.Context, tx *sql.Tx, movieID string) (*model.RentalMovie, int, error)
	AdjustStock(ctx context.Context, tx *sql.Tx, movieID string, delta int) error

	LookupActive(ctx context.Context, tx *sql.Tx, customerID, movieID string) (*model.Rental, error)
	LookupActiveForUpdate(ctx context.Context, tx *sql.Tx, customerID, movieID string) (*model.Rental, error)
	Insert(ctx context.Context, tx *sql.Tx, r *model.Rental) error
	MarkReturned(ctx context.Context, tx *sql.Tx, rentalID string, returned time.Time, fee float64) error
	Delete(ctx context.Context, rentalID string) error
	DeleteTx(ctx context.Context, tx *sql.Tx, rentalID string) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

const rentalCols = `
	id::text,
	customer_id::text, customer_name, customer_phone, customer_is_gold,
	movie_id::text, movie_title, movie_daily_rental_rate,
	date_out, date_returned, rental_fee`

func scanRental(row interface{ Scan(...any) error }) (*model.Rental, error) {
	r := &model.Rental{}
	var returned sql.NullTime
	var fee sql.NullFloat64
	err := row.Scan(
		&r.ID,
		&r.Customer.ID, &r.Customer.Name, &r.Customer.Phone, &r.Customer.IsGold,
		&r.Movie.ID, &r.Movie.Title, &r.Movie.DailyRentalRate,
		&r.DateOut, &returned, &fee,
	)
	if err != nil {
		return nil, err
	}
	if returned.Valid {
		r.DateReturned = &returned.Time
	}
	if fee.Valid {
		r.RentalFee = &fee.Float64
	}
	return r, nil
}

func (r *repo) List(ctx context.Context) ([]model.Rental, error) {
	q := `SELECT ` + rentalCols + `
		FROM rentals
		ORDER BY date_out DESC, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rental
	for rows.Next() {
		rec, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Rental, error) {
	q := `SELECT ` + rentalCols + `
		FROM rentals
		WHERE id = $1`
	rec, err := scanRental(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetMovieForUpdate locks the movie row for the rest of the transaction
// and returns the fields snapshotted onto a rental plus current stock.
func (r *repo) GetMovieForUpdate(ctx context.Context, tx *sql.Tx, movieID string) (*model.RentalMovie, int, error) {
	const q = `
		SELECT id::text, title, daily_rental_rate, number_in_stock
		FROM movies
		WHERE id = $1
		FOR UPDATE`
	m := &model.RentalMovie{}
	var stock int
	if err := tx.QueryRowContext(ctx, q, movieID).Scan(&m.ID, &m.Title, &m.DailyRentalRate, &stock); err != nil {
		return nil, 0, err
	}
	return m, stock, nil
}

func (r *repo) AdjustStock(ctx context.Context, tx *sql.Tx, movieID string, delta int) error {
	const q = `
		UPDATE movies
		SET number_in_stock = number_in_stock + $2
		WHERE id = $1`
	res, err := tx.ExecContext(ctx, q, movieID, delta)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) LookupActive(ctx context.Context, tx *sql.Tx, customerID, movieID string) (*model.Rental, error) {
	return r.lookupActive(ctx, tx, customerID, movieID, false)
}

func (r *repo) LookupActiveForUpdate(ctx context.Context, tx *sql.Tx, customerID, movieID string) (*model.Rental, error) {
	return r.lookupActive(ctx, tx, customerID, movieID, true)
}

func (r *repo) lookupActive(ctx context.Context, tx *sql.Tx, customerID, movieID string, forUpdate bool) (*model.Rental, error) {
	q := `SELECT ` + rentalCols + `
		FROM rentals
		WHERE customer_id = $1 AND movie_id = $2 AND date_returned IS NULL`
	if forUpdate {
		q += `
		FOR UPDATE`
	}
	rec, err := scanRental(tx.QueryRowContext(ctx, q, customerID, movieID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, rec *model.Rental) error {
	const q = `
		INSERT INTO rentals(
			customer_id, customer_name, customer_phone, customer_is_gold,
			movie_id, movie_title, movie_daily_rental_rate, date_out)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id::text`
	return tx.QueryRowContext(ctx, q,
		rec.Customer.ID, rec.Customer.Name, rec.Customer.Phone, rec.Customer.IsGold,
		rec.Movie.ID, rec.Movie.Title, rec.Movie.DailyRentalRate, rec.DateOut,
	).Scan(&rec.ID)
}

func (r *repo) MarkReturned(ctx context.Context, tx *sql.Tx, rentalID string, returned time.Time, fee float64) error {
	const q = `
		UPDATE rentals
		SET date_returned = $2, rental_fee = $3
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, rentalID, returned, fee)
	return err
}

func (r *repo) Delete(ctx context.Context, rentalID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, rentalID)
	return err
}

func (r *repo) DeleteTx(ctx context.Context, tx *sql.Tx, rentalID string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, rentalID)
	return err
}

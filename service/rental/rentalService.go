package rental

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/perpetual-pelican/vidly-backend/model"
	rrepo "github.com/perpetual-pelican/vidly-backend/repository/rental"
)

// Business-rule rejections, distinguishable from unexpected failures so
// controllers can map them to client errors while anything else becomes
// a 500 with state guaranteed unchanged.

type ErrCode string

const (
	ErrInvalidCustomer ErrCode = "INVALID_CUSTOMER"
	ErrInvalidMovie    ErrCode = "INVALID_MOVIE"
	ErrOutOfStock      ErrCode = "OUT_OF_STOCK"
	ErrAlreadyRenting  ErrCode = "ALREADY_RENTING"
	ErrNoActiveRental  ErrCode = "NO_ACTIVE_RENTAL"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts the business-rule code, or "" for unexpected errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Tx runs a function inside a single atomic transaction scope.
type Tx interface {
	RunTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

// CustomerRepo is the read-only slice of the customer store the rent
// workflow needs.
type CustomerRepo interface {
	ByID(ctx context.Context, id string) (*model.Customer, error)
}

type Service interface {
	List(ctx context.Context) ([]model.Rental, error)
	ByID(ctx context.Context, id string) (*model.Rental, error)

	// Rent checks stock, decrements it and creates the rental record,
	// all inside one transaction.
	Rent(ctx context.Context, customerID, movieID string) (*model.Rental, error)

	// Return closes the active rental for the pair, computes the fee
	// and restores stock, all inside one transaction.
	Return(ctx context.Context, customerID, movieID string) (*model.Rental, error)

	// Cancel deletes a rental; an active one also restores stock.
	Cancel(ctx context.Context, rec *model.Rental) error
}

type service struct {
	tx  Tx
	r   rrepo.Repo
	cr  CustomerRepo
	now func() time.Time
}

func New(tx Tx, r rrepo.Repo, cr CustomerRepo) Service {
	return &service{tx: tx, r: r, cr: cr, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]model.Rental, error) {
	return s.r.List(ctx)
}

func (s *service) ByID(ctx context.Context, id string) (*model.Rental, error) {
	return s.r.ByID(ctx, id)
}

func (s *service) Rent(ctx context.Context, customerID, movieID string) (*model.Rental, error) {
	// The customer is read-only here, so looking it up outside the
	// transaction is fine.
	cust, err := s.cr.ByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cust == nil {
		return nil, makeErr(ErrInvalidCustomer)
	}

	var rec *model.Rental
	err = s.tx.RunTx(ctx, func(tx *sql.Tx) error {
		movie, stock, err := s.r.GetMovieForUpdate(ctx, tx, movieID)
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrInvalidMovie)
		}
		if err != nil {
			return err
		}
		if stock < 1 {
			return makeErr(ErrOutOfStock)
		}
		if err := s.r.AdjustStock(ctx, tx, movieID, -1); err != nil {
			return err
		}

		// Recheck under the movie lock: two concurrent rents for the
		// same pair serialize here, so at most one sees no active
		// rental and commits.
		existing, err := s.r.LookupActive(ctx, tx, customerID, movieID)
		if err != nil {
			return err
		}
		if existing != nil {
			return makeErr(ErrAlreadyRenting)
		}

		rec = &model.Rental{
			Customer: model.RentalCustomer{
				ID:     cust.ID,
				Name:   cust.Name,
				Phone:  cust.Phone,
				IsGold: cust.IsGold,
			},
			Movie:   *movie,
			DateOut: s.now().UTC(),
		}
		return s.r.Insert(ctx, tx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) Return(ctx context.Context, customerID, movieID string) (*model.Rental, error) {
	var rec *model.Rental
	err := s.tx.RunTx(ctx, func(tx *sql.Tx) error {
		var err error
		rec, err = s.r.LookupActiveForUpdate(ctx, tx, customerID, movieID)
		if err != nil {
			return err
		}
		if rec == nil {
			return makeErr(ErrNoActiveRental)
		}

		returned := s.now().UTC()
		fee := Fee(rec.DateOut, returned, rec.Movie.DailyRentalRate)
		if err := s.r.MarkReturned(ctx, tx, rec.ID, returned, fee); err != nil {
			return err
		}
		if err := s.r.AdjustStock(ctx, tx, rec.Movie.ID, 1); err != nil {
			return err
		}
		rec.DateReturned = &returned
		rec.RentalFee = &fee
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) Cancel(ctx context.Context, rec *model.Rental) error {
	// A returned rental no longer affects inventory; a single-record
	// delete is atomic on its own.
	if rec.DateReturned != nil {
		return s.r.Delete(ctx, rec.ID)
	}
	return s.tx.RunTx(ctx, func(tx *sql.Tx) error {
		if err := s.r.DeleteTx(ctx, tx, rec.ID); err != nil {
			return err
		}
		return s.r.AdjustStock(ctx, tx, rec.Movie.ID, 1)
	})
}

// Fee charges the rate for every whole day between checkout and return.
// Partial days are not charged.
func Fee(dateOut, returned time.Time, dailyRate float64) float64 {
	days := int(returned.Sub(dateOut).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return float64(days) * dailyRate
}

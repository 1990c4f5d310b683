package rental

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/perpetual-pelican/vidly-backend/app/echoServer/validation"
	"github.com/perpetual-pelican/vidly-backend/model"
	rs "github.com/perpetual-pelican/vidly-backend/service/rental"
)

type mockSvc struct {
	listFn   func(ctx context.Context) ([]model.Rental, error)
	byIDFn   func(ctx context.Context, id string) (*model.Rental, error)
	rentFn   func(ctx context.Context, customerID, movieID string) (*model.Rental, error)
	returnFn func(ctx context.Context, customerID, movieID string) (*model.Rental, error)
	cancelFn func(ctx context.Context, rec *model.Rental) error
}

func (m *mockSvc) List(ctx context.Context) ([]model.Rental, error) { return m.listFn(ctx) }
func (m *mockSvc) ByID(ctx context.Context, id string) (*model.Rental, error) {
	return m.byIDFn(ctx, id)
}
func (m *mockSvc) Rent(ctx context.Context, customerID, movieID string) (*model.Rental, error) {
	return m.rentFn(ctx, customerID, movieID)
}
func (m *mockSvc) Return(ctx context.Context, customerID, movieID string) (*model.Rental, error) {
	return m.returnFn(ctx, customerID, movieID)
}
func (m *mockSvc) Cancel(ctx context.Context, rec *model.Rental) error { return m.cancelFn(ctx, rec) }

func newController(svc rs.Service) *Controller {
	return &Controller{
		Svc: svc,
		V:   validation.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

const (
	custID  = "a81bc81b-dead-4e5d-abff-90865d1e13b1"
	movieID = "b81bc81b-dead-4e5d-abff-90865d1e13b2"
)

func postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func rentBody() string {
	return `{"customerId":"` + custID + `","movieId":"` + movieID + `"}`
}

func TestCreate_Success(t *testing.T) {
	want := &model.Rental{
		ID:       "rental-1",
		Customer: model.RentalCustomer{ID: custID, Name: "Ada Lovelace"},
		Movie:    model.RentalMovie{ID: movieID, Title: "Metropolis", DailyRentalRate: 2.5},
		DateOut:  time.Now().UTC(),
	}
	h := newController(&mockSvc{
		rentFn: func(ctx context.Context, customerID, mvID string) (*model.Rental, error) {
			require.Equal(t, custID, customerID)
			require.Equal(t, movieID, mvID)
			return want, nil
		},
	})

	c, rec := postJSON("/api/rentals", rentBody())
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Rental
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "rental-1", got.ID)
	require.Equal(t, "Metropolis", got.Movie.Title)
	require.Nil(t, got.DateReturned)
}

func TestCreate_BusinessRejections(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid customer", errWithCode(rs.ErrInvalidCustomer), http.StatusBadRequest, "Invalid customer id"},
		{"invalid movie", errWithCode(rs.ErrInvalidMovie), http.StatusBadRequest, "Invalid movie id"},
		{"out of stock", errWithCode(rs.ErrOutOfStock), http.StatusBadRequest, "Movie out of stock"},
		{"already renting", errWithCode(rs.ErrAlreadyRenting), http.StatusBadRequest, "Customer is already renting this movie"},
		{"unexpected", errors.New("driver conflict"), http.StatusInternalServerError, "Transaction failed. Data unchanged."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newController(&mockSvc{
				rentFn: func(ctx context.Context, customerID, mvID string) (*model.Rental, error) {
					return nil, tc.err
				},
			})
			c, rec := postJSON("/api/rentals", rentBody())
			require.NoError(t, h.Create(c))
			require.Equal(t, tc.wantStatus, rec.Code)
			require.Contains(t, rec.Body.String(), tc.wantMsg)
		})
	}
}

func TestCreate_ValidationErrors(t *testing.T) {
	h := newController(&mockSvc{})

	t.Run("missing movie id", func(t *testing.T) {
		c, rec := postJSON("/api/rentals", `{"customerId":"`+custID+`"}`)
		require.NoError(t, h.Create(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("malformed customer id", func(t *testing.T) {
		c, rec := postJSON("/api/rentals", `{"customerId":"123","movieId":"`+movieID+`"}`)
		require.NoError(t, h.Create(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("unknown field", func(t *testing.T) {
		c, rec := postJSON("/api/rentals", `{"customerId":"`+custID+`","movieId":"`+movieID+`","tip":5}`)
		require.NoError(t, h.Create(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReturn_NoActiveRental(t *testing.T) {
	h := newController(&mockSvc{
		returnFn: func(ctx context.Context, customerID, mvID string) (*model.Rental, error) {
			return nil, errWithCode(rs.ErrNoActiveRental)
		},
	})
	c, rec := postJSON("/api/returns", rentBody())
	require.NoError(t, h.Return(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "No active rental")
}

func TestReturn_Success(t *testing.T) {
	fee := 7.5
	returned := time.Now().UTC()
	h := newController(&mockSvc{
		returnFn: func(ctx context.Context, customerID, mvID string) (*model.Rental, error) {
			return &model.Rental{
				ID:           "rental-1",
				DateOut:      returned.Add(-72 * time.Hour),
				DateReturned: &returned,
				RentalFee:    &fee,
			}, nil
		},
	})
	c, rec := postJSON("/api/returns", rentBody())
	require.NoError(t, h.Return(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Rental
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.DateReturned)
	require.NotNil(t, got.RentalFee)
	require.Equal(t, 7.5, *got.RentalFee)
}

func TestDelete_NotFound(t *testing.T) {
	h := newController(&mockSvc{
		byIDFn: func(ctx context.Context, id string) (*model.Rental, error) { return nil, nil },
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/rentals/"+custID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("id", custID)

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete_CancelsRental(t *testing.T) {
	active := &model.Rental{ID: "rental-1", Movie: model.RentalMovie{ID: movieID}}
	canceled := false
	h := newController(&mockSvc{
		byIDFn: func(ctx context.Context, id string) (*model.Rental, error) { return active, nil },
		cancelFn: func(ctx context.Context, rec *model.Rental) error {
			canceled = true
			require.Same(t, active, rec)
			return nil
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/rentals/"+custID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("id", custID)

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, canceled)
}

// errWithCode wraps a service code the way the coordinator reports it.
func errWithCode(code rs.ErrCode) error {
	return codedForTest{code: code}
}

type codedForTest struct{ code rs.ErrCode }

func (e codedForTest) Error() string    { return string(e.code) }
func (e codedForTest) Code() rs.ErrCode { return e.code }

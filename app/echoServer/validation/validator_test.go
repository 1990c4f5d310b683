package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/perpetual-pelican/vidly-backend/model"
)

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }

func TestPasswordRule(t *testing.T) {
	v := New()
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", "Sup3rSecret!", true},
		{"too short", "Ab1!xyz", false},
		{"no upper", "sup3rsecret!", false},
		{"no lower", "SUP3RSECRET!", false},
		{"no digit", "SuperSecret!", false},
		{"no symbol", "Sup3rSecret1", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(model.RegisterReq{
				Name:     "Ada Lovelace",
				Email:    "ada@example.com",
				Password: tc.password,
			})
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestCreateMovieReq(t *testing.T) {
	v := New()

	valid := model.CreateMovieReq{
		Title:           "Metropolis",
		DailyRentalRate: f64(2.5),
		NumberInStock:   i(10),
		GenreIDs:        []string{"a81bc81b-dead-4e5d-abff-90865d1e13b1"},
	}
	require.NoError(t, v.Struct(valid))

	t.Run("rate above bound", func(t *testing.T) {
		r := valid
		r.DailyRentalRate = f64(20.5)
		require.Error(t, v.Struct(r))
	})
	t.Run("rate of zero is allowed", func(t *testing.T) {
		r := valid
		r.DailyRentalRate = f64(0)
		require.NoError(t, v.Struct(r))
	})
	t.Run("missing stock", func(t *testing.T) {
		r := valid
		r.NumberInStock = nil
		require.Error(t, v.Struct(r))
	})
	t.Run("duplicate genre ids", func(t *testing.T) {
		r := valid
		r.GenreIDs = []string{
			"a81bc81b-dead-4e5d-abff-90865d1e13b1",
			"a81bc81b-dead-4e5d-abff-90865d1e13b1",
		}
		require.Error(t, v.Struct(r))
	})
	t.Run("malformed genre id", func(t *testing.T) {
		r := valid
		r.GenreIDs = []string{"not-a-uuid"}
		require.Error(t, v.Struct(r))
	})
	t.Run("eleven genres", func(t *testing.T) {
		r := valid
		r.GenreIDs = nil
		for i := 0; i < 11; i++ {
			r.GenreIDs = append(r.GenreIDs, "a81bc81b-dead-4e5d-abff-90865d1e13b"+string(rune('0'+i%10)))
		}
		require.Error(t, v.Struct(r))
	})
}

// Normalization must be idempotent: a normalized payload re-validated
// and re-normalized is unchanged.
func TestRateNormalizationRoundTrip(t *testing.T) {
	v := New()

	r := model.CreateMovieReq{
		Title:           "Metropolis",
		DailyRentalRate: f64(1.115),
		NumberInStock:   i(1),
	}
	require.NoError(t, v.Struct(r))
	r.Normalize()
	require.Equal(t, 1.12, *r.DailyRentalRate)

	require.NoError(t, v.Struct(r))
	r.Normalize()
	require.Equal(t, 1.12, *r.DailyRentalRate)
}

func TestBindStrictRejectsUnknownFields(t *testing.T) {
	e := echo.New()
	body := `{"name":"Ada Lovelace","phone":"555-0100","favoriteColor":"mauve"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var out model.CreateCustomerReq
	require.Error(t, BindStrict(c, &out))
}

func TestBindStrictAcceptsKnownFields(t *testing.T) {
	e := echo.New()
	body := `{"name":"Ada Lovelace","phone":"555-0100","isGold":true}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var out model.CreateCustomerReq
	require.NoError(t, BindStrict(c, &out))
	require.Equal(t, "Ada Lovelace", out.Name)
	require.NotNil(t, out.IsGold)
	require.True(t, *out.IsGold)
}

func TestUpdateReqEmpty(t *testing.T) {
	require.True(t, model.UpdateCustomerReq{}.Empty())
	name := "Ada Lovelace"
	require.False(t, model.UpdateCustomerReq{Name: &name}.Empty())

	require.True(t, model.UpdateMovieReq{}.Empty())
	stock := 3
	require.False(t, model.UpdateMovieReq{NumberInStock: &stock}.Empty())
}

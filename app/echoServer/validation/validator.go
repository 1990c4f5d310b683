package validation

import (
	"encoding/json"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("password", passwordRule)
	return &Validator{v: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}

// Struct is an alias so controllers holding the wrapper read the same as
// the echo.Validator call sites.
func (v *Validator) Struct(i interface{}) error {
	return v.v.Struct(i)
}

// BindStrict decodes the request body into out, rejecting unknown fields.
func BindStrict(c echo.Context, out any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

// passwordRule enforces the raw password policy: 8-72 chars with at
// least one lower, one upper, one digit and one symbol.
func passwordRule(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 8 || len(s) > 72 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

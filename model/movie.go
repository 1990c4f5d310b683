package model

import "math"

type Movie struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
	NumberInStock   int     `json:"numberInStock"`
	Genres          []Genre `json:"genres,omitempty"`
}

type CreateMovieReq struct {
	Title           string   `json:"title" validate:"required,min=3,max=128"`
	DailyRentalRate *float64 `json:"dailyRentalRate" validate:"required,min=0,max=20"`
	NumberInStock   *int     `json:"numberInStock" validate:"required,min=0,max=1000"`
	GenreIDs        []string `json:"genreIds" validate:"omitempty,min=1,max=10,unique,dive,uuid"`
}

// Normalize coerces fields to their declared precision.
func (r *CreateMovieReq) Normalize() {
	if r.DailyRentalRate != nil {
		v := RoundRate(*r.DailyRentalRate)
		r.DailyRentalRate = &v
	}
}

type UpdateMovieReq struct {
	Title           *string  `json:"title" validate:"omitempty,min=3,max=128"`
	DailyRentalRate *float64 `json:"dailyRentalRate" validate:"omitempty,min=0,max=20"`
	NumberInStock   *int     `json:"numberInStock" validate:"omitempty,min=0,max=1000"`
	GenreIDs        []string `json:"genreIds" validate:"omitempty,min=1,max=10,unique,dive,uuid"`
}

func (r *UpdateMovieReq) Normalize() {
	if r.DailyRentalRate != nil {
		v := RoundRate(*r.DailyRentalRate)
		r.DailyRentalRate = &v
	}
}

func (r UpdateMovieReq) Empty() bool {
	return r.Title == nil && r.DailyRentalRate == nil && r.NumberInStock == nil && r.GenreIDs == nil
}

// RoundRate rounds a rental rate to two decimals, half away from zero.
// The epsilon absorbs binary representation of decimal midpoints
// (1.115 is stored slightly below 1.115 and must still round to 1.12).
func RoundRate(v float64) float64 {
	return math.Round(v*100+1e-9) / 100
}

package model

import "time"

// RentalCustomer and RentalMovie are value snapshots embedded in a rental
// at rent time. They are never re-synced if the source entity changes.

type RentalCustomer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IsGold bool   `json:"isGold"`
}

type RentalMovie struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}

type Rental struct {
	ID           string         `json:"id"`
	Customer     RentalCustomer `json:"customer"`
	Movie        RentalMovie    `json:"movie"`
	DateOut      time.Time      `json:"dateOut"`
	DateReturned *time.Time     `json:"dateReturned,omitempty"`
	RentalFee    *float64       `json:"rentalFee,omitempty"`
}

// Active reports whether the rental has not been returned yet.
func (r *Rental) Active() bool { return r.DateReturned == nil }

// RentalReq is the body for both POST /api/rentals and POST /api/returns.
type RentalReq struct {
	CustomerID string `json:"customerId" validate:"required,uuid"`
	MovieID    string `json:"movieId" validate:"required,uuid"`
}

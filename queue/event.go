// Package queue publishes rental lifecycle events to a message broker
// so downstream consumers (notifications, analytics) can react without
// querying the primary database.
package queue

const (
	RentalCreated  = "rental.created"
	RentalReturned = "rental.returned"
	RentalCanceled = "rental.canceled"
)

type RentalEvent struct {
	Type       string   `json:"type"`
	RentalID   string   `json:"rental_id"`
	CustomerID string   `json:"customer_id"`
	MovieID    string   `json:"movie_id"`
	MovieTitle string   `json:"movie_title"`
	RentalFee  *float64 `json:"rental_fee,omitempty"`
	OccurredAt string   `json:"occurred_at"`
}

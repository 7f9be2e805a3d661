package models

import "time"

// Rental event types published after a workflow commits.
const (
	EventRentalCreated  = "rental.created"
	EventRentalReturned = "rental.returned"
)

// RentalEvent describes a committed change to a rental.
type RentalEvent struct {
	Type       string    `json:"type"`
	RentalID   string    `json:"rental_id"`
	CustomerID string    `json:"customer_id"`
	MovieID    string    `json:"movie_id"`
	RentalFee  *float64  `json:"rental_fee,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewRentalEvent builds an event of the given type for a rental.
func NewRentalEvent(eventType string, r *Rental, at time.Time) RentalEvent {
	return RentalEvent{
		Type:       eventType,
		RentalID:   r.ID,
		CustomerID: r.Customer.ID,
		MovieID:    r.Movie.ID,
		RentalFee:  r.RentalFee,
		OccurredAt: at,
	}
}

package models

import (
	"math"
	"time"
)

// Rental records one copy of a movie checked out by a customer.
// A rental is open while DateReturned is nil.
type Rental struct {
	ID           string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Customer     CustomerSnapshot `json:"customer" gorm:"embedded;embeddedPrefix:customer_"`
	Movie        MovieSnapshot    `json:"movie" gorm:"embedded;embeddedPrefix:movie_"`
	DateOut      time.Time        `json:"dateOut" gorm:"not null;index"`
	DateReturned *time.Time       `json:"dateReturned"`
	RentalFee    *float64         `json:"rentalFee"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// IsOpen reports whether the rental has not been returned yet.
func (r *Rental) IsOpen() bool {
	return r.DateReturned == nil
}

// FeeAt computes the fee owed if the rental is returned at the given time.
// Only whole elapsed days are charged, so a same-day return costs nothing.
func (r *Rental) FeeAt(returnedAt time.Time) float64 {
	elapsed := returnedAt.Sub(r.DateOut)
	if elapsed < 0 {
		return 0
	}
	days := math.Floor(elapsed.Hours() / 24)
	return days * r.Movie.DailyRentalRate
}

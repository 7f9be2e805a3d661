package models

import "time"

// Movie represents a title in the rental catalog.
// NumberInStock counts the copies currently on the shelf.
type Movie struct {
	ID              string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title           string        `json:"title" gorm:"type:varchar(255);not null" validate:"required,min=5,max=255"`
	NumberInStock   int           `json:"numberInStock" gorm:"not null;default:0;check:number_in_stock >= 0" validate:"gte=0,lte=255"`
	DailyRentalRate float64       `json:"dailyRentalRate" gorm:"not null;default:0" validate:"gte=0,lte=255"`
	Genre           GenreSnapshot `json:"genre" gorm:"embedded;embeddedPrefix:genre_"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// MovieSnapshot is the part of a movie copied into a rental.
type MovieSnapshot struct {
	ID              string  `json:"id" gorm:"type:varchar(36);index:idx_rentals_customer_movie,priority:2"`
	Title           string  `json:"title" gorm:"type:varchar(255)"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}

// Snapshot captures the fields a rental keeps about its movie.
func (m Movie) Snapshot() MovieSnapshot {
	return MovieSnapshot{ID: m.ID, Title: m.Title, DailyRentalRate: m.DailyRentalRate}
}

package repositories

import (
	"context"
	"time"

	"rentalstore/internal/models"
)

// RentalRepository defines the interface for rental data access.
// Writes that touch a rental and a movie together go through WithinTx.
type RentalRepository interface {
	GetAll(ctx context.Context) ([]models.Rental, error)
	GetByID(ctx context.Context, id string) (*models.Rental, error)
	WithinTx(ctx context.Context, fn func(tx RentalTx) error) error
}

// RentalTx is the set of operations available inside one rental transaction.
// Either every write made through it commits or none does.
type RentalTx interface {
	FindCustomer(id string) (*models.Customer, error)
	// FindMovie loads a movie and locks its row until the transaction ends.
	FindMovie(id string) (*models.Movie, error)
	// DecrementStock takes one copy off the shelf, or fails with ErrOutOfStock.
	DecrementStock(movieID string) error
	IncrementStock(movieID string) error

	InsertRental(rental *models.Rental) error
	// FindRental loads a rental by id and locks its row.
	FindRental(id string) (*models.Rental, error)
	// FindOpenRental returns the most recent open rental for the pair, locked.
	FindOpenRental(customerID, movieID string) (*models.Rental, error)
	HasClosedRental(customerID, movieID string) (bool, error)
	// CloseRental marks an open rental returned, or fails with ErrAlreadyClosed.
	CloseRental(rental *models.Rental, returnedAt time.Time, fee float64) error
	SetDateOut(rental *models.Rental, dateOut time.Time) error
	DeleteRental(id string) error
}

package repositories

import (
	"context"

	"rentalstore/internal/models"
)

// MovieRepository defines the interface for movie data access.
type MovieRepository interface {
	GetAll(ctx context.Context) ([]models.Movie, error)
	GetByID(ctx context.Context, id string) (*models.Movie, error)
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id string) (*models.Movie, error)
}

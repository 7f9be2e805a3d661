package repositories

import (
	"context"

	"rentalstore/internal/models"
)

// GenreRepository defines the interface for genre data access.
type GenreRepository interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id string) (*models.Genre, error)
	Create(ctx context.Context, genre *models.Genre) error
	Update(ctx context.Context, genre *models.Genre) error
	Delete(ctx context.Context, id string) (*models.Genre, error)
}

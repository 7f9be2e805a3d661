package repositories

import (
	"context"
	"fmt"

	"rentalstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMovieRepository is a GORM implementation of MovieRepository.
type GORMMovieRepository struct {
	db *gorm.DB
}

// NewGORMMovieRepository creates a new instance of GORMMovieRepository.
func NewGORMMovieRepository(db *gorm.DB) *GORMMovieRepository {
	return &GORMMovieRepository{db: db}
}

// GetAll retrieves all movies ordered by title.
func (r *GORMMovieRepository) GetAll(ctx context.Context) ([]models.Movie, error) {
	movies := []models.Movie{}
	if err := r.db.WithContext(ctx).Order("title").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to get all movies: %w", err)
	}
	return movies, nil
}

// GetByID retrieves a single movie by its ID.
func (r *GORMMovieRepository) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.WithContext(ctx).First(&movie, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("movie with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get movie by ID %s: %w", id, err)
	}
	return &movie, nil
}

// Create inserts a new movie, generating its ID when empty.
func (r *GORMMovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(movie).Error; err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

// Update overwrites the catalog fields and the genre snapshot of a movie.
func (r *GORMMovieRepository) Update(ctx context.Context, movie *models.Movie) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&models.Movie{}).Where("id = ?", movie.ID).Updates(map[string]interface{}{
		"title":             movie.Title,
		"number_in_stock":   movie.NumberInStock,
		"daily_rental_rate": movie.DailyRentalRate,
		"genre_id":          movie.Genre.ID,
		"genre_name":        movie.Genre.Name,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update movie: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("movie with ID %s: %w", movie.ID, ErrRecordNotFound)
	}
	if err := db.First(movie, "id = ?", movie.ID).Error; err != nil {
		return fmt.Errorf("failed to reload movie %s: %w", movie.ID, err)
	}
	return nil
}

// Delete removes a movie and returns the removed record.
func (r *GORMMovieRepository) Delete(ctx context.Context, id string) (*models.Movie, error) {
	var movie models.Movie
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&movie, "id = ?", id).Error; err != nil {
			if isNotFound(err) {
				return fmt.Errorf("movie with ID %s: %w", id, ErrRecordNotFound)
			}
			return err
		}
		return tx.Delete(&models.Movie{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete movie: %w", err)
	}
	return &movie, nil
}

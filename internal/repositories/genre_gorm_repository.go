package repositories

import (
	"context"
	"fmt"

	"rentalstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMGenreRepository is a GORM implementation of GenreRepository.
type GORMGenreRepository struct {
	db *gorm.DB
}

// NewGORMGenreRepository creates a new instance of GORMGenreRepository.
func NewGORMGenreRepository(db *gorm.DB) *GORMGenreRepository {
	return &GORMGenreRepository{db: db}
}

// GetAll retrieves all genres ordered by name.
func (r *GORMGenreRepository) GetAll(ctx context.Context) ([]models.Genre, error) {
	genres := []models.Genre{}
	if err := r.db.WithContext(ctx).Order("name").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("failed to get all genres: %w", err)
	}
	return genres, nil
}

// GetByID retrieves a single genre by its ID.
func (r *GORMGenreRepository) GetByID(ctx context.Context, id string) (*models.Genre, error) {
	var genre models.Genre
	if err := r.db.WithContext(ctx).First(&genre, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("genre with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get genre by ID %s: %w", id, err)
	}
	return &genre, nil
}

// Create inserts a new genre, generating its ID when empty.
func (r *GORMGenreRepository) Create(ctx context.Context, genre *models.Genre) error {
	if genre.ID == "" {
		genre.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(genre).Error; err != nil {
		return fmt.Errorf("failed to create genre: %w", err)
	}
	return nil
}

// Update renames an existing genre and reloads it.
func (r *GORMGenreRepository) Update(ctx context.Context, genre *models.Genre) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&models.Genre{}).Where("id = ?", genre.ID).Update("name", genre.Name)
	if res.Error != nil {
		return fmt.Errorf("failed to update genre: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("genre with ID %s: %w", genre.ID, ErrRecordNotFound)
	}
	if err := db.First(genre, "id = ?", genre.ID).Error; err != nil {
		return fmt.Errorf("failed to reload genre %s: %w", genre.ID, err)
	}
	return nil
}

// Delete removes a genre and returns the removed record.
func (r *GORMGenreRepository) Delete(ctx context.Context, id string) (*models.Genre, error) {
	var genre models.Genre
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&genre, "id = ?", id).Error; err != nil {
			if isNotFound(err) {
				return fmt.Errorf("genre with ID %s: %w", id, ErrRecordNotFound)
			}
			return err
		}
		return tx.Delete(&models.Genre{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete genre: %w", err)
	}
	return &genre, nil
}

package services

import (
	"context"
	"fmt"

	"rentalstore/internal/models"
	"rentalstore/internal/repositories"
	"rentalstore/internal/validation"
)

// GenreService handles business logic related to genres.
type GenreService struct {
	repo     repositories.GenreRepository
	validate *validation.Validator
}

// NewGenreService creates a new GenreService.
func NewGenreService(repo repositories.GenreRepository, validate *validation.Validator) *GenreService {
	return &GenreService{repo: repo, validate: validate}
}

// GetAllGenres retrieves all genres.
func (s *GenreService) GetAllGenres(ctx context.Context) ([]models.Genre, error) {
	return s.repo.GetAll(ctx)
}

// GetGenreByID retrieves a single genre. Malformed ids are reported as ErrNotFound.
func (s *GenreService) GetGenreByID(ctx context.Context, id string) (*models.Genre, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("genre %q: %w", id, ErrNotFound)
	}
	genre, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return genre, nil
}

// CreateGenre validates and stores a new genre.
func (s *GenreService) CreateGenre(ctx context.Context, genre *models.Genre) error {
	genre.ID = ""
	if err := validationFailed(s.validate, genre); err != nil {
		return err
	}
	return s.repo.Create(ctx, genre)
}

// UpdateGenre validates and renames an existing genre.
// Movies keep the genre snapshot taken when they were written.
func (s *GenreService) UpdateGenre(ctx context.Context, genre *models.Genre) error {
	if !isValidID(genre.ID) {
		return fmt.Errorf("genre %q: %w", genre.ID, ErrNotFound)
	}
	if err := validationFailed(s.validate, genre); err != nil {
		return err
	}
	return notFound(s.repo.Update(ctx, genre))
}

// DeleteGenre removes a genre and returns it.
func (s *GenreService) DeleteGenre(ctx context.Context, id string) (*models.Genre, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("genre %q: %w", id, ErrNotFound)
	}
	genre, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return genre, nil
}

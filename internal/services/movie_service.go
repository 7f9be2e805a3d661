package services

import (
	"context"
	"errors"
	"fmt"

	"rentalstore/internal/models"
	"rentalstore/internal/repositories"
	"rentalstore/internal/validation"
)

// MovieInput is the writable part of a movie; the genre is referenced by id.
type MovieInput struct {
	Title           string  `json:"title" validate:"required,min=5,max=255"`
	NumberInStock   int     `json:"numberInStock" validate:"gte=0,lte=255"`
	DailyRentalRate float64 `json:"dailyRentalRate" validate:"gte=0,lte=255"`
	GenreID         string  `json:"genreId" validate:"required"`
}

// MovieService handles business logic related to movies.
type MovieService struct {
	repo     repositories.MovieRepository
	genres   repositories.GenreRepository
	validate *validation.Validator
}

// NewMovieService creates a new MovieService.
func NewMovieService(repo repositories.MovieRepository, genres repositories.GenreRepository, validate *validation.Validator) *MovieService {
	return &MovieService{repo: repo, genres: genres, validate: validate}
}

// GetAllMovies retrieves all movies.
func (s *MovieService) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	return s.repo.GetAll(ctx)
}

// GetMovieByID retrieves a single movie.
func (s *MovieService) GetMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("movie %q: %w", id, ErrNotFound)
	}
	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return movie, nil
}

// CreateMovie validates the input, snapshots the referenced genre and stores the movie.
func (s *MovieService) CreateMovie(ctx context.Context, in MovieInput) (*models.Movie, error) {
	movie, err := s.build(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// UpdateMovie overwrites a movie, taking a fresh snapshot of its genre.
func (s *MovieService) UpdateMovie(ctx context.Context, id string, in MovieInput) (*models.Movie, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("movie %q: %w", id, ErrNotFound)
	}
	movie, err := s.build(ctx, in)
	if err != nil {
		return nil, err
	}
	movie.ID = id
	if err := s.repo.Update(ctx, movie); err != nil {
		return nil, notFound(err)
	}
	return movie, nil
}

// DeleteMovie removes a movie and returns it. Rentals keep their movie snapshot.
func (s *MovieService) DeleteMovie(ctx context.Context, id string) (*models.Movie, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("movie %q: %w", id, ErrNotFound)
	}
	movie, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return movie, nil
}

func (s *MovieService) build(ctx context.Context, in MovieInput) (*models.Movie, error) {
	if err := validationFailed(s.validate, in); err != nil {
		return nil, err
	}
	genre, err := s.resolveGenre(ctx, in.GenreID)
	if err != nil {
		return nil, err
	}
	movie := &models.Movie{
		Title:           in.Title,
		NumberInStock:   in.NumberInStock,
		DailyRentalRate: in.DailyRentalRate,
		Genre:           genre.Snapshot(),
	}
	if err := validationFailed(s.validate, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) resolveGenre(ctx context.Context, id string) (*models.Genre, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("%w: genre %q does not exist", ErrInvalidReference, id)
	}
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: genre %q does not exist", ErrInvalidReference, id)
		}
		return nil, err
	}
	return genre, nil
}

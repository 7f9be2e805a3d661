package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"rentalstore/internal/models"
	"rentalstore/internal/repositories"
	"rentalstore/internal/services"
	"rentalstore/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenreService_CreateGenre(t *testing.T) {
	mockRepo := new(MockGenreRepository)
	genreService := services.NewGenreService(mockRepo, validation.New())
	ctx := context.Background()

	genre := &models.Genre{ID: "client-chosen", Name: "Action"}
	mockRepo.On("Create", mock.Anything, genre).Return(nil).Once()

	err := genreService.CreateGenre(ctx, genre)
	assert.NoError(t, err)
	assert.Empty(t, genre.ID)
	mockRepo.AssertExpectations(t)

	err = genreService.CreateGenre(ctx, &models.Genre{Name: "ab"})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name must be at least 3 characters in length", verr.Message)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestGenreService_UpdateAndDelete(t *testing.T) {
	mockRepo := new(MockGenreRepository)
	genreService := services.NewGenreService(mockRepo, validation.New())
	ctx := context.Background()
	id := uuid.NewString()

	genre := &models.Genre{ID: id, Name: "Drama"}
	mockRepo.On("Update", mock.Anything, genre).Return(nil).Once()
	assert.NoError(t, genreService.UpdateGenre(ctx, genre))

	missing := &models.Genre{ID: uuid.NewString(), Name: "Drama"}
	mockRepo.On("Update", mock.Anything, missing).Return(fmt.Errorf("genre: %w", repositories.ErrRecordNotFound)).Once()
	assert.ErrorIs(t, genreService.UpdateGenre(ctx, missing), services.ErrNotFound)

	assert.ErrorIs(t, genreService.UpdateGenre(ctx, &models.Genre{ID: "42", Name: "Drama"}), services.ErrNotFound)

	mockRepo.On("Delete", mock.Anything, id).Return(genre, nil).Once()
	deleted, err := genreService.DeleteGenre(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Drama", deleted.Name)

	mockRepo.On("Delete", mock.Anything, id).Return(nil, repositories.ErrRecordNotFound).Once()
	_, err = genreService.DeleteGenre(ctx, id)
	assert.ErrorIs(t, err, services.ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestGenreService_GetGenreByID(t *testing.T) {
	mockRepo := new(MockGenreRepository)
	genreService := services.NewGenreService(mockRepo, validation.New())
	id := uuid.NewString()

	mockRepo.On("GetByID", mock.Anything, id).Return(&models.Genre{ID: id, Name: "Horror"}, nil).Once()
	genre, err := genreService.GetGenreByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Horror", genre.Name)

	_, err = genreService.GetGenreByID(context.Background(), "abc")
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	customerService := services.NewCustomerService(mockRepo, validation.New())
	ctx := context.Background()

	customer := &models.Customer{Name: "Jane Customer", Phone: "12345678", IsGold: true}
	mockRepo.On("Create", mock.Anything, customer).Return(nil).Once()
	assert.NoError(t, customerService.CreateCustomer(ctx, customer))

	dup := &models.Customer{Name: "John Customer", Phone: "12345678"}
	mockRepo.On("Create", mock.Anything, dup).Return(fmt.Errorf("customer: %w", repositories.ErrDuplicate)).Once()
	err := customerService.CreateCustomer(ctx, dup)
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone 12345678 is already registered", verr.Message)

	err = customerService.CreateCustomer(ctx, &models.Customer{Name: "Jane", Phone: "12345678"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "name")

	err = customerService.CreateCustomer(ctx, &models.Customer{Name: "Jane Customer", Phone: "123"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "phone")

	mockRepo.AssertExpectations(t)
}

func TestCustomerService_UpdateCustomer(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	customerService := services.NewCustomerService(mockRepo, validation.New())
	ctx := context.Background()

	customer := &models.Customer{ID: uuid.NewString(), Name: "Jane Customer", Phone: "87654321"}
	mockRepo.On("Update", mock.Anything, customer).Return(fmt.Errorf("customer: %w", repositories.ErrDuplicate)).Once()
	var verr *services.ValidationError
	assert.ErrorAs(t, customerService.UpdateCustomer(ctx, customer), &verr)

	mockRepo.On("Update", mock.Anything, customer).Return(repositories.ErrRecordNotFound).Once()
	assert.ErrorIs(t, customerService.UpdateCustomer(ctx, customer), services.ErrNotFound)

	mockRepo.On("Update", mock.Anything, customer).Return(errors.New("db down")).Once()
	err := customerService.UpdateCustomer(ctx, customer)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestMovieService_CreateMovie(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	genreRepo := new(MockGenreRepository)
	movieService := services.NewMovieService(movieRepo, genreRepo, validation.New())
	ctx := context.Background()

	genre := &models.Genre{ID: uuid.NewString(), Name: "Comedy"}
	genreRepo.On("GetByID", mock.Anything, genre.ID).Return(genre, nil).Once()
	movieRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Movie")).Return(nil).Once()

	movie, err := movieService.CreateMovie(ctx, services.MovieInput{
		Title: "Airplane!", NumberInStock: 4, DailyRentalRate: 1.5, GenreID: genre.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.GenreSnapshot{ID: genre.ID, Name: "Comedy"}, movie.Genre)
	assert.Equal(t, 4, movie.NumberInStock)

	movieRepo.AssertExpectations(t)
	genreRepo.AssertExpectations(t)
}

func TestMovieService_CreateMovie_Rejections(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	genreRepo := new(MockGenreRepository)
	movieService := services.NewMovieService(movieRepo, genreRepo, validation.New())
	ctx := context.Background()

	missing := uuid.NewString()
	genreRepo.On("GetByID", mock.Anything, missing).Return(nil, repositories.ErrRecordNotFound).Once()
	_, err := movieService.CreateMovie(ctx, services.MovieInput{Title: "Airplane!", GenreID: missing})
	assert.ErrorIs(t, err, services.ErrInvalidReference)

	_, err = movieService.CreateMovie(ctx, services.MovieInput{Title: "Airplane!", GenreID: "nope"})
	assert.ErrorIs(t, err, services.ErrInvalidReference)

	var verr *services.ValidationError
	_, err = movieService.CreateMovie(ctx, services.MovieInput{Title: "Up", GenreID: missing})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "title")

	_, err = movieService.CreateMovie(ctx, services.MovieInput{Title: "Airplane!", NumberInStock: -1, GenreID: missing})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "numberInStock")

	movieRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	genreRepo.AssertExpectations(t)
}

func TestMovieService_UpdateMovie(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	genreRepo := new(MockGenreRepository)
	movieService := services.NewMovieService(movieRepo, genreRepo, validation.New())
	ctx := context.Background()

	id := uuid.NewString()
	genre := &models.Genre{ID: uuid.NewString(), Name: "Thriller"}
	genreRepo.On("GetByID", mock.Anything, genre.ID).Return(genre, nil).Twice()
	movieRepo.On("Update", mock.Anything, mock.MatchedBy(func(m *models.Movie) bool { return m.ID == id })).Return(nil).Once()

	in := services.MovieInput{Title: "Se7en Days", NumberInStock: 2, DailyRentalRate: 3, GenreID: genre.ID}
	movie, err := movieService.UpdateMovie(ctx, id, in)
	require.NoError(t, err)
	assert.Equal(t, id, movie.ID)
	assert.Equal(t, "Thriller", movie.Genre.Name)

	other := uuid.NewString()
	movieRepo.On("Update", mock.Anything, mock.MatchedBy(func(m *models.Movie) bool { return m.ID == other })).
		Return(repositories.ErrRecordNotFound).Once()
	_, err = movieService.UpdateMovie(ctx, other, in)
	assert.ErrorIs(t, err, services.ErrNotFound)

	movieRepo.AssertExpectations(t)
}

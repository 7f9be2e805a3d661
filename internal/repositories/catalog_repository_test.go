package repositories_test

import (
	"context"
	"testing"

	"rentalstore/internal/models"
	"rentalstore/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMGenreRepository_CRUD(t *testing.T) {
	repo := repositories.NewGORMGenreRepository(newTestDB(t))
	ctx := context.Background()

	thriller := &models.Genre{Name: "Thriller"}
	action := &models.Genre{Name: "Action"}
	require.NoError(t, repo.Create(ctx, thriller))
	require.NoError(t, repo.Create(ctx, action))
	assert.NotEmpty(t, thriller.ID)

	genres, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Action", genres[0].Name)

	thriller.Name = "Suspense"
	require.NoError(t, repo.Update(ctx, thriller))
	got, err := repo.GetByID(ctx, thriller.ID)
	require.NoError(t, err)
	assert.Equal(t, "Suspense", got.Name)

	err = repo.Update(ctx, &models.Genre{ID: uuid.NewString(), Name: "Ghost"})
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)

	deleted, err := repo.Delete(ctx, thriller.ID)
	require.NoError(t, err)
	assert.Equal(t, "Suspense", deleted.Name)

	_, err = repo.GetByID(ctx, thriller.ID)
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
	_, err = repo.Delete(ctx, thriller.ID)
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestGORMCustomerRepository_DuplicatePhone(t *testing.T) {
	repo := repositories.NewGORMCustomerRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Customer{Name: "Jane Customer", Phone: "12345678"}))
	err := repo.Create(ctx, &models.Customer{Name: "John Customer", Phone: "12345678"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	other := &models.Customer{Name: "Ann Customer", Phone: "87654321"}
	require.NoError(t, repo.Create(ctx, other))
	other.Phone = "12345678"
	assert.ErrorIs(t, repo.Update(ctx, other), repositories.ErrDuplicate)

	other.Phone = "11112222"
	other.IsGold = true
	require.NoError(t, repo.Update(ctx, other))
	got, err := repo.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.True(t, got.IsGold)
	assert.Equal(t, "11112222", got.Phone)

	customers, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Ann Customer", customers[0].Name)
}

func TestGORMMovieRepository_KeepsGenreSnapshot(t *testing.T) {
	db := newTestDB(t)
	genres := repositories.NewGORMGenreRepository(db)
	movies := repositories.NewGORMMovieRepository(db)
	ctx := context.Background()

	genre := &models.Genre{Name: "Comedy"}
	require.NoError(t, genres.Create(ctx, genre))

	movie := &models.Movie{Title: "Airplane!", NumberInStock: 3, DailyRentalRate: 1.5, Genre: genre.Snapshot()}
	require.NoError(t, movies.Create(ctx, movie))

	genre.Name = "Spoof"
	require.NoError(t, genres.Update(ctx, genre))

	got, err := movies.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Comedy", got.Genre.Name)
	assert.Equal(t, genre.ID, got.Genre.ID)
	assert.Equal(t, 3, got.NumberInStock)

	got.Title = "Airplane II"
	got.NumberInStock = 5
	require.NoError(t, movies.Update(ctx, got))
	reloaded, err := movies.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Airplane II", reloaded.Title)
	assert.Equal(t, 5, reloaded.NumberInStock)
}

func TestGORMUserRepository(t *testing.T) {
	repo := repositories.NewGORMUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &models.User{Name: "Test User", Email: "test@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	err := repo.Create(ctx, &models.User{Name: "Other User", Email: "test@example.com", Password: "hash"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	got, err := repo.GetByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

package services_test

import (
	"context"
	"time"

	"rentalstore/internal/models"
	"rentalstore/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockGenreRepository is a mock implementation of repositories.GenreRepository
type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) GetAll(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreRepository) GetByID(ctx context.Context, id string) (*models.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *MockGenreRepository) Create(ctx context.Context, genre *models.Genre) error {
	return m.Called(ctx, genre).Error(0)
}

func (m *MockGenreRepository) Update(ctx context.Context, genre *models.Genre) error {
	return m.Called(ctx, genre).Error(0)
}

func (m *MockGenreRepository) Delete(ctx context.Context, id string) (*models.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

// MockCustomerRepository is a mock implementation of repositories.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id string) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

// MockMovieRepository is a mock implementation of repositories.MovieRepository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) GetAll(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *models.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id string) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockRentalRepository runs WithinTx callbacks against Tx. CommitErr, when set,
// is returned after a callback succeeds to simulate a failed commit.
type MockRentalRepository struct {
	mock.Mock
	Tx        *MockRentalTx
	CommitErr error
}

func (m *MockRentalRepository) GetAll(ctx context.Context) ([]models.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Rental), args.Error(1)
}

func (m *MockRentalRepository) GetByID(ctx context.Context, id string) (*models.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rental), args.Error(1)
}

func (m *MockRentalRepository) WithinTx(ctx context.Context, fn func(tx repositories.RentalTx) error) error {
	if err := fn(m.Tx); err != nil {
		return err
	}
	return m.CommitErr
}

// MockRentalTx is a mock implementation of repositories.RentalTx
type MockRentalTx struct {
	mock.Mock
}

func (m *MockRentalTx) FindCustomer(id string) (*models.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockRentalTx) FindMovie(id string) (*models.Movie, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockRentalTx) DecrementStock(movieID string) error {
	return m.Called(movieID).Error(0)
}

func (m *MockRentalTx) IncrementStock(movieID string) error {
	return m.Called(movieID).Error(0)
}

func (m *MockRentalTx) InsertRental(rental *models.Rental) error {
	return m.Called(rental).Error(0)
}

func (m *MockRentalTx) FindRental(id string) (*models.Rental, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rental), args.Error(1)
}

func (m *MockRentalTx) FindOpenRental(customerID, movieID string) (*models.Rental, error) {
	args := m.Called(customerID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rental), args.Error(1)
}

func (m *MockRentalTx) HasClosedRental(customerID, movieID string) (bool, error) {
	args := m.Called(customerID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRentalTx) CloseRental(rental *models.Rental, returnedAt time.Time, fee float64) error {
	args := m.Called(rental, returnedAt, fee)
	if err := args.Error(0); err != nil {
		return err
	}
	rental.DateReturned = &returnedAt
	rental.RentalFee = &fee
	return nil
}

func (m *MockRentalTx) SetDateOut(rental *models.Rental, dateOut time.Time) error {
	args := m.Called(rental, dateOut)
	if err := args.Error(0); err != nil {
		return err
	}
	rental.DateOut = dateOut
	return nil
}

func (m *MockRentalTx) DeleteRental(id string) error {
	return m.Called(id).Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishRentalEvent(event models.RentalEvent) error {
	return m.Called(event).Error(0)
}

// MockRecorder is a mock implementation of services.WorkflowRecorder
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RentalCreated()               { m.Called() }
func (m *MockRecorder) RentalReturned()              { m.Called() }
func (m *MockRecorder) RentalRejected(reason string) { m.Called(reason) }

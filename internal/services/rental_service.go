package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentalstore/internal/models"
	"rentalstore/internal/repositories"

	"go.uber.org/zap"
)

// EventPublisher delivers rental events once a workflow has committed.
type EventPublisher interface {
	PublishRentalEvent(event models.RentalEvent) error
}

// WorkflowRecorder counts workflow outcomes.
type WorkflowRecorder interface {
	RentalCreated()
	RentalReturned()
	RentalRejected(reason string)
}

type noopRecorder struct{}

func (noopRecorder) RentalCreated()        {}
func (noopRecorder) RentalReturned()       {}
func (noopRecorder) RentalRejected(string) {}

// RentalService runs the rental and return workflows. Each workflow changes a
// rental and its movie's stock inside one transaction.
type RentalService struct {
	repo      repositories.RentalRepository
	publisher EventPublisher
	recorder  WorkflowRecorder
	log       *zap.Logger
	now       func() time.Time
}

// NewRentalService creates a new RentalService. publisher and recorder may be nil.
func NewRentalService(repo repositories.RentalRepository, publisher EventPublisher, recorder WorkflowRecorder, log *zap.Logger) *RentalService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RentalService{
		repo:      repo,
		publisher: publisher,
		recorder:  recorder,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the time source used for checkout and return dates.
func (s *RentalService) SetClock(now func() time.Time) {
	s.now = now
}

// GetAllRentals retrieves all rentals.
func (s *RentalService) GetAllRentals(ctx context.Context) ([]models.Rental, error) {
	return s.repo.GetAll(ctx)
}

// GetRentalByID retrieves a single rental.
func (s *RentalService) GetRentalByID(ctx context.Context, id string) (*models.Rental, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("rental %q: %w", id, ErrNotFound)
	}
	rental, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return rental, nil
}

// CreateRental checks out one copy of a movie to a customer. The new rental and
// the stock decrement commit together or not at all.
func (s *RentalService) CreateRental(ctx context.Context, customerID, movieID string) (*models.Rental, error) {
	if !isValidID(customerID) {
		return nil, s.reject("invalid_customer", fmt.Errorf("%w: customer %q does not exist", ErrInvalidReference, customerID))
	}
	if !isValidID(movieID) {
		return nil, s.reject("invalid_movie", fmt.Errorf("%w: movie %q does not exist", ErrInvalidReference, movieID))
	}

	var rental *models.Rental
	err := s.repo.WithinTx(ctx, func(tx repositories.RentalTx) error {
		customer, err := tx.FindCustomer(customerID)
		if err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				return fmt.Errorf("%w: customer %q does not exist", ErrInvalidReference, customerID)
			}
			return err
		}
		movie, err := tx.FindMovie(movieID)
		if err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				return fmt.Errorf("%w: movie %q does not exist", ErrInvalidReference, movieID)
			}
			return err
		}
		if movie.NumberInStock <= 0 {
			return ErrOutOfStock
		}
		if err := tx.DecrementStock(movie.ID); err != nil {
			if errors.Is(err, repositories.ErrOutOfStock) {
				return ErrOutOfStock
			}
			return err
		}

		r := &models.Rental{
			Customer: customer.Snapshot(),
			Movie:    movie.Snapshot(),
			DateOut:  s.now(),
		}
		if err := tx.InsertRental(r); err != nil {
			return err
		}
		rental = r
		return nil
	})
	if err != nil {
		return nil, s.workflowError("create rental", err)
	}

	s.recorder.RentalCreated()
	s.publish(models.EventRentalCreated, rental)
	return rental, nil
}

// UpdateRentalDateOut corrects the checkout date of an open rental.
func (s *RentalService) UpdateRentalDateOut(ctx context.Context, id string, dateOut time.Time) (*models.Rental, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("rental %q: %w", id, ErrNotFound)
	}
	if dateOut.After(s.now()) {
		return nil, invalid("dateOut must not be in the future")
	}

	var rental *models.Rental
	err := s.repo.WithinTx(ctx, func(tx repositories.RentalTx) error {
		r, err := tx.FindRental(id)
		if err != nil {
			return notFound(err)
		}
		if !r.IsOpen() {
			return ErrAlreadyProcessed
		}
		if err := tx.SetDateOut(r, dateOut.UTC()); err != nil {
			if errors.Is(err, repositories.ErrAlreadyClosed) {
				return ErrAlreadyProcessed
			}
			return err
		}
		rental = r
		return nil
	})
	if err != nil {
		return nil, s.workflowError("update rental", err)
	}
	return rental, nil
}

// DeleteRental removes a rental. An open rental puts its copy back in stock in
// the same transaction.
func (s *RentalService) DeleteRental(ctx context.Context, id string) (*models.Rental, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("rental %q: %w", id, ErrNotFound)
	}

	var rental *models.Rental
	err := s.repo.WithinTx(ctx, func(tx repositories.RentalTx) error {
		r, err := tx.FindRental(id)
		if err != nil {
			return notFound(err)
		}
		if err := tx.DeleteRental(r.ID); err != nil {
			return err
		}
		if r.IsOpen() {
			if err := s.restock(tx, r); err != nil {
				return err
			}
		}
		rental = r
		return nil
	})
	if err != nil {
		return nil, s.workflowError("delete rental", err)
	}
	return rental, nil
}

// restock returns a copy to the shelf. A movie deleted from the catalog has no
// stock to restore.
func (s *RentalService) restock(tx repositories.RentalTx, r *models.Rental) error {
	err := tx.IncrementStock(r.Movie.ID)
	if errors.Is(err, repositories.ErrRecordNotFound) {
		s.log.Warn("movie no longer in catalog, stock not restored",
			zap.String("rental_id", r.ID), zap.String("movie_id", r.Movie.ID))
		return nil
	}
	return err
}

// workflowError passes domain errors through and wraps anything else as ErrTransient.
func (s *RentalService) workflowError(op string, err error) error {
	var verr *ValidationError
	switch {
	case errors.Is(err, ErrInvalidReference):
		return s.reject("invalid_reference", err)
	case errors.Is(err, ErrOutOfStock):
		return s.reject("out_of_stock", err)
	case errors.Is(err, ErrAlreadyProcessed):
		return s.reject("already_processed", err)
	case errors.Is(err, ErrNotFound):
		return s.reject("not_found", err)
	case errors.As(err, &verr):
		return err
	}
	s.log.Error("rental workflow failed", zap.String("op", op), zap.Error(err))
	return transient(op, err)
}

func (s *RentalService) reject(reason string, err error) error {
	s.recorder.RentalRejected(reason)
	return err
}

// publish sends an event after commit. Failures are logged; the database stays
// the source of truth.
func (s *RentalService) publish(eventType string, rental *models.Rental) {
	if s.publisher == nil {
		return
	}
	event := models.NewRentalEvent(eventType, rental, s.now())
	if err := s.publisher.PublishRentalEvent(event); err != nil {
		s.log.Warn("failed to publish rental event",
			zap.String("type", eventType), zap.String("rental_id", rental.ID), zap.Error(err))
	}
}

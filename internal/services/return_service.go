package services

import (
	"context"
	"errors"
	"fmt"

	"rentalstore/internal/models"
	"rentalstore/internal/repositories"
)

// ProcessReturn closes the open rental for a customer and movie, charging the
// fee for whole elapsed days and putting the copy back in stock. The close and
// the restock commit together.
//
// When several rentals for the pair are open, the most recent checkout is closed.
// A pair whose rentals are all closed yields ErrAlreadyProcessed; a pair with no
// rentals at all yields ErrNotFound.
func (s *RentalService) ProcessReturn(ctx context.Context, customerID, movieID string) (*models.Rental, error) {
	if !isValidID(customerID) || !isValidID(movieID) {
		return nil, s.reject("not_found", fmt.Errorf("no rental found for customer %q and movie %q: %w", customerID, movieID, ErrNotFound))
	}

	var rental *models.Rental
	err := s.repo.WithinTx(ctx, func(tx repositories.RentalTx) error {
		r, err := tx.FindOpenRental(customerID, movieID)
		if err != nil {
			if !errors.Is(err, repositories.ErrRecordNotFound) {
				return err
			}
			closed, cerr := tx.HasClosedRental(customerID, movieID)
			if cerr != nil {
				return cerr
			}
			if closed {
				return ErrAlreadyProcessed
			}
			return fmt.Errorf("no rental found for customer %q and movie %q: %w", customerID, movieID, ErrNotFound)
		}

		returnedAt := s.now()
		if err := tx.CloseRental(r, returnedAt, r.FeeAt(returnedAt)); err != nil {
			if errors.Is(err, repositories.ErrAlreadyClosed) {
				return ErrAlreadyProcessed
			}
			return err
		}
		if err := s.restock(tx, r); err != nil {
			return err
		}
		rental = r
		return nil
	})
	if err != nil {
		return nil, s.workflowError("process return", err)
	}

	s.recorder.RentalReturned()
	s.publish(models.EventRentalReturned, rental)
	return rental, nil
}

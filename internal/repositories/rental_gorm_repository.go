package repositories

import (
	"context"
	"fmt"
	"time"

	"rentalstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMRentalRepository is a GORM implementation of RentalRepository.
type GORMRentalRepository struct {
	db *gorm.DB
}

// NewGORMRentalRepository creates a new instance of GORMRentalRepository.
func NewGORMRentalRepository(db *gorm.DB) *GORMRentalRepository {
	return &GORMRentalRepository{db: db}
}

// GetAll retrieves all rentals, most recent checkout first.
func (r *GORMRentalRepository) GetAll(ctx context.Context) ([]models.Rental, error) {
	rentals := []models.Rental{}
	if err := r.db.WithContext(ctx).Order("date_out DESC").Find(&rentals).Error; err != nil {
		return nil, fmt.Errorf("failed to get all rentals: %w", err)
	}
	return rentals, nil
}

// GetByID retrieves a single rental by its ID.
func (r *GORMRentalRepository) GetByID(ctx context.Context, id string) (*models.Rental, error) {
	var rental models.Rental
	if err := r.db.WithContext(ctx).First(&rental, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("rental with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get rental by ID %s: %w", id, err)
	}
	return &rental, nil
}

// WithinTx runs fn inside a database transaction. The transaction commits when fn
// returns nil and rolls back otherwise.
func (r *GORMRentalRepository) WithinTx(ctx context.Context, fn func(tx RentalTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRentalTx{tx: tx})
	})
}

type gormRentalTx struct {
	tx *gorm.DB
}

func (t *gormRentalTx) forUpdate() *gorm.DB {
	return t.tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (t *gormRentalTx) FindCustomer(id string) (*models.Customer, error) {
	var customer models.Customer
	if err := t.tx.First(&customer, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("customer with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get customer by ID %s: %w", id, err)
	}
	return &customer, nil
}

func (t *gormRentalTx) FindMovie(id string) (*models.Movie, error) {
	var movie models.Movie
	if err := t.forUpdate().First(&movie, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("movie with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to lock movie %s: %w", id, err)
	}
	return &movie, nil
}

func (t *gormRentalTx) DecrementStock(movieID string) error {
	res := t.tx.Model(&models.Movie{}).
		Where("id = ? AND number_in_stock > 0", movieID).
		Update("number_in_stock", gorm.Expr("number_in_stock - ?", 1))
	if res.Error != nil {
		return fmt.Errorf("failed to decrement stock of movie %s: %w", movieID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("movie %s: %w", movieID, ErrOutOfStock)
	}
	return nil
}

func (t *gormRentalTx) IncrementStock(movieID string) error {
	res := t.tx.Model(&models.Movie{}).
		Where("id = ?", movieID).
		Update("number_in_stock", gorm.Expr("number_in_stock + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("failed to increment stock of movie %s: %w", movieID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("movie with ID %s: %w", movieID, ErrRecordNotFound)
	}
	return nil
}

func (t *gormRentalTx) InsertRental(rental *models.Rental) error {
	if rental.ID == "" {
		rental.ID = uuid.New().String()
	}
	if err := t.tx.Create(rental).Error; err != nil {
		return fmt.Errorf("failed to create rental: %w", err)
	}
	return nil
}

func (t *gormRentalTx) FindRental(id string) (*models.Rental, error) {
	var rental models.Rental
	if err := t.forUpdate().First(&rental, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("rental with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to lock rental %s: %w", id, err)
	}
	return &rental, nil
}

func (t *gormRentalTx) FindOpenRental(customerID, movieID string) (*models.Rental, error) {
	var rental models.Rental
	err := t.forUpdate().
		Where("customer_id = ? AND movie_id = ? AND date_returned IS NULL", customerID, movieID).
		Order("date_out DESC").
		Order("id DESC").
		First(&rental).Error
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("open rental for customer %s and movie %s: %w", customerID, movieID, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to look up open rental: %w", err)
	}
	return &rental, nil
}

func (t *gormRentalTx) HasClosedRental(customerID, movieID string) (bool, error) {
	var n int64
	err := t.tx.Model(&models.Rental{}).
		Where("customer_id = ? AND movie_id = ? AND date_returned IS NOT NULL", customerID, movieID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to count closed rentals: %w", err)
	}
	return n > 0, nil
}

func (t *gormRentalTx) CloseRental(rental *models.Rental, returnedAt time.Time, fee float64) error {
	res := t.tx.Model(&models.Rental{}).
		Where("id = ? AND date_returned IS NULL", rental.ID).
		Updates(map[string]interface{}{
			"date_returned": returnedAt,
			"rental_fee":    fee,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to close rental %s: %w", rental.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("rental %s: %w", rental.ID, ErrAlreadyClosed)
	}
	rental.DateReturned = &returnedAt
	rental.RentalFee = &fee
	return nil
}

func (t *gormRentalTx) SetDateOut(rental *models.Rental, dateOut time.Time) error {
	res := t.tx.Model(&models.Rental{}).
		Where("id = ? AND date_returned IS NULL", rental.ID).
		Update("date_out", dateOut)
	if res.Error != nil {
		return fmt.Errorf("failed to update rental %s: %w", rental.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("rental %s: %w", rental.ID, ErrAlreadyClosed)
	}
	rental.DateOut = dateOut
	return nil
}

func (t *gormRentalTx) DeleteRental(id string) error {
	res := t.tx.Delete(&models.Rental{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete rental %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("rental with ID %s: %w", id, ErrRecordNotFound)
	}
	return nil
}

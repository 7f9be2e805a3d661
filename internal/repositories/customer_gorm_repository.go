package repositories

import (
	"context"
	"fmt"

	"rentalstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{db: db}
}

// GetAll retrieves all customers ordered by name.
func (r *GORMCustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := r.db.WithContext(ctx).Order("name").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all customers: %w", err)
	}
	return customers, nil
}

// GetByID retrieves a single customer by its ID.
func (r *GORMCustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("customer with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get customer by ID %s: %w", id, err)
	}
	return &customer, nil
}

// Create inserts a new customer. A phone number already on file yields ErrDuplicate.
func (r *GORMCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("customer phone %s: %w", customer.Phone, ErrDuplicate)
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update overwrites the editable fields of a customer and reloads it.
func (r *GORMCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&models.Customer{}).Where("id = ?", customer.ID).Updates(map[string]interface{}{
		"name":    customer.Name,
		"phone":   customer.Phone,
		"is_gold": customer.IsGold,
	})
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return fmt.Errorf("customer phone %s: %w", customer.Phone, ErrDuplicate)
		}
		return fmt.Errorf("failed to update customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer with ID %s: %w", customer.ID, ErrRecordNotFound)
	}
	if err := db.First(customer, "id = ?", customer.ID).Error; err != nil {
		return fmt.Errorf("failed to reload customer %s: %w", customer.ID, err)
	}
	return nil
}

// Delete removes a customer and returns the removed record.
// Rentals keep their customer snapshot.
func (r *GORMCustomerRepository) Delete(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&customer, "id = ?", id).Error; err != nil {
			if isNotFound(err) {
				return fmt.Errorf("customer with ID %s: %w", id, ErrRecordNotFound)
			}
			return err
		}
		return tx.Delete(&models.Customer{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete customer: %w", err)
	}
	return &customer, nil
}

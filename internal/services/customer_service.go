package services

import (
	"context"
	"errors"
	"fmt"

	"rentalstore/internal/models"
	"rentalstore/internal/repositories"
	"rentalstore/internal/validation"
)

// CustomerService handles business logic related to customers.
type CustomerService struct {
	repo     repositories.CustomerRepository
	validate *validation.Validator
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.CustomerRepository, validate *validation.Validator) *CustomerService {
	return &CustomerService{repo: repo, validate: validate}
}

// GetAllCustomers retrieves all customers.
func (s *CustomerService) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.repo.GetAll(ctx)
}

// GetCustomerByID retrieves a single customer.
func (s *CustomerService) GetCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("customer %q: %w", id, ErrNotFound)
	}
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return customer, nil
}

// CreateCustomer validates and stores a new customer. Phone numbers are unique.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	customer.ID = ""
	if err := validationFailed(s.validate, customer); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return duplicatePhone(err, customer.Phone)
	}
	return nil
}

// UpdateCustomer validates and overwrites an existing customer.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	if !isValidID(customer.ID) {
		return fmt.Errorf("customer %q: %w", customer.ID, ErrNotFound)
	}
	if err := validationFailed(s.validate, customer); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, customer); err != nil {
		return notFound(duplicatePhone(err, customer.Phone))
	}
	return nil
}

// DeleteCustomer removes a customer and returns it.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) (*models.Customer, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("customer %q: %w", id, ErrNotFound)
	}
	customer, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return customer, nil
}

func duplicatePhone(err error, phone string) error {
	if errors.Is(err, repositories.ErrDuplicate) {
		return invalid("phone %s is already registered", phone)
	}
	return err
}

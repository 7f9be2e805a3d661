package handlers

import (
	"rentalstore/internal/middleware"
	"rentalstore/internal/models"
	"rentalstore/internal/services"
	"rentalstore/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	service  *services.CustomerService
	validate *validation.Validator
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService, validate *validation.Validator) *CustomerHandler {
	return &CustomerHandler{service: service, validate: validate}
}

// RegisterRoutes registers the customer routes. Only deletion is guarded.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customerRoutes := router.Group("/customers")
	customerRoutes.Get("/", h.HandleGetCustomers)
	customerRoutes.Get("/:id", h.HandleGetCustomerByID)
	customerRoutes.Post("/", h.HandleCreateCustomer)
	customerRoutes.Put("/:id", h.HandleUpdateCustomer)
	customerRoutes.Delete("/:id", h.HandleDeleteCustomer)
}

// HandleGetCustomers lists customers by name.
func (h *CustomerHandler) HandleGetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(customers)
}

// HandleGetCustomerByID retrieves a single customer.
func (h *CustomerHandler) HandleGetCustomerByID(c *fiber.Ctx) error {
	customer, err := h.service.GetCustomerByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// HandleCreateCustomer creates a customer.
func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var customer models.Customer
	if err := parseBody(c, h.validate, &customer); err != nil {
		return respondError(c, err)
	}
	if err := h.service.CreateCustomer(c.UserContext(), &customer); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// HandleUpdateCustomer overwrites a customer.
func (h *CustomerHandler) HandleUpdateCustomer(c *fiber.Ctx) error {
	var customer models.Customer
	if err := parseBody(c, h.validate, &customer); err != nil {
		return respondError(c, err)
	}
	customer.ID = c.Params("id")
	if err := h.service.UpdateCustomer(c.UserContext(), &customer); err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// HandleDeleteCustomer deletes a customer. Requires an admin credential.
func (h *CustomerHandler) HandleDeleteCustomer(c *fiber.Ctx) error {
	if _, err := middleware.RequireAdmin(c); err != nil {
		return respondError(c, err)
	}
	customer, err := h.service.DeleteCustomer(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

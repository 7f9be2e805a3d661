package handlers

import (
	"time"

	"rentalstore/internal/middleware"
	"rentalstore/internal/services"
	"rentalstore/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// RentalRequest names the customer and movie of a checkout or return.
type RentalRequest struct {
	CustomerID string `json:"customerId" validate:"required,uuid"`
	MovieID    string `json:"movieId" validate:"required,uuid"`
}

// RentalUpdateRequest corrects a rental's checkout date.
type RentalUpdateRequest struct {
	DateOut time.Time `json:"dateOut" validate:"required"`
}

// RentalHandler handles HTTP requests for rentals and returns.
type RentalHandler struct {
	service  *services.RentalService
	validate *validation.Validator
}

// NewRentalHandler creates a new RentalHandler.
func NewRentalHandler(service *services.RentalService, validate *validation.Validator) *RentalHandler {
	return &RentalHandler{service: service, validate: validate}
}

// RegisterRoutes registers the rental and return routes.
func (h *RentalHandler) RegisterRoutes(router fiber.Router) {
	rentalRoutes := router.Group("/rentals")
	rentalRoutes.Get("/", h.HandleGetRentals)
	rentalRoutes.Get("/:id", h.HandleGetRentalByID)
	rentalRoutes.Post("/", h.HandleCreateRental)
	rentalRoutes.Put("/:id", h.HandleUpdateRental)
	rentalRoutes.Delete("/:id", h.HandleDeleteRental)

	router.Post("/returns", h.HandleReturn)
}

// HandleGetRentals lists rentals, most recent checkout first.
func (h *RentalHandler) HandleGetRentals(c *fiber.Ctx) error {
	rentals, err := h.service.GetAllRentals(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(rentals)
}

// HandleGetRentalByID retrieves a single rental.
func (h *RentalHandler) HandleGetRentalByID(c *fiber.Ctx) error {
	rental, err := h.service.GetRentalByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rental)
}

// HandleCreateRental checks a movie out to a customer. Requires a credential.
func (h *RentalHandler) HandleCreateRental(c *fiber.Ctx) error {
	var req RentalRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}
	if _, err := middleware.RequireAuth(c); err != nil {
		return respondError(c, err)
	}

	rental, err := h.service.CreateRental(c.UserContext(), req.CustomerID, req.MovieID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rental)
}

// HandleUpdateRental corrects the checkout date of an open rental. Requires an
// admin credential.
func (h *RentalHandler) HandleUpdateRental(c *fiber.Ctx) error {
	var req RentalUpdateRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}
	if _, err := middleware.RequireAdmin(c); err != nil {
		return respondError(c, err)
	}

	rental, err := h.service.UpdateRentalDateOut(c.UserContext(), c.Params("id"), req.DateOut)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rental)
}

// HandleDeleteRental deletes a rental. Requires an admin credential.
func (h *RentalHandler) HandleDeleteRental(c *fiber.Ctx) error {
	if _, err := middleware.RequireAdmin(c); err != nil {
		return respondError(c, err)
	}
	rental, err := h.service.DeleteRental(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rental)
}

// HandleReturn closes the open rental for a customer and movie and reports the
// fee. Requires a credential.
func (h *RentalHandler) HandleReturn(c *fiber.Ctx) error {
	var req RentalRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}
	if _, err := middleware.RequireAuth(c); err != nil {
		return respondError(c, err)
	}

	rental, err := h.service.ProcessReturn(c.UserContext(), req.CustomerID, req.MovieID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rental)
}

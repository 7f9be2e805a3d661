package handlers

import (
	"errors"

	"rentalstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondError writes the status for a domain error. Anything it does not
// recognize is returned to Fiber's error handler, which logs it and answers 500.
func respondError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return message(c, fiber.StatusBadRequest, verr.Message)
	case errors.Is(err, services.ErrInvalidReference):
		return message(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrOutOfStock),
		errors.Is(err, services.ErrAlreadyProcessed),
		errors.Is(err, services.ErrInvalidCredentials):
		return message(c, fiber.StatusBadRequest, rootMessage(err))
	case errors.Is(err, services.ErrUnauthenticated):
		return message(c, fiber.StatusUnauthorized, services.ErrUnauthenticated.Error())
	case errors.Is(err, services.ErrForbidden):
		return message(c, fiber.StatusForbidden, services.ErrForbidden.Error())
	case errors.Is(err, services.ErrNotFound):
		return message(c, fiber.StatusNotFound, "The record with the given ID was not found.")
	}
	return err
}

// rootMessage returns the sentinel text without the context wrapped around it.
func rootMessage(err error) string {
	for _, sentinel := range []error{services.ErrOutOfStock, services.ErrAlreadyProcessed, services.ErrInvalidCredentials} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

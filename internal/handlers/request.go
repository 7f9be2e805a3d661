package handlers

import (
	"rentalstore/internal/services"
	"rentalstore/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes a JSON body into dst and checks its struct tags.
func parseBody(c *fiber.Ctx, v *validation.Validator, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return &services.ValidationError{Message: "Invalid request body"}
	}
	if msg := v.Struct(dst); msg != "" {
		return &services.ValidationError{Message: msg}
	}
	return nil
}

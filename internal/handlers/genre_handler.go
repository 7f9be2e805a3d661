package handlers

import (
	"rentalstore/internal/middleware"
	"rentalstore/internal/models"
	"rentalstore/internal/services"
	"rentalstore/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GenreHandler handles HTTP requests for genres.
type GenreHandler struct {
	service  *services.GenreService
	validate *validation.Validator
}

// NewGenreHandler creates a new GenreHandler.
func NewGenreHandler(service *services.GenreService, validate *validation.Validator) *GenreHandler {
	return &GenreHandler{service: service, validate: validate}
}

// RegisterRoutes registers the genre routes.
func (h *GenreHandler) RegisterRoutes(router fiber.Router) {
	genreRoutes := router.Group("/genres")
	genreRoutes.Get("/", h.HandleGetGenres)
	genreRoutes.Get("/:id", h.HandleGetGenreByID)
	genreRoutes.Post("/", h.HandleCreateGenre)
	genreRoutes.Put("/:id", h.HandleUpdateGenre)
	genreRoutes.Delete("/:id", h.HandleDeleteGenre)
}

// HandleGetGenres lists genres by name.
func (h *GenreHandler) HandleGetGenres(c *fiber.Ctx) error {
	genres, err := h.service.GetAllGenres(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(genres)
}

// HandleGetGenreByID retrieves a single genre.
func (h *GenreHandler) HandleGetGenreByID(c *fiber.Ctx) error {
	genre, err := h.service.GetGenreByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(genre)
}

// HandleCreateGenre creates a genre. Requires a credential.
func (h *GenreHandler) HandleCreateGenre(c *fiber.Ctx) error {
	var genre models.Genre
	if err := parseBody(c, h.validate, &genre); err != nil {
		return respondError(c, err)
	}
	if _, err := middleware.RequireAuth(c); err != nil {
		return respondError(c, err)
	}

	if err := h.service.CreateGenre(c.UserContext(), &genre); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(genre)
}

// HandleUpdateGenre renames a genre. Requires a credential.
func (h *GenreHandler) HandleUpdateGenre(c *fiber.Ctx) error {
	var genre models.Genre
	if err := parseBody(c, h.validate, &genre); err != nil {
		return respondError(c, err)
	}
	if _, err := middleware.RequireAuth(c); err != nil {
		return respondError(c, err)
	}

	genre.ID = c.Params("id")
	if err := h.service.UpdateGenre(c.UserContext(), &genre); err != nil {
		return respondError(c, err)
	}
	return c.JSON(genre)
}

// HandleDeleteGenre deletes a genre. Requires an admin credential.
func (h *GenreHandler) HandleDeleteGenre(c *fiber.Ctx) error {
	if _, err := middleware.RequireAdmin(c); err != nil {
		return respondError(c, err)
	}
	genre, err := h.service.DeleteGenre(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(genre)
}

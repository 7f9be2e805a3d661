package handlers

import (
	"rentalstore/internal/middleware"
	"rentalstore/internal/services"
	"rentalstore/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// MovieHandler handles HTTP requests for movies.
type MovieHandler struct {
	service  *services.MovieService
	validate *validation.Validator
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(service *services.MovieService, validate *validation.Validator) *MovieHandler {
	return &MovieHandler{service: service, validate: validate}
}

// RegisterRoutes registers the movie routes.
func (h *MovieHandler) RegisterRoutes(router fiber.Router) {
	movieRoutes := router.Group("/movies")
	movieRoutes.Get("/", h.HandleGetMovies)
	movieRoutes.Get("/:id", h.HandleGetMovieByID)
	movieRoutes.Post("/", h.HandleCreateMovie)
	movieRoutes.Put("/:id", h.HandleUpdateMovie)
	movieRoutes.Delete("/:id", h.HandleDeleteMovie)
}

// HandleGetMovies lists movies by title.
func (h *MovieHandler) HandleGetMovies(c *fiber.Ctx) error {
	movies, err := h.service.GetAllMovies(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(movies)
}

// HandleGetMovieByID retrieves a single movie.
func (h *MovieHandler) HandleGetMovieByID(c *fiber.Ctx) error {
	movie, err := h.service.GetMovieByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movie)
}

// HandleCreateMovie creates a movie under an existing genre. Requires a credential.
func (h *MovieHandler) HandleCreateMovie(c *fiber.Ctx) error {
	var in services.MovieInput
	if err := parseBody(c, h.validate, &in); err != nil {
		return respondError(c, err)
	}
	if _, err := middleware.RequireAuth(c); err != nil {
		return respondError(c, err)
	}

	movie, err := h.service.CreateMovie(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movie)
}

// HandleUpdateMovie overwrites a movie. Requires a credential.
func (h *MovieHandler) HandleUpdateMovie(c *fiber.Ctx) error {
	var in services.MovieInput
	if err := parseBody(c, h.validate, &in); err != nil {
		return respondError(c, err)
	}
	if _, err := middleware.RequireAuth(c); err != nil {
		return respondError(c, err)
	}

	movie, err := h.service.UpdateMovie(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movie)
}

// HandleDeleteMovie deletes a movie. Requires an admin credential.
func (h *MovieHandler) HandleDeleteMovie(c *fiber.Ctx) error {
	if _, err := middleware.RequireAdmin(c); err != nil {
		return respondError(c, err)
	}
	movie, err := h.service.DeleteMovie(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movie)
}

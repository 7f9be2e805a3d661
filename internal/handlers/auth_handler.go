package handlers

import (
	"rentalstore/internal/middleware"
	"rentalstore/internal/services"
	"rentalstore/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,min=5,max=255,email"`
	Password string `json:"password" validate:"required,min=5,max=255"`
}

// AuthHandler handles login and user registration.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validation.Validator
	limiter     fiber.Handler
}

// NewAuthHandler creates a new AuthHandler. limiter guards the login route.
func NewAuthHandler(authService *services.AuthService, validate *validation.Validator, limiter fiber.Handler) *AuthHandler {
	if limiter == nil {
		limiter = func(c *fiber.Ctx) error { return c.Next() }
	}
	return &AuthHandler{
		authService: authService,
		validate:    validate,
		limiter:     limiter,
	}
}

// RegisterRoutes registers the login and user routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/auth", h.limiter, h.HandleLogin)

	userRoutes := router.Group("/users")
	userRoutes.Post("/", h.HandleRegister)
	userRoutes.Get("/me", h.HandleMe)
}

// HandleLogin checks an email and password and responds with a credential.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}

	token, err := h.authService.LoginUser(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.SendString(token)
}

// HandleRegister creates a user and responds with the user and, in the
// x-auth-token header, a credential for it.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := parseBody(c, h.validate, &in); err != nil {
		return respondError(c, err)
	}

	user, err := h.authService.RegisterUser(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return err
	}

	c.Set(middleware.TokenHeader, token)
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleMe returns the user the credential was issued to.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	identity, err := middleware.RequireAuth(c)
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.authService.GetUser(c.UserContext(), identity.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

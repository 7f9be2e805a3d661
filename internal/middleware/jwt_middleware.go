package middleware

import (
	"strings"

	"rentalstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TokenHeader carries the credential issued by login and registration.
const TokenHeader = "x-auth-token"

const identityKey = "identity"

// Authenticate resolves the request credential, if any, and stores the identity
// in the Fiber context. It never rejects a request; operations decide with
// RequireAuth and RequireAdmin.
func Authenticate(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFrom(c)
		if tokenString == "" {
			return c.Next()
		}

		identity, err := authService.ValidateToken(tokenString)
		if err == nil {
			c.Locals(identityKey, identity)
		}
		return c.Next()
	}
}

// tokenFrom reads x-auth-token, falling back to "Authorization: Bearer <token>".
func tokenFrom(c *fiber.Ctx) string {
	if token := strings.TrimSpace(c.Get(TokenHeader)); token != "" {
		return token
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// CurrentIdentity returns the identity set by Authenticate, or nil.
func CurrentIdentity(c *fiber.Ctx) *services.Identity {
	identity, _ := c.Locals(identityKey).(*services.Identity)
	return identity
}

// RequireAuth returns the caller's identity or ErrUnauthenticated.
func RequireAuth(c *fiber.Ctx) (*services.Identity, error) {
	identity := CurrentIdentity(c)
	if identity == nil {
		return nil, services.ErrUnauthenticated
	}
	return identity, nil
}

// RequireAdmin returns ErrUnauthenticated without a credential and
// ErrForbidden when the caller is not an admin.
func RequireAdmin(c *fiber.Ctx) (*services.Identity, error) {
	identity, err := RequireAuth(c)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin {
		return nil, services.ErrForbidden
	}
	return identity, nil
}

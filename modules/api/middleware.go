package api

import (
	"errors"
	"strings"

	"github.com/PedroM85/task-list/modules/auth"
	"github.com/gofiber/fiber/v2"
)

const (
	// IdentityContextKey is the key under which the verified identity is
	// stored in the Fiber context for the duration of the request.
	IdentityContextKey = "identity"
)

// AuthMiddleware verifies the bearer token on every protected route before
// any validation or storage work happens. Requests without a usable token
// never reach the handlers.
func AuthMiddleware(verifier auth.VerifierPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Message: "Authentication token required",
				Error:   ErrTagNoToken,
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Message: "Authentication token required",
				Error:   ErrTagNoToken,
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Message: "Authentication token required",
				Error:   ErrTagNoToken,
			})
		}

		identity, err := verifier.Verify(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
					Message: "Token expired",
					Error:   ErrTagTokenExpired,
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
				Message: "Invalid token",
				Error:   ErrTagTokenInvalid,
			})
		}

		c.Locals(IdentityContextKey, identity)

		return c.Next()
	}
}

// Package middleware provides authentication and request middleware for the application.
package middleware

import (
	"context"
	"strings"

	"showcase/internal/auth"
	"showcase/internal/models"

	"github.com/gofiber/fiber/v2"
)

// claimsLocalKey is where verified claims are stored on the request.
const claimsLocalKey = "claims"

// AuthRequired returns a middleware that enforces bearer authentication
// for protected routes. On success the verified claims are attached to
// the request; every failure short-circuits with 401 before any handler
// or store is reached.
func AuthRequired(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authentication required"))
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			// Signature, format and expiry failures are deliberately
			// indistinguishable in the response.
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		c.Locals(claimsLocalKey, claims)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, claims.UserID))

		return c.Next()
	}
}

// ClaimsFromCtx returns the verified claims attached by AuthRequired,
// or nil when the request did not pass the gate.
func ClaimsFromCtx(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(claimsLocalKey).(*auth.Claims)
	return claims
}

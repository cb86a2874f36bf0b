package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pressroom/internal/domain"
	"pressroom/internal/service/auth"
)

const (
	UserContextKey = "user"
)

// AuthOptional resolves the caller when a bearer token is present and lets
// the request through anonymously when it is not. The comments surface is
// public; a missing token is not an error, a bad one is.
func AuthOptional(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		user, err := resolveUser(c, authService, authHeader)
		if err != nil {
			return err
		}

		c.Locals(UserContextKey, user)
		return c.Next()
	}
}

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Unauthorized("Missing authorization header")
		}

		user, err := resolveUser(c, authService, authHeader)
		if err != nil {
			return err
		}

		c.Locals(UserContextKey, user)
		return c.Next()
	}
}

func resolveUser(c *fiber.Ctx, authService auth.Service, authHeader string) (*domain.User, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, Unauthorized("Invalid authorization header format")
	}

	claims, err := authService.ValidateAccessToken(parts[1])
	if err != nil {
		return nil, Unauthorized("Invalid or expired token")
	}

	user, err := authService.GetUserByID(c.Context(), claims.UserID)
	if err != nil || user == nil {
		return nil, Unauthorized("User not found")
	}

	return user, nil
}

func GetCurrentUser(c *fiber.Ctx) *domain.User {
	user, ok := c.Locals(UserContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// GetCaller is the explicit caller identity handlers thread into the
// services. Anonymous when no user was resolved.
func GetCaller(c *fiber.Ctx) domain.Caller {
	user := GetCurrentUser(c)
	if user == nil {
		return domain.AnonymousCaller()
	}
	return user.Caller()
}

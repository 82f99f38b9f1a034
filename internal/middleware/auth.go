package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"civic-redressal/internal/domain"
	"civic-redressal/internal/service/auth"
)

const (
	UserContextKey  = "user"
	AdminContextKey = "admin"
)

// UserRequired authenticates a citizen bearer token and stores the
// user in the request context.
func UserRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseBearer(c, authService)
		if err != nil {
			return err
		}
		if claims.Kind != auth.SubjectUser {
			return Forbidden("Citizen account required")
		}

		user, err := authService.GetUserByID(c.Context(), claims.SubjectID)
		if err != nil || user == nil {
			return Unauthorized("User not found")
		}

		c.Locals(UserContextKey, user)
		return c.Next()
	}
}

// AdminRequired authenticates an admin bearer token and stores the
// admin in the request context.
func AdminRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseBearer(c, authService)
		if err != nil {
			return err
		}
		if claims.Kind != auth.SubjectAdmin {
			return Forbidden("Admin account required")
		}

		admin, err := authService.GetAdminByID(c.Context(), claims.SubjectID)
		if err != nil || admin == nil {
			return Unauthorized("Admin not found")
		}

		c.Locals(AdminContextKey, admin)
		return c.Next()
	}
}

func parseBearer(c *fiber.Ctx, authService auth.Service) (*auth.Claims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, Unauthorized("Missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, Unauthorized("Invalid authorization header format")
	}

	claims, err := authService.ValidateAccessToken(parts[1])
	if err != nil {
		return nil, Unauthorized("Invalid or expired token")
	}
	return claims, nil
}

func GetCurrentUser(c *fiber.Ctx) *domain.User {
	user, ok := c.Locals(UserContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

func GetCurrentAdmin(c *fiber.Ctx) *domain.Admin {
	admin, ok := c.Locals(AdminContextKey).(*domain.Admin)
	if !ok {
		return nil
	}
	return admin
}

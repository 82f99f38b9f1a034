package middleware

import (
	"github.com/gofiber/fiber/v2"

	"civic-redressal/internal/domain"
)

// RequireSuperAdmin gates the admin-management and complainant-detail
// surfaces: only an admin with neither a department nor a
// municipality link may pass.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin := GetCurrentAdmin(c)
		if admin == nil {
			return Unauthorized("Admin not found")
		}

		if !admin.IsSuperAdmin() {
			return Forbidden("Restricted to super admin")
		}

		return c.Next()
	}
}

// RequireRole gates a route on the derived admin tier.
func RequireRole(role domain.AdminRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin := GetCurrentAdmin(c)
		if admin == nil {
			return Unauthorized("Admin not found")
		}

		if admin.Role() != role {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

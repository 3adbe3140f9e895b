// file: internals/middlewares/features/is_academy_admin.go
package features

import (
	"github.com/gofiber/fiber/v2"

	"studioku_backend/internals/constants"
	helper "studioku_backend/internals/helpers"
)

// IsAcademyAdmin memastikan role admin/owner DAN academy scope tersedia.
func IsAcademyAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if role != constants.RoleAdmin && role != constants.RoleOwner {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("admin akademi"))
		}
		if _, err := helper.GetAcademyIDFromToken(c); err != nil {
			return err
		}
		return c.Next()
	}
}

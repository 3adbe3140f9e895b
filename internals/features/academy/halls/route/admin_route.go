// file: internals/features/academy/halls/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hallctl "studioku_backend/internals/features/academy/halls/controller"
)

// HallAdminRoutes mendaftarkan route untuk ADMIN (CRUD ruang studio)
func HallAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := hallctl.NewHallController(db)

	grp := admin.Group("/halls")
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Patch)
	grp.Delete("/:id", h.Delete)
}

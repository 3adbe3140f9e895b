// file: internals/features/academy/classes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classctl "studioku_backend/internals/features/academy/classes/controller"
)

// ClassAdminRoutes mendaftarkan route untuk ADMIN (CRUD penuh + wizard)
func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	cls := classctl.NewClassOfferingController(db)

	grp := admin.Group("/class-offerings")
	grp.Get("/", cls.List)
	grp.Get("/:id", cls.GetByID)
	grp.Post("/", cls.Create)
	grp.Patch("/:id", cls.Patch)
	grp.Delete("/:id", cls.Delete)
	grp.Put("/:id/eligible-tickets", cls.RelinkTickets)

	wizard := classctl.NewClassWizardController(db)
	admin.Post("/class-wizard", wizard.Submit)
}

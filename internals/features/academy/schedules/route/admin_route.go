// file: internals/features/academy/schedules/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedctl "studioku_backend/internals/features/academy/schedules/controller"
)

// ScheduleAdminRoutes mendaftarkan route untuk ADMIN (CRUD penuh)
func ScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	def := schedctl.NewRecurringDefinitionController(db)

	grpDef := admin.Group("/recurring-definitions")
	grpDef.Get("/", def.List)
	grpDef.Get("/:id", def.GetByID)
	grpDef.Post("/", def.Create)
	grpDef.Delete("/:id", def.Deactivate) // soft deactivate, bukan hard delete

	occ := schedctl.NewSessionOccurrenceController(db)

	grpOcc := admin.Group("/session-occurrences")
	grpOcc.Get("/", occ.List)
	grpOcc.Get("/:id", occ.GetByID)
	grpOcc.Patch("/:id", occ.Patch)
	grpOcc.Post("/:id/cancel", occ.Cancel)
	grpOcc.Delete("/:id", occ.Delete)
}

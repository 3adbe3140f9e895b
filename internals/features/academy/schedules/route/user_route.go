// file: internals/features/academy/schedules/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedctl "studioku_backend/internals/features/academy/schedules/controller"
)

// ScheduleUserRoutes — member hanya boleh lihat jadwal sesi
func ScheduleUserRoutes(user fiber.Router, db *gorm.DB) {
	occ := schedctl.NewSessionOccurrenceController(db)

	grp := user.Group("/session-occurrences")
	grp.Get("/", occ.List)
	grp.Get("/:id", occ.GetByID)
}

// file: internals/features/academy/daily_logs/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	logctl "studioku_backend/internals/features/academy/daily_logs/controller"
)

// DailyLogAdminRoutes mendaftarkan route untuk ADMIN (catatan harian)
func DailyLogAdminRoutes(admin fiber.Router, db *gorm.DB) {
	dl := logctl.NewDailyLogController(db)

	grp := admin.Group("/daily-logs")
	grp.Get("/", dl.List)
	grp.Get("/:id", dl.GetByID)
	grp.Post("/", dl.Create)
	grp.Patch("/:id", dl.Patch)
	grp.Delete("/:id", dl.Delete)
}

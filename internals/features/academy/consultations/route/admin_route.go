// file: internals/features/academy/consultations/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	consulctl "studioku_backend/internals/features/academy/consultations/controller"
)

// ConsultationAdminRoutes mendaftarkan route setting konsultasi (get + upsert)
func ConsultationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	cs := consulctl.NewConsultationSettingController(db)

	grp := admin.Group("/consultation-settings")
	grp.Get("/", cs.Get)
	grp.Put("/", cs.Upsert)
}

// file: internals/route/details/academy_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "studioku_backend/internals/features/academy/classes/route"
	consultationRoute "studioku_backend/internals/features/academy/consultations/route"
	dailyLogRoute "studioku_backend/internals/features/academy/daily_logs/route"
	hallRoute "studioku_backend/internals/features/academy/halls/route"
	pageSectionRoute "studioku_backend/internals/features/academy/page_sections/route"
	scheduleRoute "studioku_backend/internals/features/academy/schedules/route"
	ticketRoute "studioku_backend/internals/features/academy/tickets/route"
)

// AcademyAdminRoutes — semua fitur pengelolaan akademi (scoped per academy_id di token)
func AcademyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	classRoute.ClassAdminRoutes(admin, db)
	ticketRoute.TicketAdminRoutes(admin, db)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
	hallRoute.HallAdminRoutes(admin, db)
	dailyLogRoute.DailyLogAdminRoutes(admin, db)
	consultationRoute.ConsultationAdminRoutes(admin, db)
	pageSectionRoute.PageSectionAdminRoutes(admin, db)
}

// AcademyUserRoutes — member login: lihat kelas & jadwal
func AcademyUserRoutes(user fiber.Router, db *gorm.DB) {
	classRoute.ClassUserRoutes(user, db)
	scheduleRoute.ScheduleUserRoutes(user, db)
}

// AcademyPublicRoutes — halaman publik akademi (tanpa auth)
func AcademyPublicRoutes(public fiber.Router, db *gorm.DB) {
	pageSectionRoute.PageSectionPublicRoutes(public, db)
}

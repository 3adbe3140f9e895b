// file: internals/features/academy/tickets/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ticketctl "studioku_backend/internals/features/academy/tickets/controller"
)

// TicketAdminRoutes mendaftarkan route untuk ADMIN (CRUD penuh + relink)
func TicketAdminRoutes(admin fiber.Router, db *gorm.DB) {
	tk := ticketctl.NewTicketController(db)

	grp := admin.Group("/tickets")
	grp.Get("/", tk.List)
	grp.Get("/:id", tk.GetByID)
	grp.Post("/", tk.Create)
	grp.Patch("/:id", tk.Patch)
	grp.Delete("/:id", tk.Delete)
	grp.Put("/:id/eligible-classes", tk.RelinkClasses)
}

// file: internals/features/academy/classes/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classctl "studioku_backend/internals/features/academy/classes/controller"
)

// ClassUserRoutes — member hanya boleh lihat daftar & detail kelas
func ClassUserRoutes(user fiber.Router, db *gorm.DB) {
	cls := classctl.NewClassOfferingController(db)

	grp := user.Group("/class-offerings")
	grp.Get("/", cls.List)
	grp.Get("/:id", cls.GetByID)
}

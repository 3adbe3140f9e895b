// file: internals/features/academy/page_sections/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sectionctl "studioku_backend/internals/features/academy/page_sections/controller"
)

// PageSectionAdminRoutes mendaftarkan route ADMIN untuk kustomisasi halaman publik
func PageSectionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ps := sectionctl.NewPageSectionController(db)

	grp := admin.Group("/page-sections")
	grp.Get("/", ps.List)
	grp.Get("/:id", ps.GetByID)
	grp.Post("/", ps.Create)
	grp.Patch("/:id", ps.Patch)
	grp.Delete("/:id", ps.Delete)
	grp.Put("/reorder", ps.Reorder)
}

// PageSectionPublicRoutes — read-only untuk halaman publik akademi
func PageSectionPublicRoutes(public fiber.Router, db *gorm.DB) {
	ps := sectionctl.NewPageSectionController(db)
	public.Get("/academies/:academy_id/page-sections", ps.PublicList)
}

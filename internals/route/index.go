// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academyMiddleware "studioku_backend/internals/middlewares/auth_academy"
	featuresMiddleware "studioku_backend/internals/middlewares/features"
	routeDetails "studioku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa auth (halaman publik akademi + webhook)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE → user login biasa (baca jadwal dsb.)
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		academyMiddleware.AuthJWT(academyMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ADMIN → auth + role admin/owner + scope akademi
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		academyMiddleware.AuthJWT(academyMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		featuresMiddleware.IsAcademyAdmin(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Academy routes...")
	routeDetails.AcademyAdminRoutes(admin, db)
	routeDetails.AcademyUserRoutes(private, db)
	routeDetails.AcademyPublicRoutes(public, db)

	log.Println("[INFO] Mounting Billing routes...")
	routeDetails.BillingAdminRoutes(admin, db)
	routeDetails.BillingPublicRoutes(public, db)
}

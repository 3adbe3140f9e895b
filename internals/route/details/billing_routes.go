// file: internals/route/details/billing_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingRoute "studioku_backend/internals/features/billing/payments/route"
	middlewares "studioku_backend/internals/middlewares"
)

// BillingAdminRoutes — invoice langganan (admin akademi)
func BillingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	billingRoute.BillingAdminRoutes(admin, db)
}

// BillingPublicRoutes — webhook Midtrans, di-rate-limit terpisah
func BillingPublicRoutes(public fiber.Router, db *gorm.DB) {
	webhook := public.Group("/", middlewares.WebhookRateLimiter())
	billingRoute.BillingWebhookRoutes(webhook, db)
}

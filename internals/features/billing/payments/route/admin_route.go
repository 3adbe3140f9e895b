// file: internals/features/billing/payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billctl "studioku_backend/internals/features/billing/payments/controller"
)

// BillingAdminRoutes — invoice langganan akademi (buat + lihat)
func BillingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	bi := billctl.NewBillingInvoiceController(db)

	grp := admin.Group("/billing-invoices")
	grp.Get("/", bi.List)
	grp.Get("/:id", bi.GetByID)
	grp.Post("/", bi.Create)
}

// BillingWebhookRoutes — endpoint notifikasi Midtrans (tanpa auth)
func BillingWebhookRoutes(public fiber.Router, db *gorm.DB) {
	bi := billctl.NewBillingInvoiceController(db)
	public.Post("/billing/webhook", bi.Webhook)
}

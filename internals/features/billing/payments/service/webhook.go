// file: internals/features/billing/payments/service/webhook.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"studioku_backend/internals/features/billing/payments/model"
)

// HandleInvoiceStatusWebhook dipanggil saat menerima notifikasi dari Midtrans
func HandleInvoiceStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var inv model.BillingInvoiceModel
	if err := db.Where("billing_invoice_order_id = ?", orderID).First(&inv).Error; err != nil {
		log.Println("[ERROR] Invoice tidak ditemukan:", err)
		return fmt.Errorf("invoice with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		inv.BillingInvoiceStatus = model.InvoiceStatusPaid
		inv.BillingInvoicePaidAt = &now
	case "expire":
		inv.BillingInvoiceStatus = model.InvoiceStatusExpired
	case "cancel":
		inv.BillingInvoiceStatus = model.InvoiceStatusCanceled
	default:
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}

	if err := db.Save(&inv).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status invoice:", err)
		return err
	}

	return nil
}

// file: internals/features/billing/payments/model/billing_invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status invoice mengikuti siklus Midtrans
const (
	InvoiceStatusPending  = "pending"
	InvoiceStatusPaid     = "paid"
	InvoiceStatusExpired  = "expired"
	InvoiceStatusCanceled = "canceled"
)

// BillingInvoiceModel — map ke tabel billing_invoices (tagihan langganan akademi)
type BillingInvoiceModel struct {
	BillingInvoiceID uuid.UUID `json:"billing_invoice_id" gorm:"type:uuid;primaryKey;column:billing_invoice_id;default:gen_random_uuid()"`

	BillingInvoiceAcademyID uuid.UUID `json:"billing_invoice_academy_id" gorm:"type:uuid;not null;column:billing_invoice_academy_id;index"`

	// order_id yang dikirim ke Midtrans; unik supaya webhook bisa resolve
	BillingInvoiceOrderID string `json:"billing_invoice_order_id" gorm:"type:text;not null;uniqueIndex:uq_billing_invoice_order;column:billing_invoice_order_id"`

	BillingInvoiceDescription string `json:"billing_invoice_description" gorm:"type:text;not null;column:billing_invoice_description"`
	BillingInvoiceAmount      int64  `json:"billing_invoice_amount" gorm:"type:bigint;not null;column:billing_invoice_amount"`
	BillingInvoiceStatus      string `json:"billing_invoice_status" gorm:"type:text;not null;default:'pending';column:billing_invoice_status"`

	BillingInvoiceSnapToken *string    `json:"billing_invoice_snap_token,omitempty" gorm:"type:text;column:billing_invoice_snap_token"`
	BillingInvoicePaidAt    *time.Time `json:"billing_invoice_paid_at,omitempty" gorm:"column:billing_invoice_paid_at"`

	BillingInvoiceCreatedAt time.Time      `json:"billing_invoice_created_at" gorm:"column:billing_invoice_created_at;not null;autoCreateTime"`
	BillingInvoiceUpdatedAt time.Time      `json:"billing_invoice_updated_at" gorm:"column:billing_invoice_updated_at;not null;autoUpdateTime"`
	BillingInvoiceDeletedAt gorm.DeletedAt `json:"billing_invoice_deleted_at" gorm:"column:billing_invoice_deleted_at;index"`
}

func (BillingInvoiceModel) TableName() string {
	return "billing_invoices"
}

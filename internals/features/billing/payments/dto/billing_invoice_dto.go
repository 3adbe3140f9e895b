// file: internals/features/billing/payments/dto/billing_invoice_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "studioku_backend/internals/features/billing/payments/model"
)

/* =======================================================
   Request DTO
   ======================================================= */

type CreateBillingInvoiceRequest struct {
	BillingInvoiceDescription string `json:"billing_invoice_description" validate:"required"`
	BillingInvoiceAmount      int64  `json:"billing_invoice_amount"      validate:"required,gt=0"`

	// data pembayar untuk halaman Snap
	PayerName  string `json:"payer_name"  validate:"required"`
	PayerEmail string `json:"payer_email" validate:"required,email"`
}

func (r *CreateBillingInvoiceRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateBillingInvoiceRequest) ApplyToModel(dst *m.BillingInvoiceModel) {
	dst.BillingInvoiceDescription = strings.TrimSpace(r.BillingInvoiceDescription)
	dst.BillingInvoiceAmount = r.BillingInvoiceAmount
	dst.BillingInvoiceStatus = m.InvoiceStatusPending
}

/* =======================================================
   Response DTO
   ======================================================= */

type BillingInvoiceResponse struct {
	BillingInvoiceID          uuid.UUID  `json:"billing_invoice_id"`
	BillingInvoiceAcademyID   uuid.UUID  `json:"billing_invoice_academy_id"`
	BillingInvoiceOrderID     string     `json:"billing_invoice_order_id"`
	BillingInvoiceDescription string     `json:"billing_invoice_description"`
	BillingInvoiceAmount      int64      `json:"billing_invoice_amount"`
	BillingInvoiceStatus      string     `json:"billing_invoice_status"`
	BillingInvoiceSnapToken   *string    `json:"billing_invoice_snap_token,omitempty"`
	BillingInvoicePaidAt      *time.Time `json:"billing_invoice_paid_at,omitempty"`
	BillingInvoiceCreatedAt   time.Time  `json:"billing_invoice_created_at"`
}

func NewBillingInvoiceResponse(src *m.BillingInvoiceModel) BillingInvoiceResponse {
	return BillingInvoiceResponse{
		BillingInvoiceID:          src.BillingInvoiceID,
		BillingInvoiceAcademyID:   src.BillingInvoiceAcademyID,
		BillingInvoiceOrderID:     src.BillingInvoiceOrderID,
		BillingInvoiceDescription: src.BillingInvoiceDescription,
		BillingInvoiceAmount:      src.BillingInvoiceAmount,
		BillingInvoiceStatus:      src.BillingInvoiceStatus,
		BillingInvoiceSnapToken:   src.BillingInvoiceSnapToken,
		BillingInvoicePaidAt:      src.BillingInvoicePaidAt,
		BillingInvoiceCreatedAt:   src.BillingInvoiceCreatedAt,
	}
}

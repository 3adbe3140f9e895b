// file: internals/features/billing/payments/controller/billing_invoice_controller.go
package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "studioku_backend/internals/features/billing/payments/dto"
	m "studioku_backend/internals/features/billing/payments/model"
	svc "studioku_backend/internals/features/billing/payments/service"
	helper "studioku_backend/internals/helpers"
)

type BillingInvoiceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBillingInvoiceController(db *gorm.DB) *BillingInvoiceController {
	return &BillingInvoiceController{DB: db, Validator: validator.New()}
}

/* =========================
   List / GetByID
   ========================= */

func (ctl *BillingInvoiceController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	db := ctl.DB.Model(&m.BillingInvoiceModel{}).
		Where("billing_invoice_academy_id = ?", academyID)

	if s := strings.ToLower(strings.TrimSpace(c.Query("status"))); s != "" {
		db = db.Where("billing_invoice_status = ?", s)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)
	var rows []m.BillingInvoiceModel
	if err := db.Order("billing_invoice_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.BillingInvoiceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewBillingInvoiceResponse(&rows[i]))
	}
	return helper.SuccessList(c, "OK", items, helper.BuildPagination(total, p, len(items)))
}

func (ctl *BillingInvoiceController) GetByID(c *fiber.Ctx) error {
	inv, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", d.NewBillingInvoiceResponse(inv))
}

/* =========================
   Create — simpan invoice lalu minta Snap token
   ========================= */

func (ctl *BillingInvoiceController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateBillingInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}

	var inv m.BillingInvoiceModel
	req.ApplyToModel(&inv)
	inv.BillingInvoiceAcademyID = academyID
	inv.BillingInvoiceOrderID = fmt.Sprintf("SUB-%s-%d",
		academyID.String()[:8], time.Now().UnixNano())

	if err := ctl.DB.Create(&inv).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	token, err := svc.GenerateSnapToken(inv, req.PayerName, req.PayerEmail)
	if err != nil {
		// invoice tetap pending; frontend bisa retry ambil token
		return helper.ErrorWithDetails(c, http.StatusBadGateway,
			"Gagal membuat transaksi Midtrans",
			fiber.Map{"billing_invoice_id": inv.BillingInvoiceID, "error": err.Error()})
	}

	inv.BillingInvoiceSnapToken = &token
	if err := ctl.DB.Save(&inv).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Invoice dibuat", d.NewBillingInvoiceResponse(&inv))
}

/* =========================
   Webhook Midtrans (tanpa auth, di-rate-limit)
   ========================= */

func (ctl *BillingInvoiceController) Webhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, http.StatusBadRequest, "payload invalid")
	}
	if err := svc.HandleInvoiceStatusWebhook(ctl.DB, body); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "OK", nil)
}

func (ctl *BillingInvoiceController) findScoped(c *fiber.Ctx) (*m.BillingInvoiceModel, error) {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "id invalid")
	}

	var inv m.BillingInvoiceModel
	if err := ctl.DB.
		Where("billing_invoice_id = ? AND billing_invoice_academy_id = ?", id, academyID).
		First(&inv).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(http.StatusNotFound, "Invoice tidak ditemukan")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &inv, nil
}

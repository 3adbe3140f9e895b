// file: internals/features/academy/tickets/controller/ticket_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "studioku_backend/internals/features/academy/tickets/dto"
	m "studioku_backend/internals/features/academy/tickets/model"
	svc "studioku_backend/internals/features/academy/tickets/service"
	helper "studioku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type TicketController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTicketController(db *gorm.DB) *TicketController {
	return &TicketController{DB: db, Validator: validator.New()}
}

/* =========================
   Query: List
   ========================= */

type listQueryTicket struct {
	Type     string `query:"type"`     // PERIOD|COUNT
	Category string `query:"category"` // regular|popup|workshop
	Active   *bool  `query:"active"`
}

func (ctl *TicketController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var q listQueryTicket
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.TicketModel{}).
		Where("ticket_academy_id = ?", academyID)

	if t := strings.ToUpper(strings.TrimSpace(q.Type)); t != "" {
		if t != "PERIOD" && t != "COUNT" {
			return fiber.NewError(http.StatusBadRequest, "type must be PERIOD or COUNT")
		}
		db = db.Where("ticket_type = ?", t)
	}
	if cat := strings.ToLower(strings.TrimSpace(q.Category)); cat != "" {
		db = db.Where("ticket_category = ?", cat)
	}
	if q.Active != nil {
		db = db.Where("ticket_is_active = ?", *q.Active)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)
	var rows []m.TicketModel
	if err := db.Order("ticket_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.TicketResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewTicketResponse(&rows[i]))
	}
	return helper.SuccessList(c, "OK", items, helper.BuildPagination(total, p, len(items)))
}

/* =========================
   GetByID (plus daftar class yang ter-link)
   ========================= */

func (ctl *TicketController) GetByID(c *fiber.Ctx) error {
	tk, err := ctl.findScoped(c)
	if err != nil {
		return err
	}

	var linkedClassIDs []uuid.UUID
	if err := ctl.DB.Model(&m.TicketClassLinkModel{}).
		Where("ticket_class_link_ticket_id = ?", tk.TicketID).
		Pluck("ticket_class_link_class_id", &linkedClassIDs).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"ticket":           d.NewTicketResponse(tk),
		"linked_class_ids": linkedClassIDs,
	})
}

/* =========================
   Create / Patch / Delete
   ========================= */

func (ctl *TicketController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return helper.ValidationError(c, err)
		}
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var tk m.TicketModel
	req.ApplyToModel(&tk)
	tk.TicketAcademyID = academyID

	if err := ctl.DB.Create(&tk).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Ticket berhasil dibuat", d.NewTicketResponse(&tk))
}

func (ctl *TicketController) Patch(c *fiber.Ctx) error {
	tk, err := ctl.findScoped(c)
	if err != nil {
		return err
	}

	var req d.PatchTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyPatch(tk)

	if err := ctl.DB.Save(tk).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Ticket berhasil diperbarui", d.NewTicketResponse(tk))
}

func (ctl *TicketController) Delete(c *fiber.Ctx) error {
	tk, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(tk).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Ticket dihapus", nil)
}

/* =========================
   Relink eligibility (sisi ticket: pilih class yang bisa dimasuki)
   Full replace; flag general di-recompute tiap save.
   ========================= */

func (ctl *TicketController) RelinkClasses(c *fiber.Ctx) error {
	tk, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	academyID := tk.TicketAcademyID

	var req d.RelinkClassesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}
	selected, err := req.ParsedIDs()
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "class_ids invalid")
	}

	// pilihan kosong valid, tapi minta konfirmasi eksplisit dulu
	if len(selected) == 0 && !req.ConfirmEmpty {
		return helper.ErrorWithDetails(c, http.StatusConflict,
			"Tidak ada kelas dipilih — ticket ini tidak akan berlaku untuk kelas mana pun",
			fiber.Map{"needs_confirmation": true})
	}

	// counterpart yang tersedia SAAT INI; flag general dihitung dari sini
	var available []uuid.UUID
	if err := ctl.DB.Table("class_offerings").
		Where("class_offering_academy_id = ? AND class_offering_is_active = TRUE AND class_offering_deleted_at IS NULL", academyID).
		Pluck("class_offering_id", &available).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	plan := svc.BuildRelinkPlan(tk.TicketID, selected, available)
	written, err := svc.RelinkTicketToClasses(ctl.DB, academyID, plan)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	resp := fiber.Map{
		"is_general": plan.IsGeneral,
		"link_count": written,
	}
	if plan.EmptySelection {
		return helper.SuccessWithWarning(c, "Eligibility diganti",
			"Ticket ini sekarang tidak berlaku untuk kelas mana pun", resp)
	}
	return helper.Success(c, "Eligibility diganti", resp)
}

/* =========================
   shared
   ========================= */

func (ctl *TicketController) findScoped(c *fiber.Ctx) (*m.TicketModel, error) {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "id invalid")
	}

	var tk m.TicketModel
	if err := ctl.DB.
		Where("ticket_id = ? AND ticket_academy_id = ?", id, academyID).
		First(&tk).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(http.StatusNotFound, "Ticket tidak ditemukan")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &tk, nil
}

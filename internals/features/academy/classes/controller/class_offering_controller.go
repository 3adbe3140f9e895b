// file: internals/features/academy/classes/controller/class_offering_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "studioku_backend/internals/features/academy/classes/dto"
	m "studioku_backend/internals/features/academy/classes/model"
	ticketModel "studioku_backend/internals/features/academy/tickets/model"
	ticketSvc "studioku_backend/internals/features/academy/tickets/service"
	helper "studioku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClassOfferingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassOfferingController(db *gorm.DB) *ClassOfferingController {
	return &ClassOfferingController{DB: db, Validator: validator.New()}
}

/* =========================
   Query: List
   ========================= */

type listQueryClass struct {
	Category string `query:"category"` // regular|popup|workshop
	Genre    string `query:"genre"`
	Active   *bool  `query:"active"`
	Search   string `query:"q"`
}

func (ctl *ClassOfferingController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var q listQueryClass
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.ClassOfferingModel{}).
		Where("class_offering_academy_id = ?", academyID)

	if cat := strings.TrimSpace(q.Category); cat != "" {
		// filter hanya pada tag eksplisit; record legacy tanpa tag muncul
		// di semua kategori via klasifikasi di response, bukan di query
		db = db.Where("class_offering_category = ?", strings.ToLower(cat))
	}
	if g := strings.TrimSpace(q.Genre); g != "" {
		db = db.Where("class_offering_genre ILIKE ?", g)
	}
	if q.Active != nil {
		db = db.Where("class_offering_is_active = ?", *q.Active)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		db = db.Where("class_offering_title ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)
	var rows []m.ClassOfferingModel
	if err := db.Order("class_offering_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.ClassOfferingResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewClassOfferingResponse(&rows[i]))
	}
	return helper.SuccessList(c, "OK", items, helper.BuildPagination(total, p, len(items)))
}

/* =========================
   GetByID
   ========================= */

func (ctl *ClassOfferingController) GetByID(c *fiber.Ctx) error {
	cls, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", d.NewClassOfferingResponse(cls))
}

/* =========================
   Create
   ========================= */

func (ctl *ClassOfferingController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateClassOfferingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}

	var cls m.ClassOfferingModel
	req.ApplyToModel(&cls)
	cls.ClassOfferingAcademyID = academyID

	slug, err := helper.GenerateUniqueSlug(ctl.DB, helper.SlugOptions{
		Table:            "class_offerings",
		SlugColumn:       "class_offering_slug",
		SoftDeleteColumn: "class_offering_deleted_at",
		Filters:          map[string]any{"class_offering_academy_id": academyID},
		DefaultBase:      "kelas",
	}, cls.ClassOfferingTitle)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	cls.ClassOfferingSlug = slug

	if err := ctl.DB.Create(&cls).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Kelas berhasil dibuat", d.NewClassOfferingResponse(&cls))
}

/* =========================
   Patch
   ========================= */

func (ctl *ClassOfferingController) Patch(c *fiber.Ctx) error {
	cls, err := ctl.findScoped(c)
	if err != nil {
		return err
	}

	var req d.PatchClassOfferingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyPatch(cls)

	if err := ctl.DB.Save(cls).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Kelas berhasil diperbarui", d.NewClassOfferingResponse(cls))
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *ClassOfferingController) Delete(c *fiber.Ctx) error {
	cls, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(cls).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Kelas dihapus", nil)
}

/* =========================
   Relink eligibility (sisi class: pilih ticket yang boleh masuk)
   Full replace; flag general di-recompute tiap save.
   ========================= */

func (ctl *ClassOfferingController) RelinkTickets(c *fiber.Ctx) error {
	cls, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	academyID := cls.ClassOfferingAcademyID

	var req d.RelinkTicketsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}
	selected, err := req.ParsedIDs()
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "ticket_ids invalid")
	}

	// pilihan kosong valid, tapi minta konfirmasi eksplisit dulu
	if len(selected) == 0 && !req.ConfirmEmpty {
		return helper.ErrorWithDetails(c, http.StatusConflict,
			"Tidak ada ticket dipilih — kelas ini tidak akan bisa diakses ticket mana pun",
			fiber.Map{"needs_confirmation": true})
	}

	var available []uuid.UUID
	if err := ctl.DB.Model(&ticketModel.TicketModel{}).
		Where("ticket_academy_id = ? AND ticket_is_active = TRUE", academyID).
		Pluck("ticket_id", &available).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	plan := ticketSvc.BuildRelinkPlan(cls.ClassOfferingID, selected, available)
	written, err := ticketSvc.RelinkClassToTickets(ctl.DB, academyID, plan, func(isGeneral bool) error {
		return ctl.DB.Model(&m.ClassOfferingModel{}).
			Where("class_offering_id = ?", cls.ClassOfferingID).
			Update("class_offering_is_general_access", isGeneral).Error
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	resp := fiber.Map{
		"is_general_access": plan.IsGeneral,
		"link_count":        written,
	}
	if plan.EmptySelection {
		return helper.SuccessWithWarning(c, "Eligibility diganti",
			"Kelas ini sekarang tidak bisa diakses ticket mana pun", resp)
	}
	return helper.Success(c, "Eligibility diganti", resp)
}

/* =========================
   shared
   ========================= */

func (ctl *ClassOfferingController) findScoped(c *fiber.Ctx) (*m.ClassOfferingModel, error) {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "id invalid")
	}

	var cls m.ClassOfferingModel
	if err := ctl.DB.
		Where("class_offering_id = ? AND class_offering_academy_id = ?", id, academyID).
		First(&cls).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(http.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &cls, nil
}

// file: internals/features/academy/schedules/controller/session_occurrence_controller.go
package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "studioku_backend/internals/features/academy/schedules/dto"
	m "studioku_backend/internals/features/academy/schedules/model"
	helper "studioku_backend/internals/helpers"
)

type SessionOccurrenceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSessionOccurrenceController(db *gorm.DB) *SessionOccurrenceController {
	return &SessionOccurrenceController{DB: db, Validator: validator.New()}
}

/* =========================
   Query: List
   ========================= */

type listQueryOccurrence struct {
	ClassID      string `query:"class_id"`
	DefinitionID string `query:"definition_id"`
	HallID       string `query:"hall_id"`
	Canceled     *bool  `query:"canceled"`
	From         string `query:"from"` // YYYY-MM-DD
	To           string `query:"to"`   // YYYY-MM-DD
	Order        string `query:"order"` // asc|desc (default: asc)
}

func (ctl *SessionOccurrenceController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var q listQueryOccurrence
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.SessionOccurrenceModel{}).
		Where("session_occurrence_academy_id = ?", academyID)

	if q.ClassID != "" {
		if _, err := uuid.Parse(q.ClassID); err != nil {
			return fiber.NewError(http.StatusBadRequest, "class_id invalid")
		}
		db = db.Where("session_occurrence_class_id = ?", q.ClassID)
	}
	if q.DefinitionID != "" {
		if _, err := uuid.Parse(q.DefinitionID); err != nil {
			return fiber.NewError(http.StatusBadRequest, "definition_id invalid")
		}
		db = db.Where("session_occurrence_definition_id = ?", q.DefinitionID)
	}
	if q.HallID != "" {
		if _, err := uuid.Parse(q.HallID); err != nil {
			return fiber.NewError(http.StatusBadRequest, "hall_id invalid")
		}
		db = db.Where("session_occurrence_hall_id = ?", q.HallID)
	}
	if q.Canceled != nil {
		db = db.Where("session_occurrence_is_canceled = ?", *q.Canceled)
	}

	if strings.TrimSpace(q.From) != "" {
		dt, err := d.ParseDate(q.From)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "from invalid (YYYY-MM-DD)")
		}
		db = db.Where("session_occurrence_start_at >= ?", dt)
	}
	if strings.TrimSpace(q.To) != "" {
		dt, err := d.ParseDate(q.To)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "to invalid (YYYY-MM-DD)")
		}
		// inklusif sampai akhir hari
		db = db.Where("session_occurrence_start_at < ?", dt.Add(24*time.Hour))
	}

	order := "session_occurrence_start_at ASC"
	if strings.EqualFold(strings.TrimSpace(q.Order), "desc") {
		order = "session_occurrence_start_at DESC"
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 50, 200)
	var rows []m.SessionOccurrenceModel
	if err := db.Order(order).Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.SessionOccurrenceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewSessionOccurrenceResponse(&rows[i]))
	}
	return helper.SuccessList(c, "OK", items, helper.BuildPagination(total, p, len(items)))
}

/* =========================
   GetByID
   ========================= */

func (ctl *SessionOccurrenceController) GetByID(c *fiber.Ctx) error {
	occ, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", d.NewSessionOccurrenceResponse(occ))
}

/* =========================
   Patch (edit per occurrence, termasuk cancel flag)
   ========================= */

func (ctl *SessionOccurrenceController) Patch(c *fiber.Ctx) error {
	occ, err := ctl.findScoped(c)
	if err != nil {
		return err
	}

	var req d.PatchSessionOccurrenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyPatch(occ); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(occ).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Sesi berhasil diperbarui", d.NewSessionOccurrenceResponse(occ))
}

/* =========================
   Cancel (soft flag) & Delete (soft delete / purge)
   ========================= */

func (ctl *SessionOccurrenceController) Cancel(c *fiber.Ctx) error {
	occ, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	occ.SessionOccurrenceIsCanceled = true
	if err := ctl.DB.Save(occ).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Sesi dibatalkan", d.NewSessionOccurrenceResponse(occ))
}

func (ctl *SessionOccurrenceController) Delete(c *fiber.Ctx) error {
	occ, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(occ).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Sesi dihapus", nil)
}

/* =========================
   shared
   ========================= */

func (ctl *SessionOccurrenceController) findScoped(c *fiber.Ctx) (*m.SessionOccurrenceModel, error) {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "id invalid")
	}

	var occ m.SessionOccurrenceModel
	if err := ctl.DB.
		Where("session_occurrence_id = ? AND session_occurrence_academy_id = ?", id, academyID).
		First(&occ).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(http.StatusNotFound, "Sesi tidak ditemukan")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &occ, nil
}

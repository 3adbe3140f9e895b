// file: internals/features/academy/schedules/controller/recurring_definition_controller.go
package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studioku_backend/internals/configs"
	d "studioku_backend/internals/features/academy/schedules/dto"
	m "studioku_backend/internals/features/academy/schedules/model"
	svc "studioku_backend/internals/features/academy/schedules/service"
	helper "studioku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type RecurringDefinitionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRecurringDefinitionController(db *gorm.DB) *RecurringDefinitionController {
	return &RecurringDefinitionController{DB: db, Validator: validator.New()}
}

/* =========================
   Create: definition + expand occurrences
   Persist berurutan tanpa transaksi lintas step (lihat catatan di bawah).
   ========================= */

// Create membuat satu RecurringDefinition lalu bulk-insert occurrence hasil
// generate. Nol tanggal yang memenuhi = validation error SEBELUM ada network
// call, bukan batch kosong yang "sukses". Kalau insert occurrence gagal
// setelah definition terlanjur dibuat, definition dibiarkan (inkonsistensi
// yang diterima) dan id-nya disebut di pesan error supaya bisa dibereskan.
func (ctl *RecurringDefinitionController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateRecurringDefinitionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}

	var def m.RecurringDefinitionModel
	if err := req.ApplyToModel(&def); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	def.RecurringDefinitionAcademyID = academyID

	// Cek dulu sebelum menyentuh DB: definisi tanpa satu pun tanggal valid
	// harus ditolak, jangan bikin "jadwal" kosong yang menyesatkan.
	weekdays := make([]int, 0, len(def.RecurringDefinitionWeekdays))
	for _, w := range def.RecurringDefinitionWeekdays {
		weekdays = append(weekdays, int(w))
	}
	dates := svc.GenerateDates(def.RecurringDefinitionStartDate, def.RecurringDefinitionEndDate, weekdays, def.RecurringDefinitionIntervalWeeks)
	if len(dates) == 0 {
		return helper.Error(c, http.StatusBadRequest, "Tidak ada sesi yang bisa dibuat pada rentang & hari tersebut")
	}

	if err := ctl.DB.Create(&def).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	occurrences := svc.ExpandOccurrences(&def, configs.GetVenueLocation())
	if err := ctl.DB.CreateInBatches(&occurrences, 200).Error; err != nil {
		// definition sudah terlanjur dibuat; tidak ada rollback otomatis
		return helper.Error(c, http.StatusInternalServerError,
			fmt.Sprintf("Sebagian gagal: definition %s dibuat tapi insert sesi gagal: %v",
				def.RecurringDefinitionID, err))
	}

	resp := fiber.Map{
		"definition":    d.NewRecurringDefinitionResponse(&def),
		"session_count": len(occurrences),
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Jadwal berulang berhasil dibuat", resp)
}

/* =========================
   List (per academy)
   ========================= */

func (ctl *RecurringDefinitionController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	db := ctl.DB.Model(&m.RecurringDefinitionModel{}).
		Where("recurring_definition_academy_id = ?", academyID)

	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		if _, err := uuid.Parse(classID); err != nil {
			return helper.Error(c, http.StatusBadRequest, "class_id invalid")
		}
		db = db.Where("recurring_definition_class_id = ?", classID)
	}
	if act := strings.TrimSpace(c.Query("active")); act != "" {
		db = db.Where("recurring_definition_is_active = ?", act == "true" || act == "1")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)
	var rows []m.RecurringDefinitionModel
	if err := db.Order("recurring_definition_start_date ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.RecurringDefinitionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewRecurringDefinitionResponse(&rows[i]))
	}
	return helper.SuccessList(c, "OK", items, helper.BuildPagination(total, p, len(items)))
}

/* =========================
   GetByID
   ========================= */

func (ctl *RecurringDefinitionController) GetByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "id invalid")
	}

	var def m.RecurringDefinitionModel
	if err := ctl.DB.
		Where("recurring_definition_id = ? AND recurring_definition_academy_id = ?", id, academyID).
		First(&def).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, http.StatusNotFound, "Definition tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", d.NewRecurringDefinitionResponse(&def))
}

/* =========================
   Deactivate: soft, bukan delete
   Definition di-nonaktifkan + occurrence mendatang yang belum
   dibatalkan ikut di-soft-delete (bookings diurus subsistem lain).
   ========================= */

func (ctl *RecurringDefinitionController) Deactivate(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "id invalid")
	}

	res := ctl.DB.Model(&m.RecurringDefinitionModel{}).
		Where("recurring_definition_id = ? AND recurring_definition_academy_id = ?", id, academyID).
		Update("recurring_definition_is_active", false)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Definition tidak ditemukan")
	}

	if err := ctl.DB.
		Where("session_occurrence_definition_id = ? AND session_occurrence_academy_id = ? AND session_occurrence_start_at > NOW()", id, academyID).
		Delete(&m.SessionOccurrenceModel{}).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError,
			fmt.Sprintf("Definition nonaktif tapi gagal hapus sesi mendatang: %v", err))
	}

	return helper.Success(c, "Jadwal berulang dinonaktifkan", nil)
}

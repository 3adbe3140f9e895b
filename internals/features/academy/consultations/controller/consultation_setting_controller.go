// file: internals/features/academy/consultations/controller/consultation_setting_controller.go
package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	d "studioku_backend/internals/features/academy/consultations/dto"
	m "studioku_backend/internals/features/academy/consultations/model"
	helper "studioku_backend/internals/helpers"
)

type ConsultationSettingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewConsultationSettingController(db *gorm.DB) *ConsultationSettingController {
	return &ConsultationSettingController{DB: db, Validator: validator.New()}
}

// Get mengembalikan setting akademi; kalau belum pernah disimpan, balas default
// tanpa menulis apa pun ke DB.
func (ctl *ConsultationSettingController) Get(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var setting m.ConsultationSettingModel
	err = ctl.DB.
		Where("consultation_setting_academy_id = ?", academyID).
		First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		def := m.DefaultConsultationSetting(academyID)
		return helper.Success(c, "OK", d.NewConsultationSettingResponse(&def))
	}
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", d.NewConsultationSettingResponse(&setting))
}

// Upsert menyimpan setting penuh (insert kalau belum ada, update kalau sudah).
func (ctl *ConsultationSettingController) Upsert(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.UpsertConsultationSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}

	var setting m.ConsultationSettingModel
	setting.ConsultationSettingAcademyID = academyID
	req.ApplyToModel(&setting)

	// upsert by academy_id; baris existing di-replace seluruh kolom setting-nya
	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "consultation_setting_academy_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"consultation_setting_is_enabled",
			"consultation_setting_contact_url",
			"consultation_setting_duration_minutes",
			"consultation_setting_price",
			"consultation_setting_notes",
			"consultation_setting_updated_at",
		}),
	}).Create(&setting).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	// re-read supaya response membawa ID & timestamp final
	if err := ctl.DB.
		Where("consultation_setting_academy_id = ?", academyID).
		First(&setting).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Setting konsultasi disimpan", d.NewConsultationSettingResponse(&setting))
}

// file: internals/features/academy/classes/controller/class_wizard_controller.go
package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studioku_backend/internals/configs"
	d "studioku_backend/internals/features/academy/classes/dto"
	svc "studioku_backend/internals/features/academy/classes/service"
	helper "studioku_backend/internals/helpers"
)

type ClassWizardController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassWizardController(db *gorm.DB) *ClassWizardController {
	return &ClassWizardController{DB: db, Validator: validator.New()}
}

// Submit menerima payload wizard lengkap, memutar ulang guard per step,
// lalu menjalankan rantai persist (class -> definition -> sesi -> link).
// Eligibility kosong tanpa confirm_empty = 409 (minta konfirmasi),
// bukan validation error.
func (ctl *ClassWizardController) Submit(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.SubmitClassWizardRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}

	state, err := req.ToWizardState()
	if err != nil {
		if err == svc.ErrEmptyEligibilityNeedsConfirm {
			return helper.ErrorWithDetails(c, http.StatusConflict,
				"Tidak ada ticket dipilih — kirim ulang dengan confirm_empty=true untuk melanjutkan",
				fiber.Map{"needs_confirmation": true})
		}
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	res, err := svc.Submit(ctl.DB, academyID, state, configs.GetVenueLocation())
	if err != nil {
		// kalau sebagian sudah terlanjur dibuat, id-nya ikut di pesan error
		// (lihat catatan partial failure di service)
		code := http.StatusInternalServerError
		if res == nil {
			code = http.StatusBadRequest
		}
		return helper.Error(c, code, err.Error())
	}

	if res.Warning != "" {
		return helper.SuccessWithWarning(c, "Kelas berhasil dibuat", res.Warning, res)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Kelas berhasil dibuat", res)
}

// file: internals/features/academy/halls/controller/hall_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "studioku_backend/internals/features/academy/halls/dto"
	m "studioku_backend/internals/features/academy/halls/model"
	helper "studioku_backend/internals/helpers"
)

type HallController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewHallController(db *gorm.DB) *HallController {
	return &HallController{DB: db, Validator: validator.New()}
}

/* =========================
   Query: List
   ========================= */

func (ctl *HallController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	db := ctl.DB.Model(&m.HallModel{}).
		Where("hall_academy_id = ?", academyID)

	if raw := strings.TrimSpace(c.Query("active")); raw != "" {
		db = db.Where("hall_is_active = ?", raw == "true" || raw == "1")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)
	var rows []m.HallModel
	if err := db.Order("hall_name ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.HallResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewHallResponse(&rows[i]))
	}
	return helper.SuccessList(c, "OK", items, helper.BuildPagination(total, p, len(items)))
}

func (ctl *HallController) GetByID(c *fiber.Ctx) error {
	hall, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", d.NewHallResponse(hall))
}

/* =========================
   Create / Patch / Delete
   ========================= */

func (ctl *HallController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateHallRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}

	var hall m.HallModel
	req.ApplyToModel(&hall)
	hall.HallAcademyID = academyID

	if err := ctl.DB.Create(&hall).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Hall berhasil dibuat", d.NewHallResponse(&hall))
}

func (ctl *HallController) Patch(c *fiber.Ctx) error {
	hall, err := ctl.findScoped(c)
	if err != nil {
		return err
	}

	var req d.PatchHallRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyPatch(hall)

	if err := ctl.DB.Save(hall).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Hall berhasil diperbarui", d.NewHallResponse(hall))
}

func (ctl *HallController) Delete(c *fiber.Ctx) error {
	hall, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(hall).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Hall dihapus", nil)
}

func (ctl *HallController) findScoped(c *fiber.Ctx) (*m.HallModel, error) {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "id invalid")
	}

	var hall m.HallModel
	if err := ctl.DB.
		Where("hall_id = ? AND hall_academy_id = ?", id, academyID).
		First(&hall).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(http.StatusNotFound, "Hall tidak ditemukan")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &hall, nil
}

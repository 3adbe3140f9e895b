// file: internals/features/academy/page_sections/controller/page_section_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "studioku_backend/internals/features/academy/page_sections/dto"
	m "studioku_backend/internals/features/academy/page_sections/model"
	helper "studioku_backend/internals/helpers"
)

type PageSectionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPageSectionController(db *gorm.DB) *PageSectionController {
	return &PageSectionController{DB: db, Validator: validator.New()}
}

/* =========================
   Admin: List / Get
   ========================= */

func (ctl *PageSectionController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []m.PageSectionModel
	if err := ctl.DB.
		Where("page_section_academy_id = ?", academyID).
		Order("page_section_display_order ASC, page_section_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.PageSectionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewPageSectionResponse(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}

func (ctl *PageSectionController) GetByID(c *fiber.Ctx) error {
	sec, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", d.NewPageSectionResponse(sec))
}

/* =========================
   Admin: Create / Patch / Delete / Reorder
   ========================= */

func (ctl *PageSectionController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreatePageSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}

	var sec m.PageSectionModel
	req.ApplyToModel(&sec)
	sec.PageSectionAcademyID = academyID

	if err := ctl.DB.Create(&sec).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Section dibuat", d.NewPageSectionResponse(&sec))
}

func (ctl *PageSectionController) Patch(c *fiber.Ctx) error {
	sec, err := ctl.findScoped(c)
	if err != nil {
		return err
	}

	var req d.PatchPageSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyPatch(sec)

	if err := ctl.DB.Save(sec).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Section diperbarui", d.NewPageSectionResponse(sec))
}

func (ctl *PageSectionController) Delete(c *fiber.Ctx) error {
	sec, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(sec).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Section dihapus", nil)
}

// Reorder menimpa display_order semua section sesuai posisi di array request.
// Section milik akademi yang tidak disebut tetap di belakang (order lama).
func (ctl *PageSectionController) Reorder(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.ReorderPageSectionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}
	ids, err := req.ParsedIDs()
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "section_ids invalid")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		for pos, id := range ids {
			res := tx.Model(&m.PageSectionModel{}).
				Where("page_section_id = ? AND page_section_academy_id = ?", id, academyID).
				Update("page_section_display_order", pos)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(http.StatusNotFound, "Section "+id.String()+" tidak ditemukan")
			}
		}
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Urutan section disimpan", fiber.Map{"count": len(ids)})
}

/* =========================
   Public: read section yang visible (tanpa auth)
   ========================= */

func (ctl *PageSectionController) PublicList(c *fiber.Ctx) error {
	academyID, err := uuid.Parse(strings.TrimSpace(c.Params("academy_id")))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "academy_id invalid")
	}

	var rows []m.PageSectionModel
	if err := ctl.DB.
		Where("page_section_academy_id = ? AND page_section_is_visible = TRUE", academyID).
		Order("page_section_display_order ASC, page_section_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.PageSectionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewPageSectionResponse(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}

func (ctl *PageSectionController) findScoped(c *fiber.Ctx) (*m.PageSectionModel, error) {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "id invalid")
	}

	var sec m.PageSectionModel
	if err := ctl.DB.
		Where("page_section_id = ? AND page_section_academy_id = ?", id, academyID).
		First(&sec).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(http.StatusNotFound, "Section tidak ditemukan")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &sec, nil
}

// file: internals/features/academy/daily_logs/controller/daily_log_controller.go
package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "studioku_backend/internals/features/academy/daily_logs/dto"
	m "studioku_backend/internals/features/academy/daily_logs/model"
	helper "studioku_backend/internals/helpers"
)

type DailyLogController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDailyLogController(db *gorm.DB) *DailyLogController {
	return &DailyLogController{DB: db, Validator: validator.New()}
}

/* =========================
   Query: List (filter rentang tanggal + kelas)
   ========================= */

type listQueryDailyLog struct {
	From    string `query:"from"`     // YYYY-MM-DD
	To      string `query:"to"`       // YYYY-MM-DD
	ClassID string `query:"class_id"` // filter per kelas
}

func (ctl *DailyLogController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var q listQueryDailyLog
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.DailyLogModel{}).
		Where("daily_log_academy_id = ?", academyID)

	if s := strings.TrimSpace(q.From); s != "" {
		from, err := time.Parse("2006-01-02", s)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "from harus YYYY-MM-DD")
		}
		db = db.Where("daily_log_date >= ?", from)
	}
	if s := strings.TrimSpace(q.To); s != "" {
		to, err := time.Parse("2006-01-02", s)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "to harus YYYY-MM-DD")
		}
		db = db.Where("daily_log_date <= ?", to)
	}
	if s := strings.TrimSpace(q.ClassID); s != "" {
		classID, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "class_id invalid")
		}
		db = db.Where("daily_log_class_offering_id = ?", classID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)
	var rows []m.DailyLogModel
	if err := db.Order("daily_log_date DESC, daily_log_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.DailyLogResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewDailyLogResponse(&rows[i]))
	}
	return helper.SuccessList(c, "OK", items, helper.BuildPagination(total, p, len(items)))
}

func (ctl *DailyLogController) GetByID(c *fiber.Ctx) error {
	logRow, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", d.NewDailyLogResponse(logRow))
}

/* =========================
   Create / Patch / Delete
   ========================= */

func (ctl *DailyLogController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateDailyLogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return helper.ValidationError(c, err)
		}
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var logRow m.DailyLogModel
	if err := req.ApplyToModel(&logRow); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	logRow.DailyLogAcademyID = academyID
	logRow.DailyLogCreatedByUserID = userID

	if err := ctl.DB.Create(&logRow).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Catatan harian dibuat", d.NewDailyLogResponse(&logRow))
}

func (ctl *DailyLogController) Patch(c *fiber.Ctx) error {
	logRow, err := ctl.findScoped(c)
	if err != nil {
		return err
	}

	var req d.PatchDailyLogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyPatch(logRow); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(logRow).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Catatan harian diperbarui", d.NewDailyLogResponse(logRow))
}

func (ctl *DailyLogController) Delete(c *fiber.Ctx) error {
	logRow, err := ctl.findScoped(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(logRow).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Catatan harian dihapus", nil)
}

func (ctl *DailyLogController) findScoped(c *fiber.Ctx) (*m.DailyLogModel, error) {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "id invalid")
	}

	var logRow m.DailyLogModel
	if err := ctl.DB.
		Where("daily_log_id = ? AND daily_log_academy_id = ?", id, academyID).
		First(&logRow).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(http.StatusNotFound, "Catatan harian tidak ditemukan")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &logRow, nil
}

// file: internals/features/academy/daily_logs/dto/daily_log_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "studioku_backend/internals/features/academy/daily_logs/model"
)

// tanggal di request selalu "YYYY-MM-DD"
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.New("format tanggal harus YYYY-MM-DD")
	}
	return t, nil
}

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateDailyLogRequest struct {
	DailyLogDate    string `json:"daily_log_date"    validate:"required"`
	DailyLogTitle   string `json:"daily_log_title"   validate:"required"`
	DailyLogContent string `json:"daily_log_content" validate:"required"`

	DailyLogClassOfferingID *string `json:"daily_log_class_offering_id,omitempty" validate:"omitempty,uuid4"`
	DailyLogImageURL        *string `json:"daily_log_image_url,omitempty"         validate:"omitempty,url"`
}

func (r *CreateDailyLogRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	_, err := parseDate(r.DailyLogDate)
	return err
}

func (r *CreateDailyLogRequest) ApplyToModel(dst *m.DailyLogModel) error {
	date, err := parseDate(r.DailyLogDate)
	if err != nil {
		return err
	}
	dst.DailyLogDate = date
	dst.DailyLogTitle = strings.TrimSpace(r.DailyLogTitle)
	dst.DailyLogContent = strings.TrimSpace(r.DailyLogContent)
	dst.DailyLogImageURL = r.DailyLogImageURL

	if r.DailyLogClassOfferingID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*r.DailyLogClassOfferingID))
		if err != nil {
			return errors.New("daily_log_class_offering_id invalid")
		}
		dst.DailyLogClassOfferingID = &id
	}
	return nil
}

type PatchDailyLogRequest struct {
	DailyLogDate    *string `json:"daily_log_date,omitempty"`
	DailyLogTitle   *string `json:"daily_log_title,omitempty"`
	DailyLogContent *string `json:"daily_log_content,omitempty"`

	DailyLogClassOfferingID *string `json:"daily_log_class_offering_id,omitempty" validate:"omitempty,uuid4"`
	DailyLogImageURL        *string `json:"daily_log_image_url,omitempty"         validate:"omitempty,url"`
}

func (p *PatchDailyLogRequest) Validate(v *validator.Validate) error {
	return v.Struct(p)
}

func (p *PatchDailyLogRequest) ApplyPatch(dst *m.DailyLogModel) error {
	if p.DailyLogDate != nil {
		date, err := parseDate(*p.DailyLogDate)
		if err != nil {
			return err
		}
		dst.DailyLogDate = date
	}
	if p.DailyLogTitle != nil {
		dst.DailyLogTitle = strings.TrimSpace(*p.DailyLogTitle)
	}
	if p.DailyLogContent != nil {
		dst.DailyLogContent = strings.TrimSpace(*p.DailyLogContent)
	}
	if p.DailyLogClassOfferingID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*p.DailyLogClassOfferingID))
		if err != nil {
			return errors.New("daily_log_class_offering_id invalid")
		}
		dst.DailyLogClassOfferingID = &id
	}
	if p.DailyLogImageURL != nil {
		dst.DailyLogImageURL = p.DailyLogImageURL
	}
	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type DailyLogResponse struct {
	DailyLogID              uuid.UUID  `json:"daily_log_id"`
	DailyLogAcademyID       uuid.UUID  `json:"daily_log_academy_id"`
	DailyLogDate            string     `json:"daily_log_date"`
	DailyLogTitle           string     `json:"daily_log_title"`
	DailyLogContent         string     `json:"daily_log_content"`
	DailyLogClassOfferingID *uuid.UUID `json:"daily_log_class_offering_id,omitempty"`
	DailyLogImageURL        *string    `json:"daily_log_image_url,omitempty"`
	DailyLogCreatedByUserID uuid.UUID  `json:"daily_log_created_by_user_id"`
	DailyLogCreatedAt       time.Time  `json:"daily_log_created_at"`
	DailyLogUpdatedAt       time.Time  `json:"daily_log_updated_at"`
}

func NewDailyLogResponse(src *m.DailyLogModel) DailyLogResponse {
	return DailyLogResponse{
		DailyLogID:              src.DailyLogID,
		DailyLogAcademyID:       src.DailyLogAcademyID,
		DailyLogDate:            src.DailyLogDate.Format("2006-01-02"),
		DailyLogTitle:           src.DailyLogTitle,
		DailyLogContent:         src.DailyLogContent,
		DailyLogClassOfferingID: src.DailyLogClassOfferingID,
		DailyLogImageURL:        src.DailyLogImageURL,
		DailyLogCreatedByUserID: src.DailyLogCreatedByUserID,
		DailyLogCreatedAt:       src.DailyLogCreatedAt,
		DailyLogUpdatedAt:       src.DailyLogUpdatedAt,
	}
}

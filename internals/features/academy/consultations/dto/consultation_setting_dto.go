// file: internals/features/academy/consultations/dto/consultation_setting_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "studioku_backend/internals/features/academy/consultations/model"
)

/* =======================================================
   Request DTO (upsert penuh)
   ======================================================= */

type UpsertConsultationSettingRequest struct {
	ConsultationSettingIsEnabled       bool    `json:"consultation_setting_is_enabled"`
	ConsultationSettingContactURL      *string `json:"consultation_setting_contact_url,omitempty" validate:"omitempty,url"`
	ConsultationSettingDurationMinutes int     `json:"consultation_setting_duration_minutes"      validate:"gte=5,lte=480"`
	ConsultationSettingPrice           int64   `json:"consultation_setting_price"                 validate:"gte=0"`
	ConsultationSettingNotes           *string `json:"consultation_setting_notes,omitempty"`
}

func (r *UpsertConsultationSettingRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *UpsertConsultationSettingRequest) ApplyToModel(dst *m.ConsultationSettingModel) {
	dst.ConsultationSettingIsEnabled = r.ConsultationSettingIsEnabled
	dst.ConsultationSettingDurationMinutes = r.ConsultationSettingDurationMinutes
	dst.ConsultationSettingPrice = r.ConsultationSettingPrice

	if r.ConsultationSettingContactURL != nil {
		t := strings.TrimSpace(*r.ConsultationSettingContactURL)
		if t == "" {
			dst.ConsultationSettingContactURL = nil
		} else {
			dst.ConsultationSettingContactURL = &t
		}
	} else {
		dst.ConsultationSettingContactURL = nil
	}
	if r.ConsultationSettingNotes != nil {
		t := strings.TrimSpace(*r.ConsultationSettingNotes)
		if t == "" {
			dst.ConsultationSettingNotes = nil
		} else {
			dst.ConsultationSettingNotes = &t
		}
	} else {
		dst.ConsultationSettingNotes = nil
	}
}

/* =======================================================
   Response DTO
   ======================================================= */

type ConsultationSettingResponse struct {
	ConsultationSettingID              uuid.UUID `json:"consultation_setting_id"`
	ConsultationSettingAcademyID       uuid.UUID `json:"consultation_setting_academy_id"`
	ConsultationSettingIsEnabled       bool      `json:"consultation_setting_is_enabled"`
	ConsultationSettingContactURL      *string   `json:"consultation_setting_contact_url,omitempty"`
	ConsultationSettingDurationMinutes int       `json:"consultation_setting_duration_minutes"`
	ConsultationSettingPrice           int64     `json:"consultation_setting_price"`
	ConsultationSettingNotes           *string   `json:"consultation_setting_notes,omitempty"`
	ConsultationSettingUpdatedAt       time.Time `json:"consultation_setting_updated_at"`
}

func NewConsultationSettingResponse(src *m.ConsultationSettingModel) ConsultationSettingResponse {
	return ConsultationSettingResponse{
		ConsultationSettingID:              src.ConsultationSettingID,
		ConsultationSettingAcademyID:       src.ConsultationSettingAcademyID,
		ConsultationSettingIsEnabled:       src.ConsultationSettingIsEnabled,
		ConsultationSettingContactURL:      src.ConsultationSettingContactURL,
		ConsultationSettingDurationMinutes: src.ConsultationSettingDurationMinutes,
		ConsultationSettingPrice:           src.ConsultationSettingPrice,
		ConsultationSettingNotes:           src.ConsultationSettingNotes,
		ConsultationSettingUpdatedAt:       src.ConsultationSettingUpdatedAt,
	}
}

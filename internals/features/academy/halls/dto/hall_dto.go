// file: internals/features/academy/halls/dto/hall_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "studioku_backend/internals/features/academy/halls/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateHallRequest struct {
	HallName     string  `json:"hall_name"     validate:"required"`
	HallCapacity int     `json:"hall_capacity" validate:"gte=0"`
	HallFloor    *string `json:"hall_floor,omitempty"`
	HallNotes    *string `json:"hall_notes,omitempty"`
}

func (r *CreateHallRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateHallRequest) ApplyToModel(dst *m.HallModel) {
	dst.HallName = strings.TrimSpace(r.HallName)
	dst.HallCapacity = r.HallCapacity
	dst.HallFloor = trimPtr(r.HallFloor)
	dst.HallNotes = trimPtr(r.HallNotes)
	dst.HallIsActive = true
}

type PatchHallRequest struct {
	HallName     *string `json:"hall_name,omitempty"`
	HallCapacity *int    `json:"hall_capacity,omitempty" validate:"omitempty,gte=0"`
	HallFloor    *string `json:"hall_floor,omitempty"`
	HallNotes    *string `json:"hall_notes,omitempty"`
	HallIsActive *bool   `json:"hall_is_active,omitempty"`
}

func (p *PatchHallRequest) Validate(v *validator.Validate) error {
	return v.Struct(p)
}

func (p *PatchHallRequest) ApplyPatch(dst *m.HallModel) {
	if p.HallName != nil {
		dst.HallName = strings.TrimSpace(*p.HallName)
	}
	if p.HallCapacity != nil {
		dst.HallCapacity = *p.HallCapacity
	}
	if p.HallFloor != nil {
		dst.HallFloor = trimPtr(p.HallFloor)
	}
	if p.HallNotes != nil {
		dst.HallNotes = trimPtr(p.HallNotes)
	}
	if p.HallIsActive != nil {
		dst.HallIsActive = *p.HallIsActive
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

/* =======================================================
   Response DTO
   ======================================================= */

type HallResponse struct {
	HallID        uuid.UUID `json:"hall_id"`
	HallAcademyID uuid.UUID `json:"hall_academy_id"`
	HallName      string    `json:"hall_name"`
	HallCapacity  int       `json:"hall_capacity"`
	HallFloor     *string   `json:"hall_floor,omitempty"`
	HallNotes     *string   `json:"hall_notes,omitempty"`
	HallIsActive  bool      `json:"hall_is_active"`
	HallCreatedAt time.Time `json:"hall_created_at"`
	HallUpdatedAt time.Time `json:"hall_updated_at"`
}

func NewHallResponse(src *m.HallModel) HallResponse {
	return HallResponse{
		HallID:        src.HallID,
		HallAcademyID: src.HallAcademyID,
		HallName:      src.HallName,
		HallCapacity:  src.HallCapacity,
		HallFloor:     src.HallFloor,
		HallNotes:     src.HallNotes,
		HallIsActive:  src.HallIsActive,
		HallCreatedAt: src.HallCreatedAt,
		HallUpdatedAt: src.HallUpdatedAt,
	}
}

// file: internals/features/academy/tickets/dto/ticket_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"studioku_backend/internals/constants"
	m "studioku_backend/internals/features/academy/tickets/model"
	svc "studioku_backend/internals/features/academy/tickets/service"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateTicketRequest struct {
	// Required
	TicketName     string `json:"ticket_name"     validate:"required"`
	TicketType     string `json:"ticket_type"     validate:"required,oneof=PERIOD COUNT"`
	TicketPrice    int64  `json:"ticket_price"    validate:"gte=0"`
	TicketCategory string `json:"ticket_category" validate:"required,oneof=regular popup workshop"`

	// PERIOD: wajib valid_days; COUNT: wajib total_count (expire_days opsional)
	TicketValidDays  *int `json:"ticket_valid_days,omitempty"  validate:"omitempty,gte=1"`
	TicketTotalCount *int `json:"ticket_total_count,omitempty" validate:"omitempty,gte=1"`
	TicketExpireDays *int `json:"ticket_expire_days,omitempty" validate:"omitempty,gte=1"`
}

func (r *CreateTicketRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	// cross-field per tipe
	switch constants.TicketType(r.TicketType) {
	case constants.TicketTypePeriod:
		if r.TicketValidDays == nil {
			return errors.New("ticket_valid_days wajib untuk tipe PERIOD")
		}
	case constants.TicketTypeCount:
		if r.TicketTotalCount == nil {
			return errors.New("ticket_total_count wajib untuk tipe COUNT")
		}
	}
	return nil
}

func (r *CreateTicketRequest) ApplyToModel(dst *m.TicketModel) {
	cat := constants.ClassCategory(strings.ToLower(strings.TrimSpace(r.TicketCategory)))

	dst.TicketName = strings.TrimSpace(r.TicketName)
	dst.TicketType = constants.TicketType(r.TicketType)
	dst.TicketPrice = r.TicketPrice
	dst.TicketCategory = &cat
	dst.TicketValidDays = r.TicketValidDays
	dst.TicketTotalCount = r.TicketTotalCount
	dst.TicketExpireDays = r.TicketExpireDays
	dst.TicketIsActive = true
}

type PatchTicketRequest struct {
	// Semua optional — hanya field non-nil yang di-apply
	TicketName       *string `json:"ticket_name,omitempty"`
	TicketPrice      *int64  `json:"ticket_price,omitempty"      validate:"omitempty,gte=0"`
	TicketCategory   *string `json:"ticket_category,omitempty"   validate:"omitempty,oneof=regular popup workshop"`
	TicketValidDays  *int    `json:"ticket_valid_days,omitempty"  validate:"omitempty,gte=1"`
	TicketTotalCount *int    `json:"ticket_total_count,omitempty" validate:"omitempty,gte=1"`
	TicketExpireDays *int    `json:"ticket_expire_days,omitempty" validate:"omitempty,gte=1"`
	TicketIsActive   *bool   `json:"ticket_is_active,omitempty"`
}

func (p *PatchTicketRequest) Validate(v *validator.Validate) error {
	return v.Struct(p)
}

func (p *PatchTicketRequest) ApplyPatch(dst *m.TicketModel) {
	if p.TicketName != nil {
		dst.TicketName = strings.TrimSpace(*p.TicketName)
	}
	if p.TicketPrice != nil {
		dst.TicketPrice = *p.TicketPrice
	}
	if p.TicketCategory != nil {
		cat := constants.ClassCategory(strings.ToLower(strings.TrimSpace(*p.TicketCategory)))
		dst.TicketCategory = &cat
	}
	if p.TicketValidDays != nil {
		dst.TicketValidDays = p.TicketValidDays
	}
	if p.TicketTotalCount != nil {
		dst.TicketTotalCount = p.TicketTotalCount
	}
	if p.TicketExpireDays != nil {
		dst.TicketExpireDays = p.TicketExpireDays
	}
	if p.TicketIsActive != nil {
		dst.TicketIsActive = *p.TicketIsActive
	}
}

/* =======================================================
   Relink (eligibility editor sisi ticket)
   ======================================================= */

type RelinkClassesRequest struct {
	ClassIDs []string `json:"class_ids" validate:"dive,uuid4"`
	// user sudah konfirmasi walau pilihan kosong
	ConfirmEmpty bool `json:"confirm_empty"`
}

func (r *RelinkClassesRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *RelinkClassesRequest) ParsedIDs() ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(r.ClassIDs))
	for _, s := range r.ClassIDs {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type TicketResponse struct {
	TicketID         uuid.UUID               `json:"ticket_id"`
	TicketAcademyID  uuid.UUID               `json:"ticket_academy_id"`
	TicketName       string                  `json:"ticket_name"`
	TicketType       constants.TicketType    `json:"ticket_type"`
	TicketPrice      int64                   `json:"ticket_price"`
	TicketValidDays  *int                    `json:"ticket_valid_days,omitempty"`
	TicketTotalCount *int                    `json:"ticket_total_count,omitempty"`
	TicketExpireDays *int                    `json:"ticket_expire_days,omitempty"`
	TicketCategory   constants.ClassCategory `json:"ticket_category"`
	TicketIsGeneral  bool                    `json:"ticket_is_general"`
	TicketIsActive   bool                    `json:"ticket_is_active"`
	TicketCreatedAt  time.Time               `json:"ticket_created_at"`
	TicketUpdatedAt  time.Time               `json:"ticket_updated_at"`
}

func NewTicketResponse(src *m.TicketModel) TicketResponse {
	return TicketResponse{
		TicketID:         src.TicketID,
		TicketAcademyID:  src.TicketAcademyID,
		TicketName:       src.TicketName,
		TicketType:       src.TicketType,
		TicketPrice:      src.TicketPrice,
		TicketValidDays:  src.TicketValidDays,
		TicketTotalCount: src.TicketTotalCount,
		TicketExpireDays: src.TicketExpireDays,
		// kategori efektif via shim klasifikasi (record legacy)
		TicketCategory: svc.ResolveCategory(
			src.TicketCategory,
			src.TicketLegacyAccessGroup,
			src.TicketLegacyIsCoupon,
		),
		TicketIsGeneral: src.TicketIsGeneral,
		TicketIsActive:  src.TicketIsActive,
		TicketCreatedAt: src.TicketCreatedAt,
		TicketUpdatedAt: src.TicketUpdatedAt,
	}
}

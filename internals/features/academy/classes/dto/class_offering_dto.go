// file: internals/features/academy/classes/dto/class_offering_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"studioku_backend/internals/constants"
	m "studioku_backend/internals/features/academy/classes/model"
	ticketSvc "studioku_backend/internals/features/academy/tickets/service"
)

func strPtrOrNil(s *string) *string {
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
   Request DTOs
   ======================================================= */

type CreateClassOfferingRequest struct {
	// Required (field wajib bisnis)
	ClassOfferingTitle          string `json:"class_offering_title"           validate:"required"`
	ClassOfferingInstructorName string `json:"class_offering_instructor_name" validate:"required"`
	ClassOfferingGenre          string `json:"class_offering_genre"           validate:"required"`
	ClassOfferingCategory       string `json:"class_offering_category"        validate:"required,oneof=regular popup workshop"`

	// Optional
	ClassOfferingDescription     *string        `json:"class_offering_description,omitempty"`
	ClassOfferingImageURL        *string        `json:"class_offering_image_url,omitempty" validate:"omitempty,url"`
	ClassOfferingAccessConfig    datatypes.JSON `json:"class_offering_access_config,omitempty"`
	ClassOfferingDefaultCapacity *int           `json:"class_offering_default_capacity,omitempty" validate:"omitempty,gte=0"`
}

func (r *CreateClassOfferingRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// ApplyToModel mengisi model; slug & academy diisi controller.
func (r *CreateClassOfferingRequest) ApplyToModel(dst *m.ClassOfferingModel) {
	cat := constants.ClassCategory(strings.ToLower(strings.TrimSpace(r.ClassOfferingCategory)))

	dst.ClassOfferingTitle = strings.TrimSpace(r.ClassOfferingTitle)
	dst.ClassOfferingInstructorName = strings.TrimSpace(r.ClassOfferingInstructorName)
	dst.ClassOfferingGenre = strings.TrimSpace(r.ClassOfferingGenre)
	dst.ClassOfferingCategory = &cat
	dst.ClassOfferingDescription = strPtrOrNil(r.ClassOfferingDescription)
	dst.ClassOfferingImageURL = strPtrOrNil(r.ClassOfferingImageURL)
	dst.ClassOfferingAccessConfig = r.ClassOfferingAccessConfig
	if r.ClassOfferingDefaultCapacity != nil {
		dst.ClassOfferingDefaultCapacity = *r.ClassOfferingDefaultCapacity
	}
	dst.ClassOfferingIsActive = true
}

type PatchClassOfferingRequest struct {
	// Semua optional — hanya field non-nil yang di-apply
	ClassOfferingTitle           *string        `json:"class_offering_title,omitempty"`
	ClassOfferingInstructorName  *string        `json:"class_offering_instructor_name,omitempty"`
	ClassOfferingGenre           *string        `json:"class_offering_genre,omitempty"`
	ClassOfferingCategory        *string        `json:"class_offering_category,omitempty" validate:"omitempty,oneof=regular popup workshop"`
	ClassOfferingDescription     *string        `json:"class_offering_description,omitempty"`
	ClassOfferingImageURL        *string        `json:"class_offering_image_url,omitempty" validate:"omitempty,url"`
	ClassOfferingAccessConfig    datatypes.JSON `json:"class_offering_access_config,omitempty"`
	ClassOfferingDefaultCapacity *int           `json:"class_offering_default_capacity,omitempty" validate:"omitempty,gte=0"`
	ClassOfferingIsActive        *bool          `json:"class_offering_is_active,omitempty"`
}

func (p *PatchClassOfferingRequest) Validate(v *validator.Validate) error {
	return v.Struct(p)
}

func (p *PatchClassOfferingRequest) ApplyPatch(dst *m.ClassOfferingModel) {
	if p.ClassOfferingTitle != nil {
		dst.ClassOfferingTitle = strings.TrimSpace(*p.ClassOfferingTitle)
	}
	if p.ClassOfferingInstructorName != nil {
		dst.ClassOfferingInstructorName = strings.TrimSpace(*p.ClassOfferingInstructorName)
	}
	if p.ClassOfferingGenre != nil {
		dst.ClassOfferingGenre = strings.TrimSpace(*p.ClassOfferingGenre)
	}
	if p.ClassOfferingCategory != nil {
		cat := constants.ClassCategory(strings.ToLower(strings.TrimSpace(*p.ClassOfferingCategory)))
		dst.ClassOfferingCategory = &cat
	}
	if p.ClassOfferingDescription != nil {
		dst.ClassOfferingDescription = strPtrOrNil(p.ClassOfferingDescription)
	}
	if p.ClassOfferingImageURL != nil {
		dst.ClassOfferingImageURL = strPtrOrNil(p.ClassOfferingImageURL)
	}
	if len(p.ClassOfferingAccessConfig) > 0 {
		dst.ClassOfferingAccessConfig = p.ClassOfferingAccessConfig
	}
	if p.ClassOfferingDefaultCapacity != nil {
		dst.ClassOfferingDefaultCapacity = *p.ClassOfferingDefaultCapacity
	}
	if p.ClassOfferingIsActive != nil {
		dst.ClassOfferingIsActive = *p.ClassOfferingIsActive
	}
}

/* =======================================================
   Relink (eligibility editor sisi class)
   ======================================================= */

type RelinkTicketsRequest struct {
	TicketIDs []string `json:"ticket_ids" validate:"dive,uuid4"`
	// user sudah konfirmasi walau pilihan kosong (soft warning, bukan blokir)
	ConfirmEmpty bool `json:"confirm_empty"`
}

func (r *RelinkTicketsRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *RelinkTicketsRequest) ParsedIDs() ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(r.TicketIDs))
	for _, s := range r.TicketIDs {
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

type ClassOfferingResponse struct {
	ClassOfferingID              uuid.UUID               `json:"class_offering_id"`
	ClassOfferingAcademyID       uuid.UUID               `json:"class_offering_academy_id"`
	ClassOfferingTitle           string                  `json:"class_offering_title"`
	ClassOfferingSlug            string                  `json:"class_offering_slug"`
	ClassOfferingInstructorName  string                  `json:"class_offering_instructor_name"`
	ClassOfferingGenre           string                  `json:"class_offering_genre"`
	ClassOfferingDescription     *string                 `json:"class_offering_description,omitempty"`
	ClassOfferingImageURL        *string                 `json:"class_offering_image_url,omitempty"`
	ClassOfferingCategory        constants.ClassCategory `json:"class_offering_category"`
	ClassOfferingAccessConfig    datatypes.JSON          `json:"class_offering_access_config,omitempty"`
	ClassOfferingIsGeneralAccess bool                    `json:"class_offering_is_general_access"`
	ClassOfferingDefaultCapacity int                     `json:"class_offering_default_capacity"`
	ClassOfferingIsActive        bool                    `json:"class_offering_is_active"`
	ClassOfferingCreatedAt       time.Time               `json:"class_offering_created_at"`
	ClassOfferingUpdatedAt       time.Time               `json:"class_offering_updated_at"`
}

func NewClassOfferingResponse(src *m.ClassOfferingModel) ClassOfferingResponse {
	return ClassOfferingResponse{
		ClassOfferingID:             src.ClassOfferingID,
		ClassOfferingAcademyID:      src.ClassOfferingAcademyID,
		ClassOfferingTitle:          src.ClassOfferingTitle,
		ClassOfferingSlug:           src.ClassOfferingSlug,
		ClassOfferingInstructorName: src.ClassOfferingInstructorName,
		ClassOfferingGenre:          src.ClassOfferingGenre,
		ClassOfferingDescription:    src.ClassOfferingDescription,
		ClassOfferingImageURL:       src.ClassOfferingImageURL,
		// kategori efektif via shim klasifikasi (record legacy belum tentu
		// punya tag eksplisit)
		ClassOfferingCategory: ticketSvc.ResolveCategory(
			src.ClassOfferingCategory,
			src.ClassOfferingLegacyAccessGroup,
			src.ClassOfferingLegacyIsCoupon,
		),
		ClassOfferingAccessConfig:    src.ClassOfferingAccessConfig,
		ClassOfferingIsGeneralAccess: src.ClassOfferingIsGeneralAccess,
		ClassOfferingDefaultCapacity: src.ClassOfferingDefaultCapacity,
		ClassOfferingIsActive:        src.ClassOfferingIsActive,
		ClassOfferingCreatedAt:       src.ClassOfferingCreatedAt,
		ClassOfferingUpdatedAt:       src.ClassOfferingUpdatedAt,
	}
}

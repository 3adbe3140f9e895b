// file: internals/features/academy/page_sections/dto/page_section_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "studioku_backend/internals/features/academy/page_sections/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreatePageSectionRequest struct {
	PageSectionKind    string         `json:"page_section_kind"  validate:"required"`
	PageSectionTitle   string         `json:"page_section_title" validate:"required"`
	PageSectionContent datatypes.JSON `json:"page_section_content,omitempty"`

	PageSectionDisplayOrder int  `json:"page_section_display_order" validate:"gte=0"`
	PageSectionIsVisible    bool `json:"page_section_is_visible"`
}

func (r *CreatePageSectionRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreatePageSectionRequest) ApplyToModel(dst *m.PageSectionModel) {
	dst.PageSectionKind = strings.ToLower(strings.TrimSpace(r.PageSectionKind))
	dst.PageSectionTitle = strings.TrimSpace(r.PageSectionTitle)
	dst.PageSectionContent = r.PageSectionContent
	dst.PageSectionDisplayOrder = r.PageSectionDisplayOrder
	dst.PageSectionIsVisible = r.PageSectionIsVisible
}

type PatchPageSectionRequest struct {
	PageSectionKind         *string        `json:"page_section_kind,omitempty"`
	PageSectionTitle        *string        `json:"page_section_title,omitempty"`
	PageSectionContent      datatypes.JSON `json:"page_section_content,omitempty"`
	PageSectionDisplayOrder *int           `json:"page_section_display_order,omitempty" validate:"omitempty,gte=0"`
	PageSectionIsVisible    *bool          `json:"page_section_is_visible,omitempty"`
}

func (p *PatchPageSectionRequest) Validate(v *validator.Validate) error {
	return v.Struct(p)
}

func (p *PatchPageSectionRequest) ApplyPatch(dst *m.PageSectionModel) {
	if p.PageSectionKind != nil {
		dst.PageSectionKind = strings.ToLower(strings.TrimSpace(*p.PageSectionKind))
	}
	if p.PageSectionTitle != nil {
		dst.PageSectionTitle = strings.TrimSpace(*p.PageSectionTitle)
	}
	if len(p.PageSectionContent) > 0 {
		dst.PageSectionContent = p.PageSectionContent
	}
	if p.PageSectionDisplayOrder != nil {
		dst.PageSectionDisplayOrder = *p.PageSectionDisplayOrder
	}
	if p.PageSectionIsVisible != nil {
		dst.PageSectionIsVisible = *p.PageSectionIsVisible
	}
}

// ReorderPageSectionsRequest — urutan baru = posisi di array (0-based)
type ReorderPageSectionsRequest struct {
	SectionIDs []string `json:"section_ids" validate:"required,min=1,dive,uuid4"`
}

func (r *ReorderPageSectionsRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *ReorderPageSectionsRequest) ParsedIDs() ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(r.SectionIDs))
	for _, s := range r.SectionIDs {
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

type PageSectionResponse struct {
	PageSectionID           uuid.UUID      `json:"page_section_id"`
	PageSectionAcademyID    uuid.UUID      `json:"page_section_academy_id"`
	PageSectionKind         string         `json:"page_section_kind"`
	PageSectionTitle        string         `json:"page_section_title"`
	PageSectionContent      datatypes.JSON `json:"page_section_content,omitempty"`
	PageSectionDisplayOrder int            `json:"page_section_display_order"`
	PageSectionIsVisible    bool           `json:"page_section_is_visible"`
	PageSectionCreatedAt    time.Time      `json:"page_section_created_at"`
	PageSectionUpdatedAt    time.Time      `json:"page_section_updated_at"`
}

func NewPageSectionResponse(src *m.PageSectionModel) PageSectionResponse {
	return PageSectionResponse{
		PageSectionID:           src.PageSectionID,
		PageSectionAcademyID:    src.PageSectionAcademyID,
		PageSectionKind:         src.PageSectionKind,
		PageSectionTitle:        src.PageSectionTitle,
		PageSectionContent:      src.PageSectionContent,
		PageSectionDisplayOrder: src.PageSectionDisplayOrder,
		PageSectionIsVisible:    src.PageSectionIsVisible,
		PageSectionCreatedAt:    src.PageSectionCreatedAt,
		PageSectionUpdatedAt:    src.PageSectionUpdatedAt,
	}
}

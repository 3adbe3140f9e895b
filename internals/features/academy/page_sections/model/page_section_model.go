// file: internals/features/academy/page_sections/model/page_section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PageSectionModel — map ke tabel page_sections (kustomisasi halaman publik akademi)
type PageSectionModel struct {
	PageSectionID uuid.UUID `json:"page_section_id" gorm:"type:uuid;primaryKey;column:page_section_id;default:gen_random_uuid()"`

	PageSectionAcademyID uuid.UUID `json:"page_section_academy_id" gorm:"type:uuid;not null;column:page_section_academy_id;index"`

	// jenis section bebas per frontend: hero, gallery, schedule, pricing, faq, ...
	PageSectionKind  string `json:"page_section_kind" gorm:"type:text;not null;column:page_section_kind"`
	PageSectionTitle string `json:"page_section_title" gorm:"type:text;not null;column:page_section_title"`

	// isi bebas berbentuk JSON; struktur ditentukan frontend per kind
	PageSectionContent datatypes.JSON `json:"page_section_content" gorm:"type:jsonb;column:page_section_content"`

	PageSectionDisplayOrder int  `json:"page_section_display_order" gorm:"type:int;not null;default:0;column:page_section_display_order"`
	PageSectionIsVisible    bool `json:"page_section_is_visible" gorm:"type:boolean;not null;default:true;column:page_section_is_visible"`

	PageSectionCreatedAt time.Time      `json:"page_section_created_at" gorm:"column:page_section_created_at;not null;autoCreateTime"`
	PageSectionUpdatedAt time.Time      `json:"page_section_updated_at" gorm:"column:page_section_updated_at;not null;autoUpdateTime"`
	PageSectionDeletedAt gorm.DeletedAt `json:"page_section_deleted_at" gorm:"column:page_section_deleted_at;index"`
}

func (PageSectionModel) TableName() string {
	return "page_sections"
}

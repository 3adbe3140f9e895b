// file: internals/features/academy/classes/model/class_offering_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"studioku_backend/internals/constants"
)

/* =======================================================
   ClassOfferingModel — map ke tabel class_offerings
   Definisi kelas yang bisa dijual/di-booking (regular/popup/workshop)
   ======================================================= */

type ClassOfferingModel struct {
	// PK
	ClassOfferingID uuid.UUID `json:"class_offering_id" gorm:"type:uuid;primaryKey;column:class_offering_id;default:gen_random_uuid()"`

	// Tenant / scope
	ClassOfferingAcademyID uuid.UUID `json:"class_offering_academy_id" gorm:"type:uuid;not null;column:class_offering_academy_id"`

	ClassOfferingTitle          string `json:"class_offering_title" gorm:"type:text;not null;column:class_offering_title"`
	ClassOfferingSlug           string `json:"class_offering_slug" gorm:"type:text;not null;column:class_offering_slug"`
	ClassOfferingInstructorName string `json:"class_offering_instructor_name" gorm:"type:text;not null;column:class_offering_instructor_name"`
	ClassOfferingGenre          string `json:"class_offering_genre" gorm:"type:text;not null;column:class_offering_genre"`
	ClassOfferingDescription    *string `json:"class_offering_description,omitempty" gorm:"type:text;column:class_offering_description"`
	ClassOfferingImageURL       *string `json:"class_offering_image_url,omitempty" gorm:"type:text;column:class_offering_image_url"`

	// Kategori (kelas baru wajib eksplisit; legacy lewat shim klasifikasi)
	ClassOfferingCategory *constants.ClassCategory `json:"class_offering_category,omitempty" gorm:"type:text;column:class_offering_category"`

	// Field legacy — jangan diperluas (shim migrasi)
	ClassOfferingLegacyAccessGroup *string `json:"class_offering_legacy_access_group,omitempty" gorm:"type:text;column:class_offering_legacy_access_group"`
	ClassOfferingLegacyIsCoupon    bool    `json:"class_offering_legacy_is_coupon" gorm:"type:boolean;not null;default:false;column:class_offering_legacy_is_coupon"`

	// Blob konfigurasi mode akses generik (flag UI, divalidasi di boundary)
	ClassOfferingAccessConfig datatypes.JSON `json:"class_offering_access_config,omitempty" gorm:"type:jsonb;column:class_offering_access_config"`

	// true = bisa diakses SEMUA ticket, termasuk yang dibuat belakangan
	ClassOfferingIsGeneralAccess bool `json:"class_offering_is_general_access" gorm:"type:boolean;not null;default:false;column:class_offering_is_general_access"`

	ClassOfferingDefaultCapacity int  `json:"class_offering_default_capacity" gorm:"type:int;not null;default:0;column:class_offering_default_capacity"`
	ClassOfferingIsActive        bool `json:"class_offering_is_active" gorm:"type:boolean;not null;default:true;column:class_offering_is_active"`

	ClassOfferingCreatedAt time.Time      `json:"class_offering_created_at" gorm:"column:class_offering_created_at;not null;autoCreateTime"`
	ClassOfferingUpdatedAt time.Time      `json:"class_offering_updated_at" gorm:"column:class_offering_updated_at;not null;autoUpdateTime"`
	ClassOfferingDeletedAt gorm.DeletedAt `json:"class_offering_deleted_at" gorm:"column:class_offering_deleted_at;index"`
}

func (ClassOfferingModel) TableName() string {
	return "class_offerings"
}

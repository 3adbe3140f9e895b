// file: internals/features/academy/halls/model/hall_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HallModel — map ke tabel halls (ruang latihan/studio fisik)
type HallModel struct {
	HallID uuid.UUID `json:"hall_id" gorm:"type:uuid;primaryKey;column:hall_id;default:gen_random_uuid()"`

	HallAcademyID uuid.UUID `json:"hall_academy_id" gorm:"type:uuid;not null;column:hall_academy_id"`

	HallName     string  `json:"hall_name" gorm:"type:text;not null;column:hall_name"`
	HallCapacity int     `json:"hall_capacity" gorm:"type:int;not null;default:0;column:hall_capacity"`
	HallFloor    *string `json:"hall_floor,omitempty" gorm:"type:text;column:hall_floor"`
	HallNotes    *string `json:"hall_notes,omitempty" gorm:"type:text;column:hall_notes"`

	HallIsActive bool `json:"hall_is_active" gorm:"type:boolean;not null;default:true;column:hall_is_active"`

	HallCreatedAt time.Time      `json:"hall_created_at" gorm:"column:hall_created_at;not null;autoCreateTime"`
	HallUpdatedAt time.Time      `json:"hall_updated_at" gorm:"column:hall_updated_at;not null;autoUpdateTime"`
	HallDeletedAt gorm.DeletedAt `json:"hall_deleted_at" gorm:"column:hall_deleted_at;index"`
}

func (HallModel) TableName() string {
	return "halls"
}

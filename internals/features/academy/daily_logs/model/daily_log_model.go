// file: internals/features/academy/daily_logs/model/daily_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyLogModel — map ke tabel daily_logs (catatan harian akademi)
type DailyLogModel struct {
	DailyLogID uuid.UUID `json:"daily_log_id" gorm:"type:uuid;primaryKey;column:daily_log_id;default:gen_random_uuid()"`

	DailyLogAcademyID uuid.UUID `json:"daily_log_academy_id" gorm:"type:uuid;not null;column:daily_log_academy_id;index"`

	// satu entri per tanggal per kelas itu hal biasa, jadi tidak di-unique-kan
	DailyLogDate    time.Time `json:"daily_log_date" gorm:"type:date;not null;column:daily_log_date;index"`
	DailyLogTitle   string    `json:"daily_log_title" gorm:"type:text;not null;column:daily_log_title"`
	DailyLogContent string    `json:"daily_log_content" gorm:"type:text;not null;column:daily_log_content"`

	DailyLogClassOfferingID *uuid.UUID `json:"daily_log_class_offering_id,omitempty" gorm:"type:uuid;column:daily_log_class_offering_id;index"`
	DailyLogImageURL        *string    `json:"daily_log_image_url,omitempty" gorm:"type:text;column:daily_log_image_url"`

	DailyLogCreatedByUserID uuid.UUID `json:"daily_log_created_by_user_id" gorm:"type:uuid;not null;column:daily_log_created_by_user_id"`

	DailyLogCreatedAt time.Time      `json:"daily_log_created_at" gorm:"column:daily_log_created_at;not null;autoCreateTime"`
	DailyLogUpdatedAt time.Time      `json:"daily_log_updated_at" gorm:"column:daily_log_updated_at;not null;autoUpdateTime"`
	DailyLogDeletedAt gorm.DeletedAt `json:"daily_log_deleted_at" gorm:"column:daily_log_deleted_at;index"`
}

func (DailyLogModel) TableName() string {
	return "daily_logs"
}

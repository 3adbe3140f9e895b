// file: internals/features/academy/consultations/model/consultation_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsultationSettingModel — satu baris per akademi (tabel consultation_settings)
type ConsultationSettingModel struct {
	ConsultationSettingID uuid.UUID `json:"consultation_setting_id" gorm:"type:uuid;primaryKey;column:consultation_setting_id;default:gen_random_uuid()"`

	ConsultationSettingAcademyID uuid.UUID `json:"consultation_setting_academy_id" gorm:"type:uuid;not null;uniqueIndex:uq_consultation_setting_academy;column:consultation_setting_academy_id"`

	ConsultationSettingIsEnabled       bool    `json:"consultation_setting_is_enabled" gorm:"type:boolean;not null;default:false;column:consultation_setting_is_enabled"`
	ConsultationSettingContactURL      *string `json:"consultation_setting_contact_url,omitempty" gorm:"type:text;column:consultation_setting_contact_url"`
	ConsultationSettingDurationMinutes int     `json:"consultation_setting_duration_minutes" gorm:"type:int;not null;default:30;column:consultation_setting_duration_minutes"`
	ConsultationSettingPrice           int64   `json:"consultation_setting_price" gorm:"type:bigint;not null;default:0;column:consultation_setting_price"`
	ConsultationSettingNotes           *string `json:"consultation_setting_notes,omitempty" gorm:"type:text;column:consultation_setting_notes"`

	ConsultationSettingCreatedAt time.Time `json:"consultation_setting_created_at" gorm:"column:consultation_setting_created_at;not null;autoCreateTime"`
	ConsultationSettingUpdatedAt time.Time `json:"consultation_setting_updated_at" gorm:"column:consultation_setting_updated_at;not null;autoUpdateTime"`
}

func (ConsultationSettingModel) TableName() string {
	return "consultation_settings"
}

// DefaultConsultationSetting dipakai saat akademi belum pernah menyimpan setting
func DefaultConsultationSetting(academyID uuid.UUID) ConsultationSettingModel {
	return ConsultationSettingModel{
		ConsultationSettingAcademyID:       academyID,
		ConsultationSettingIsEnabled:       false,
		ConsultationSettingDurationMinutes: 30,
		ConsultationSettingPrice:           0,
	}
}

// file: internals/features/academy/schedules/model/recurring_definition_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   RecurringDefinitionModel — map ke tabel class_recurring_definitions
   Template jadwal berulang; immutable setelah dibuat.
   Occurrence menyimpan back-reference ke sini.
   ======================================================= */

type RecurringDefinitionModel struct {
	// PK
	RecurringDefinitionID uuid.UUID `json:"recurring_definition_id" gorm:"type:uuid;primaryKey;column:recurring_definition_id;default:gen_random_uuid()"`

	// Tenant / scope
	RecurringDefinitionAcademyID uuid.UUID `json:"recurring_definition_academy_id" gorm:"type:uuid;not null;column:recurring_definition_academy_id"`

	// Induk → class offering
	RecurringDefinitionClassID uuid.UUID `json:"recurring_definition_class_id" gorm:"type:uuid;not null;column:recurring_definition_class_id"`

	// Opsional
	RecurringDefinitionHallID       *uuid.UUID `json:"recurring_definition_hall_id,omitempty" gorm:"type:uuid;column:recurring_definition_hall_id"`
	RecurringDefinitionInstructorID *uuid.UUID `json:"recurring_definition_instructor_id,omitempty" gorm:"type:uuid;column:recurring_definition_instructor_id"`

	// Rentang berlaku (inklusif)
	RecurringDefinitionStartDate time.Time `json:"recurring_definition_start_date" gorm:"type:date;not null;column:recurring_definition_start_date"`
	RecurringDefinitionEndDate   time.Time `json:"recurring_definition_end_date" gorm:"type:date;not null;column:recurring_definition_end_date"`

	// Jam mulai/selesai per sesi
	RecurringDefinitionStartTime time.Time `json:"recurring_definition_start_time" gorm:"type:time;not null;column:recurring_definition_start_time"`
	RecurringDefinitionEndTime   time.Time `json:"recurring_definition_end_time" gorm:"type:time;not null;column:recurring_definition_end_time"`

	// Hari (0=Minggu..6=Sabtu) & interval minggu (>=1)
	RecurringDefinitionWeekdays      pq.Int64Array `json:"recurring_definition_weekdays" gorm:"type:int[];not null;column:recurring_definition_weekdays"`
	RecurringDefinitionIntervalWeeks int           `json:"recurring_definition_interval_weeks" gorm:"type:int;not null;default:1;column:recurring_definition_interval_weeks"`

	// Kapasitas default per occurrence
	RecurringDefinitionCapacity int `json:"recurring_definition_capacity" gorm:"type:int;not null;default:0;column:recurring_definition_capacity"`

	// Soft deactivate saat jadwal dihapus massal (bukan hard delete)
	RecurringDefinitionIsActive bool `json:"recurring_definition_is_active" gorm:"type:boolean;not null;default:true;column:recurring_definition_is_active"`

	RecurringDefinitionCreatedAt time.Time      `json:"recurring_definition_created_at" gorm:"column:recurring_definition_created_at;not null;autoCreateTime"`
	RecurringDefinitionUpdatedAt time.Time      `json:"recurring_definition_updated_at" gorm:"column:recurring_definition_updated_at;not null;autoUpdateTime"`
	RecurringDefinitionDeletedAt gorm.DeletedAt `json:"recurring_definition_deleted_at" gorm:"column:recurring_definition_deleted_at;index"`
}

func (RecurringDefinitionModel) TableName() string {
	return "class_recurring_definitions"
}

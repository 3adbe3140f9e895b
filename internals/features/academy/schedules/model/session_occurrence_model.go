// file: internals/features/academy/schedules/model/session_occurrence_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   SessionOccurrenceModel — map ke tabel class_session_occurrences
   Satu instance bookable konkret; dibuat massal oleh generator,
   editable/cancelable per item setelahnya.
   ======================================================= */

type SessionOccurrenceModel struct {
	// PK
	SessionOccurrenceID uuid.UUID `json:"session_occurrence_id" gorm:"type:uuid;primaryKey;column:session_occurrence_id;default:gen_random_uuid()"`

	// Tenant / scope
	SessionOccurrenceAcademyID uuid.UUID `json:"session_occurrence_academy_id" gorm:"type:uuid;not null;column:session_occurrence_academy_id"`

	// Induk → class offering
	SessionOccurrenceClassID uuid.UUID `json:"session_occurrence_class_id" gorm:"type:uuid;not null;column:session_occurrence_class_id"`

	// Opsional
	SessionOccurrenceHallID       *uuid.UUID `json:"session_occurrence_hall_id,omitempty" gorm:"type:uuid;column:session_occurrence_hall_id"`
	SessionOccurrenceInstructorID *uuid.UUID `json:"session_occurrence_instructor_id,omitempty" gorm:"type:uuid;column:session_occurrence_instructor_id"`

	// Waktu absolut (zona waktu venue)
	SessionOccurrenceStartAt time.Time `json:"session_occurrence_start_at" gorm:"type:timestamptz;not null;column:session_occurrence_start_at"`
	SessionOccurrenceEndAt   time.Time `json:"session_occurrence_end_at" gorm:"type:timestamptz;not null;column:session_occurrence_end_at"`

	// Kapasitas & booking (enforcement enrolled<=capacity ada di subsistem booking)
	SessionOccurrenceCapacity      int `json:"session_occurrence_capacity" gorm:"type:int;not null;default:0;column:session_occurrence_capacity"`
	SessionOccurrenceEnrolledCount int `json:"session_occurrence_enrolled_count" gorm:"type:int;not null;default:0;column:session_occurrence_enrolled_count"`

	// Cancel = soft flag, bukan delete
	SessionOccurrenceIsCanceled bool `json:"session_occurrence_is_canceled" gorm:"type:boolean;not null;default:false;column:session_occurrence_is_canceled"`

	// Back-reference ke template yang melahirkan occurrence ini (nullable)
	SessionOccurrenceDefinitionID *uuid.UUID `json:"session_occurrence_definition_id,omitempty" gorm:"type:uuid;column:session_occurrence_definition_id;index"`

	SessionOccurrenceCreatedAt time.Time      `json:"session_occurrence_created_at" gorm:"column:session_occurrence_created_at;not null;autoCreateTime"`
	SessionOccurrenceUpdatedAt time.Time      `json:"session_occurrence_updated_at" gorm:"column:session_occurrence_updated_at;not null;autoUpdateTime"`
	SessionOccurrenceDeletedAt gorm.DeletedAt `json:"session_occurrence_deleted_at" gorm:"column:session_occurrence_deleted_at;index"`
}

func (SessionOccurrenceModel) TableName() string {
	return "class_session_occurrences"
}

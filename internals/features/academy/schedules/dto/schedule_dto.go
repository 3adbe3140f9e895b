// file: internals/features/academy/schedules/dto/schedule_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"

	m "studioku_backend/internals/features/academy/schedules/model"
)

/* =======================================================
   Util & parsing
   ======================================================= */

var (
	layoutDate = "2006-01-02" // DATE
	layoutT1   = "15:04"      // TIME (HH:mm)
	layoutT2   = "15:04:05"   // TIME (HH:mm:ss)
)

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (want YYYY-MM-DD): %w", err)
	}
	return t, nil
}

func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty time")
	}
	// coba HH:mm lalu HH:mm:ss
	if t, err := time.Parse(layoutT1, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutT2, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time format (want HH:mm or HH:mm:ss)")
}

func uuidPtrFromString(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	ss := strings.TrimSpace(*s)
	if ss == "" {
		return nil, nil
	}
	id, err := uuid.Parse(ss)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid: %w", err)
	}
	return &id, nil
}

/* =======================================================
   Request DTOs
   - String untuk tanggal & jam biar simpel dari FE
   ======================================================= */

type CreateRecurringDefinitionRequest struct {
	// Required
	RecurringDefinitionClassID   string `json:"recurring_definition_class_id"    validate:"required,uuid4"`
	RecurringDefinitionStartDate string `json:"recurring_definition_start_date"  validate:"required"` // "YYYY-MM-DD"
	RecurringDefinitionEndDate   string `json:"recurring_definition_end_date"    validate:"required"`
	RecurringDefinitionStartTime string `json:"recurring_definition_start_time"  validate:"required"` // "HH:mm" / "HH:mm:ss"
	RecurringDefinitionEndTime   string `json:"recurring_definition_end_time"    validate:"required"`
	RecurringDefinitionWeekdays  []int  `json:"recurring_definition_weekdays"    validate:"required,min=1,dive,gte=0,lte=6"`

	// Optional
	RecurringDefinitionIntervalWeeks *int    `json:"recurring_definition_interval_weeks,omitempty" validate:"omitempty,gte=1"`
	RecurringDefinitionCapacity      *int    `json:"recurring_definition_capacity,omitempty"       validate:"omitempty,gte=0"`
	RecurringDefinitionHallID        *string `json:"recurring_definition_hall_id,omitempty"        validate:"omitempty,uuid4"`
	RecurringDefinitionInstructorID  *string `json:"recurring_definition_instructor_id,omitempty"  validate:"omitempty,uuid4"`
}

func (r *CreateRecurringDefinitionRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// ApplyToModel memvalidasi cross-field (urutan tanggal & jam) lalu mengisi model.
// AcademyID diisi controller dari token, bukan dari body.
func (r *CreateRecurringDefinitionRequest) ApplyToModel(dst *m.RecurringDefinitionModel) error {
	classID, err := uuid.Parse(strings.TrimSpace(r.RecurringDefinitionClassID))
	if err != nil {
		return fmt.Errorf("recurring_definition_class_id: %w", err)
	}

	startDate, err := ParseDate(r.RecurringDefinitionStartDate)
	if err != nil {
		return err
	}
	endDate, err := ParseDate(r.RecurringDefinitionEndDate)
	if err != nil {
		return err
	}
	if endDate.Before(startDate) {
		return errors.New("recurring_definition_end_date must be >= recurring_definition_start_date")
	}

	startTime, err := ParseTime(r.RecurringDefinitionStartTime)
	if err != nil {
		return err
	}
	endTime, err := ParseTime(r.RecurringDefinitionEndTime)
	if err != nil {
		return err
	}
	if !endTime.After(startTime) {
		return errors.New("recurring_definition_end_time must be greater than start_time")
	}

	hallID, err := uuidPtrFromString(r.RecurringDefinitionHallID)
	if err != nil {
		return err
	}
	instructorID, err := uuidPtrFromString(r.RecurringDefinitionInstructorID)
	if err != nil {
		return err
	}

	weekdays := make(pq.Int64Array, 0, len(r.RecurringDefinitionWeekdays))
	seen := [7]bool{}
	for _, w := range r.RecurringDefinitionWeekdays {
		if w < 0 || w > 6 {
			return errors.New("recurring_definition_weekdays must be 0..6")
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		weekdays = append(weekdays, int64(w))
	}
	if len(weekdays) == 0 {
		return errors.New("recurring_definition_weekdays must not be empty")
	}

	dst.RecurringDefinitionClassID = classID
	dst.RecurringDefinitionStartDate = startDate
	dst.RecurringDefinitionEndDate = endDate
	dst.RecurringDefinitionStartTime = startTime
	dst.RecurringDefinitionEndTime = endTime
	dst.RecurringDefinitionWeekdays = weekdays
	dst.RecurringDefinitionHallID = hallID
	dst.RecurringDefinitionInstructorID = instructorID

	if r.RecurringDefinitionIntervalWeeks != nil {
		dst.RecurringDefinitionIntervalWeeks = *r.RecurringDefinitionIntervalWeeks
	} else {
		dst.RecurringDefinitionIntervalWeeks = 1
	}
	if r.RecurringDefinitionCapacity != nil {
		dst.RecurringDefinitionCapacity = *r.RecurringDefinitionCapacity
	}
	dst.RecurringDefinitionIsActive = true

	return nil
}

/* =======================================================
   PATCH occurrence — apply only non-nil fields
   ======================================================= */

type PatchSessionOccurrenceRequest struct {
	SessionOccurrenceHallID       *string `json:"session_occurrence_hall_id,omitempty"       validate:"omitempty,uuid4"`
	SessionOccurrenceInstructorID *string `json:"session_occurrence_instructor_id,omitempty" validate:"omitempty,uuid4"`
	SessionOccurrenceStartAt      *string `json:"session_occurrence_start_at,omitempty"`
	SessionOccurrenceEndAt        *string `json:"session_occurrence_end_at,omitempty"`
	SessionOccurrenceCapacity     *int    `json:"session_occurrence_capacity,omitempty"      validate:"omitempty,gte=0"`
	SessionOccurrenceIsCanceled   *bool   `json:"session_occurrence_is_canceled,omitempty"`
}

func (p *PatchSessionOccurrenceRequest) Validate(v *validator.Validate) error {
	return v.Struct(p)
}

func (p *PatchSessionOccurrenceRequest) ApplyPatch(dst *m.SessionOccurrenceModel) error {
	if p.SessionOccurrenceHallID != nil {
		idp, err := uuidPtrFromString(p.SessionOccurrenceHallID)
		if err != nil {
			return fmt.Errorf("session_occurrence_hall_id: %w", err)
		}
		dst.SessionOccurrenceHallID = idp
	}
	if p.SessionOccurrenceInstructorID != nil {
		idp, err := uuidPtrFromString(p.SessionOccurrenceInstructorID)
		if err != nil {
			return fmt.Errorf("session_occurrence_instructor_id: %w", err)
		}
		dst.SessionOccurrenceInstructorID = idp
	}
	if p.SessionOccurrenceStartAt != nil {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(*p.SessionOccurrenceStartAt))
		if err != nil {
			return fmt.Errorf("session_occurrence_start_at: %w", err)
		}
		dst.SessionOccurrenceStartAt = t
	}
	if p.SessionOccurrenceEndAt != nil {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(*p.SessionOccurrenceEndAt))
		if err != nil {
			return fmt.Errorf("session_occurrence_end_at: %w", err)
		}
		dst.SessionOccurrenceEndAt = t
	}
	if p.SessionOccurrenceStartAt != nil || p.SessionOccurrenceEndAt != nil {
		if !dst.SessionOccurrenceEndAt.After(dst.SessionOccurrenceStartAt) {
			return errors.New("session_occurrence_end_at must be greater than start_at")
		}
	}
	if p.SessionOccurrenceCapacity != nil {
		dst.SessionOccurrenceCapacity = *p.SessionOccurrenceCapacity
	}
	if p.SessionOccurrenceIsCanceled != nil {
		dst.SessionOccurrenceIsCanceled = *p.SessionOccurrenceIsCanceled
	}
	return nil
}

/* =======================================================
   Response DTOs
   ======================================================= */

type RecurringDefinitionResponse struct {
	RecurringDefinitionID            uuid.UUID  `json:"recurring_definition_id"`
	RecurringDefinitionAcademyID     uuid.UUID  `json:"recurring_definition_academy_id"`
	RecurringDefinitionClassID       uuid.UUID  `json:"recurring_definition_class_id"`
	RecurringDefinitionHallID        *uuid.UUID `json:"recurring_definition_hall_id,omitempty"`
	RecurringDefinitionInstructorID  *uuid.UUID `json:"recurring_definition_instructor_id,omitempty"`
	RecurringDefinitionStartDate     string     `json:"recurring_definition_start_date"`
	RecurringDefinitionEndDate       string     `json:"recurring_definition_end_date"`
	RecurringDefinitionStartTime     string     `json:"recurring_definition_start_time"`
	RecurringDefinitionEndTime       string     `json:"recurring_definition_end_time"`
	RecurringDefinitionWeekdays      []int      `json:"recurring_definition_weekdays"`
	RecurringDefinitionIntervalWeeks int        `json:"recurring_definition_interval_weeks"`
	RecurringDefinitionCapacity      int        `json:"recurring_definition_capacity"`
	RecurringDefinitionIsActive      bool       `json:"recurring_definition_is_active"`
	RecurringDefinitionCreatedAt     time.Time  `json:"recurring_definition_created_at"`
}

func NewRecurringDefinitionResponse(src *m.RecurringDefinitionModel) RecurringDefinitionResponse {
	weekdays := make([]int, 0, len(src.RecurringDefinitionWeekdays))
	for _, w := range src.RecurringDefinitionWeekdays {
		weekdays = append(weekdays, int(w))
	}
	return RecurringDefinitionResponse{
		RecurringDefinitionID:            src.RecurringDefinitionID,
		RecurringDefinitionAcademyID:     src.RecurringDefinitionAcademyID,
		RecurringDefinitionClassID:       src.RecurringDefinitionClassID,
		RecurringDefinitionHallID:        src.RecurringDefinitionHallID,
		RecurringDefinitionInstructorID:  src.RecurringDefinitionInstructorID,
		RecurringDefinitionStartDate:     src.RecurringDefinitionStartDate.Format(layoutDate),
		RecurringDefinitionEndDate:       src.RecurringDefinitionEndDate.Format(layoutDate),
		RecurringDefinitionStartTime:     src.RecurringDefinitionStartTime.Format(layoutT2),
		RecurringDefinitionEndTime:       src.RecurringDefinitionEndTime.Format(layoutT2),
		RecurringDefinitionWeekdays:      weekdays,
		RecurringDefinitionIntervalWeeks: src.RecurringDefinitionIntervalWeeks,
		RecurringDefinitionCapacity:      src.RecurringDefinitionCapacity,
		RecurringDefinitionIsActive:      src.RecurringDefinitionIsActive,
		RecurringDefinitionCreatedAt:     src.RecurringDefinitionCreatedAt,
	}
}

type SessionOccurrenceResponse struct {
	SessionOccurrenceID            uuid.UUID  `json:"session_occurrence_id"`
	SessionOccurrenceAcademyID     uuid.UUID  `json:"session_occurrence_academy_id"`
	SessionOccurrenceClassID       uuid.UUID  `json:"session_occurrence_class_id"`
	SessionOccurrenceHallID        *uuid.UUID `json:"session_occurrence_hall_id,omitempty"`
	SessionOccurrenceInstructorID  *uuid.UUID `json:"session_occurrence_instructor_id,omitempty"`
	SessionOccurrenceStartAt       time.Time  `json:"session_occurrence_start_at"`
	SessionOccurrenceEndAt         time.Time  `json:"session_occurrence_end_at"`
	SessionOccurrenceCapacity      int        `json:"session_occurrence_capacity"`
	SessionOccurrenceEnrolledCount int        `json:"session_occurrence_enrolled_count"`
	SessionOccurrenceIsCanceled    bool       `json:"session_occurrence_is_canceled"`
	SessionOccurrenceDefinitionID  *uuid.UUID `json:"session_occurrence_definition_id,omitempty"`
	SessionOccurrenceCreatedAt     time.Time  `json:"session_occurrence_created_at"`
	SessionOccurrenceUpdatedAt     time.Time  `json:"session_occurrence_updated_at"`
}

func NewSessionOccurrenceResponse(src *m.SessionOccurrenceModel) SessionOccurrenceResponse {
	return SessionOccurrenceResponse{
		SessionOccurrenceID:            src.SessionOccurrenceID,
		SessionOccurrenceAcademyID:     src.SessionOccurrenceAcademyID,
		SessionOccurrenceClassID:       src.SessionOccurrenceClassID,
		SessionOccurrenceHallID:        src.SessionOccurrenceHallID,
		SessionOccurrenceInstructorID:  src.SessionOccurrenceInstructorID,
		SessionOccurrenceStartAt:       src.SessionOccurrenceStartAt,
		SessionOccurrenceEndAt:         src.SessionOccurrenceEndAt,
		SessionOccurrenceCapacity:      src.SessionOccurrenceCapacity,
		SessionOccurrenceEnrolledCount: src.SessionOccurrenceEnrolledCount,
		SessionOccurrenceIsCanceled:    src.SessionOccurrenceIsCanceled,
		SessionOccurrenceDefinitionID:  src.SessionOccurrenceDefinitionID,
		SessionOccurrenceCreatedAt:     src.SessionOccurrenceCreatedAt,
		SessionOccurrenceUpdatedAt:     src.SessionOccurrenceUpdatedAt,
	}
}

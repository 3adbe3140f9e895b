// file: internals/features/academy/classes/dto/class_wizard_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"studioku_backend/internals/constants"
	svc "studioku_backend/internals/features/academy/classes/service"
)

/* =======================================================
   Payload submit wizard (FE menjalankan step-nya sendiri;
   BE mengulang guard per step lewat reducer sebelum persist)
   ======================================================= */

type SubmitClassWizardRequest struct {
	// Step 1
	Category string `json:"category" validate:"required,oneof=regular popup workshop"`

	// Step 2
	Title          string  `json:"title"           validate:"required"`
	InstructorName string  `json:"instructor_name" validate:"required"`
	Genre          string  `json:"genre"           validate:"required"`
	Description    string  `json:"description,omitempty"`
	Capacity       int     `json:"capacity"        validate:"gte=0"`
	StartDate      string  `json:"start_date,omitempty"`
	EndDate        string  `json:"end_date,omitempty"`
	StartTime      string  `json:"start_time,omitempty"`
	EndTime        string  `json:"end_time,omitempty"`
	Weekdays       []int   `json:"weekdays,omitempty" validate:"omitempty,dive,gte=0,lte=6"`
	IntervalWeeks  int     `json:"interval_weeks,omitempty" validate:"omitempty,gte=1"`
	HallID         *string `json:"hall_id,omitempty" validate:"omitempty,uuid4"`

	// Step 3
	TicketIDs    []string `json:"ticket_ids" validate:"dive,uuid4"`
	ConfirmEmpty bool     `json:"confirm_empty"`
}

func (r *SubmitClassWizardRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// ToWizardState membangun state lalu memutar reducer sampai Submitted,
// jadi guard tiap step dievaluasi ulang di server.
func (r *SubmitClassWizardRequest) ToWizardState() (svc.WizardState, error) {
	s := svc.NewWizard()
	s = svc.SetCategory(s, constants.ClassCategory(strings.ToLower(strings.TrimSpace(r.Category))))

	s.Title = r.Title
	s.InstructorName = r.InstructorName
	s.Genre = r.Genre
	s.Description = r.Description
	s.Capacity = r.Capacity
	s.StartDate = r.StartDate
	s.EndDate = r.EndDate
	s.StartTime = r.StartTime
	s.EndTime = r.EndTime
	s.Weekdays = r.Weekdays
	s.IntervalWeeks = r.IntervalWeeks

	if r.HallID != nil {
		if id, err := uuid.Parse(strings.TrimSpace(*r.HallID)); err == nil {
			s.HallID = &id
		}
	}

	ticketIDs := make([]uuid.UUID, 0, len(r.TicketIDs))
	for _, raw := range r.TicketIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return s, err
		}
		ticketIDs = append(ticketIDs, id)
	}
	s = svc.SetEligibility(s, ticketIDs, r.ConfirmEmpty)

	// TypeSelection -> BasicInfo -> EligibilitySetup -> Submitted
	var err error
	for i := 0; i < 3; i++ {
		if s, err = svc.Next(s); err != nil {
			return s, err
		}
	}
	return s, nil
}

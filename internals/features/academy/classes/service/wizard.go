// file: internals/features/academy/classes/service/wizard.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"studioku_backend/internals/constants"
)

/* =======================================================
   Wizard pembuatan kelas — state machine linear:

     TypeSelection -> BasicInfo -> EligibilitySetup -> Submitted

   Tanpa cabang, tanpa skip-ahead. State immutable: reducer menerima
   value dan mengembalikan copy baru, jadi Back tidak pernah
   menghilangkan isian sebelumnya.
   ======================================================= */

type WizardStep int

const (
	StepTypeSelection WizardStep = iota
	StepBasicInfo
	StepEligibilitySetup
	StepSubmitted
)

func (s WizardStep) String() string {
	switch s {
	case StepTypeSelection:
		return "type_selection"
	case StepBasicInfo:
		return "basic_info"
	case StepEligibilitySetup:
		return "eligibility_setup"
	case StepSubmitted:
		return "submitted"
	}
	return "unknown"
}

// Guard errors (validation, SEBELUM network call apa pun)
var (
	ErrCategoryRequired      = errors.New("wizard: kategori wajib dipilih")
	ErrBasicInfoIncomplete   = errors.New("wizard: judul, nama instruktur, dan genre wajib diisi")
	ErrWeekdaysRequired      = errors.New("wizard: kelas regular wajib pilih minimal satu hari")
	ErrAlreadySubmitted      = errors.New("wizard: sudah submit")
	ErrEmptyEligibilityNeedsConfirm = errors.New("wizard: eligibility kosong butuh konfirmasi")
)

// WizardState membawa seluruh isian form lintas step.
type WizardState struct {
	Step WizardStep

	// Step 1 — TypeSelection
	Category constants.ClassCategory

	// Step 2 — BasicInfo
	Title          string
	InstructorName string
	Genre          string
	Description    string
	Capacity       int

	// jadwal berulang (wajib untuk regular)
	StartDate     string // YYYY-MM-DD
	EndDate       string
	StartTime     string // HH:mm
	EndTime       string
	Weekdays      []int // 0=Minggu..6=Sabtu
	IntervalWeeks int
	HallID        *uuid.UUID

	// Step 3 — EligibilitySetup
	SelectedTicketIDs []uuid.UUID
	// user sudah meng-iyakan warning "eligibility kosong"
	ConfirmedEmptyEligibility bool
}

// NewWizard memulai dari step pertama.
func NewWizard() WizardState {
	return WizardState{Step: StepTypeSelection, IntervalWeeks: 1}
}

/* =======================================================
   Reducers
   ======================================================= */

// Next memajukan wizard satu step setelah guard step saat ini lolos.
func Next(s WizardState) (WizardState, error) {
	switch s.Step {
	case StepTypeSelection:
		if !s.Category.Valid() {
			return s, ErrCategoryRequired
		}
		s.Step = StepBasicInfo
		return s, nil

	case StepBasicInfo:
		if strings.TrimSpace(s.Title) == "" ||
			strings.TrimSpace(s.InstructorName) == "" ||
			strings.TrimSpace(s.Genre) == "" {
			return s, ErrBasicInfoIncomplete
		}
		// kelas regular butuh pola mingguan
		if s.Category == constants.CategoryRegular && len(s.Weekdays) == 0 {
			return s, ErrWeekdaysRequired
		}
		s.Step = StepEligibilitySetup
		return s, nil

	case StepEligibilitySetup:
		// tidak ada hard gate; eligibility kosong hanya minta konfirmasi
		if len(s.SelectedTicketIDs) == 0 && !s.ConfirmedEmptyEligibility {
			return s, ErrEmptyEligibilityNeedsConfirm
		}
		s.Step = StepSubmitted
		return s, nil

	default:
		return s, ErrAlreadySubmitted
	}
}

// Back mundur satu step. Seluruh isian tetap utuh (tidak ada data loss).
func Back(s WizardState) WizardState {
	switch s.Step {
	case StepBasicInfo:
		s.Step = StepTypeSelection
	case StepEligibilitySetup:
		s.Step = StepBasicInfo
	}
	// TypeSelection & Submitted: tidak bisa mundur lagi
	return s
}

// SetCategory / SetBasicInfo / SetEligibility: setter immutable kecil
// supaya handler tidak memodifikasi state lama in-place.

func SetCategory(s WizardState, c constants.ClassCategory) WizardState {
	s.Category = c
	return s
}

func SetEligibility(s WizardState, ticketIDs []uuid.UUID, confirmedEmpty bool) WizardState {
	cp := make([]uuid.UUID, len(ticketIDs))
	copy(cp, ticketIDs)
	s.SelectedTicketIDs = cp
	s.ConfirmedEmptyEligibility = confirmedEmpty
	return s
}

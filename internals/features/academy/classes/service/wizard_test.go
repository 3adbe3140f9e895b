package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"studioku_backend/internals/constants"
)

func TestWizard_LinearFlow(t *testing.T) {
	t.Parallel()

	s := NewWizard()
	if s.Step != StepTypeSelection {
		t.Fatalf("step awal = %v, want TypeSelection", s.Step)
	}

	s = SetCategory(s, constants.CategoryPopup)
	s, err := Next(s)
	if err != nil {
		t.Fatalf("Next dari TypeSelection: %v", err)
	}
	if s.Step != StepBasicInfo {
		t.Fatalf("step = %v, want BasicInfo", s.Step)
	}

	s.Title = "Hip Hop Beginner"
	s.InstructorName = "Dewi"
	s.Genre = "hiphop"
	s, err = Next(s)
	if err != nil {
		t.Fatalf("Next dari BasicInfo: %v", err)
	}
	if s.Step != StepEligibilitySetup {
		t.Fatalf("step = %v, want EligibilitySetup", s.Step)
	}

	s = SetEligibility(s, []uuid.UUID{uuid.New()}, false)
	s, err = Next(s)
	if err != nil {
		t.Fatalf("Next dari EligibilitySetup: %v", err)
	}
	if s.Step != StepSubmitted {
		t.Fatalf("step = %v, want Submitted", s.Step)
	}

	if _, err := Next(s); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("Next setelah Submitted = %v, want ErrAlreadySubmitted", err)
	}
}

func TestWizard_Guards(t *testing.T) {
	t.Parallel()

	t.Run("kategori wajib sebelum lanjut", func(t *testing.T) {
		t.Parallel()
		s := NewWizard()
		if _, err := Next(s); !errors.Is(err, ErrCategoryRequired) {
			t.Errorf("err = %v, want ErrCategoryRequired", err)
		}
	})

	t.Run("basic info wajib lengkap", func(t *testing.T) {
		t.Parallel()
		s := NewWizard()
		s = SetCategory(s, constants.CategoryWorkshop)
		s, _ = Next(s)

		s.Title = "Contemporary Intensive"
		// instruktur & genre kosong
		if _, err := Next(s); !errors.Is(err, ErrBasicInfoIncomplete) {
			t.Errorf("err = %v, want ErrBasicInfoIncomplete", err)
		}
	})

	t.Run("regular wajib minimal satu hari", func(t *testing.T) {
		t.Parallel()
		s := NewWizard()
		s = SetCategory(s, constants.CategoryRegular)
		s, _ = Next(s)

		s.Title = "Ballet Dasar"
		s.InstructorName = "Rani"
		s.Genre = "ballet"
		if _, err := Next(s); !errors.Is(err, ErrWeekdaysRequired) {
			t.Errorf("err = %v, want ErrWeekdaysRequired", err)
		}

		s.Weekdays = []int{1, 3}
		if _, err := Next(s); err != nil {
			t.Errorf("dengan weekday terisi, err = %v", err)
		}
	})

	t.Run("popup tidak wajib weekday", func(t *testing.T) {
		t.Parallel()
		s := NewWizard()
		s = SetCategory(s, constants.CategoryPopup)
		s, _ = Next(s)

		s.Title = "Popup Waacking"
		s.InstructorName = "Sinta"
		s.Genre = "waacking"
		if _, err := Next(s); err != nil {
			t.Errorf("popup tanpa weekday, err = %v", err)
		}
	})

	t.Run("eligibility kosong butuh konfirmasi, bukan blokir", func(t *testing.T) {
		t.Parallel()
		s := NewWizard()
		s = SetCategory(s, constants.CategoryPopup)
		s, _ = Next(s)
		s.Title = "Popup Locking"
		s.InstructorName = "Bayu"
		s.Genre = "locking"
		s, _ = Next(s)

		if _, err := Next(s); !errors.Is(err, ErrEmptyEligibilityNeedsConfirm) {
			t.Fatalf("err = %v, want ErrEmptyEligibilityNeedsConfirm", err)
		}

		// setelah konfirmasi, boleh lanjut walau kosong
		s = SetEligibility(s, nil, true)
		s, err := Next(s)
		if err != nil {
			t.Fatalf("setelah konfirmasi, err = %v", err)
		}
		if s.Step != StepSubmitted {
			t.Errorf("step = %v, want Submitted", s.Step)
		}
	})
}

func TestWizard_BackPreservesFields(t *testing.T) {
	t.Parallel()

	s := NewWizard()
	s = SetCategory(s, constants.CategoryRegular)
	s, _ = Next(s)

	s.Title = "K-Pop Choreo"
	s.InstructorName = "Mega"
	s.Genre = "kpop"
	s.Weekdays = []int{2, 5}
	s, _ = Next(s)

	// mundur dua kali sampai awal
	s = Back(s)
	if s.Step != StepBasicInfo {
		t.Fatalf("step = %v, want BasicInfo", s.Step)
	}
	s = Back(s)
	if s.Step != StepTypeSelection {
		t.Fatalf("step = %v, want TypeSelection", s.Step)
	}
	// mundur dari step pertama: tetap di tempat
	s = Back(s)
	if s.Step != StepTypeSelection {
		t.Fatalf("Back di step pertama pindah ke %v", s.Step)
	}

	// semua isian masih utuh
	if s.Title != "K-Pop Choreo" || s.InstructorName != "Mega" || s.Genre != "kpop" {
		t.Error("isian basic info hilang setelah Back")
	}
	if len(s.Weekdays) != 2 || s.Category != constants.CategoryRegular {
		t.Error("weekday/kategori hilang setelah Back")
	}

	// dan maju lagi tanpa isi ulang harus lolos guard
	s, err := Next(s)
	if err != nil {
		t.Fatalf("Next ulang dari TypeSelection: %v", err)
	}
	if _, err := Next(s); err != nil {
		t.Fatalf("Next ulang dari BasicInfo: %v", err)
	}
}

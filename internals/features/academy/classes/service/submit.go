// file: internals/features/academy/classes/service/submit.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	classModel "studioku_backend/internals/features/academy/classes/model"
	schedDTO "studioku_backend/internals/features/academy/schedules/dto"
	schedModel "studioku_backend/internals/features/academy/schedules/model"
	schedSvc "studioku_backend/internals/features/academy/schedules/service"
	ticketModel "studioku_backend/internals/features/academy/tickets/model"
	ticketSvc "studioku_backend/internals/features/academy/tickets/service"
	helper "studioku_backend/internals/helpers"
)

/* =======================================================
   Submit wizard — rantai persist berurutan:

     create class -> create definition -> bulk insert occurrences -> relink

   Tiap step adalah network call sendiri, TANPA transaksi lintas step.
   Gagal di tengah = abort; row yang sudah terlanjur dibuat dibiarkan
   (inkonsistensi yang diterima) dan disebut di error supaya bisa
   dibereskan manual atau lewat resubmit (relink full-replace akan
   membersihkan link sendiri pada save sukses berikutnya).
   ======================================================= */

type SubmitResult struct {
	ClassID      uuid.UUID  `json:"class_id"`
	DefinitionID *uuid.UUID `json:"definition_id,omitempty"`
	SessionCount int        `json:"session_count"`
	LinkCount    int        `json:"link_count"`
	IsGeneral    bool       `json:"is_general"`
	Warning      string     `json:"warning,omitempty"`
}

// Submit menjalankan seluruh rantai persist untuk state wizard yang sudah
// mencapai StepSubmitted. Semua validasi (termasuk "nol sesi terbentuk")
// terjadi SEBELUM network call pertama.
func Submit(db *gorm.DB, academyID uuid.UUID, s WizardState, loc *time.Location) (*SubmitResult, error) {
	if s.Step != StepSubmitted {
		return nil, fmt.Errorf("wizard: submit dipanggil pada step %s", s.Step)
	}

	wantSchedule := len(s.Weekdays) > 0

	// --- Validasi penuh dulu, belum ada network call ---
	var (
		startDate, endDate, startTime, endTime time.Time
		dates                                  []time.Time
		err                                    error
	)
	if wantSchedule {
		if startDate, err = schedDTO.ParseDate(s.StartDate); err != nil {
			return nil, fmt.Errorf("start_date: %w", err)
		}
		if endDate, err = schedDTO.ParseDate(s.EndDate); err != nil {
			return nil, fmt.Errorf("end_date: %w", err)
		}
		if endDate.Before(startDate) {
			return nil, errors.New("end_date must be >= start_date")
		}
		if startTime, err = schedDTO.ParseTime(s.StartTime); err != nil {
			return nil, fmt.Errorf("start_time: %w", err)
		}
		if endTime, err = schedDTO.ParseTime(s.EndTime); err != nil {
			return nil, fmt.Errorf("end_time: %w", err)
		}
		if !endTime.After(startTime) {
			return nil, errors.New("end_time must be greater than start_time")
		}

		interval := s.IntervalWeeks
		if interval < 1 {
			interval = 1
		}
		dates = schedSvc.GenerateDates(startDate, endDate, s.Weekdays, interval)
		if len(dates) == 0 {
			// tolak di sini — jangan bikin kelas dengan "jadwal" kosong
			return nil, errors.New("tidak ada sesi yang bisa dibuat pada rentang & hari tersebut")
		}
	}

	// --- Step 1: create class ---
	cat := s.Category
	cls := classModel.ClassOfferingModel{
		ClassOfferingAcademyID:       academyID,
		ClassOfferingTitle:           strings.TrimSpace(s.Title),
		ClassOfferingInstructorName:  strings.TrimSpace(s.InstructorName),
		ClassOfferingGenre:           strings.TrimSpace(s.Genre),
		ClassOfferingCategory:        &cat,
		ClassOfferingDefaultCapacity: s.Capacity,
		ClassOfferingIsActive:        true,
	}
	if desc := strings.TrimSpace(s.Description); desc != "" {
		cls.ClassOfferingDescription = &desc
	}

	slug, err := helper.GenerateUniqueSlug(db, helper.SlugOptions{
		Table:            "class_offerings",
		SlugColumn:       "class_offering_slug",
		SoftDeleteColumn: "class_offering_deleted_at",
		Filters:          map[string]any{"class_offering_academy_id": academyID},
		DefaultBase:      "kelas",
	}, cls.ClassOfferingTitle)
	if err != nil {
		return nil, err
	}
	cls.ClassOfferingSlug = slug

	if err := db.Create(&cls).Error; err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}

	res := &SubmitResult{ClassID: cls.ClassOfferingID}

	// --- Step 2+3: definition + occurrences ---
	if wantSchedule {
		weekdays := make(pq.Int64Array, 0, len(s.Weekdays))
		seen := [7]bool{}
		for _, w := range s.Weekdays {
			if w < 0 || w > 6 || seen[w] {
				continue
			}
			seen[w] = true
			weekdays = append(weekdays, int64(w))
		}

		interval := s.IntervalWeeks
		if interval < 1 {
			interval = 1
		}
		def := schedModel.RecurringDefinitionModel{
			RecurringDefinitionAcademyID:     academyID,
			RecurringDefinitionClassID:       cls.ClassOfferingID,
			RecurringDefinitionHallID:        s.HallID,
			RecurringDefinitionStartDate:     startDate,
			RecurringDefinitionEndDate:       endDate,
			RecurringDefinitionStartTime:     startTime,
			RecurringDefinitionEndTime:       endTime,
			RecurringDefinitionWeekdays:      weekdays,
			RecurringDefinitionIntervalWeeks: interval,
			RecurringDefinitionCapacity:      s.Capacity,
			RecurringDefinitionIsActive:      true,
		}
		if err := db.Create(&def).Error; err != nil {
			return res, fmt.Errorf("kelas %s dibuat tapi create definition gagal: %w", cls.ClassOfferingID, err)
		}
		res.DefinitionID = &def.RecurringDefinitionID

		occurrences := schedSvc.ExpandOccurrences(&def, loc)
		if err := db.CreateInBatches(&occurrences, 200).Error; err != nil {
			return res, fmt.Errorf("kelas %s & definition %s dibuat tapi insert sesi gagal: %w",
				cls.ClassOfferingID, def.RecurringDefinitionID, err)
		}
		res.SessionCount = len(occurrences)
	}

	// --- Step 4: relink eligibility ---
	var available []uuid.UUID
	if err := db.Model(&ticketModel.TicketModel{}).
		Where("ticket_academy_id = ? AND ticket_is_active = TRUE", academyID).
		Pluck("ticket_id", &available).Error; err != nil {
		return res, fmt.Errorf("kelas %s dibuat tapi baca ticket gagal: %w", cls.ClassOfferingID, err)
	}

	plan := ticketSvc.BuildRelinkPlan(cls.ClassOfferingID, s.SelectedTicketIDs, available)
	linkCount, err := ticketSvc.RelinkClassToTickets(db, academyID, plan, func(isGeneral bool) error {
		return db.Model(&classModel.ClassOfferingModel{}).
			Where("class_offering_id = ?", cls.ClassOfferingID).
			Update("class_offering_is_general_access", isGeneral).Error
	})
	if err != nil {
		return res, fmt.Errorf("kelas %s dibuat tapi pasang eligibility gagal: %w", cls.ClassOfferingID, err)
	}
	res.LinkCount = linkCount
	res.IsGeneral = plan.IsGeneral
	if plan.EmptySelection {
		res.Warning = "Kelas ini tidak bisa diakses ticket mana pun"
	}

	return res, nil
}

// file: internals/features/academy/schedules/service/occurrence_generator.go
package service

import (
	"time"

	"github.com/google/uuid"

	m "studioku_backend/internals/features/academy/schedules/model"
)

/* =======================================================
   Generator tanggal sesi berulang
   - weekday: 0=Minggu..6=Sabtu (konvensi date-lib umum)
   - intervalWeeks: sesi hanya jatuh pada minggu yang offset-nya
     (dalam minggu penuh dari minggu occurrence pertama) kelipatan interval
   ======================================================= */

// GenerateDates menghasilkan tanggal ascending, tanpa duplikat, inklusif
// endDate bila memenuhi syarat. Weekday set kosong atau endDate < startDate
// menghasilkan slice kosong, bukan error (caller yang memutuskan menolak
// batch kosong).
func GenerateDates(startDate, endDate time.Time, weekdays []int, intervalWeeks int) []time.Time {
	if len(weekdays) == 0 {
		return nil
	}
	if intervalWeeks < 1 {
		intervalWeeks = 1
	}

	inSet := [7]bool{}
	for _, w := range weekdays {
		if w >= 0 && w <= 6 {
			inSet[w] = true
		}
	}

	start := truncateDate(startDate)
	end := truncateDate(endDate)
	if end.Before(start) {
		return nil
	}

	var out []time.Time
	var anchorWeek time.Time
	haveAnchor := false

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !inSet[int(d.Weekday())] {
			continue
		}
		ws := weekStart(d)
		if !haveAnchor {
			// minggu occurrence pertama jadi acuan offset interval
			anchorWeek = ws
			haveAnchor = true
		}
		weeksElapsed := int(ws.Sub(anchorWeek).Hours() / (24 * 7))
		if weeksElapsed%intervalWeeks != 0 {
			continue
		}
		out = append(out, d)
	}
	return out
}

// weekStart: hari Minggu di minggu tanggal d (minggu mulai Minggu).
func weekStart(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CombineDateTime menempelkan jam-menit-detik tod ke tanggal d pada zona loc.
func CombineDateTime(d time.Time, tod time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, loc)
}

// ExpandOccurrences meng-expand satu definition menjadi row occurrence konkret.
// Hasil kosong bila tidak ada tanggal yang memenuhi — caller WAJIB menolak
// persist dan menampilkan "tidak ada sesi yang dibuat" (jangan diam-diam
// membuat batch kosong).
func ExpandOccurrences(def *m.RecurringDefinitionModel, loc *time.Location) []m.SessionOccurrenceModel {
	weekdays := make([]int, 0, len(def.RecurringDefinitionWeekdays))
	for _, w := range def.RecurringDefinitionWeekdays {
		weekdays = append(weekdays, int(w))
	}

	dates := GenerateDates(def.RecurringDefinitionStartDate, def.RecurringDefinitionEndDate, weekdays, def.RecurringDefinitionIntervalWeeks)
	if len(dates) == 0 {
		return nil
	}

	defID := def.RecurringDefinitionID
	out := make([]m.SessionOccurrenceModel, 0, len(dates))
	for _, d := range dates {
		var defRef *uuid.UUID
		if defID != uuid.Nil {
			id := defID
			defRef = &id
		}
		out = append(out, m.SessionOccurrenceModel{
			SessionOccurrenceAcademyID:    def.RecurringDefinitionAcademyID,
			SessionOccurrenceClassID:      def.RecurringDefinitionClassID,
			SessionOccurrenceHallID:       def.RecurringDefinitionHallID,
			SessionOccurrenceInstructorID: def.RecurringDefinitionInstructorID,
			SessionOccurrenceStartAt:      CombineDateTime(d, def.RecurringDefinitionStartTime, loc),
			SessionOccurrenceEndAt:        CombineDateTime(d, def.RecurringDefinitionEndTime, loc),
			SessionOccurrenceCapacity:     def.RecurringDefinitionCapacity,
			SessionOccurrenceDefinitionID: defRef,
		})
	}
	return out
}

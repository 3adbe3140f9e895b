// file: internals/features/academy/tickets/service/eligibility_linker.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "studioku_backend/internals/features/academy/tickets/model"
)

/* =======================================================
   Eligibility linker — full replace, bukan diff.

   Setiap save editor eligibility (dari sisi ticket ATAU sisi class):
     1. hapus semua link milik owner
     2. insert ulang pilihan (sudah dedup)
   Delete+insert adalah dua network call terpisah tanpa transaksi;
   last-full-replace-wins saat dua admin saling timpa (kelemahan yang
   diterima, lihat DESIGN.md).
   ======================================================= */

// RelinkPlan adalah hasil murni perhitungan sebelum menyentuh DB.
type RelinkPlan struct {
	OwnerID uuid.UUID
	// Pilihan setelah dedup & buang Nil.
	Selected []uuid.UUID
	// true bila SEMUA counterpart yang tersedia dipilih → owner jadi
	// "general": berlaku untuk semuanya TERMASUK yang dibuat belakangan,
	// dan tidak ada link eksplisit yang disimpan.
	IsGeneral bool
	// true bila pilihan kosong — valid ("tidak berlaku untuk apa pun"),
	// tapi layak di-warning-kan ke pemanggil, bukan error.
	EmptySelection bool
}

// BuildRelinkPlan menghitung dedup + flag general dari pilihan user.
// available = seluruh counterpart yang SAAT INI ada untuk tenant tsb;
// flag general dihitung ulang setiap save dengan membandingkan jumlah.
func BuildRelinkPlan(ownerID uuid.UUID, selected []uuid.UUID, available []uuid.UUID) RelinkPlan {
	dedup := make([]uuid.UUID, 0, len(selected))
	seen := make(map[uuid.UUID]struct{}, len(selected))
	for _, id := range selected {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		dedup = append(dedup, id)
	}

	isGeneral := len(available) > 0 && len(dedup) == len(available)
	if isGeneral {
		// pastikan benar-benar subset dari available, bukan cuma sama jumlah
		avail := make(map[uuid.UUID]struct{}, len(available))
		for _, id := range available {
			avail[id] = struct{}{}
		}
		for _, id := range dedup {
			if _, ok := avail[id]; !ok {
				isGeneral = false
				break
			}
		}
	}

	plan := RelinkPlan{
		OwnerID:        ownerID,
		Selected:       dedup,
		IsGeneral:      isGeneral,
		EmptySelection: len(dedup) == 0,
	}
	if isGeneral {
		// general = tanpa link eksplisit sama sekali
		plan.Selected = nil
	}
	return plan
}

/* =======================================================
   Eksekusi plan per arah owner
   ======================================================= */

// RelinkTicketToClasses mengganti seluruh link milik satu ticket.
// Mengembalikan jumlah link yang ditulis.
func RelinkTicketToClasses(db *gorm.DB, academyID uuid.UUID, plan RelinkPlan) (int, error) {
	if err := db.
		Where("ticket_class_link_ticket_id = ? AND ticket_class_link_academy_id = ?", plan.OwnerID, academyID).
		Delete(&m.TicketClassLinkModel{}).Error; err != nil {
		return 0, fmt.Errorf("hapus link lama: %w", err)
	}

	// flag general di-recompute setiap save
	if err := db.Model(&m.TicketModel{}).
		Where("ticket_id = ? AND ticket_academy_id = ?", plan.OwnerID, academyID).
		Update("ticket_is_general", plan.IsGeneral).Error; err != nil {
		return 0, fmt.Errorf("update flag general: %w", err)
	}

	if len(plan.Selected) == 0 {
		return 0, nil
	}

	rows := make([]m.TicketClassLinkModel, 0, len(plan.Selected))
	for _, classID := range plan.Selected {
		rows = append(rows, m.TicketClassLinkModel{
			TicketClassLinkAcademyID: academyID,
			TicketClassLinkTicketID:  plan.OwnerID,
			TicketClassLinkClassID:   classID,
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("insert link baru: %w", err)
	}
	return len(rows), nil
}

// RelinkClassToTickets mengganti seluruh link milik satu class offering.
// updateGeneral dipanggil untuk menyimpan flag general di row class
// (kolomnya milik fitur classes, biar tidak impor silang model).
func RelinkClassToTickets(db *gorm.DB, academyID uuid.UUID, plan RelinkPlan, updateGeneral func(isGeneral bool) error) (int, error) {
	if err := db.
		Where("ticket_class_link_class_id = ? AND ticket_class_link_academy_id = ?", plan.OwnerID, academyID).
		Delete(&m.TicketClassLinkModel{}).Error; err != nil {
		return 0, fmt.Errorf("hapus link lama: %w", err)
	}

	if updateGeneral != nil {
		if err := updateGeneral(plan.IsGeneral); err != nil {
			return 0, fmt.Errorf("update flag general: %w", err)
		}
	}

	if len(plan.Selected) == 0 {
		return 0, nil
	}

	rows := make([]m.TicketClassLinkModel, 0, len(plan.Selected))
	for _, ticketID := range plan.Selected {
		rows = append(rows, m.TicketClassLinkModel{
			TicketClassLinkAcademyID: academyID,
			TicketClassLinkTicketID:  ticketID,
			TicketClassLinkClassID:   plan.OwnerID,
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("insert link baru: %w", err)
	}
	return len(rows), nil
}

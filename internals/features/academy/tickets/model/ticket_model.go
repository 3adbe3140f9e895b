// file: internals/features/academy/tickets/model/ticket_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studioku_backend/internals/constants"
)

/* =======================================================
   TicketModel — map ke tabel tickets
   Produk akses yang bisa dibeli:
   - PERIOD: berlaku valid_days hari sejak aktivasi, pemakaian bebas
   - COUNT : total_count kali pakai, opsional expire_days sejak beli
   ======================================================= */

type TicketModel struct {
	// PK
	TicketID uuid.UUID `json:"ticket_id" gorm:"type:uuid;primaryKey;column:ticket_id;default:gen_random_uuid()"`

	// Tenant / scope
	TicketAcademyID uuid.UUID `json:"ticket_academy_id" gorm:"type:uuid;not null;column:ticket_academy_id"`

	TicketName  string               `json:"ticket_name" gorm:"type:text;not null;column:ticket_name"`
	TicketType  constants.TicketType `json:"ticket_type" gorm:"type:text;not null;column:ticket_type"`
	TicketPrice int64                `json:"ticket_price" gorm:"type:bigint;not null;default:0;column:ticket_price"`

	// PERIOD
	TicketValidDays *int `json:"ticket_valid_days,omitempty" gorm:"type:int;column:ticket_valid_days"`

	// COUNT
	TicketTotalCount *int `json:"ticket_total_count,omitempty" gorm:"type:int;column:ticket_total_count"`
	TicketExpireDays *int `json:"ticket_expire_days,omitempty" gorm:"type:int;column:ticket_expire_days"`

	// Kategori eksplisit (hint UI/default-selection, bukan constraint)
	TicketCategory *constants.ClassCategory `json:"ticket_category,omitempty" gorm:"type:text;column:ticket_category"`

	// Field legacy untuk record lama yang belum punya kategori eksplisit.
	// Jangan diperluas untuk kategori baru (shim migrasi).
	TicketLegacyAccessGroup *string `json:"ticket_legacy_access_group,omitempty" gorm:"type:text;column:ticket_legacy_access_group"`
	TicketLegacyIsCoupon    bool    `json:"ticket_legacy_is_coupon" gorm:"type:boolean;not null;default:false;column:ticket_legacy_is_coupon"`

	// true = berlaku untuk SEMUA kelas, termasuk yang dibuat belakangan
	// (beda makna dengan "semua kelas yang ada sekarang" via link eksplisit)
	TicketIsGeneral bool `json:"ticket_is_general" gorm:"type:boolean;not null;default:false;column:ticket_is_general"`

	TicketIsActive bool `json:"ticket_is_active" gorm:"type:boolean;not null;default:true;column:ticket_is_active"`

	TicketCreatedAt time.Time      `json:"ticket_created_at" gorm:"column:ticket_created_at;not null;autoCreateTime"`
	TicketUpdatedAt time.Time      `json:"ticket_updated_at" gorm:"column:ticket_updated_at;not null;autoUpdateTime"`
	TicketDeletedAt gorm.DeletedAt `json:"ticket_deleted_at" gorm:"column:ticket_deleted_at;index"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

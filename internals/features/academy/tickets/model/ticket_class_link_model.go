// file: internals/features/academy/tickets/model/ticket_class_link_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   TicketClassLinkModel — join many-to-many ticket ↔ class offering
   Unik per pasangan (ticket, class). Di-replace penuh setiap save
   editor eligibility (delete-all-then-insert, bukan diff).
   ======================================================= */

type TicketClassLinkModel struct {
	// PK
	TicketClassLinkID uuid.UUID `json:"ticket_class_link_id" gorm:"type:uuid;primaryKey;column:ticket_class_link_id;default:gen_random_uuid()"`

	// Tenant / scope
	TicketClassLinkAcademyID uuid.UUID `json:"ticket_class_link_academy_id" gorm:"type:uuid;not null;column:ticket_class_link_academy_id"`

	TicketClassLinkTicketID uuid.UUID `json:"ticket_class_link_ticket_id" gorm:"type:uuid;not null;column:ticket_class_link_ticket_id;uniqueIndex:uq_ticket_class_link"`
	TicketClassLinkClassID  uuid.UUID `json:"ticket_class_link_class_id" gorm:"type:uuid;not null;column:ticket_class_link_class_id;uniqueIndex:uq_ticket_class_link"`

	TicketClassLinkCreatedAt time.Time `json:"ticket_class_link_created_at" gorm:"column:ticket_class_link_created_at;not null;autoCreateTime"`
}

func (TicketClassLinkModel) TableName() string {
	return "ticket_class_links"
}

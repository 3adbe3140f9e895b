package constants

/* =======================================================
   Enum kategori kelas & tipe tiket
   Dipakai lintas fitur (classes, tickets, schedules)
   ======================================================= */

// ClassCategory adalah himpunan tertutup kategori kelas.
type ClassCategory string

const (
	CategoryRegular  ClassCategory = "regular"
	CategoryPopup    ClassCategory = "popup"
	CategoryWorkshop ClassCategory = "workshop"
)

func (c ClassCategory) Valid() bool {
	switch c {
	case CategoryRegular, CategoryPopup, CategoryWorkshop:
		return true
	}
	return false
}

// TicketType: PERIOD = berlaku N hari sejak aktivasi (pakai bebas),
// COUNT = N kali pakai (opsional kadaluarsa M hari sejak beli).
type TicketType string

const (
	TicketTypePeriod TicketType = "PERIOD"
	TicketTypeCount  TicketType = "COUNT"
)

func (t TicketType) Valid() bool {
	return t == TicketTypePeriod || t == TicketTypeCount
}

// file: internals/features/academy/tickets/service/category.go
package service

import (
	"strings"

	"studioku_backend/internals/constants"
)

/* =======================================================
   Shim klasifikasi kategori untuk record legacy.

   Record lama (sebelum ada kolom kategori eksplisit) diklasifikasikan
   lewat rantai prioritas:
     1. tag kategori eksplisit
     2. tag legacy "access group"
     3. inferensi dari boolean legacy "kupon count-based non-period"
        dikombinasikan dengan nilai access group
     4. default "regular"

   Rantai ini HARUS direproduksi persis demi kompatibilitas data lama.
   Jangan ditambah cabang untuk kategori baru — kategori baru wajib
   pakai tag eksplisit. TODO: hapus shim ini setelah backfill kolom
   kategori selesai di semua tenant.
   ======================================================= */

// ResolveCategory menentukan kategori efektif sebuah ticket/class offering.
func ResolveCategory(explicit *constants.ClassCategory, legacyAccessGroup *string, legacyIsCoupon bool) constants.ClassCategory {
	// 1) tag eksplisit selalu menang
	if explicit != nil && explicit.Valid() {
		return *explicit
	}

	group := ""
	if legacyAccessGroup != nil {
		group = strings.ToLower(strings.TrimSpace(*legacyAccessGroup))
	}

	// 2) access group legacy
	switch group {
	case "regular", "reguler":
		return constants.CategoryRegular
	case "popup", "pop-up", "pop_up":
		return constants.CategoryPopup
	case "workshop", "ws":
		return constants.CategoryWorkshop
	}

	// 3) kupon count-based non-period tanpa access group yang dikenal
	//    → dianggap popup (tiket sekali-pakai untuk kelas non-rutin)
	if legacyIsCoupon {
		return constants.CategoryPopup
	}

	// 4) default
	return constants.CategoryRegular
}

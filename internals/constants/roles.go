package constants

import "fmt"

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleOwner      = "owner"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin akademi yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
		RoleInstructor,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}
)

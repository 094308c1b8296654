package constants

import "fmt"

// ==========================
// ✅ Role tetap (closed set)
// ==========================
const (
	RoleUser       = "user"
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Template pesan error role
const (
	ErrOnlyInstructorsCanAccess = "❌ Hanya instructor atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess      = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyBookersCanAccess     = "❌ Role Anda hanya dapat mengajukan permohonan reservasi untuk fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorInstructor(feature string) string {
	return fmt.Sprintf(ErrOnlyInstructorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorBooker(feature string) string {
	return fmt.Sprintf(ErrOnlyBookersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleStudent,
		RoleInstructor,
		RoleAdmin,
	}

	// Boleh booking langsung (tanpa approval)
	DirectBookingRoles = []string{
		RoleInstructor,
		RoleAdmin,
	}

	// Wajib lewat jalur permohonan (ReservationRequest)
	RequestOnlyRoles = []string{
		RoleUser,
		RoleStudent,
	}

	InstructorAndAbove = []string{
		RoleInstructor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// ==========================
// ✅ Capability table (role → hak booking)
// ==========================
// Dipakai admission controller supaya gate role tidak jadi string compare
// yang tersebar di banyak tempat.
var directBooking = map[string]bool{
	RoleUser:       false,
	RoleStudent:    false,
	RoleInstructor: true,
	RoleAdmin:      true,
}

// IsValidRole cek role termasuk closed set
func IsValidRole(role string) bool {
	_, ok := directBooking[role]
	return ok
}

// CanBookDirectly true kalau role boleh booking tanpa approval
func CanBookDirectly(role string) bool {
	return directBooking[role]
}

// MustRequestApproval true kalau role wajib lewat ReservationRequest
func MustRequestApproval(role string) bool {
	return IsValidRole(role) && !directBooking[role]
}

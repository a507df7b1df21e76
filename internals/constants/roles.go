package constants

import "fmt"

// Role names (closed set, disimpan lowercase di DB & token)
const (
	RoleAdmin     = "admin"
	RolePrincipal = "principal"
	RoleTeacher   = "teacher"
	RoleClerk     = "clerk"
	RoleStudent   = "student"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess  = "❌ Hanya teacher, principal, atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess     = "❌ Hanya staf sekolah yang boleh mengakses fitur %s."
	ErrOnlyApproversCanAccess = "❌ Hanya principal atau admin yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorApprover(feature string) string {
	return fmt.Sprintf(ErrOnlyApproversCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RolePrincipal,
		RoleTeacher,
		RoleClerk,
		RoleStudent,
	}

	// Staf sekolah (semua selain student)
	StaffRoles = []string{
		RoleAdmin,
		RolePrincipal,
		RoleTeacher,
		RoleClerk,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RolePrincipal,
		RoleAdmin,
	}

	// Boleh memutus approval (permission request, content coverage)
	ApproverRoles = []string{
		RolePrincipal,
		RoleAdmin,
	}

	ClerkAndAbove = []string{
		RoleClerk,
		RolePrincipal,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)

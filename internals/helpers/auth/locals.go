// file: internals/helpers/auth/locals.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals yang dihydrate oleh middleware auth.
// Semua pembacaan identitas request WAJIB lewat getter di file ini,
// jangan baca c.Locals langsung di controller.
const (
	LocUserID    = "user_id"
	LocUserName  = "user_name"
	LocRole      = "role"
	LocSchoolID  = "school_id"
	LocTeacherID = "teacher_id"
	LocStudentID = "student_id"
)

func localString(c *fiber.Ctx, key string) string {
	if v, ok := c.Locals(key).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, bool) {
	s := localString(c, key)
	if s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetUserID membaca identitas user dari token yang sudah dihydrate.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := localUUID(c, LocUserID)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

// GetRole membaca role (lowercase) dari token.
func GetRole(c *fiber.Ctx) (string, error) {
	role := strings.ToLower(localString(c, LocRole))
	if role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
	}
	return role, nil
}

// GetSchoolID = Tenant resolver: school aktif dari session/token.
// Tanpa konteks sekolah TIDAK BOLEH ada akses data apa pun di downstream.
func GetSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := localUUID(c, LocSchoolID)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Konteks sekolah tidak ditemukan")
	}
	return id, nil
}

// GetTeacherID membaca id baris teacher (bukan user id) — hanya ada di
// token milik staf pengajar.
func GetTeacherID(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := localUUID(c, LocTeacherID)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun ini tidak terdaftar sebagai pengajar")
	}
	return id, nil
}

// GetStudentID membaca id baris student — hanya ada di token siswa.
func GetStudentID(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := localUUID(c, LocStudentID)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun ini tidak terdaftar sebagai siswa")
	}
	return id, nil
}

// RoleIn cek membership role (case-insensitive).
func RoleIn(role string, allowed []string) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	for _, a := range allowed {
		if role == strings.ToLower(a) {
			return true
		}
	}
	return false
}

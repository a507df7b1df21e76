// file: internals/helpers/auth/authz.go
package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Satu pesan untuk wrong-tenant / wrong-owner / tidak ada — sengaja tidak
// dibedakan supaya keberadaan data tidak bocor lintas tenant.
const MsgNotFoundOrDenied = "Data tidak ditemukan atau akses ditolak"

func ErrNotFoundOrDenied() *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, MsgNotFoundOrDenied)
}

// EnsureTenant: cek scope tenant. Entity di sekolah lain diperlakukan
// seperti tidak ada (404, bukan 403).
func EnsureTenant(actingSchoolID, entitySchoolID uuid.UUID) error {
	if actingSchoolID == uuid.Nil || actingSchoolID != entitySchoolID {
		return ErrNotFoundOrDenied()
	}
	return nil
}

// EnsureOwner: cek kepemilikan langsung (entity buatan user ybs,
// mis. CBT test / lesson plan / permission request).
func EnsureOwner(actingID, entityOwnerID uuid.UUID) error {
	if actingID == uuid.Nil || actingID != entityOwnerID {
		return ErrNotFoundOrDenied()
	}
	return nil
}

// EnsureClassAllowed: cek assignment scope — class target harus ada di
// himpunan kelas hasil resolver grant guru. Himpunan kosong = tolak semua,
// tidak pernah default ke "semua kelas".
func EnsureClassAllowed(classID uuid.UUID, allowed []uuid.UUID) error {
	for _, id := range allowed {
		if id == classID {
			return nil
		}
	}
	return ErrNotFoundOrDenied()
}

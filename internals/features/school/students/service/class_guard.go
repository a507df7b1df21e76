// file: internals/features/school/students/service/class_guard.go
package service

import (
	"github.com/google/uuid"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// EnsureWritableClass: aturan tulis data siswa untuk guru. Kelas siswa
// saat ini DAN kelas tujuan (kalau dipindah) dua-duanya harus ada di
// himpunan kelas hasil resolver grant. Siswa tanpa kelas bukan wilayah
// guru mana pun.
func EnsureWritableClass(currentClassID, newClassID *uuid.UUID, allowed []uuid.UUID) error {
	if currentClassID == nil && newClassID == nil {
		return helperAuth.ErrNotFoundOrDenied()
	}
	if currentClassID != nil {
		if err := helperAuth.EnsureClassAllowed(*currentClassID, allowed); err != nil {
			return err
		}
	}
	if newClassID != nil {
		if err := helperAuth.EnsureClassAllowed(*newClassID, allowed); err != nil {
			return err
		}
	}
	return nil
}

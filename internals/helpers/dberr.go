package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Kode SQLSTATE yang dipetakan ke error user-facing.
const (
	PGUniqueViolation = "23505"
	PGFKViolation     = "23503"
)

// pgErrorCode membaca SQLSTATE dari error pgx maupun lib/pq (dua driver
// yang mungkin membungkus error GORM), plus nama constraint kalau ada.
func pgErrorCode(err error) (code, constraint string) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code, pgxErr.ConstraintName
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}
	return "", ""
}

// IsUniqueViolation: true jika err adalah pelanggaran unique constraint.
// constraint boleh kosong (match semua) atau nama constraint spesifik,
// mis. "uq_students_admission_number_per_school".
func IsUniqueViolation(err error, constraint string) bool {
	code, name := pgErrorCode(err)
	if code != PGUniqueViolation {
		return false
	}
	return constraint == "" || name == constraint
}

// IsForeignKeyViolation: true jika err adalah pelanggaran foreign key.
func IsForeignKeyViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == PGFKViolation
}

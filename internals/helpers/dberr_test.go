package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation_Pgx(t *testing.T) {
	err := &pgconn.PgError{
		Code:           PGUniqueViolation,
		ConstraintName: "uq_students_admission_number_per_school",
	}

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "uq_students_admission_number_per_school"))
	assert.False(t, IsUniqueViolation(err, "uq_subjects_code_per_school"))
}

func TestIsUniqueViolation_LibPq(t *testing.T) {
	err := &pq.Error{Code: pq.ErrorCode(PGUniqueViolation), Constraint: "uq_curricula"}

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "uq_curricula"))
	assert.False(t, IsUniqueViolation(err, "uq_attempts_per_student"))
}

func TestIsUniqueViolation_Wrapped(t *testing.T) {
	inner := &pgconn.PgError{Code: PGUniqueViolation, ConstraintName: "uq_teachers_user"}
	err := fmt.Errorf("create teacher: %w", inner)

	assert.True(t, IsUniqueViolation(err, "uq_teachers_user"))
}

func TestIsUniqueViolation_OtherErrors(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil, ""))
	assert.False(t, IsUniqueViolation(errors.New("connection refused"), ""))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: PGFKViolation}, ""))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: PGFKViolation}))
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: pq.ErrorCode(PGFKViolation)}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: PGUniqueViolation}))
	assert.False(t, IsForeignKeyViolation(errors.New("boom")))
}

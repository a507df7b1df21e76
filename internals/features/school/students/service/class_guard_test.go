// file: internals/features/school/students/service/class_guard_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureWritableClass_CreateIntoOwnClass(t *testing.T) {
	c1 := uuid.New()
	assert.NoError(t, EnsureWritableClass(nil, &c1, []uuid.UUID{c1}))
}

func TestEnsureWritableClass_CreateIntoForeignClass(t *testing.T) {
	own, foreign := uuid.New(), uuid.New()

	err := EnsureWritableClass(nil, &foreign, []uuid.UUID{own})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestEnsureWritableClass_EditWithoutMove(t *testing.T) {
	c1 := uuid.New()
	assert.NoError(t, EnsureWritableClass(&c1, nil, []uuid.UUID{c1}))
	assert.Error(t, EnsureWritableClass(&c1, nil, []uuid.UUID{uuid.New()}))
}

func TestEnsureWritableClass_MoveNeedsBothClasses(t *testing.T) {
	c1, c2, c3 := uuid.New(), uuid.New(), uuid.New()

	// pindah antar dua kelas yang diampu: boleh
	assert.NoError(t, EnsureWritableClass(&c1, &c2, []uuid.UUID{c1, c2}))

	// kelas tujuan di luar grant: tolak
	assert.Error(t, EnsureWritableClass(&c1, &c3, []uuid.UUID{c1, c2}))

	// kelas asal di luar grant: tolak
	assert.Error(t, EnsureWritableClass(&c3, &c1, []uuid.UUID{c1, c2}))
}

func TestEnsureWritableClass_ClasslessStudentDenied(t *testing.T) {
	assert.Error(t, EnsureWritableClass(nil, nil, []uuid.UUID{uuid.New()}))
}

func TestEnsureWritableClass_EmptyGrantsDenyAll(t *testing.T) {
	c1 := uuid.New()
	assert.Error(t, EnsureWritableClass(&c1, nil, nil))
	assert.Error(t, EnsureWritableClass(nil, &c1, []uuid.UUID{}))
}

// file: internals/helpers/auth/authz_test.go
package helperAuth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reqGet(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func TestEnsureTenant(t *testing.T) {
	school := uuid.New()
	other := uuid.New()

	assert.NoError(t, EnsureTenant(school, school))

	// sekolah lain → 404, bukan 403
	err := EnsureTenant(school, other)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.Equal(t, MsgNotFoundOrDenied, fe.Message)

	// tanpa konteks sekolah → tolak
	assert.Error(t, EnsureTenant(uuid.Nil, school))
	assert.Error(t, EnsureTenant(uuid.Nil, uuid.Nil))
}

func TestEnsureOwner(t *testing.T) {
	owner := uuid.New()

	assert.NoError(t, EnsureOwner(owner, owner))

	err := EnsureOwner(uuid.New(), owner)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	assert.Error(t, EnsureOwner(uuid.Nil, uuid.Nil))
}

func TestEnsureClassAllowed(t *testing.T) {
	c1 := uuid.New()
	c2 := uuid.New()
	c3 := uuid.New()

	assert.NoError(t, EnsureClassAllowed(c1, []uuid.UUID{c2, c1}))
	assert.Error(t, EnsureClassAllowed(c3, []uuid.UUID{c2, c1}))

	// himpunan kosong = tolak semua, bukan allow-all
	assert.Error(t, EnsureClassAllowed(c1, nil))
	assert.Error(t, EnsureClassAllowed(c1, []uuid.UUID{}))
}

func TestRoleIn(t *testing.T) {
	allowed := []string{"admin", "principal", "teacher"}

	assert.True(t, RoleIn("teacher", allowed))
	assert.True(t, RoleIn("ADMIN", allowed))
	assert.True(t, RoleIn("  Principal ", allowed))
	assert.False(t, RoleIn("student", allowed))
	assert.False(t, RoleIn("", allowed))
	assert.False(t, RoleIn("teacher", nil))
}

func TestLocalsGetters(t *testing.T) {
	app := fiber.New()

	userID := uuid.New()
	schoolID := uuid.New()

	app.Get("/ok", func(c *fiber.Ctx) error {
		c.Locals(LocUserID, userID.String())
		c.Locals(LocRole, "Teacher")
		c.Locals(LocSchoolID, schoolID.String())

		gotUser, err := GetUserID(c)
		require.NoError(t, err)
		assert.Equal(t, userID, gotUser)

		role, err := GetRole(c)
		require.NoError(t, err)
		assert.Equal(t, "teacher", role) // di-lowercase

		gotSchool, err := GetSchoolID(c)
		require.NoError(t, err)
		assert.Equal(t, schoolID, gotSchool)

		// token ini bukan token pengajar/siswa
		_, err = GetTeacherID(c)
		assert.Error(t, err)
		_, err = GetStudentID(c)
		assert.Error(t, err)

		return c.SendStatus(fiber.StatusOK)
	})

	app.Get("/empty", func(c *fiber.Ctx) error {
		_, err := GetUserID(c)
		assert.Error(t, err)
		_, err = GetSchoolID(c)
		assert.Error(t, err)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(reqGet("/ok"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(reqGet("/empty"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

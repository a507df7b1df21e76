package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// newRoleApp bikin app kecil: pre-handler nge-set role di Locals
// (simulasi hasil decode JWT), lalu gate OnlyRoles.
func newRoleApp(role string, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(helperAuth.LocRole, role)
		}
		return c.Next()
	})
	app.Get("/guarded", gate, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func doGet(t *testing.T, app *fiber.App) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestOnlyRoles_Allowed(t *testing.T) {
	app := newRoleApp("teacher", OnlyRoles("", "admin", "teacher"))
	code, body := doGet(t, app)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "ok", body)
}

func TestOnlyRoles_CaseInsensitive(t *testing.T) {
	app := newRoleApp("ADMIN", OnlyRoles("", "admin"))
	code, _ := doGet(t, app)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestOnlyRoles_Forbidden(t *testing.T) {
	app := newRoleApp("student", OnlyRoles("khusus staf", "admin", "teacher"))
	code, body := doGet(t, app)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Contains(t, body, "khusus staf")
}

func TestOnlyRoles_ForbiddenDefaultMessage(t *testing.T) {
	app := newRoleApp("student", OnlyRoles("", "admin"))
	code, body := doGet(t, app)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Contains(t, body, "Forbidden")
}

func TestOnlyRoles_MissingRole(t *testing.T) {
	app := newRoleApp("", OnlyRoles("", "admin"))
	code, _ := doGet(t, app)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

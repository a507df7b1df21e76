// file: internals/features/cbt/tests/route/cbt_test_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cbtTestController "sekolahku_backend/internals/features/cbt/tests/controller"
)

func CBTTestTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := cbtTestController.NewCBTTestController(db)

	tests := r.Group("/tests")
	tests.Get("/", ctrl.List)
	tests.Get("/:id", ctrl.GetByID)
	tests.Post("/", ctrl.Create)
	tests.Patch("/:id", ctrl.Patch)
	tests.Post("/:id/status", ctrl.ChangeStatus)
	tests.Delete("/:id", ctrl.Delete)
}

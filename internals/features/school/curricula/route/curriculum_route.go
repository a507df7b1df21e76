// file: internals/features/school/curricula/route/curriculum_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	curriculumController "sekolahku_backend/internals/features/school/curricula/controller"
)

func CurriculumStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := curriculumController.NewCurriculumController(db)

	curricula := r.Group("/curricula")
	curricula.Get("/", ctrl.List)
	curricula.Get("/:id", ctrl.GetByID)
}

func CurriculumAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := curriculumController.NewCurriculumController(db)

	curricula := r.Group("/curricula")
	curricula.Post("/", ctrl.Create)
	curricula.Put("/:id/topics", ctrl.ReplaceTopics)
	curricula.Delete("/:id", ctrl.Delete)
}

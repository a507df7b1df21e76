// file: internals/features/school/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "sekolahku_backend/internals/features/school/subjects/controller"
)

func SubjectStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	subjects := r.Group("/subjects")
	subjects.Get("/", ctrl.List)
}

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	subjects := r.Group("/subjects")
	subjects.Post("/", ctrl.Create)
	subjects.Patch("/:id", ctrl.Patch)
	subjects.Delete("/:id", ctrl.Delete)
}

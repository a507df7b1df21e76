// file: internals/features/school/lesson_plans/route/lesson_plan_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonPlanController "sekolahku_backend/internals/features/school/lesson_plans/controller"
)

func LessonPlanTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := lessonPlanController.NewLessonPlanController(db)

	plans := r.Group("/lesson-plans")
	plans.Get("/", ctrl.List)
	plans.Post("/", ctrl.Create)
	plans.Patch("/:id", ctrl.Patch)
	plans.Delete("/:id", ctrl.Delete)
}

// LessonPlanStaffRoutes: kepala sekolah/admin hanya baca.
func LessonPlanStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := lessonPlanController.NewLessonPlanController(db)

	plans := r.Group("/lesson-plans")
	plans.Get("/", ctrl.List)
}

// file: internals/features/cbt/attempts/route/attempt_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "sekolahku_backend/internals/features/cbt/attempts/controller"
)

func AttemptStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attemptController.NewAttemptController(db)

	attempts := r.Group("/attempts")
	attempts.Get("/available", ctrl.ListAvailable)
	attempts.Get("/mine", ctrl.ListMine)
	attempts.Post("/", ctrl.Start)
	attempts.Post("/:id/submit", ctrl.Submit)
}

// AttemptTeacherRoutes: rekap nilai per ujian.
func AttemptTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attemptController.NewAttemptController(db)

	r.Get("/tests/:testId/attempts", ctrl.ListByTest)
}

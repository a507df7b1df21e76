// file: internals/features/cbt/questions/route/question_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "sekolahku_backend/internals/features/cbt/questions/controller"
)

func QuestionTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := questionController.NewQuestionController(db)

	questions := r.Group("/tests/:testId/questions")
	questions.Get("/", ctrl.List)
	questions.Post("/", ctrl.Create)
	questions.Post("/import", ctrl.ImportFromBank)
	questions.Patch("/:id", ctrl.Patch)
	questions.Delete("/:id", ctrl.Delete)

	bank := r.Group("/question-bank")
	bank.Get("/", ctrl.ListBank)
	bank.Post("/", ctrl.CreateBank)
}

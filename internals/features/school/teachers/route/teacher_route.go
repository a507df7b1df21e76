// file: internals/features/school/teachers/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "sekolahku_backend/internals/features/school/teachers/controller"
)

func TeacherStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)

	teachers := r.Group("/teachers")
	teachers.Get("/", ctrl.List)
	teachers.Get("/:id/assignments", ctrl.ListAssignments)
}

func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)

	teachers := r.Group("/teachers")
	teachers.Post("/", ctrl.Create)
	teachers.Patch("/:id", ctrl.Patch)

	assignments := r.Group("/assignments")
	assignments.Post("/subjects", ctrl.CreateSubjectAssignment)
	assignments.Delete("/subjects/:id", ctrl.DeleteSubjectAssignment)
	assignments.Put("/homerooms", ctrl.SetHomeroom)
}

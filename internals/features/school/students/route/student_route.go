// file: internals/features/school/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "sekolahku_backend/internals/features/school/students/controller"
)

// StudentStaffRoutes: baca data siswa (guru dibatasi kelas yang diampu
// di level controller).
func StudentStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Get("/", ctrl.List)
	students.Get("/:id", ctrl.GetByID)
}

// StudentTeacherRoutes: guru menulis data siswa di kelas yang diampu
// (kelas asal dan kelas tujuan dicek di controller lewat resolver grant).
func StudentTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Post("/", ctrl.Create)
	students.Patch("/:id", ctrl.Patch)
}

// StudentClerkRoutes: input & koreksi data siswa (TU ke atas).
func StudentClerkRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Post("/", ctrl.Create)
	students.Patch("/:id", ctrl.Patch)
}

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Delete("/:id", ctrl.Delete)
}

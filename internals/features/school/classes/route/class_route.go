// file: internals/features/school/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "sekolahku_backend/internals/features/school/classes/controller"
)

// ClassStaffRoutes: semua staf sekolah boleh lihat daftar kelas.
func ClassStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	classes := r.Group("/classes")
	classes.Get("/", ctrl.List)
}

// ClassTeacherRoutes: guru melihat kelas yang diampu (hasil grant).
func ClassTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	classes := r.Group("/classes")
	classes.Get("/mine", ctrl.ListMine)
}

// ClassAdminRoutes: kelola kelas (admin & kepala sekolah).
func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	classes := r.Group("/classes")
	classes.Post("/", ctrl.Create)
	classes.Patch("/:id", ctrl.Patch)
	classes.Delete("/:id", ctrl.Delete)
}

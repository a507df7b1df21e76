package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolcontroller "sekolahku_backend/internals/features/school/schools/controller"
)

// Public: tanpa auth.
func SchoolPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := schoolcontroller.NewSchoolController(db)
	r.Get("/schools/:slug", ctrl.GetBySlug) // GET /api/public/schools/:slug
}

// Staff: profil tenant aktif (di belakang AuthJWT).
func SchoolStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := schoolcontroller.NewSchoolController(db)
	r.Get("/school/profile", ctrl.GetProfile) // GET /api/u/school/profile
}

// Admin: ubah profil.
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := schoolcontroller.NewSchoolController(db)
	r.Patch("/school/profile", ctrl.PatchProfile) // PATCH /api/a/school/profile
}

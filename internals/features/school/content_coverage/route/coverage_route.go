// file: internals/features/school/content_coverage/route/coverage_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coverageController "sekolahku_backend/internals/features/school/content_coverage/controller"
)

func CoverageTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := coverageController.NewCoverageController(db)

	reports := r.Group("/coverage-reports")
	reports.Get("/", ctrl.List)
	reports.Post("/", ctrl.Create)
}

// CoverageApproverRoutes: persetujuan oleh kepala sekolah/admin.
func CoverageApproverRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := coverageController.NewCoverageController(db)

	reports := r.Group("/coverage-reports")
	reports.Get("/", ctrl.List)
	reports.Post("/:id/decision", ctrl.Decide)
}

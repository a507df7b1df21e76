// file: internals/route/details/cbt_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptRoute "sekolahku_backend/internals/features/cbt/attempts/route"
	questionRoute "sekolahku_backend/internals/features/cbt/questions/route"
	cbtTestRoute "sekolahku_backend/internals/features/cbt/tests/route"
)

// CBTTeacherRoutes: guru kelola ujian, soal, dan rekap nilai.
func CBTTeacherRoutes(r fiber.Router, db *gorm.DB) {
	cbtTestRoute.CBTTestTeacherRoutes(r, db)
	questionRoute.QuestionTeacherRoutes(r, db)
	attemptRoute.AttemptTeacherRoutes(r, db)
}

// CBTStudentRoutes: siswa mengerjakan ujian.
func CBTStudentRoutes(r fiber.Router, db *gorm.DB) {
	attemptRoute.AttemptStudentRoutes(r, db)
}

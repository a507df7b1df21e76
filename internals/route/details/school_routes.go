// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
	classRoute "sekolahku_backend/internals/features/school/classes/route"
	coverageRoute "sekolahku_backend/internals/features/school/content_coverage/route"
	curriculumRoute "sekolahku_backend/internals/features/school/curricula/route"
	lessonPlanRoute "sekolahku_backend/internals/features/school/lesson_plans/route"
	schoolRoute "sekolahku_backend/internals/features/school/schools/route"
	studentRoute "sekolahku_backend/internals/features/school/students/route"
	subjectRoute "sekolahku_backend/internals/features/school/subjects/route"
	teacherRoute "sekolahku_backend/internals/features/school/teachers/route"
)

// SchoolPublicRoutes: profil sekolah tanpa login.
func SchoolPublicRoutes(r fiber.Router, db *gorm.DB) {
	schoolRoute.SchoolPublicRoutes(r, db)
}

// SchoolStaffRoutes: data master yang boleh dibaca semua staf.
func SchoolStaffRoutes(r fiber.Router, db *gorm.DB) {
	schoolRoute.SchoolStaffRoutes(r, db)
	classRoute.ClassStaffRoutes(r, db)
	subjectRoute.SubjectStaffRoutes(r, db)
	teacherRoute.TeacherStaffRoutes(r, db)
	studentRoute.StudentStaffRoutes(r, db)
	curriculumRoute.CurriculumStaffRoutes(r, db)
	attendanceRoute.AttendanceStaffRoutes(r, db)
	lessonPlanRoute.LessonPlanStaffRoutes(r, db)
}

// SchoolTeacherRoutes: fitur harian guru.
func SchoolTeacherRoutes(r fiber.Router, db *gorm.DB) {
	classRoute.ClassTeacherRoutes(r, db)
	studentRoute.StudentTeacherRoutes(r, db)
	attendanceRoute.AttendanceTeacherRoutes(r, db)
	lessonPlanRoute.LessonPlanTeacherRoutes(r, db)
	coverageRoute.CoverageTeacherRoutes(r, db)
}

// SchoolClerkRoutes: input data oleh TU.
func SchoolClerkRoutes(r fiber.Router, db *gorm.DB) {
	studentRoute.StudentClerkRoutes(r, db)
}

// SchoolAdminRoutes: kelola data master + persetujuan.
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	classRoute.ClassAdminRoutes(r, db)
	subjectRoute.SubjectAdminRoutes(r, db)
	teacherRoute.TeacherAdminRoutes(r, db)
	curriculumRoute.CurriculumAdminRoutes(r, db)
	coverageRoute.CoverageApproverRoutes(r, db)
}

// SchoolAdminOnlyRoutes: aksi yang khusus admin.
func SchoolAdminOnlyRoutes(r fiber.Router, db *gorm.DB) {
	schoolRoute.SchoolAdminRoutes(r, db)
	studentRoute.StudentAdminRoutes(r, db)
}

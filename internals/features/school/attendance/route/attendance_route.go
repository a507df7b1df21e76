// file: internals/features/school/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "sekolahku_backend/internals/features/school/attendance/controller"
)

func AttendanceTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := r.Group("/attendance")
	attendance.Post("/", ctrl.Record)
	attendance.Get("/", ctrl.GetSession)
}

// AttendanceStaffRoutes: kepala sekolah/TU/admin hanya baca.
func AttendanceStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := r.Group("/attendance")
	attendance.Get("/", ctrl.GetSession)
}

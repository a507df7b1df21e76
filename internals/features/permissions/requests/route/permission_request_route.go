// file: internals/features/permissions/requests/route/permission_request_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	permissionController "sekolahku_backend/internals/features/permissions/requests/controller"
)

// PermissionStaffRoutes: semua pegawai bisa mengajukan & melihat miliknya.
func PermissionStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := permissionController.NewPermissionRequestController(db)

	requests := r.Group("/permission-requests")
	requests.Get("/", ctrl.List)
	requests.Post("/", ctrl.Create)
}

func PermissionApproverRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := permissionController.NewPermissionRequestController(db)

	requests := r.Group("/permission-requests")
	requests.Post("/:id/decision", ctrl.Decide)
}

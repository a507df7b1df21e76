// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "sekolahku_backend/internals/features/users/user/route"
)

// UserAdminRoutes: manajemen akun, hanya admin sekolah.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(r, db)
}

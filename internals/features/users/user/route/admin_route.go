package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	usercontroller "sekolahku_backend/internals/features/users/user/controller"
)

// Pasang di parent router /api/a (sudah di belakang AuthJWT + OnlyRoles(admin)).
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := usercontroller.NewUserController(db)
	users := r.Group("/users")

	users.Get("/", ctrl.List)          // GET    /api/a/users
	users.Post("/", ctrl.Create)       // POST   /api/a/users
	users.Get("/:id", ctrl.GetByID)    // GET    /api/a/users/:id
	users.Patch("/:id", ctrl.Patch)    // PATCH  /api/a/users/:id
	users.Delete("/:id", ctrl.Delete)  // DELETE /api/a/users/:id
}

// file: internals/features/news/posts/route/news_post_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	newsController "sekolahku_backend/internals/features/news/posts/controller"
)

func NewsPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := newsController.NewNewsPostController(db)

	r.Get("/schools/:slug/news", ctrl.ListPublic)
}

// NewsStaffRoutes: kelola berita (TU/kepala sekolah/admin).
func NewsStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := newsController.NewNewsPostController(db)

	news := r.Group("/news")
	news.Get("/", ctrl.List)
	news.Post("/", ctrl.Create)
	news.Patch("/:id", ctrl.Patch)
	news.Post("/:id/publish", ctrl.SetPublished(true))
	news.Post("/:id/unpublish", ctrl.SetPublished(false))
	news.Delete("/:id", ctrl.Delete)
}

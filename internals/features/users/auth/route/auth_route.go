package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authcontroller "sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/features/users/auth/service"
	"sekolahku_backend/internals/middlewares"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authcontroller.NewAuthController(db)
	auth := app.Group("/api/auth")

	// public
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)

	// butuh access token
	protected := auth.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
			BlacklistChecker:    service.IsTokenBlacklisted(db),
		}),
	)
	protected.Get("/me", ctrl.Me)
	protected.Post("/logout", ctrl.Logout)
	protected.Post("/change-password", ctrl.ChangePassword)
}

// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authctl "roomku_backend/internals/features/users/auth/controller"
	middlewares "roomku_backend/internals/middlewares"
	authMw "roomku_backend/internals/middlewares/auth"
)

// AuthRoutes mendaftarkan endpoint auth (public + protected)
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authctl.NewAuthController(db)

	grp := app.Group("/api/auth")

	// Public
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/refresh-token", ctl.RefreshToken)
	grp.Post("/2fa/verify", middlewares.LoginRateLimiter(), ctl.Verify2FA)

	// Protected (butuh access token valid)
	protected := grp.Group("/", authMw.AuthMiddleware(db))
	protected.Post("/logout", ctl.Logout)
	protected.Post("/change-password", ctl.ChangePassword)
	protected.Post("/2fa/setup", ctl.Setup2FA)
	protected.Post("/2fa/enable", ctl.Enable2FA)
}

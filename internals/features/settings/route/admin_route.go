// file: internals/features/settings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsctl "roomku_backend/internals/features/settings/controller"
)

// SettingsAdminRoutes konfigurasi sistem untuk ADMIN
func SettingsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := settingsctl.NewSettingsController(db)

	grp := admin.Group("/settings")
	grp.Get("/", ctl.List)
	grp.Put("/", ctl.UpdateBounds)
}

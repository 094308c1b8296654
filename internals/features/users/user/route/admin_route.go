// file: internals/features/users/user/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userctl "roomku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes mendaftarkan route user management untuk ADMIN
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := userctl.NewUserController(db)

	grp := admin.Group("/users")
	grp.Get("/", ctl.List)
	grp.Patch("/:id/role", ctl.UpdateRole)
}

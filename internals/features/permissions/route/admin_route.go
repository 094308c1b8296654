// file: internals/features/permissions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	permctl "roomku_backend/internals/features/permissions/controller"
)

// OverridePermissionAdminRoutes kelola grant override (admin only)
func OverridePermissionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := permctl.NewOverridePermissionController(db)

	grp := admin.Group("/override-permissions")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Grant)
	grp.Delete("/:id", ctl.Revoke)
}

// file: internals/features/notifications/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifctl "roomku_backend/internals/features/notifications/controller"
)

// NotificationUserRoutes notifikasi milik user yang login
func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := notifctl.NewNotificationController(db)

	grp := user.Group("/notifications")
	grp.Get("/", ctl.List)
	grp.Post("/:id/read", ctl.MarkRead)
}

// file: internals/features/rooms/route/room_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomctl "roomku_backend/internals/features/rooms/controller"
)

// RoomPublicRoutes peta ruangan untuk semua orang
func RoomPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := roomctl.NewRoomController(db, nil)

	grp := public.Group("/rooms")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
}

// RoomAdminRoutes CRUD penuh untuk ADMIN
func RoomAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := roomctl.NewRoomController(db, nil)

	grp := admin.Group("/rooms")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}

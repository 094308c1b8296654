// file: internals/features/reservations/route/reservation_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resvctl "roomku_backend/internals/features/reservations/controller"
	"roomku_backend/internals/middlewares"
)

// ReservationPublicRoutes lookup reservasi via share token, tanpa login
func ReservationPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := resvctl.NewReservationController(db, nil, nil)

	grp := public.Group("/reservations")
	grp.Get("/by-token/:token", ctl.GetByShareToken)
}

// ReservationUserRoutes booking langsung + daftar + batalkan milik sendiri
func ReservationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := resvctl.NewReservationController(db, nil, nil)

	grp := user.Group("/reservations")
	grp.Post("/", middlewares.ReservationRateLimiter(), ctl.Create)
	grp.Get("/", ctl.ListMine)
	grp.Delete("/:id", ctl.Cancel)
}

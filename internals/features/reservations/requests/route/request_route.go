// file: internals/features/reservations/requests/route/request_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"roomku_backend/internals/constants"
	reqctl "roomku_backend/internals/features/reservations/requests/controller"
	authMw "roomku_backend/internals/middlewares/auth"
)

// RequestUserRoutes ajukan & lihat permohonan sendiri. Submit dibatasi ke
// role yang memang wajib lewat jalur permohonan (user/student).
func RequestUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := reqctl.NewRequestController(db, nil, nil)

	grp := user.Group("/reservation-requests")
	grp.Post("/",
		authMw.OnlyRoles("Role Anda bisa booking langsung, tidak perlu mengajukan permohonan", constants.RequestOnlyRoles...),
		ctl.Submit,
	)
	grp.Get("/", ctl.ListMine)
}

// RequestReviewerRoutes antrian pending + keputusan (admin & instructor)
func RequestReviewerRoutes(reviewer fiber.Router, db *gorm.DB) {
	ctl := reqctl.NewRequestController(db, nil, nil)

	grp := reviewer.Group("/reservation-requests")
	grp.Get("/pending", ctl.ListPending)
	grp.Post("/:id/review", ctl.Review)
}

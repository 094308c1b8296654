// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"roomku_backend/internals/constants"
	notifRoute "roomku_backend/internals/features/notifications/route"
	permRoute "roomku_backend/internals/features/permissions/route"
	reqRoute "roomku_backend/internals/features/reservations/requests/route"
	resvRoute "roomku_backend/internals/features/reservations/route"
	roomRoute "roomku_backend/internals/features/rooms/route"
	settingsRoute "roomku_backend/internals/features/settings/route"
	authRoute "roomku_backend/internals/features/users/auth/route"
	userRoute "roomku_backend/internals/features/users/user/route"
	authMw "roomku_backend/internals/middlewares/auth"
)

// SetupRoutes daftarkan semua route aplikasi dalam tiga lapis akses:
//
//	/api/public → tanpa login (peta ruangan, lookup share token)
//	/api/u      → login (reservasi, permohonan, notifikasi)
//	/api/a      → login + role admin/instructor sesuai grup
//	/api/auth   → register/login/refresh/2FA
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// 🔓 Auth (register, login, refresh, 2FA, logout)
	authRoute.AuthRoutes(app, db)

	// 🔓 PUBLIC
	public := app.Group("/api/public")
	roomRoute.RoomPublicRoutes(public, db)
	resvRoute.ReservationPublicRoutes(public, db)

	// 🔐 USER (semua role yang login)
	user := app.Group("/api/u", authMw.AuthMiddleware(db))
	resvRoute.ReservationUserRoutes(user, db)
	reqRoute.RequestUserRoutes(user, db)
	notifRoute.NotificationUserRoutes(user, db)

	// 🔐 REVIEWER (admin + instructor): antrian permohonan
	reviewer := app.Group("/api/r",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles("Akses khusus admin/instructor", constants.InstructorAndAbove...),
	)
	reqRoute.RequestReviewerRoutes(reviewer, db)

	// 🔐 ADMIN
	admin := app.Group("/api/a",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles("Akses khusus admin", constants.AdminOnly...),
	)
	roomRoute.RoomAdminRoutes(admin, db)
	settingsRoute.SettingsAdminRoutes(admin, db)
	permRoute.OverridePermissionAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
}

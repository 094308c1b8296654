// file: internals/databases/migrate.go
package database

import (
	"log"

	notifModel "roomku_backend/internals/features/notifications/model"
	permModel "roomku_backend/internals/features/permissions/model"
	resvModel "roomku_backend/internals/features/reservations/model"
	reqModel "roomku_backend/internals/features/reservations/requests/model"
	roomModel "roomku_backend/internals/features/rooms/model"
	settingsModel "roomku_backend/internals/features/settings/model"
	authModel "roomku_backend/internals/features/users/auth/model"
	userModel "roomku_backend/internals/features/users/user/model"
)

// MigrateAll jalankan AutoMigrate untuk semua tabel. Urutan mengikuti
// dependensi FK (users dulu, baru yang mereferensikannya).
func MigrateAll() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&roomModel.RoomModel{},
		&settingsModel.SystemSettingModel{},
		&permModel.InstructorOverridePermissionModel{},
		&resvModel.ReservationModel{},
		&reqModel.ReservationRequestModel{},
		&notifModel.NotificationModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai")
}

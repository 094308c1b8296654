// file: internals/seeds/runner.go
package seeds

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"roomku_backend/internals/constants"
	settingsModel "roomku_backend/internals/features/settings/model"
	userModel "roomku_backend/internals/features/users/user/model"
)

// RunAllSeeds isi data awal yang idempotent: default batas durasi reservasi
// dan satu akun admin bootstrap. Aman dipanggil berkali-kali.
func RunAllSeeds(db *gorm.DB) {
	seedReservationBounds(db)
	seedBootstrapAdmin(db)
}

func seedReservationBounds(db *gorm.DB) {
	defaults := []settingsModel.SystemSettingModel{
		{SettingKey: settingsModel.KeyMinReservationMinutes, SettingValue: "30"},
		{SettingKey: settingsModel.KeyMaxReservationMinutes, SettingValue: "120"},
	}
	for _, s := range defaults {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&s).Error; err != nil {
			log.Printf("[WARNING] Seed setting %s gagal: %v", s.SettingKey, err)
		}
	}
	log.Println("✅ Seed batas durasi reservasi selesai")
}

// seedBootstrapAdmin bikin akun admin pertama dari env. Tanpa env, skip —
// jangan pernah seed kredensial hardcoded.
func seedBootstrapAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ℹ️ SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD tidak diset, skip seed admin")
		return
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("role = ?", constants.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("[WARNING] Cek admin existing gagal: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[WARNING] Hash password admin gagal: %v", err)
		return
	}

	admin := userModel.UserModel{
		UserName: "admin",
		Email:    email,
		Password: string(hashed),
		Role:     constants.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[WARNING] Seed admin gagal: %v", err)
		return
	}
	log.Println("✅ Admin bootstrap dibuat:", email)
}

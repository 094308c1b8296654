// file: internals/features/settings/service/settings_service.go
package service

import (
	"errors"
	"log"
	"strconv"

	"gorm.io/gorm"

	"roomku_backend/internals/features/settings/model"
)

// GetInt baca satu setting sebagai int; fallback ke default kalau
// tidak ada atau bukan angka.
func GetInt(db *gorm.DB, key string, def int) int {
	var row model.SystemSettingModel
	if err := db.First(&row, "setting_key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARNING] baca setting %s gagal: %v", key, err)
		}
		return def
	}
	n, err := strconv.Atoi(row.SettingValue)
	if err != nil {
		log.Printf("[WARNING] setting %s bukan angka (%q), pakai default %d", key, row.SettingValue, def)
		return def
	}
	return n
}

// ReservationBounds batas durasi reservasi dalam menit.
type ReservationBounds struct {
	MinMinutes int
	MaxMinutes int
}

// GetReservationBounds ambil batas durasi sekali per request (dipass ke
// admission controller, tidak dibaca ulang di dalamnya).
func GetReservationBounds(db *gorm.DB) ReservationBounds {
	return ReservationBounds{
		MinMinutes: GetInt(db, model.KeyMinReservationMinutes, model.DefaultMinReservationMinutes),
		MaxMinutes: GetInt(db, model.KeyMaxReservationMinutes, model.DefaultMaxReservationMinutes),
	}
}

// Set simpan/update satu setting.
func Set(db *gorm.DB, key, value string) error {
	row := model.SystemSettingModel{SettingKey: key, SettingValue: value}
	return db.Save(&row).Error
}

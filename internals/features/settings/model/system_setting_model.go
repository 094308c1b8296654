package model

import "time"

// SystemSettingModel key/value konfigurasi aplikasi
type SystemSettingModel struct {
	SettingKey   string    `gorm:"column:setting_key;size:100;primaryKey" json:"setting_key"`
	SettingValue string    `gorm:"column:setting_value;type:text;not null" json:"setting_value"`
	UpdatedAt    time.Time `gorm:"column:setting_updated_at;autoUpdateTime" json:"setting_updated_at"`
}

func (SystemSettingModel) TableName() string {
	return "system_settings"
}

// Key yang dipakai admission controller
const (
	KeyMinReservationMinutes = "min_reservation_minutes"
	KeyMaxReservationMinutes = "max_reservation_minutes"
)

// Default kalau setting belum ada di DB
const (
	DefaultMinReservationMinutes = 30
	DefaultMaxReservationMinutes = 120
)

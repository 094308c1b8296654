// file: internals/features/settings/controller/settings_controller.go
package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"roomku_backend/internals/features/settings/model"
	settingsSvc "roomku_backend/internals/features/settings/service"
	helper "roomku_backend/internals/helpers"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// List semua setting (admin)
func (ctl *SettingsController) List(c *fiber.Ctx) error {
	var rows []model.SystemSettingModel
	if err := ctl.DB.Order("setting_key ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Daftar setting", rows)
}

// UpdateBounds update batas durasi reservasi (admin)
func (ctl *SettingsController) UpdateBounds(c *fiber.Ctx) error {
	var req struct {
		MinReservationMinutes *int `json:"min_reservation_minutes"`
		MaxReservationMinutes *int `json:"max_reservation_minutes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if req.MinReservationMinutes == nil && req.MaxReservationMinutes == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	min := settingsSvc.GetInt(ctl.DB, model.KeyMinReservationMinutes, model.DefaultMinReservationMinutes)
	max := settingsSvc.GetInt(ctl.DB, model.KeyMaxReservationMinutes, model.DefaultMaxReservationMinutes)
	if req.MinReservationMinutes != nil {
		min = *req.MinReservationMinutes
	}
	if req.MaxReservationMinutes != nil {
		max = *req.MaxReservationMinutes
	}

	if min < 1 || max < 1 || min > max {
		return helper.JsonError(c, fiber.StatusBadRequest, "Batas durasi tidak valid (min harus ≤ max, keduanya positif)")
	}

	if req.MinReservationMinutes != nil {
		if err := settingsSvc.Set(ctl.DB, model.KeyMinReservationMinutes, strconv.Itoa(min)); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan setting")
		}
	}
	if req.MaxReservationMinutes != nil {
		if err := settingsSvc.Set(ctl.DB, model.KeyMaxReservationMinutes, strconv.Itoa(max)); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan setting")
		}
	}

	return helper.JsonUpdated(c, "Batas durasi diperbarui", fiber.Map{
		"min_reservation_minutes": min,
		"max_reservation_minutes": max,
	})
}

// file: internals/features/reservations/controller/reservation_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomku_backend/internals/features/reservations/dto"
	"roomku_backend/internals/features/reservations/model"
	"roomku_backend/internals/features/reservations/service"
	roomModel "roomku_backend/internals/features/rooms/model"
	settingsSvc "roomku_backend/internals/features/settings/service"
	helper "roomku_backend/internals/helpers"
	"roomku_backend/internals/helpers/mailer"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type ReservationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Mailer   mailer.Sender
}

func NewReservationController(db *gorm.DB, v *validator.Validate, sender mailer.Sender) *ReservationController {
	if v == nil {
		v = helper.Validate
	}
	if sender == nil {
		sender = mailer.NewSMTPSender()
	}
	return &ReservationController{DB: db, Validate: v, Mailer: sender}
}

/* =======================================================
   USER — booking langsung
   ======================================================= */

// Create booking langsung. Keputusan admit/override/reject diambil di
// service.Admit dalam satu transaksi dengan lock ruangan.
func (ctl *ReservationController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	canOverride, err := service.HasActiveOverride(ctl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses reservasi")
	}

	bounds := settingsSvc.GetReservationBounds(ctl.DB)

	result, aerr := service.Admit(ctl.DB.WithContext(c.UserContext()), service.AdmissionRequest{
		RoomID:               req.RoomID,
		RequesterID:          userID,
		RequesterRole:        role,
		RequesterCanOverride: canOverride,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Purpose:              req.Purpose,
		Attendees:            req.Attendees,
	}, service.AdmissionConfig{
		MinMinutes: bounds.MinMinutes,
		MaxMinutes: bounds.MaxMinutes,
	})
	if aerr != nil {
		var e *service.AdmissionError
		if errors.As(aerr, &e) {
			return helper.JsonError(c, e.Status, e.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses reservasi")
	}

	// email konfirmasi setelah commit, fire-and-forget
	service.SendConfirmationEmail(ctl.DB, ctl.Mailer, result)

	return helper.JsonCreated(c, "Reservasi berhasil dibuat", dto.ToReservationResponse(result.Reservation))
}

// ListMine daftar reservasi milik user yang login.
func (ctl *ReservationController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var q dto.ListReservationsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	q.Normalize()

	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.ReservationModel{}).
		Where("reservation_user_id = ?", userID)

	switch q.Status {
	case model.StatusConfirmed, model.StatusCancelled:
		db = db.Where("reservation_status = ?", q.Status)
	case "":
		// semua status
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Status tidak dikenal")
	}

	if q.RoomID != "" {
		roomID, err := uuid.Parse(q.RoomID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "room_id tidak valid")
		}
		db = db.Where("reservation_room_id = ?", roomID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.ReservationModel
	if err := db.Order("reservation_start_time DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.ReservationResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToReservationResponse(m))
	}

	return helper.JsonList(c, "Daftar reservasi Anda", out, helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// Cancel batalkan reservasi milik sendiri. Baris tidak dihapus, hanya
// ditandai cancelled supaya riwayat tetap ada.
func (ctl *ReservationController) Cancel(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var reservation model.ReservationModel
	if err := ctl.DB.First(&reservation, "reservation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Reservasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if reservation.UserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Reservasi ini bukan milik Anda")
	}
	if reservation.Status == model.StatusCancelled {
		return helper.JsonError(c, fiber.StatusBadRequest, "Reservasi sudah dibatalkan")
	}

	now := time.Now().UTC()
	if err := ctl.DB.Model(&reservation).Updates(map[string]any{
		"reservation_status":       model.StatusCancelled,
		"reservation_cancelled_at": now,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan reservasi")
	}

	reservation.Status = model.StatusCancelled
	reservation.CancelledAt = &now
	return helper.JsonDeleted(c, "Reservasi dibatalkan", dto.ToReservationResponse(reservation))
}

/* =======================================================
   PUBLIC — share token
   ======================================================= */

// GetByShareToken detail reservasi lewat share token (tanpa login).
// Respons tidak memuat identitas pemilik.
func (ctl *ReservationController) GetByShareToken(c *fiber.Ctx) error {
	token := c.Params("token")
	if len(token) != helper.ShareTokenBytes*2 {
		return helper.JsonError(c, fiber.StatusNotFound, "Reservasi tidak ditemukan")
	}

	var reservation model.ReservationModel
	if err := ctl.DB.First(&reservation, "reservation_share_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Reservasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var room roomModel.RoomModel
	roomName := ""
	if err := ctl.DB.Unscoped().First(&room, "room_id = ?", reservation.RoomID).Error; err == nil {
		roomName = room.RoomName
	}

	return helper.JsonOK(c, "Detail reservasi", dto.SharedReservationResponse{
		RoomID:    reservation.RoomID,
		RoomName:  roomName,
		StartTime: reservation.StartTime,
		EndTime:   reservation.EndTime,
		Status:    reservation.Status,
		Purpose:   reservation.Purpose,
		Attendees: reservation.Attendees,
	})
}

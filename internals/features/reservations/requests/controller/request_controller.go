// file: internals/features/reservations/requests/controller/request_controller.go
package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifModel "roomku_backend/internals/features/notifications/model"
	notifSvc "roomku_backend/internals/features/notifications/service"
	"roomku_backend/internals/features/reservations/requests/dto"
	"roomku_backend/internals/features/reservations/requests/model"
	resvSvc "roomku_backend/internals/features/reservations/service"
	roomModel "roomku_backend/internals/features/rooms/model"
	settingsSvc "roomku_backend/internals/features/settings/service"
	helper "roomku_backend/internals/helpers"
	"roomku_backend/internals/helpers/mailer"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type RequestController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Mailer   mailer.Sender
}

func NewRequestController(db *gorm.DB, v *validator.Validate, sender mailer.Sender) *RequestController {
	if v == nil {
		v = helper.Validate
	}
	if sender == nil {
		sender = mailer.NewSMTPSender()
	}
	return &RequestController{DB: db, Validate: v, Mailer: sender}
}

/* =======================================================
   USER — ajukan & lihat permohonan sendiri
   ======================================================= */

// Submit ajukan permohonan reservasi. Batas durasi dicek di sini juga
// supaya permohonan yang pasti ditolak tidak masuk antrian reviewer.
func (ctl *RequestController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.SubmitRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	bounds := settingsSvc.GetReservationBounds(ctl.DB)
	dur := req.EndTime.Sub(req.StartTime)
	if dur < time.Duration(bounds.MinMinutes)*time.Minute || dur > time.Duration(bounds.MaxMinutes)*time.Minute {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Durasi reservasi harus antara "+strconv.Itoa(bounds.MinMinutes)+" dan "+strconv.Itoa(bounds.MaxMinutes)+" menit")
	}

	var room roomModel.RoomModel
	if err := ctl.DB.First(&room, "room_id = ? AND room_is_active = TRUE", req.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan atau tidak aktif")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	row := model.ReservationRequestModel{
		RoomID:    req.RoomID,
		UserID:    userID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Purpose:   req.Purpose,
		Attendees: req.Attendees,
		Status:    model.RequestPending,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan permohonan")
	}

	return helper.JsonCreated(c, "Permohonan reservasi diajukan", dto.ToRequestResponse(row))
}

// ListMine daftar permohonan milik user yang login.
func (ctl *RequestController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.ReservationRequestModel{}).
		Where("request_user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.ReservationRequestModel
	if err := db.Order("request_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.RequestResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToRequestResponse(m))
	}

	return helper.JsonList(c, "Daftar permohonan Anda", out, helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* =======================================================
   REVIEWER — daftar pending & keputusan
   ======================================================= */

// ListPending antrian permohonan yang belum direview (admin/instructor).
func (ctl *RequestController) ListPending(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.ReservationRequestModel{}).
		Where("request_status = ?", model.RequestPending)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.ReservationRequestModel
	if err := db.Order("request_created_at ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.RequestResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToRequestResponse(m))
	}

	return helper.JsonList(c, "Antrian permohonan", out, helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// Review setujui/tolak satu permohonan. Approve mengecek ulang overlap dalam
// transaksi yang sama dengan pembuatan reservasinya; kalau slot sudah terisi,
// approve gagal dan permohonan tetap pending.
func (ctl *RequestController) Review(c *fiber.Ctx) error {
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.ReviewRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var row model.ReservationRequestModel
	var result *resvSvc.AdmissionResult

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, "request_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Permohonan tidak ditemukan")
			}
			return err
		}
		if row.Status != model.RequestPending {
			return fiber.NewError(fiber.StatusBadRequest, "Permohonan sudah direview")
		}

		now := time.Now().UTC()

		if !req.Approve {
			if err := tx.Model(&row).Updates(map[string]any{
				"request_status":      model.RequestRejected,
				"request_reviewed_by": reviewerID,
				"request_review_note": req.Note,
				"request_reviewed_at": now,
			}).Error; err != nil {
				return err
			}
			row.Status = model.RequestRejected

			return notifSvc.Write(tx, row.UserID,
				notifModel.TypeRequestRejected,
				"Permohonan reservasi ditolak",
				rejectionBody(req.Note),
				nil,
			)
		}

		res, aerr := resvSvc.AdmitApproved(tx, resvSvc.AdmissionRequest{
			RoomID:      row.RoomID,
			RequesterID: row.UserID,
			StartTime:   row.StartTime,
			EndTime:     row.EndTime,
			Purpose:     row.Purpose,
			Attendees:   row.Attendees,
		})
		if aerr != nil {
			return aerr
		}
		result = res

		newID := res.Reservation.ReservationID
		if err := tx.Model(&row).Updates(map[string]any{
			"request_status":         model.RequestApproved,
			"request_reviewed_by":    reviewerID,
			"request_review_note":    req.Note,
			"request_reviewed_at":    now,
			"request_reservation_id": newID,
		}).Error; err != nil {
			return err
		}
		row.Status = model.RequestApproved
		row.ReservationID = &newID
		return nil
	})
	if txErr != nil {
		var ferr *fiber.Error
		if errors.As(txErr, &ferr) {
			return helper.JsonError(c, ferr.Code, ferr.Message)
		}
		var aerr *resvSvc.AdmissionError
		if errors.As(txErr, &aerr) {
			return helper.JsonError(c, aerr.Status, aerr.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses review")
	}

	if result != nil {
		// email konfirmasi ke pemohon, setelah commit
		resvSvc.SendConfirmationEmail(ctl.DB, ctl.Mailer, result)
	}

	return helper.JsonUpdated(c, "Review permohonan tersimpan", dto.ToRequestResponse(row))
}

func rejectionBody(note *string) string {
	body := "Permohonan reservasi Anda ditolak."
	if note != nil {
		body += " Catatan reviewer: " + *note
	}
	return body
}

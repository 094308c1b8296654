// file: internals/features/reservations/service/admission_approval.go
package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	notifModel "roomku_backend/internals/features/notifications/model"
	notifSvc "roomku_backend/internals/features/notifications/service"
	resvModel "roomku_backend/internals/features/reservations/model"
	roomModel "roomku_backend/internals/features/rooms/model"
	helper "roomku_backend/internals/helpers"
)

// AdmitApproved buat reservasi confirmed dari permohonan yang DISETUJUI.
// Jalur ini tidak punya gate role (approval reviewer adalah otorisasinya)
// dan tidak pernah override — slot harus benar-benar kosong saat approve,
// dicek ulang di dalam transaksi dengan lock ruangan yang sama seperti
// booking langsung.
func AdmitApproved(db *gorm.DB, req AdmissionRequest) (*AdmissionResult, error) {
	var result AdmissionResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var room roomModel.RoomModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_id = ? AND room_is_active = TRUE AND room_deleted_at IS NULL", req.RoomID).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return admissionErr(fiber.StatusNotFound, "Ruangan tidak ditemukan atau tidak aktif")
			}
			log.Printf("[ERROR] approval lock room: %v", err)
			return admissionErr(fiber.StatusInternalServerError, "Gagal memproses reservasi")
		}
		result.RoomName = room.RoomName

		conflicts, err := findConflicts(tx, req.RoomID, req.StartTime, req.EndTime)
		if err != nil {
			log.Printf("[ERROR] approval scan conflicts: %v", err)
			return admissionErr(fiber.StatusInternalServerError, "Gagal memproses reservasi")
		}
		if len(conflicts) > 0 {
			return admissionErr(fiber.StatusBadRequest, MsgRoomAlreadyReserved)
		}

		token, err := helper.GenerateShareToken()
		if err != nil {
			log.Printf("[ERROR] approval share token: %v", err)
			return admissionErr(fiber.StatusInternalServerError, "Gagal memproses reservasi")
		}

		reservation := resvModel.ReservationModel{
			RoomID:     req.RoomID,
			UserID:     req.RequesterID,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Status:     resvModel.StatusConfirmed,
			Purpose:    req.Purpose,
			Attendees:  req.Attendees,
			ShareToken: token,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			log.Printf("[ERROR] approval insert reservation: %v", err)
			return admissionErr(fiber.StatusInternalServerError, "Gagal memproses reservasi")
		}

		newID := reservation.ReservationID
		if err := notifSvc.Write(tx, req.RequesterID,
			notifModel.TypeRequestApproved,
			"Permohonan reservasi disetujui",
			"Permohonan reservasi Anda untuk ruangan "+room.RoomName+" disetujui dan sudah dikonfirmasi.",
			&newID,
		); err != nil {
			log.Printf("[ERROR] approval notify owner: %v", err)
			return admissionErr(fiber.StatusInternalServerError, "Gagal memproses reservasi")
		}

		result.Reservation = reservation
		return nil
	})
	if err != nil {
		var aerr *AdmissionError
		if errors.As(err, &aerr) {
			return nil, aerr
		}
		log.Printf("[ERROR] approval tx: %v", err)
		return nil, admissionErr(fiber.StatusInternalServerError, "Gagal memproses reservasi")
	}

	return &result, nil
}

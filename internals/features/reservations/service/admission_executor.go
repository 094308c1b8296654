// file: internals/features/reservations/service/admission_executor.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	notifModel "roomku_backend/internals/features/notifications/model"
	notifSvc "roomku_backend/internals/features/notifications/service"
	permModel "roomku_backend/internals/features/permissions/model"
	resvModel "roomku_backend/internals/features/reservations/model"
	roomModel "roomku_backend/internals/features/rooms/model"
	userModel "roomku_backend/internals/features/users/user/model"
	helper "roomku_backend/internals/helpers"
	"roomku_backend/internals/helpers/mailer"
)

/* =======================================================
   ERROR TYPE
   ======================================================= */

// AdmissionError error yang sudah tahu status HTTP-nya. Pesan persistence
// sengaja generic — detail cuma masuk log server.
type AdmissionError struct {
	Status  int
	Message string
}

func (e *AdmissionError) Error() string { return e.Message }

func admissionErr(status int, msg string) *AdmissionError {
	return &AdmissionError{Status: status, Message: msg}
}

/* =======================================================
   PERMISSION READER
   ======================================================= */

// HasActiveOverride cek grant override aktif (belum revoked) milik user.
func HasActiveOverride(db *gorm.DB, userID uuid.UUID) (bool, error) {
	var count int64
	if err := db.Model(&permModel.InstructorOverridePermissionModel{}).
		Where("permission_user_id = ? AND permission_revoked = FALSE", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

/* =======================================================
   EXECUTOR
   ======================================================= */

// AdmissionResult reservasi baru + info ruangan buat email konfirmasi.
type AdmissionResult struct {
	Reservation resvModel.ReservationModel
	RoomName    string
	Overridden  int
}

// Admit jalankan keputusan admission SATU transaksi:
// lock baris ruangan (SELECT ... FOR UPDATE) → scan konflik → Decide →
// cancel konflik + notifikasi pemilik lama → insert reservasi + notifikasi
// pemilik baru. Lock ruangan men-serialisasi admission per ruangan, jadi dua
// request bersamaan tidak bisa sama-sama lolos cek overlap (tutup race
// time-of-check-to-time-of-use).
//
// Email konfirmasi TIDAK dikirim di sini — caller kirim setelah commit.
func Admit(db *gorm.DB, req AdmissionRequest, cfg AdmissionConfig) (*AdmissionResult, error) {
	var result AdmissionResult

	err := db.Transaction(func(tx *gorm.DB) error {
		// 1) Lock baris ruangan
		var room roomModel.RoomModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_id = ? AND room_is_active = TRUE AND room_deleted_at IS NULL", req.RoomID).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return admissionErr(fiber.StatusNotFound, "Ruangan tidak ditemukan atau tidak aktif")
			}
			log.Printf("[ERROR] admission lock room: %v", err)
			return admissionErr(fiber.StatusInternalServerError, "Gagal memproses reservasi")
		}
		result.RoomName = room.RoomName

		// 2) Scan reservasi confirmed yang overlap [start, end)
		conflicts, err := findConflicts(tx, req.RoomID, req.StartTime, req.EndTime)
		if err != nil {
			log.Printf("[ERROR] admission scan conflicts: %v", err)
			return admissionErr(fiber.StatusInternalServerError, "Gagal memproses reservasi")
		}

		// 3) Keputusan
		decision := Decide(req, cfg, conflicts)
		if decision.Outcome == OutcomeReject {
			return admissionErr(decision.RejectStatus, decision.RejectMessage)
		}

		// 4) Override: cancel SEMUA konflik + notifikasi pemilik lama
		if decision.Outcome == OutcomeAdmitWithOverride {
			now := time.Now().UTC()
			for _, target := range decision.OverrideTargets {
				res := tx.Model(&resvModel.ReservationModel{}).
					Where("reservation_id = ? AND reservation_status = ?", target.ReservationID, resvModel.StatusConfirmed).
					Updates(map[string]any{
						"reservation_status":       resvModel.StatusCancelled,
						"reservation_cancelled_at": now,
					})
				if res.Error != nil {
					log.Printf("[ERROR] admission cancel conflict: %v", res.Error)
					return admissionErr(fiber.StatusInternalServerError, "Gagal memproses reservasi")
				}
				if res.RowsAffected == 0 {
					// baris sudah berubah di bawah kita — mestinya tidak terjadi karena lock ruangan
					return admissionErr(fiber.StatusBadRequest, MsgRoomAlreadyReserved)
				}

				targetID := target.ReservationID
				if err := notifSvc.Write(tx, target.OwnerID,
					notifModel.TypeReservationOverridden,
					"Reservasi Anda digeser",
					"Reservasi Anda di ruangan "+room.RoomName+" dibatalkan karena digeser oleh instructor dengan hak override.",
					&targetID,
				); err != nil {
					log.Printf("[ERROR] admission notify displaced owner: %v", err)
					return admissionErr(fiber.StatusInternalServerError, "Gagal memproses reservasi")
				}
			}
			result.Overridden = len(decision.OverrideTargets)
		}

		// 5) Insert reservasi baru + share token unik
		token, err := helper.GenerateShareToken()
		if err != nil {
			log.Printf("[ERROR] admission share token: %v", err)
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
			log.Printf("[ERROR] admission insert reservation: %v", err)
			return admissionErr(fiber.StatusInternalServerError, "Gagal memproses reservasi")
		}

		newID := reservation.ReservationID
		if err := notifSvc.Write(tx, req.RequesterID,
			notifModel.TypeReservationConfirmed,
			"Reservasi dikonfirmasi",
			"Reservasi Anda di ruangan "+room.RoomName+" sudah dikonfirmasi.",
			&newID,
		); err != nil {
			log.Printf("[ERROR] admission notify owner: %v", err)
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
		log.Printf("[ERROR] admission tx: %v", err)
		return nil, admissionErr(fiber.StatusInternalServerError, "Gagal memproses reservasi")
	}

	return &result, nil
}

// findConflicts ambil reservasi confirmed yang overlap, lengkap dengan role
// pemilik dan status grant override-nya (sekali query, tanpa N+1).
func findConflicts(tx *gorm.DB, roomID uuid.UUID, start, end time.Time) ([]ConflictingReservation, error) {
	var rows []struct {
		ReservationID uuid.UUID
		UserID        uuid.UUID
		Role          string
		GrantCount    int64
	}

	err := tx.Model(&resvModel.ReservationModel{}).
		Select(`reservations.reservation_id AS reservation_id,
			reservations.reservation_user_id AS user_id,
			users.role AS role,
			(SELECT COUNT(*) FROM instructor_override_permissions p
			 WHERE p.permission_user_id = reservations.reservation_user_id
			   AND p.permission_revoked = FALSE) AS grant_count`).
		Joins("JOIN users ON users.id = reservations.reservation_user_id").
		Where("reservations.reservation_room_id = ? AND reservations.reservation_status = ?", roomID, resvModel.StatusConfirmed).
		Where("reservations.reservation_start_time < ? AND reservations.reservation_end_time > ?", end, start).
		Order("reservations.reservation_start_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ConflictingReservation, 0, len(rows))
	for _, r := range rows {
		out = append(out, ConflictingReservation{
			ReservationID:    r.ReservationID,
			OwnerID:          r.UserID,
			OwnerRole:        r.Role,
			OwnerCanOverride: r.GrantCount > 0,
		})
	}
	return out, nil
}

/* =======================================================
   POST-COMMIT SIDE EFFECT
   ======================================================= */

// SendConfirmationEmail kirim email konfirmasi fire-and-forget setelah commit.
// Sukses reservasi TIDAK tergantung keberhasilan kirim email.
func SendConfirmationEmail(db *gorm.DB, sender mailer.Sender, result *AdmissionResult) {
	var owner userModel.UserModel
	if err := db.Select("user_name", "email").First(&owner, "id = ?", result.Reservation.UserID).Error; err != nil {
		log.Printf("[WARNING] gagal ambil email pemilik reservasi: %v", err)
		return
	}

	purpose := ""
	if result.Reservation.Purpose != nil {
		purpose = *result.Reservation.Purpose
	}

	mailer.SendAsync(sender, mailer.ReservationMail{
		To:       owner.Email,
		UserName: owner.UserName,
		RoomName: result.RoomName,
		Start:    result.Reservation.StartTime,
		End:      result.Reservation.EndTime,
		Purpose:  purpose,
	})
}

// file: internals/features/notifications/service/notification_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomku_backend/internals/features/notifications/model"
)

// Write simpan satu notifikasi. Dipanggil dari dalam transaksi admission
// supaya notifikasi override ikut commit/rollback bareng reservasinya.
func Write(tx *gorm.DB, userID uuid.UUID, typ, title, body string, reservationID *uuid.UUID) error {
	return tx.Create(&model.NotificationModel{
		NotificationUser:  userID,
		NotificationType:  typ,
		NotificationTitle: title,
		NotificationBody:  body,
		ReservationID:     reservationID,
	}).Error
}

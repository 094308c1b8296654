package model

import (
	"time"

	"github.com/google/uuid"
)

// Type tag notifikasi
const (
	TypeReservationConfirmed  = "reservation_confirmed"
	TypeReservationOverridden = "reservation_overridden"
	TypeRequestApproved       = "request_approved"
	TypeRequestRejected       = "request_rejected"
)

// NotificationModel merepresentasikan tabel notifications
type NotificationModel struct {
	NotificationID    uuid.UUID  `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationUser  uuid.UUID  `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationType  string     `gorm:"column:notification_type;size:50;not null" json:"notification_type"`
	NotificationTitle string     `gorm:"column:notification_title;size:255;not null" json:"notification_title"`
	NotificationBody  string     `gorm:"column:notification_body;type:text;not null" json:"notification_body"`
	ReservationID     *uuid.UUID `gorm:"column:notification_reservation_id;type:uuid" json:"notification_reservation_id,omitempty"`
	IsRead            bool       `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`
	CreatedAt         time.Time  `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Status reservasi. Baris tidak pernah dihapus fisik — riwayat dipertahankan.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ReservationModel merepresentasikan tabel reservations di database
type ReservationModel struct {
	ReservationID     uuid.UUID  `gorm:"column:reservation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"reservation_id"`
	RoomID            uuid.UUID  `gorm:"column:reservation_room_id;type:uuid;not null;index" json:"reservation_room_id"`
	UserID            uuid.UUID  `gorm:"column:reservation_user_id;type:uuid;not null;index" json:"reservation_user_id"`
	StartTime         time.Time  `gorm:"column:reservation_start_time;type:timestamptz;not null" json:"reservation_start_time"`
	EndTime           time.Time  `gorm:"column:reservation_end_time;type:timestamptz;not null" json:"reservation_end_time"`
	Status            string     `gorm:"column:reservation_status;type:varchar(20);not null;default:'confirmed';index" json:"reservation_status"`
	Purpose           *string    `gorm:"column:reservation_purpose;type:text" json:"reservation_purpose,omitempty"`
	Attendees         int        `gorm:"column:reservation_attendees;not null;default:1" json:"reservation_attendees"`
	ShareToken        string     `gorm:"column:reservation_share_token;size:64;not null;uniqueIndex" json:"reservation_share_token"`
	CancelledAt       *time.Time `gorm:"column:reservation_cancelled_at;type:timestamptz" json:"reservation_cancelled_at,omitempty"`
	CreatedAt         time.Time  `gorm:"column:reservation_created_at;autoCreateTime" json:"reservation_created_at"`
	UpdatedAt         time.Time  `gorm:"column:reservation_updated_at;autoUpdateTime" json:"reservation_updated_at"`
}

func (ReservationModel) TableName() string {
	return "reservations"
}

// file: internals/features/reservations/requests/model/request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status permohonan reservasi.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// ReservationRequestModel permohonan reservasi dari role non-booking
// (user/student). Disetujui admin/instructor → jadi reservasi confirmed.
type ReservationRequestModel struct {
	RequestID     uuid.UUID  `gorm:"column:request_id;type:uuid;default:gen_random_uuid();primaryKey" json:"request_id"`
	RoomID        uuid.UUID  `gorm:"column:request_room_id;type:uuid;not null;index" json:"request_room_id"`
	UserID        uuid.UUID  `gorm:"column:request_user_id;type:uuid;not null;index" json:"request_user_id"`
	StartTime     time.Time  `gorm:"column:request_start_time;type:timestamptz;not null" json:"request_start_time"`
	EndTime       time.Time  `gorm:"column:request_end_time;type:timestamptz;not null" json:"request_end_time"`
	Purpose       *string    `gorm:"column:request_purpose;type:text" json:"request_purpose,omitempty"`
	Attendees     int        `gorm:"column:request_attendees;not null;default:1" json:"request_attendees"`
	Status        string     `gorm:"column:request_status;type:varchar(20);not null;default:'pending';index" json:"request_status"`
	ReviewedBy    *uuid.UUID `gorm:"column:request_reviewed_by;type:uuid" json:"request_reviewed_by,omitempty"`
	ReviewNote    *string    `gorm:"column:request_review_note;type:text" json:"request_review_note,omitempty"`
	ReviewedAt    *time.Time `gorm:"column:request_reviewed_at;type:timestamptz" json:"request_reviewed_at,omitempty"`
	ReservationID *uuid.UUID `gorm:"column:request_reservation_id;type:uuid" json:"request_reservation_id,omitempty"`
	CreatedAt     time.Time  `gorm:"column:request_created_at;autoCreateTime" json:"request_created_at"`
	UpdatedAt     time.Time  `gorm:"column:request_updated_at;autoUpdateTime" json:"request_updated_at"`
}

func (ReservationRequestModel) TableName() string {
	return "reservation_requests"
}

// file: internals/features/reservations/dto/reservation_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"roomku_backend/internals/features/reservations/model"
)

/* =======================================================
   REQUEST
   ======================================================= */

// CreateReservationRequest payload booking langsung (instructor/admin).
type CreateReservationRequest struct {
	RoomID    uuid.UUID `json:"room_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Purpose   *string   `json:"purpose" validate:"omitempty,max=500"`
	Attendees int       `json:"attendees" validate:"omitempty,min=1,max=1000"`
}

// Normalize rapikan input sebelum validasi.
func (r *CreateReservationRequest) Normalize() {
	if r.Purpose != nil {
		p := strings.TrimSpace(*r.Purpose)
		if p == "" {
			r.Purpose = nil
		} else {
			r.Purpose = &p
		}
	}
	if r.Attendees <= 0 {
		r.Attendees = 1
	}
	r.StartTime = r.StartTime.UTC()
	r.EndTime = r.EndTime.UTC()
}

// ListReservationsQuery filter daftar reservasi milik sendiri.
type ListReservationsQuery struct {
	Status string `query:"status"` // confirmed | cancelled | kosong = semua
	RoomID string `query:"room_id"`
}

func (q *ListReservationsQuery) Normalize() {
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	q.RoomID = strings.TrimSpace(q.RoomID)
}

/* =======================================================
   RESPONSE
   ======================================================= */

type ReservationResponse struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	RoomID        uuid.UUID  `json:"room_id"`
	UserID        uuid.UUID  `json:"user_id"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	Status        string     `json:"status"`
	Purpose       *string    `json:"purpose,omitempty"`
	Attendees     int        `json:"attendees"`
	ShareToken    string     `json:"share_token"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToReservationResponse(m model.ReservationModel) ReservationResponse {
	return ReservationResponse{
		ReservationID: m.ReservationID,
		RoomID:        m.RoomID,
		UserID:        m.UserID,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		Status:        m.Status,
		Purpose:       m.Purpose,
		Attendees:     m.Attendees,
		ShareToken:    m.ShareToken,
		CancelledAt:   m.CancelledAt,
		CreatedAt:     m.CreatedAt,
	}
}

// SharedReservationResponse versi publik lewat share token: tanpa identitas
// pemilik dan tanpa token (token sudah dipegang pemanggil).
type SharedReservationResponse struct {
	RoomID    uuid.UUID `json:"room_id"`
	RoomName  string    `json:"room_name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	Purpose   *string   `json:"purpose,omitempty"`
	Attendees int       `json:"attendees"`
}

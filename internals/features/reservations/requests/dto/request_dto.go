// file: internals/features/reservations/requests/dto/request_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"roomku_backend/internals/features/reservations/requests/model"
)

/* =======================================================
   REQUEST
   ======================================================= */

// SubmitRequestRequest payload permohonan reservasi (user/student).
type SubmitRequestRequest struct {
	RoomID    uuid.UUID `json:"room_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Purpose   *string   `json:"purpose" validate:"omitempty,max=500"`
	Attendees int       `json:"attendees" validate:"omitempty,min=1,max=1000"`
}

func (r *SubmitRequestRequest) Normalize() {
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

// ReviewRequestRequest keputusan reviewer atas satu permohonan.
type ReviewRequestRequest struct {
	Approve bool    `json:"approve"`
	Note    *string `json:"note" validate:"omitempty,max=500"`
}

func (r *ReviewRequestRequest) Normalize() {
	if r.Note != nil {
		n := strings.TrimSpace(*r.Note)
		if n == "" {
			r.Note = nil
		} else {
			r.Note = &n
		}
	}
}

/* =======================================================
   RESPONSE
   ======================================================= */

type RequestResponse struct {
	RequestID     uuid.UUID  `json:"request_id"`
	RoomID        uuid.UUID  `json:"room_id"`
	UserID        uuid.UUID  `json:"user_id"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	Purpose       *string    `json:"purpose,omitempty"`
	Attendees     int        `json:"attendees"`
	Status        string     `json:"status"`
	ReviewedBy    *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewNote    *string    `json:"review_note,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToRequestResponse(m model.ReservationRequestModel) RequestResponse {
	return RequestResponse{
		RequestID:     m.RequestID,
		RoomID:        m.RoomID,
		UserID:        m.UserID,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		Purpose:       m.Purpose,
		Attendees:     m.Attendees,
		Status:        m.Status,
		ReviewedBy:    m.ReviewedBy,
		ReviewNote:    m.ReviewNote,
		ReviewedAt:    m.ReviewedAt,
		ReservationID: m.ReservationID,
		CreatedAt:     m.CreatedAt,
	}
}

// file: internals/features/rooms/dto/room_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	roomModel "roomku_backend/internals/features/rooms/model"
)

/* =======================================================
   REQUEST DTOs (CREATE / UPDATE)
   ======================================================= */

type CreateRoomRequest struct {
	RoomName     string  `json:"room_name" validate:"required,min=3,max=100"`
	RoomLocation *string `json:"room_location,omitempty" validate:"omitempty,max=255"`
	RoomFloor    *int    `json:"room_floor,omitempty"`
	RoomCapacity int     `json:"room_capacity" validate:"required,min=1"`
}

type UpdateRoomRequest struct {
	RoomName     string  `json:"room_name" validate:"required,min=3,max=100"`
	RoomLocation *string `json:"room_location,omitempty" validate:"omitempty,max=255"`
	RoomFloor    *int    `json:"room_floor,omitempty"`
	RoomCapacity int     `json:"room_capacity" validate:"required,min=1"`
	RoomIsActive *bool   `json:"room_is_active,omitempty"`
}

type ListRoomsQuery struct {
	Search   string `query:"search"`
	IsActive *bool  `query:"is_active"`
	Floor    *int   `query:"floor"`
	Sort     string `query:"sort"`
}

func (q *ListRoomsQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
	q.Sort = strings.TrimSpace(strings.ToLower(q.Sort))
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type RoomResponse struct {
	RoomID       uuid.UUID `json:"room_id"`
	RoomName     string    `json:"room_name"`
	RoomLocation *string   `json:"room_location,omitempty"`
	RoomFloor    *int      `json:"room_floor,omitempty"`
	RoomCapacity int       `json:"room_capacity"`
	RoomIsActive bool      `json:"room_is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToRoomResponse(m roomModel.RoomModel) RoomResponse {
	return RoomResponse{
		RoomID:       m.RoomID,
		RoomName:     m.RoomName,
		RoomLocation: m.RoomLocation,
		RoomFloor:    m.RoomFloor,
		RoomCapacity: m.RoomCapacity,
		RoomIsActive: m.RoomIsActive,
		CreatedAt:    m.CreatedAt,
	}
}

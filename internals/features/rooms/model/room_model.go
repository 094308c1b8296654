package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomModel merepresentasikan tabel rooms di database
type RoomModel struct {
	RoomID       uuid.UUID      `gorm:"column:room_id;type:uuid;default:gen_random_uuid();primaryKey" json:"room_id"`
	RoomName     string         `gorm:"column:room_name;size:100;not null" json:"room_name"`
	RoomLocation *string        `gorm:"column:room_location;size:255" json:"room_location,omitempty"`
	RoomFloor    *int           `gorm:"column:room_floor" json:"room_floor,omitempty"`
	RoomCapacity int            `gorm:"column:room_capacity;not null;default:1" json:"room_capacity"`
	RoomIsActive bool           `gorm:"column:room_is_active;not null;default:true" json:"room_is_active"`
	CreatedAt    time.Time      `gorm:"column:room_created_at;autoCreateTime" json:"room_created_at"`
	UpdatedAt    time.Time      `gorm:"column:room_updated_at;autoUpdateTime" json:"room_updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"-"`
}

func (RoomModel) TableName() string {
	return "rooms"
}

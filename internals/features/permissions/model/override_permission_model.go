package model

import (
	"time"

	"github.com/google/uuid"
)

// InstructorOverridePermissionModel grant kemampuan override untuk instructor:
// booking-nya boleh menggeser booking instructor biasa, dan booking-nya sendiri
// tidak bisa digeser oleh percobaan override non-privileged.
type InstructorOverridePermissionModel struct {
	PermissionID uuid.UUID  `gorm:"column:permission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"permission_id"`
	UserID       uuid.UUID  `gorm:"column:permission_user_id;type:uuid;not null;index" json:"permission_user_id"`
	GrantedBy    uuid.UUID  `gorm:"column:permission_granted_by;type:uuid;not null" json:"permission_granted_by"`
	Revoked      bool       `gorm:"column:permission_revoked;not null;default:false" json:"permission_revoked"`
	RevokedAt    *time.Time `gorm:"column:permission_revoked_at" json:"permission_revoked_at,omitempty"`
	CreatedAt    time.Time  `gorm:"column:permission_created_at;autoCreateTime" json:"permission_created_at"`
}

func (InstructorOverridePermissionModel) TableName() string {
	return "instructor_override_permissions"
}

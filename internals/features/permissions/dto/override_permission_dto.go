// file: internals/features/permissions/dto/override_permission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	permModel "roomku_backend/internals/features/permissions/model"
)

type GrantOverridePermissionRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

type OverridePermissionResponse struct {
	PermissionID uuid.UUID  `json:"permission_id"`
	UserID       uuid.UUID  `json:"user_id"`
	GrantedBy    uuid.UUID  `json:"granted_by"`
	Revoked      bool       `json:"revoked"`
	RevokedAt    *time.Time `json:"revoked_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToOverridePermissionResponse(m permModel.InstructorOverridePermissionModel) OverridePermissionResponse {
	return OverridePermissionResponse{
		PermissionID: m.PermissionID,
		UserID:       m.UserID,
		GrantedBy:    m.GrantedBy,
		Revoked:      m.Revoked,
		RevokedAt:    m.RevokedAt,
		CreatedAt:    m.CreatedAt,
	}
}

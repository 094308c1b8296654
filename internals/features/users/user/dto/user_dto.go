// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "roomku_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user student instructor admin"`
}

type ListUsersQuery struct {
	Search string `query:"search"`
	Role   string `query:"role"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID               uuid.UUID `json:"id"`
	UserName         string    `json:"user_name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	TwoFactorEnabled bool      `json:"two_factor_enabled"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToUserResponse(m userModel.UserModel) UserResponse {
	return UserResponse{
		ID:               m.ID,
		UserName:         m.UserName,
		Email:            m.Email,
		Role:             m.Role,
		TwoFactorEnabled: m.TwoFactorEnabled,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
	}
}

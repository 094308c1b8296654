// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomku_backend/internals/constants"
	"roomku_backend/internals/features/users/user/dto"
	"roomku_backend/internals/features/users/user/model"
	helper "roomku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// List daftar user (admin only)
func (ctl *UserController) List(c *fiber.Ctx) error {
	var q dto.ListUsersQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.UserModel{})

	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("(LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?)", like, like)
	}
	if q.Role != "" {
		if !constants.IsValidRole(q.Role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
		}
		db = db.Where("role = ?", q.Role)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.UserModel
	if err := db.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.UserResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToUserResponse(m))
	}

	return helper.JsonList(c, "Daftar user", out, helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// UpdateRole ganti role user (admin only)
func (ctl *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctl.DB.Model(&user).Update("role", req.Role).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update role")
	}
	user.Role = req.Role

	return helper.JsonUpdated(c, "Role user diperbarui", dto.ToUserResponse(user))
}

// file: internals/features/permissions/controller/override_permission_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomku_backend/internals/constants"
	"roomku_backend/internals/features/permissions/dto"
	"roomku_backend/internals/features/permissions/model"
	userModel "roomku_backend/internals/features/users/user/model"
	helper "roomku_backend/internals/helpers"
)

type OverridePermissionController struct {
	DB *gorm.DB
}

func NewOverridePermissionController(db *gorm.DB) *OverridePermissionController {
	return &OverridePermissionController{DB: db}
}

// List semua grant (admin)
func (ctl *OverridePermissionController) List(c *fiber.Ctx) error {
	var rows []model.InstructorOverridePermissionModel
	db := ctl.DB.Model(&model.InstructorOverridePermissionModel{})
	if c.Query("active") == "true" {
		db = db.Where("permission_revoked = FALSE")
	}
	if err := db.Order("permission_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.OverridePermissionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToOverridePermissionResponse(m))
	}
	return helper.JsonOK(c, "Daftar grant override", out)
}

// Grant kasih kemampuan override ke seorang instructor (admin)
func (ctl *OverridePermissionController) Grant(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.GrantOverridePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	// Grant hanya bermakna untuk instructor
	var target userModel.UserModel
	if err := ctl.DB.First(&target, "id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if target.Role != constants.RoleInstructor {
		return helper.JsonError(c, fiber.StatusBadRequest, "Grant override hanya untuk instructor")
	}

	// Sudah punya grant aktif? jangan dobel
	var existing model.InstructorOverridePermissionModel
	err = ctl.DB.Where("permission_user_id = ? AND permission_revoked = FALSE", req.UserID).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Instructor sudah punya grant aktif")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek grant")
	}

	grant := model.InstructorOverridePermissionModel{
		UserID:    req.UserID,
		GrantedBy: adminID,
	}
	if err := ctl.DB.Create(&grant).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat grant")
	}

	return helper.JsonCreated(c, "Grant override dibuat", dto.ToOverridePermissionResponse(grant))
}

// Revoke cabut grant (admin) — flag, bukan hapus baris
func (ctl *OverridePermissionController) Revoke(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	now := time.Now().UTC()
	res := ctl.DB.Model(&model.InstructorOverridePermissionModel{}).
		Where("permission_id = ? AND permission_revoked = FALSE", id).
		Updates(map[string]any{
			"permission_revoked":    true,
			"permission_revoked_at": now,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal revoke grant")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Grant aktif tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Grant override dicabut", fiber.Map{"permission_id": id})
}

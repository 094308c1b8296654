// file: internals/features/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomku_backend/internals/features/rooms/dto"
	"roomku_backend/internals/features/rooms/model"
	helper "roomku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoomController(db *gorm.DB, v *validator.Validate) *RoomController {
	if v == nil {
		v = helper.Validate
	}
	return &RoomController{DB: db, Validate: v}
}

/* =======================================================
   PUBLIC — peta ruangan
   ======================================================= */

// List daftar ruangan (public, dipakai halaman peta)
func (ctl *RoomController) List(c *fiber.Ctx) error {
	var q dto.ListRoomsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	q.Normalize()

	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.RoomModel{}).
		Where("room_deleted_at IS NULL")

	// search → ILIKE ke name + location
	if q.Search != "" {
		s := "%" + strings.ToLower(q.Search) + "%"
		db = db.Where("(LOWER(room_name) LIKE ? OR LOWER(COALESCE(room_location,'')) LIKE ?)", s, s)
	}

	if q.IsActive != nil {
		db = db.Where("room_is_active = ?", *q.IsActive)
	}
	if q.Floor != nil {
		db = db.Where("room_floor = ?", *q.Floor)
	}

	// sorting sederhana
	switch q.Sort {
	case "name_asc":
		db = db.Order("room_name ASC")
	case "name_desc":
		db = db.Order("room_name DESC")
	case "capacity_desc":
		db = db.Order("room_capacity DESC")
	case "created_desc", "":
		db = db.Order("room_created_at DESC")
	default:
		db = db.Order("room_created_at DESC")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.RoomModel
	if err := db.Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.RoomResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToRoomResponse(m))
	}

	return helper.JsonList(c, "Daftar ruangan", out, helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// GetByID detail ruangan
func (ctl *RoomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var room model.RoomModel
	if err := ctl.DB.First(&room, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail ruangan", dto.ToRoomResponse(room))
}

/* =======================================================
   ADMIN — CRUD
   ======================================================= */

func (ctl *RoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	room := model.RoomModel{
		RoomName:     strings.TrimSpace(req.RoomName),
		RoomLocation: req.RoomLocation,
		RoomFloor:    req.RoomFloor,
		RoomCapacity: req.RoomCapacity,
		RoomIsActive: true,
	}

	if err := ctl.DB.Create(&room).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat ruangan")
	}

	return helper.JsonCreated(c, "Ruangan dibuat", dto.ToRoomResponse(room))
}

func (ctl *RoomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var room model.RoomModel
	if err := ctl.DB.First(&room, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	room.RoomName = strings.TrimSpace(req.RoomName)
	room.RoomLocation = req.RoomLocation
	room.RoomFloor = req.RoomFloor
	room.RoomCapacity = req.RoomCapacity
	if req.RoomIsActive != nil {
		room.RoomIsActive = *req.RoomIsActive
	}

	if err := ctl.DB.Save(&room).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update ruangan")
	}

	return helper.JsonUpdated(c, "Ruangan diperbarui", dto.ToRoomResponse(room))
}

// Delete soft delete (riwayat reservasi tetap ada)
func (ctl *RoomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Delete(&model.RoomModel{}, "room_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus ruangan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Ruangan dihapus", fiber.Map{"room_id": id})
}

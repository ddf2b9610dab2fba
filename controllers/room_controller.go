package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"staynest/dto"
	"staynest/response"
	"staynest/services"
)

type RoomController struct {
	roomService *services.RoomService
}

func NewRoomController(roomService *services.RoomService) *RoomController {
	return &RoomController{roomService: roomService}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.BadRequest(c, "잘못된 요청입니다.")
		return 0, false
	}
	return uint(id), true
}

// ListRooms godoc
// @Summary Danh sách phòng
// @Tags rooms
// @Produce json
// @Success 200 {object} response.Response
// @Router /rooms [get]
func (ctrl *RoomController) ListRooms(c *gin.Context) {
	rooms, err := ctrl.roomService.ListRooms(c.Request.Context())
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, rooms)
}

// GetRoom godoc
// @Summary Chi tiết phòng kèm ảnh và review
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Response
// @Router /rooms/{id} [get]
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := ctrl.roomService.GetRoomDetail(roomID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, detail)
}

// GetBookedDates godoc
// @Summary Các ngày đã bị giữ của phòng
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Response
// @Router /rooms/{id}/booked-dates [get]
func (ctrl *RoomController) GetBookedDates(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dates, err := ctrl.roomService.ListBookedDates(roomID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, gin.H{"bookedDates": dates})
}

// CreateRoom godoc
// @Summary Tạo phòng mới (admin)
// @Tags admin-rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.RoomRequest true "Thông tin phòng"
// @Success 201 {object} response.Response
// @Router /admin/rooms [post]
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	room, err := ctrl.roomService.CreateRoom(c.Request.Context(), req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Created(c, room)
}

// UpdateRoom godoc
// @Summary Cập nhật phòng (admin)
// @Tags admin-rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param body body dto.RoomRequest true "Thông tin phòng"
// @Success 200 {object} response.Response
// @Router /admin/rooms/{id} [put]
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	room, err := ctrl.roomService.UpdateRoom(c.Request.Context(), roomID, req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, room)
}

// DeleteRoom godoc
// @Summary Xóa phòng (chỉ SUPER_ADMIN)
// @Tags admin-rooms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Response
// @Router /admin/rooms/{id} [delete]
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.roomService.DeleteRoom(c.Request.Context(), roomID); err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, nil)
}

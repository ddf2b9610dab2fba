package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"staynest/dto"
	"staynest/middleware"
	"staynest/models"
	"staynest/response"
	"staynest/services"
)

type BookingController struct {
	bookingService *services.BookingService
}

func NewBookingController(bookingService *services.BookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

const bookingDateLayout = "2006-01-02"

func toBookingResponse(booking *models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:          booking.ID,
		RoomID:      booking.RoomID,
		CheckIn:     booking.CheckIn.Format(bookingDateLayout),
		CheckOut:    booking.CheckOut.Format(bookingDateLayout),
		Adults:      booking.Adults,
		Children:    booking.Children,
		TotalPrice:  booking.TotalPrice,
		Status:      booking.Status,
		SpecialNote: booking.SpecialNote,
		CreatedAt:   booking.CreatedAt,
	}
	if booking.Room != nil {
		room := &dto.BookingRoomResponse{
			ID:    booking.Room.ID,
			Name:  booking.Room.Name,
			Grade: booking.Room.Grade,
		}
		if len(booking.Room.Images) > 0 {
			room.Thumbnail = booking.Room.Images[0].URL
		}
		resp.Room = room
	}
	if booking.Payment != nil {
		resp.Payment = &dto.BookingPaymentResponse{
			Status: booking.Payment.Status,
			Amount: booking.Payment.Amount,
		}
	}
	return resp
}

func toAdminBookingResponse(booking *models.Booking) dto.AdminBookingResponse {
	resp := dto.AdminBookingResponse{BookingResponse: toBookingResponse(booking)}
	if booking.User != nil {
		resp.User = dto.ActorResponse{
			Name:        booking.User.Name,
			PhoneNumber: booking.User.PhoneNumber,
		}
		if booking.User.Email != nil {
			resp.User.Email = *booking.User.Email
		}
	}
	return resp
}

// CreateBooking godoc
// @Summary Đặt phòng
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateBookingRequest true "Thông tin đặt phòng"
// @Success 201 {object} response.Response
// @Router /bookings [post]
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	booking, err := ctrl.bookingService.CreateBooking(req, userID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Created(c, toBookingResponse(booking))
}

// ListMyBookings godoc
// @Summary Danh sách booking của tôi
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param status query string false "Lọc theo trạng thái"
// @Success 200 {object} response.Response
// @Router /bookings [get]
func (ctrl *BookingController) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookings, err := ctrl.bookingService.ListUserBookings(userID, c.Query("status"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	responses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, toBookingResponse(&bookings[i]))
	}
	response.Success(c, responses)
}

// CancelBooking godoc
// @Summary Hủy booking của tôi
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Response
// @Router /bookings/{id}/cancel [post]
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.bookingService.CancelBooking(bookingID, userID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, toBookingResponse(booking))
}

// ListAdminBookings godoc
// @Summary Danh sách booking toàn hệ thống (admin)
// @Tags admin-bookings
// @Security BearerAuth
// @Produce json
// @Param status query string false "Lọc theo trạng thái"
// @Param month query int false "Tháng"
// @Param year query int false "Năm"
// @Success 200 {object} response.Response
// @Router /admin/bookings [get]
func (ctrl *BookingController) ListAdminBookings(c *gin.Context) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	bookings, err := ctrl.bookingService.ListAdminBookings(c.Query("status"), month, year)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	responses := make([]dto.AdminBookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, toAdminBookingResponse(&bookings[i]))
	}
	response.Success(c, responses)
}

// UpdateBookingStatus godoc
// @Summary Đổi trạng thái booking (admin)
// @Tags admin-bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param body body dto.UpdateBookingStatusRequest true "Trạng thái mới"
// @Success 200 {object} response.Response
// @Router /admin/bookings/{id} [patch]
func (ctrl *BookingController) UpdateBookingStatus(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	booking, err := ctrl.bookingService.ChangeBookingStatus(bookingID, req.Status)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, toAdminBookingResponse(booking))
}

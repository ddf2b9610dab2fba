package dto

import "time"

// CreateBookingRequest là DTO cho request đặt phòng (ngày dạng ISO yyyy-MM-dd)
type CreateBookingRequest struct {
	RoomID      uint   `json:"roomId" binding:"required"`
	CheckIn     string `json:"checkIn" binding:"required"`
	CheckOut    string `json:"checkOut" binding:"required"`
	Adults      int    `json:"adults" binding:"required"`
	Children    int    `json:"children"`
	SpecialNote string `json:"specialNote"`
}

// UpdateBookingStatusRequest là DTO cho admin đổi trạng thái booking
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingRoomResponse là DTO rút gọn thông tin phòng trong booking
type BookingRoomResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Grade     string `json:"grade"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// BookingPaymentResponse là DTO rút gọn thông tin thanh toán trong booking
type BookingPaymentResponse struct {
	Status string `json:"status"`
	Amount int    `json:"amount"`
}

// BookingResponse là DTO cho booking trả về người dùng
type BookingResponse struct {
	ID          uint                    `json:"id"`
	RoomID      uint                    `json:"roomId"`
	Room        *BookingRoomResponse    `json:"room,omitempty"`
	CheckIn     string                  `json:"checkIn"`
	CheckOut    string                  `json:"checkOut"`
	Adults      int                     `json:"adults"`
	Children    int                     `json:"children"`
	TotalPrice  int                     `json:"totalPrice"`
	Status      string                  `json:"status"`
	SpecialNote string                  `json:"specialNote,omitempty"`
	Payment     *BookingPaymentResponse `json:"payment,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
}

// AdminBookingResponse là DTO cho danh sách booking phía admin
type AdminBookingResponse struct {
	BookingResponse
	User ActorResponse `json:"user"`
}

// ActorResponse là DTO cho thông tin user/actor
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

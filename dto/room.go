package dto

import "time"

// RoomRequest là DTO cho tạo/cập nhật phòng
type RoomRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Grade         string   `json:"grade" binding:"required"`
	PricePerNight int      `json:"pricePerNight" binding:"required"`
	MaxAdults     int      `json:"maxAdults" binding:"required"`
	MaxChildren   int      `json:"maxChildren"`
	Status        string   `json:"status"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	SortOrder     int      `json:"sortOrder"`
}

// RoomSummary là DTO rút gọn cho danh sách phòng
type RoomSummary struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Grade         string   `json:"grade"`
	PricePerNight int      `json:"pricePerNight"`
	MaxAdults     int      `json:"maxAdults"`
	MaxChildren   int      `json:"maxChildren"`
	Status        string   `json:"status"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
}

// RoomDetailResponse là DTO cho chi tiết phòng kèm ảnh và đánh giá gần nhất
type RoomDetailResponse struct {
	ID            uint             `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Grade         string           `json:"grade"`
	PricePerNight int              `json:"pricePerNight"`
	MaxAdults     int              `json:"maxAdults"`
	MaxChildren   int              `json:"maxChildren"`
	Status        string           `json:"status"`
	Amenities     []string         `json:"amenities"`
	Images        []string         `json:"images"`
	Reviews       []ReviewResponse `json:"reviews"`
	CreatedAt     time.Time        `json:"createdAt"`
}

package dto

import "time"

// CreateReviewRequest là DTO cho request viết review
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ReviewResponse là DTO cho review trả về
type ReviewResponse struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	User      UserInfo  `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserInfo là DTO rút gọn thông tin người viết review
type UserInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

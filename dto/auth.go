package dto

import "time"

// RegisterInput là DTO cho đăng ký tài khoản
type RegisterInput struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PhoneNumber  string `json:"phone"`
	Password     string `json:"password" binding:"required"`
	SecurityCode string `json:"securityCode"` // chỉ dùng khi tạo tài khoản quản trị
}

// LoginInput là DTO cho đăng nhập (email hoặc username)
type LoginInput struct {
	LoginID  string `json:"loginId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginInput là DTO cho đăng nhập Google
type GoogleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserResponse là DTO cho thông tin user trả về
type UserResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Username    string    `json:"username,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Image       string    `json:"image,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

package models

import (
	"time"

	"staynest/constants"
)

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Email       *string   `json:"email" gorm:"uniqueIndex"`
	Username    *string   `json:"username" gorm:"uniqueIndex"`
	PhoneNumber string    `json:"phoneNumber"`
	Password    string    `json:"-"`
	Image       string    `json:"image"`
	Role        string    `json:"role" gorm:"default:USER"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsAdmin kiểm tra user có quyền quản trị không
func (u *User) IsAdmin() bool {
	return u.Role == constants.RoleStaff || u.Role == constants.RoleSuperAdmin
}

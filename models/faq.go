package models

import "time"

// FAQEntry do admin quản lý; chỉ entry isActive tham gia matching
type FAQEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  *string   `json:"category,omitempty"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	SortOrder int       `json:"sortOrder" gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

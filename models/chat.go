package models

import "time"

// ChatSession được tạo lazy khi tin nhắn đầu tiên không kèm session hợp lệ
type ChatSession struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// ChatMessage là transcript append-only, sắp theo thời gian tạo
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID string    `json:"sessionId" gorm:"index;size:36"`
	Role      string    `json:"role"` // "user" hoặc "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

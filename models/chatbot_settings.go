package models

import "time"

// ChatbotSettings là bản ghi singleton cấu hình chatbot
type ChatbotSettings struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ToneManner   string    `json:"toneManner"`
	Greeting     string    `json:"greeting"`
	SystemPrompt string    `json:"systemPrompt"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

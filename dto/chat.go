package dto

// ChatRequest là DTO cho request chat widget
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// ChatResponse là DTO cho response chat widget
type ChatResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// ChatbotSettingsRequest là DTO cho cập nhật cấu hình chatbot
type ChatbotSettingsRequest struct {
	ToneManner   string `json:"toneManner"`
	Greeting     string `json:"greeting"`
	SystemPrompt string `json:"systemPrompt"`
}

package dto

// FAQRequest là DTO cho tạo/cập nhật FAQ
type FAQRequest struct {
	Question  string  `json:"question" binding:"required"`
	Answer    string  `json:"answer" binding:"required"`
	Category  *string `json:"category"`
	IsActive  *bool   `json:"isActive"`
	SortOrder int     `json:"sortOrder"`
}

// FAQSuggestion là DTO cho kết quả gợi ý FAQ tương tự
type FAQSuggestion struct {
	ID         uint    `json:"id"`
	Question   string  `json:"question"`
	Similarity float64 `json:"similarity"`
}

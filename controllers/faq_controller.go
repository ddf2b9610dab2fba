package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"staynest/dto"
	"staynest/response"
	"staynest/services"
)

type FAQController struct {
	faqService *services.FAQService
}

func NewFAQController(faqService *services.FAQService) *FAQController {
	return &FAQController{faqService: faqService}
}

// ListFAQs godoc
// @Summary Danh sách FAQ (admin xem cả entry đã tắt)
// @Tags admin-faq
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/faqs [get]
func (ctrl *FAQController) ListFAQs(c *gin.Context) {
	faqs, err := ctrl.faqService.ListFAQs(true)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, faqs)
}

// ListPublicFAQs godoc
// @Summary Danh sách FAQ đang hoạt động
// @Tags faq
// @Produce json
// @Success 200 {object} response.Response
// @Router /faqs [get]
func (ctrl *FAQController) ListPublicFAQs(c *gin.Context) {
	faqs, err := ctrl.faqService.ListFAQs(false)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, faqs)
}

// CreateFAQ godoc
// @Summary Tạo FAQ (admin)
// @Tags admin-faq
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.FAQRequest true "Nội dung FAQ"
// @Success 201 {object} response.Response
// @Router /admin/faqs [post]
func (ctrl *FAQController) CreateFAQ(c *gin.Context) {
	var req dto.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	faq, err := ctrl.faqService.CreateFAQ(c.Request.Context(), req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Created(c, faq)
}

// UpdateFAQ godoc
// @Summary Cập nhật FAQ (admin)
// @Tags admin-faq
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "FAQ ID"
// @Param body body dto.FAQRequest true "Nội dung FAQ"
// @Success 200 {object} response.Response
// @Router /admin/faqs/{id} [put]
func (ctrl *FAQController) UpdateFAQ(c *gin.Context) {
	faqID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	faq, err := ctrl.faqService.UpdateFAQ(c.Request.Context(), faqID, req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, faq)
}

// DeleteFAQ godoc
// @Summary Xóa FAQ (admin)
// @Tags admin-faq
// @Security BearerAuth
// @Produce json
// @Param id path int true "FAQ ID"
// @Success 200 {object} response.Response
// @Router /admin/faqs/{id} [delete]
func (ctrl *FAQController) DeleteFAQ(c *gin.Context) {
	faqID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.faqService.DeleteFAQ(c.Request.Context(), faqID); err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, nil)
}

// SuggestSimilar godoc
// @Summary Gợi ý FAQ tương tự để tránh tạo trùng (admin)
// @Tags admin-faq
// @Security BearerAuth
// @Produce json
// @Param question query string true "Câu hỏi cần so khớp"
// @Param limit query int false "Số gợi ý tối đa"
// @Success 200 {object} response.Response
// @Router /admin/faqs/similar [get]
func (ctrl *FAQController) SuggestSimilar(c *gin.Context) {
	question := c.Query("question")
	if question == "" {
		response.BadRequest(c, "질문을 입력해주세요.")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	suggestions, err := ctrl.faqService.SuggestSimilar(question, limit)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, suggestions)
}

// GetChatbotSettings godoc
// @Summary Cấu hình chatbot hiện tại (admin)
// @Tags admin-chatbot
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/chatbot-settings [get]
func (ctrl *FAQController) GetChatbotSettings(c *gin.Context) {
	settings, err := ctrl.faqService.GetChatbotSettings(c.Request.Context())
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, settings)
}

// UpdateChatbotSettings godoc
// @Summary Cập nhật cấu hình chatbot (admin)
// @Tags admin-chatbot
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.ChatbotSettingsRequest true "Cấu hình"
// @Success 200 {object} response.Response
// @Router /admin/chatbot-settings [put]
func (ctrl *FAQController) UpdateChatbotSettings(c *gin.Context) {
	var req dto.ChatbotSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	settings, err := ctrl.faqService.UpdateChatbotSettings(c.Request.Context(), req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, settings)
}

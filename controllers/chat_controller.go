package controllers

import (
	"github.com/gin-gonic/gin"

	"staynest/dto"
	"staynest/response"
	"staynest/services"
)

type ChatController struct {
	supportService *services.SupportService
}

func NewChatController(supportService *services.SupportService) *ChatController {
	return &ChatController{supportService: supportService}
}

// Chat godoc
// @Summary Gửi tin nhắn cho chatbot
// @Tags chat
// @Accept json
// @Produce json
// @Param body body dto.ChatRequest true "Tin nhắn"
// @Success 200 {object} response.Response
// @Router /chat [post]
func (ctrl *ChatController) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "메시지를 입력해주세요.")
		return
	}

	answer, sessionID, err := ctrl.supportService.Resolve(c.Request.Context(), req.Message, req.SessionID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, dto.ChatResponse{
		Message:   answer,
		SessionID: sessionID,
	})
}

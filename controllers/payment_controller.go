package controllers

import (
	"github.com/gin-gonic/gin"

	"staynest/dto"
	"staynest/middleware"
	"staynest/response"
	"staynest/services"
)

type PaymentController struct {
	paymentService *services.PaymentService
}

func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// VerifyPayment godoc
// @Summary Xác minh thanh toán và xác nhận booking
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.VerifyPaymentRequest true "Thông tin thanh toán"
// @Success 200 {object} response.Response
// @Router /payments/verify [post]
func (ctrl *PaymentController) VerifyPayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	if err := ctrl.paymentService.ConfirmPayment(c.Request.Context(), req.BookingID, req.ImpUID, req.MerchantUID, userID); err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, gin.H{"success": true})
}

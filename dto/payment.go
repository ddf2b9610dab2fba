package dto

// VerifyPaymentRequest là DTO cho request xác minh thanh toán
type VerifyPaymentRequest struct {
	ImpUID      string `json:"impUid" binding:"required"`
	MerchantUID string `json:"merchantUid" binding:"required"`
	BookingID   uint   `json:"bookingId" binding:"required"`
}

package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"staynest/constants"
	apperrors "staynest/errors"
	"staynest/models"
	"staynest/services/logger"
)

// PaymentVerifier xác minh một tham chiếu thanh toán với cổng thanh toán bên ngoài.
// Implementation thật gọi Portone; test thay bằng stub.
type PaymentVerifier interface {
	Verify(ctx context.Context, impUID string, amount int) error
}

type PaymentService struct {
	db       *gorm.DB
	verifier PaymentVerifier
	logger   logger.Logger
}

type PaymentServiceOptions struct {
	DB       *gorm.DB
	Verifier PaymentVerifier
	Logger   logger.Logger
}

func NewPaymentService(opts PaymentServiceOptions) *PaymentService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PaymentService{
		db:       opts.DB,
		verifier: opts.Verifier,
		logger:   opts.Logger,
	}
}

// ConfirmPayment xác minh thanh toán với collaborator bên ngoài rồi cập nhật
// Payment -> PAID và Booking -> CONFIRMED trong cùng một transaction.
// Không bao giờ để trạng thái lệch nhau giữa hai bản ghi.
func (s *PaymentService) ConfirmPayment(ctx context.Context, bookingID uint, impUID, merchantUID string, userID uint) error {
	var booking models.Booking
	if err := s.db.Preload("Payment").First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.NewAppError(apperrors.ErrCodeNotFound, "예약을 찾을 수 없습니다.", err)
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	if booking.UserID != userID {
		return apperrors.NewAppError(apperrors.ErrCodeForbidden, "권한이 없습니다.", nil)
	}

	if booking.Payment == nil {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "결제 정보를 찾을 수 없습니다.", nil)
	}

	if booking.Payment.Status == constants.PaymentStatusPaid {
		return apperrors.NewAppError(apperrors.ErrCodeConflict, "이미 결제가 완료된 예약입니다.", nil)
	}

	// Sai lệch tiền không được bỏ qua: verifier đối chiếu số tiền thật
	// với payment.Amount và fail nếu khác.
	if err := s.verifier.Verify(ctx, impUID, booking.Payment.Amount); err != nil {
		s.logger.Error("payment verification failed for booking %d: %v", bookingID, err)
		return apperrors.NewAppError(apperrors.ErrCodeExternalService, "결제 검증 중 오류가 발생했습니다.", err)
	}

	now := time.Now()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Payment{}).
			Where("booking_id = ?", bookingID).
			Updates(map[string]interface{}{
				"status":       constants.PaymentStatusPaid,
				"imp_uid":      impUID,
				"merchant_uid": merchantUID,
				"paid_at":      now,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Booking{}).
			Where("id = ?", bookingID).
			Update("status", constants.BookingStatusConfirmed).Error
	})
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "결제 처리 중 오류가 발생했습니다.", err)
	}

	s.logger.Info("payment confirmed for booking %d (imp_uid=%s)", bookingID, impUID)
	return nil
}

package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staynest/constants"
	"staynest/dto"
	apperrors "staynest/errors"
	"staynest/models"
	"staynest/services/logger"
)

const dateLayout = "2006-01-02"

// StalePendingAge là tuổi tối đa của booking PENDING trước khi bị hủy tự động
const StalePendingAge = 24 * time.Hour

// blockingStatuses: chỉ booking đã thanh toán hoặc đang ở mới giữ phòng.
// PENDING và CANCELLED không bao giờ chặn request mới.
var blockingStatuses = []string{constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn}

type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// ParseDate parse ngày ISO yyyy-MM-dd (chỉ lấy phần ngày)
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func generateMerchantUID() string {
	return fmt.Sprintf("order_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// CreateBooking kiểm tra điều kiện đặt phòng và tạo Booking + Payment
// trong cùng một transaction. Khoảng ngày dùng ngữ nghĩa nửa mở
// [checkIn, checkOut): trả phòng trùng ngày nhận phòng không tính là xung đột.
func (s *BookingService) CreateBooking(req dto.CreateBookingRequest, userID uint) (*models.Booking, error) {
	checkIn, err := ParseDate(req.CheckIn)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "체크인 날짜를 선택해주세요.", err)
	}
	checkOut, err := ParseDate(req.CheckOut)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "체크아웃 날짜를 선택해주세요.", err)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights <= 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "체크아웃 날짜는 체크인 이후여야 합니다.", nil)
	}

	if req.Adults < 1 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "최소 1명의 성인이 필요합니다.", nil)
	}
	if req.Children < 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "어린이 수가 올바르지 않습니다.", nil)
	}

	var booking *models.Booking
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Khóa advisory theo roomID để tuần tự hóa cặp check-and-insert
		// giữa các request trùng phòng (chỉ có trên Postgres).
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", int64(req.RoomID)).Error; err != nil {
				return apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
			}
		}

		var room models.Room
		if err := tx.First(&room, req.RoomID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.NewAppError(apperrors.ErrCodeNotFound, "객실을 찾을 수 없습니다.", err)
			}
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
		}

		if room.Status != constants.RoomStatusAvailable {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidState, "현재 예약할 수 없는 객실입니다.", nil)
		}

		if req.Adults > room.MaxAdults {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidState,
				fmt.Sprintf("최대 성인 %d명까지 가능합니다.", room.MaxAdults), nil)
		}

		var conflicts int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ? AND check_in < ? AND check_out > ?",
				req.RoomID, blockingStatuses, checkOut, checkIn).
			Count(&conflicts).Error; err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
		}
		if conflicts > 0 {
			return apperrors.NewAppError(apperrors.ErrCodeConflict, "해당 날짜에 이미 예약이 있습니다.", nil)
		}

		totalPrice := nights * room.PricePerNight

		booking = &models.Booking{
			UserID:      userID,
			RoomID:      room.ID,
			CheckIn:     checkIn,
			CheckOut:    checkOut,
			Adults:      req.Adults,
			Children:    req.Children,
			TotalPrice:  totalPrice,
			Status:      constants.BookingStatusPending,
			SpecialNote: req.SpecialNote,
			Payment: &models.Payment{
				Amount:      totalPrice,
				Status:      constants.PaymentStatusPending,
				MerchantUID: generateMerchantUID(),
			},
		}

		if err := tx.Create(booking).Error; err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "예약 처리 중 오류가 발생했습니다.", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking %d created for room %d (%s ~ %s)", booking.ID, booking.RoomID, req.CheckIn, req.CheckOut)
	return booking, nil
}

// ListUserBookings trả về booking của chính user, mới nhất trước
func (s *BookingService) ListUserBookings(userID uint, status string) ([]models.Booking, error) {
	tx := s.db.Preload("Room.Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc")
	}).Preload("Room").Preload("Payment").Where("user_id = ?", userID)

	if status != "" {
		if !constants.IsValidBookingStatus(status) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "유효하지 않은 상태값입니다.", nil)
		}
		tx = tx.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := tx.Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}
	return bookings, nil
}

// ListAdminBookings trả về toàn bộ booking, lọc theo status và tháng
func (s *BookingService) ListAdminBookings(status string, month, year int) ([]models.Booking, error) {
	tx := s.db.Preload("User").Preload("Room").Preload("Payment")

	if status != "" {
		if !constants.IsValidBookingStatus(status) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "유효하지 않은 상태값입니다.", nil)
		}
		tx = tx.Where("status = ?", status)
	}

	if month >= 1 && month <= 12 && year > 0 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		// booking chạm vào tháng được chọn: bắt đầu, kết thúc, hoặc bao trùm
		tx = tx.Where("check_in < ? AND check_out >= ?", end, start)
	}

	var bookings []models.Booking
	if err := tx.Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}
	return bookings, nil
}

// ChangeBookingStatus cho phép admin đổi trạng thái booking.
// Mọi chuyển đổi status đều được chấp nhận, chỉ validate giá trị.
func (s *BookingService) ChangeBookingStatus(bookingID uint, status string) (*models.Booking, error) {
	if !constants.IsValidBookingStatus(status) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "유효하지 않은 상태값입니다.", nil)
	}

	var booking models.Booking
	if err := s.db.Preload("User").Preload("Room").First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "예약을 찾을 수 없습니다.", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	booking.Status = status
	if err := s.db.Model(&booking).Update("status", status).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "예약 상태 변경 중 오류가 발생했습니다.", err)
	}

	return &booking, nil
}

// CancelBooking cho phép chủ booking hủy khi chưa check-in
func (s *BookingService) CancelBooking(bookingID, userID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "예약을 찾을 수 없습니다.", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	if booking.UserID != userID {
		return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "권한이 없습니다.", nil)
	}

	if booking.Status != constants.BookingStatusPending && booking.Status != constants.BookingStatusConfirmed {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidState, "취소할 수 없는 예약 상태입니다.", nil)
	}

	booking.Status = constants.BookingStatusCancelled
	if err := s.db.Model(&booking).Update("status", booking.Status).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "예약 취소 중 오류가 발생했습니다.", err)
	}

	return &booking, nil
}

// ExpireStalePendingBookings hủy các booking PENDING quá hạn thanh toán.
// Booking PENDING vốn không giữ phòng nên việc hủy chỉ dọn danh sách.
func (s *BookingService) ExpireStalePendingBookings() (int64, error) {
	cutoff := time.Now().Add(-StalePendingAge)

	result := s.db.Model(&models.Booking{}).
		Where("status = ? AND created_at < ?", constants.BookingStatusPending, cutoff).
		Update("status", constants.BookingStatusCancelled)
	if result.Error != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", result.Error)
	}

	if result.RowsAffected > 0 {
		s.logger.Info("expired %d stale pending bookings", result.RowsAffected)
	}
	return result.RowsAffected, nil
}

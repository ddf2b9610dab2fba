package services

import (
	"unicode/utf8"

	"gorm.io/gorm"

	"staynest/constants"
	"staynest/dto"
	apperrors "staynest/errors"
	"staynest/models"
)

const minReviewLength = 10

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// SubmitReview tạo review cho một booking đã CHECKED_OUT của chính user.
// Mỗi booking chỉ được review một lần.
func (s *ReviewService) SubmitReview(bookingID, userID uint, req dto.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "평점은 1에서 5 사이여야 합니다.", nil)
	}
	if utf8.RuneCountInString(req.Content) < minReviewLength {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "리뷰는 최소 10자 이상이어야 합니다.", nil)
	}

	var booking models.Booking
	if err := s.db.Preload("Review").First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "예약을 찾을 수 없습니다.", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	if booking.UserID != userID {
		return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "권한이 없습니다.", nil)
	}

	if booking.Status != constants.BookingStatusCheckedOut {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidState, "체크아웃 후에만 리뷰를 작성할 수 있습니다.", nil)
	}

	if booking.Review != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, "이미 리뷰를 작성하셨습니다.", nil)
	}

	review := &models.Review{
		BookingID: bookingID,
		UserID:    userID,
		RoomID:    booking.RoomID,
		Rating:    req.Rating,
		Content:   req.Content,
	}

	if err := s.db.Create(review).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "리뷰 작성 중 오류가 발생했습니다.", err)
	}
	return review, nil
}

// ListRoomReviews trả về các review gần nhất của một phòng
func (s *ReviewService) ListRoomReviews(roomID uint, limit int) ([]models.Review, error) {
	if limit <= 0 {
		limit = 10
	}

	var reviews []models.Review
	if err := s.db.Preload("User").
		Where("room_id = ?", roomID).
		Order("created_at desc").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}
	return reviews, nil
}

package services

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"staynest/constants"
	"staynest/dto"
	apperrors "staynest/errors"
	"staynest/models"
	"staynest/services/logger"
)

const roomListCacheKey = "rooms:list"

type RoomService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type RoomServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RoomService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

func amenitiesToJSON(amenities []string) datatypes.JSON {
	if amenities == nil {
		amenities = []string{}
	}
	data, _ := json.Marshal(amenities)
	return datatypes.JSON(data)
}

func amenitiesFromJSON(data datatypes.JSON) []string {
	var amenities []string
	if len(data) > 0 {
		_ = json.Unmarshal(data, &amenities)
	}
	if amenities == nil {
		amenities = []string{}
	}
	return amenities
}

func (s *RoomService) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, roomListCacheKey); err != nil {
		s.logger.Error("room: invalidate list cache failed: %v", err)
	}
}

// ListRooms trả về danh sách phòng cho trang chủ, cache trong Redis
func (s *RoomService) ListRooms(ctx context.Context) ([]dto.RoomSummary, error) {
	var summaries []dto.RoomSummary

	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, roomListCacheKey, &summaries); err == nil && len(summaries) > 0 {
			return summaries, nil
		}
	}

	var rooms []models.Room
	if err := s.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc")
	}).Order("sort_order asc, id asc").Find(&rooms).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	summaries = make([]dto.RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		summary := dto.RoomSummary{
			ID:            room.ID,
			Name:          room.Name,
			Grade:         room.Grade,
			PricePerNight: room.PricePerNight,
			MaxAdults:     room.MaxAdults,
			MaxChildren:   room.MaxChildren,
			Status:        room.Status,
			Amenities:     amenitiesFromJSON(room.Amenities),
		}
		if len(room.Images) > 0 {
			summary.Thumbnail = room.Images[0].URL
		}
		summaries = append(summaries, summary)
	}

	if s.rdb != nil && len(summaries) > 0 {
		if err := SetToRedis(ctx, s.rdb, roomListCacheKey, summaries, cacheTTL); err != nil {
			s.logger.Error("room: cache list failed: %v", err)
		}
	}
	return summaries, nil
}

// GetRoomDetail trả về chi tiết phòng kèm ảnh và review gần nhất
func (s *RoomService) GetRoomDetail(roomID uint) (*dto.RoomDetailResponse, error) {
	var room models.Room
	if err := s.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc")
	}).First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "객실을 찾을 수 없습니다.", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	var reviews []models.Review
	if err := s.db.Preload("User").
		Where("room_id = ?", roomID).
		Order("created_at desc").
		Limit(10).
		Find(&reviews).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	images := make([]string, 0, len(room.Images))
	for _, img := range room.Images {
		images = append(images, img.URL)
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp := dto.ReviewResponse{
			ID:        review.ID,
			Rating:    review.Rating,
			Content:   review.Content,
			CreatedAt: review.CreatedAt,
		}
		if review.User != nil {
			resp.User = dto.UserInfo{ID: review.User.ID, Name: review.User.Name}
		}
		reviewResponses = append(reviewResponses, resp)
	}

	return &dto.RoomDetailResponse{
		ID:            room.ID,
		Name:          room.Name,
		Description:   room.Description,
		Grade:         room.Grade,
		PricePerNight: room.PricePerNight,
		MaxAdults:     room.MaxAdults,
		MaxChildren:   room.MaxChildren,
		Status:        room.Status,
		Amenities:     amenitiesFromJSON(room.Amenities),
		Images:        images,
		Reviews:       reviewResponses,
		CreatedAt:     room.CreatedAt,
	}, nil
}

func validateRoomRequest(req dto.RoomRequest) error {
	if !constants.IsValidRoomGrade(req.Grade) {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "유효하지 않은 객실 등급입니다.", nil)
	}
	if req.Status != "" && !constants.IsValidRoomStatus(req.Status) {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "유효하지 않은 객실 상태입니다.", nil)
	}
	if req.PricePerNight <= 0 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "1박 요금은 0보다 커야 합니다.", nil)
	}
	if req.MaxAdults < 1 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "최대 성인 수는 1명 이상이어야 합니다.", nil)
	}
	return nil
}

// CreateRoom tạo phòng mới kèm danh sách ảnh theo thứ tự gửi lên
func (s *RoomService) CreateRoom(ctx context.Context, req dto.RoomRequest) (*models.Room, error) {
	if err := validateRoomRequest(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = constants.RoomStatusAvailable
	}

	room := &models.Room{
		Name:          req.Name,
		Description:   req.Description,
		Grade:         req.Grade,
		PricePerNight: req.PricePerNight,
		MaxAdults:     req.MaxAdults,
		MaxChildren:   req.MaxChildren,
		Status:        status,
		Amenities:     amenitiesToJSON(req.Amenities),
		SortOrder:     req.SortOrder,
	}
	for i, url := range req.Images {
		room.Images = append(room.Images, models.RoomImage{URL: url, SortOrder: i})
	}

	if err := s.db.Create(room).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "객실 등록 중 오류가 발생했습니다.", err)
	}

	s.invalidateListCache(ctx)
	return room, nil
}

// UpdateRoom cập nhật thông tin phòng, thay toàn bộ danh sách ảnh nếu gửi kèm
func (s *RoomService) UpdateRoom(ctx context.Context, roomID uint, req dto.RoomRequest) (*models.Room, error) {
	if err := validateRoomRequest(req); err != nil {
		return nil, err
	}

	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "객실을 찾을 수 없습니다.", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	room.Name = req.Name
	room.Description = req.Description
	room.Grade = req.Grade
	room.PricePerNight = req.PricePerNight
	room.MaxAdults = req.MaxAdults
	room.MaxChildren = req.MaxChildren
	room.Amenities = amenitiesToJSON(req.Amenities)
	room.SortOrder = req.SortOrder
	if req.Status != "" {
		room.Status = req.Status
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&room).Error; err != nil {
			return err
		}
		if req.Images != nil {
			if err := tx.Where("room_id = ?", roomID).Delete(&models.RoomImage{}).Error; err != nil {
				return err
			}
			for i, url := range req.Images {
				img := models.RoomImage{RoomID: roomID, URL: url, SortOrder: i}
				if err := tx.Create(&img).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "객실 수정 중 오류가 발생했습니다.", err)
	}

	s.invalidateListCache(ctx)
	return &room, nil
}

// DeleteRoom xóa phòng nếu không còn booking đang giữ phòng trong tương lai
func (s *RoomService) DeleteRoom(ctx context.Context, roomID uint) error {
	var blocking int64
	if err := s.db.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ? AND check_out > ?", roomID, blockingStatuses, time.Now()).
		Count(&blocking).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}
	if blocking > 0 {
		return apperrors.NewAppError(apperrors.ErrCodeConflict, "예약이 남아 있는 객실은 삭제할 수 없습니다.", nil)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", roomID).Delete(&models.RoomImage{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Room{}, roomID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "객실을 찾을 수 없습니다.", err)
	}
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "객실 삭제 중 오류가 발생했습니다.", err)
	}

	s.invalidateListCache(ctx)
	return nil
}

// ListBookedDates trả về các ngày đã bị giữ của một phòng (nửa mở, không
// tính ngày check-out) để client disable trên date picker
func (s *RoomService) ListBookedDates(roomID uint) ([]string, error) {
	var bookings []models.Booking
	if err := s.db.Select("check_in", "check_out").
		Where("room_id = ? AND status IN ? AND check_out > ?", roomID, blockingStatuses, time.Now()).
		Find(&bookings).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	seen := make(map[string]bool)
	dates := make([]string, 0)
	for _, b := range bookings {
		for d := b.CheckIn; d.Before(b.CheckOut); d = d.AddDate(0, 0, 1) {
			key := d.Format(dateLayout)
			if !seen[key] {
				seen[key] = true
				dates = append(dates, key)
			}
		}
	}
	return dates, nil
}

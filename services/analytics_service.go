package services

import (
	"time"

	"gorm.io/gorm"

	"staynest/constants"
	apperrors "staynest/errors"
	"staynest/models"
)

type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// MonthlyRevenue là doanh thu đã thanh toán của một tháng
type MonthlyRevenue struct {
	Month   int `json:"month"`
	Revenue int `json:"revenue"`
}

// StatusCount là số booking theo trạng thái
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// GradeCount là số booking theo hạng phòng
type GradeCount struct {
	Grade string `json:"grade"`
	Count int64  `json:"count"`
}

// DashboardSummary gom số liệu cho trang dashboard admin
type DashboardSummary struct {
	Year           int              `json:"year"`
	TotalRevenue   int              `json:"totalRevenue"`
	MonthlyRevenue []MonthlyRevenue `json:"monthlyRevenue"`
	StatusCounts   []StatusCount    `json:"statusCounts"`
	GradeCounts    []GradeCount     `json:"gradeCounts"`
	RecentBookings []models.Booking `json:"recentBookings"`
}

// GetDashboard tổng hợp doanh thu theo tháng (chỉ tính payment PAID),
// phân bố trạng thái booking và hạng phòng trong năm được chọn
func (s *AnalyticsService) GetDashboard(year int) (*DashboardSummary, error) {
	if year <= 0 {
		year = time.Now().Year()
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var payments []models.Payment
	if err := s.db.Where("status = ? AND paid_at >= ? AND paid_at < ?",
		constants.PaymentStatusPaid, start, end).
		Find(&payments).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	monthly := make([]MonthlyRevenue, 12)
	for i := range monthly {
		monthly[i].Month = i + 1
	}
	total := 0
	for _, p := range payments {
		if p.PaidAt == nil {
			continue
		}
		monthly[int(p.PaidAt.Month())-1].Revenue += p.Amount
		total += p.Amount
	}

	var statusCounts []StatusCount
	if err := s.db.Model(&models.Booking{}).
		Select("status, count(*) as count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	var gradeCounts []GradeCount
	if err := s.db.Model(&models.Booking{}).
		Select("rooms.grade as grade, count(*) as count").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("bookings.created_at >= ? AND bookings.created_at < ?", start, end).
		Group("rooms.grade").
		Scan(&gradeCounts).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	var recent []models.Booking
	if err := s.db.Preload("User").Preload("Room").
		Order("created_at desc").
		Limit(5).
		Find(&recent).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	return &DashboardSummary{
		Year:           year,
		TotalRevenue:   total,
		MonthlyRevenue: monthly,
		StatusCounts:   statusCounts,
		GradeCounts:    gradeCounts,
		RecentBookings: recent,
	}, nil
}

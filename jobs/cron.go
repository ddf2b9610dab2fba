package jobs

import (
	"github.com/robfig/cron/v3"

	"staynest/config"
	"staynest/services"
	"staynest/services/logger"
)

// RegisterJobs đăng ký các job chạy nền định kỳ
func RegisterJobs(c *cron.Cron) error {
	log := logger.NewDefaultLogger(logger.InfoLevel)
	bookingService := services.NewBookingService(services.BookingServiceOptions{DB: config.DB, Logger: log})

	// hủy các booking PENDING quá hạn thanh toán, chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		if _, err := bookingService.ExpireStalePendingBookings(); err != nil {
			log.Error("cron: expire stale pending bookings: %v", err)
		}
	})
	return err
}

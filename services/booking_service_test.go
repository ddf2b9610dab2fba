package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"staynest/constants"
	"staynest/dto"
	apperrors "staynest/errors"
	"staynest/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.RoomImage{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.ChatSession{},
		&models.ChatMessage{},
		&models.FAQEntry{},
		&models.ChatbotSettings{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, status string) *models.Room {
	t.Helper()

	room := &models.Room{
		Name:          "디럭스 더블",
		Grade:         constants.GradeDeluxe,
		PricePerNight: 100000,
		MaxAdults:     2,
		MaxChildren:   1,
		Status:        status,
	}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return room
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{Name: "김철수", Role: constants.RoleUser}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedBooking(t *testing.T, db *gorm.DB, roomID, userID uint, checkIn, checkOut, status string) *models.Booking {
	t.Helper()

	in, err := ParseDate(checkIn)
	if err != nil {
		t.Fatalf("parse check-in: %v", err)
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		t.Fatalf("parse check-out: %v", err)
	}

	booking := &models.Booking{
		UserID:   userID,
		RoomID:   roomID,
		CheckIn:  in,
		CheckOut: out,
		Adults:   2,
		Status:   status,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return booking
}

func assertErrCode(t *testing.T, err error, want apperrors.ErrorCode) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with code %s, got nil", want)
	}
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != want {
		t.Errorf("expected error code %s, got %s (%s)", want, appErr.Code, appErr.Message)
	}
}

func TestCreateBookingComputesPriceAndPayment(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	booking, err := svc.CreateBooking(dto.CreateBookingRequest{
		RoomID:   room.ID,
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-13",
		Adults:   2,
	}, user.ID)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if booking.TotalPrice != 300000 {
		t.Errorf("expected total price 300000 for 3 nights, got %d", booking.TotalPrice)
	}
	if booking.Status != constants.BookingStatusPending {
		t.Errorf("expected status PENDING, got %s", booking.Status)
	}

	var payment models.Payment
	if err := db.First(&payment, "booking_id = ?", booking.ID).Error; err != nil {
		t.Fatalf("payment row not created: %v", err)
	}
	if payment.Amount != booking.TotalPrice {
		t.Errorf("payment amount %d does not match booking total %d", payment.Amount, booking.TotalPrice)
	}
	if payment.Status != constants.PaymentStatusPending {
		t.Errorf("expected payment status PENDING, got %s", payment.Status)
	}
	if payment.MerchantUID == "" {
		t.Error("expected merchant uid to be generated")
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	seedBooking(t, db, room.ID, user.ID, "2026-09-10", "2026-09-13", constants.BookingStatusConfirmed)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	_, err := svc.CreateBooking(dto.CreateBookingRequest{
		RoomID:   room.ID,
		CheckIn:  "2026-09-12",
		CheckOut: "2026-09-14",
		Adults:   1,
	}, user.ID)
	assertErrCode(t, err, apperrors.ErrCodeConflict)
}

func TestCreateBookingAllowsBackToBack(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	seedBooking(t, db, room.ID, user.ID, "2026-09-10", "2026-09-13", constants.BookingStatusConfirmed)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	// check-in đúng ngày check-out của booking trước: không xung đột
	if _, err := svc.CreateBooking(dto.CreateBookingRequest{
		RoomID:   room.ID,
		CheckIn:  "2026-09-13",
		CheckOut: "2026-09-15",
		Adults:   1,
	}, user.ID); err != nil {
		t.Fatalf("back-to-back booking should succeed, got %v", err)
	}
}

func TestCreateBookingPendingDoesNotBlock(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	seedBooking(t, db, room.ID, user.ID, "2026-09-10", "2026-09-13", constants.BookingStatusPending)
	seedBooking(t, db, room.ID, user.ID, "2026-09-10", "2026-09-13", constants.BookingStatusCancelled)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	if _, err := svc.CreateBooking(dto.CreateBookingRequest{
		RoomID:   room.ID,
		CheckIn:  "2026-09-11",
		CheckOut: "2026-09-12",
		Adults:   1,
	}, user.ID); err != nil {
		t.Fatalf("PENDING/CANCELLED bookings must not block, got %v", err)
	}
}

func TestCreateBookingRejectsZeroNights(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	_, err := svc.CreateBooking(dto.CreateBookingRequest{
		RoomID:   room.ID,
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-10",
		Adults:   1,
	}, user.ID)
	assertErrCode(t, err, apperrors.ErrCodeValidation)
}

func TestCreateBookingRejectsOverCapacity(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	_, err := svc.CreateBooking(dto.CreateBookingRequest{
		RoomID:   room.ID,
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
		Adults:   3,
	}, user.ID)
	assertErrCode(t, err, apperrors.ErrCodeInvalidState)
}

func TestCreateBookingRejectsUnavailableRoom(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusMaintenance)
	user := seedUser(t, db)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	_, err := svc.CreateBooking(dto.CreateBookingRequest{
		RoomID:   room.ID,
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
		Adults:   1,
	}, user.ID)
	assertErrCode(t, err, apperrors.ErrCodeInvalidState)
}

func TestCancelBookingOnlyByOwner(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	owner := seedUser(t, db)
	other := seedUser(t, db)
	booking := seedBooking(t, db, room.ID, owner.ID, "2026-09-10", "2026-09-12", constants.BookingStatusPending)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	_, err := svc.CancelBooking(booking.ID, other.ID)
	assertErrCode(t, err, apperrors.ErrCodeForbidden)

	cancelled, err := svc.CancelBooking(booking.ID, owner.ID)
	if err != nil {
		t.Fatalf("owner cancel failed: %v", err)
	}
	if cancelled.Status != constants.BookingStatusCancelled {
		t.Errorf("expected CANCELLED, got %s", cancelled.Status)
	}
}

func TestCancelBookingRejectsAfterCheckIn(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	booking := seedBooking(t, db, room.ID, user.ID, "2026-09-10", "2026-09-12", constants.BookingStatusCheckedIn)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	_, err := svc.CancelBooking(booking.ID, user.ID)
	assertErrCode(t, err, apperrors.ErrCodeInvalidState)
}

func TestChangeBookingStatusRejectsUnknownValue(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	booking := seedBooking(t, db, room.ID, user.ID, "2026-09-10", "2026-09-12", constants.BookingStatusPending)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	_, err := svc.ChangeBookingStatus(booking.ID, "UNKNOWN")
	assertErrCode(t, err, apperrors.ErrCodeValidation)

	updated, err := svc.ChangeBookingStatus(booking.ID, constants.BookingStatusCheckedOut)
	if err != nil {
		t.Fatalf("ChangeBookingStatus failed: %v", err)
	}
	if updated.Status != constants.BookingStatusCheckedOut {
		t.Errorf("expected CHECKED_OUT, got %s", updated.Status)
	}
}

func TestExpireStalePendingBookings(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	svc := NewBookingService(BookingServiceOptions{DB: db})

	stale := seedBooking(t, db, room.ID, user.ID, "2026-09-10", "2026-09-12", constants.BookingStatusPending)
	db.Model(stale).Update("created_at", time.Now().Add(-2*StalePendingAge))

	fresh := seedBooking(t, db, room.ID, user.ID, "2026-09-20", "2026-09-22", constants.BookingStatusPending)
	confirmed := seedBooking(t, db, room.ID, user.ID, "2026-10-01", "2026-10-03", constants.BookingStatusConfirmed)
	db.Model(confirmed).Update("created_at", time.Now().Add(-2*StalePendingAge))

	n, err := svc.ExpireStalePendingBookings()
	if err != nil {
		t.Fatalf("ExpireStalePendingBookings failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 expired booking, got %d", n)
	}

	var check models.Booking
	db.First(&check, stale.ID)
	if check.Status != constants.BookingStatusCancelled {
		t.Errorf("stale booking should be CANCELLED, got %s", check.Status)
	}
	db.First(&check, fresh.ID)
	if check.Status != constants.BookingStatusPending {
		t.Errorf("fresh booking should stay PENDING, got %s", check.Status)
	}
	db.First(&check, confirmed.ID)
	if check.Status != constants.BookingStatusConfirmed {
		t.Errorf("confirmed booking should stay CONFIRMED, got %s", check.Status)
	}
}

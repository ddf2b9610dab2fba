package services

import (
	"context"
	"errors"
	"testing"

	"staynest/constants"
	"staynest/dto"
	apperrors "staynest/errors"
	"staynest/models"
)

type fakeVerifier struct {
	err    error
	called int
}

func (f *fakeVerifier) Verify(ctx context.Context, impUID string, amount int) error {
	f.called++
	return f.err
}

func TestConfirmPaymentSuccess(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	bookingSvc := NewBookingService(BookingServiceOptions{DB: db})

	booking, err := bookingSvc.CreateBooking(dto.CreateBookingRequest{
		RoomID:   room.ID,
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
		Adults:   2,
	}, user.ID)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	verifier := &fakeVerifier{}
	svc := NewPaymentService(PaymentServiceOptions{DB: db, Verifier: verifier})

	if err := svc.ConfirmPayment(context.Background(), booking.ID, "imp_123", "order_abc", user.ID); err != nil {
		t.Fatalf("ConfirmPayment failed: %v", err)
	}
	if verifier.called != 1 {
		t.Errorf("expected verifier called once, got %d", verifier.called)
	}

	var payment models.Payment
	db.First(&payment, "booking_id = ?", booking.ID)
	if payment.Status != constants.PaymentStatusPaid {
		t.Errorf("expected payment PAID, got %s", payment.Status)
	}
	if payment.ImpUID != "imp_123" {
		t.Errorf("expected imp uid recorded, got %q", payment.ImpUID)
	}
	if payment.PaidAt == nil {
		t.Error("expected paid_at to be set")
	}

	var updated models.Booking
	db.First(&updated, booking.ID)
	if updated.Status != constants.BookingStatusConfirmed {
		t.Errorf("expected booking CONFIRMED, got %s", updated.Status)
	}
}

func TestConfirmPaymentVerifierFailureLeavesStateUntouched(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	bookingSvc := NewBookingService(BookingServiceOptions{DB: db})

	booking, err := bookingSvc.CreateBooking(dto.CreateBookingRequest{
		RoomID:   room.ID,
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
		Adults:   2,
	}, user.ID)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	verifier := &fakeVerifier{err: errors.New("amount mismatch")}
	svc := NewPaymentService(PaymentServiceOptions{DB: db, Verifier: verifier})

	err = svc.ConfirmPayment(context.Background(), booking.ID, "imp_123", "order_abc", user.ID)
	assertErrCode(t, err, apperrors.ErrCodeExternalService)

	var payment models.Payment
	db.First(&payment, "booking_id = ?", booking.ID)
	if payment.Status != constants.PaymentStatusPending {
		t.Errorf("payment must stay PENDING after failed verification, got %s", payment.Status)
	}

	var updated models.Booking
	db.First(&updated, booking.ID)
	if updated.Status != constants.BookingStatusPending {
		t.Errorf("booking must stay PENDING after failed verification, got %s", updated.Status)
	}
}

func TestConfirmPaymentRejectsNonOwner(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	owner := seedUser(t, db)
	other := seedUser(t, db)
	bookingSvc := NewBookingService(BookingServiceOptions{DB: db})

	booking, err := bookingSvc.CreateBooking(dto.CreateBookingRequest{
		RoomID:   room.ID,
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
		Adults:   2,
	}, owner.ID)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	verifier := &fakeVerifier{}
	svc := NewPaymentService(PaymentServiceOptions{DB: db, Verifier: verifier})

	err = svc.ConfirmPayment(context.Background(), booking.ID, "imp_123", "order_abc", other.ID)
	assertErrCode(t, err, apperrors.ErrCodeForbidden)
	if verifier.called != 0 {
		t.Errorf("verifier must not be called for non-owner, got %d calls", verifier.called)
	}
}

func TestConfirmPaymentRejectsDoubleConfirm(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	bookingSvc := NewBookingService(BookingServiceOptions{DB: db})

	booking, err := bookingSvc.CreateBooking(dto.CreateBookingRequest{
		RoomID:   room.ID,
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
		Adults:   2,
	}, user.ID)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	svc := NewPaymentService(PaymentServiceOptions{DB: db, Verifier: &fakeVerifier{}})
	if err := svc.ConfirmPayment(context.Background(), booking.ID, "imp_123", "order_abc", user.ID); err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}

	err = svc.ConfirmPayment(context.Background(), booking.ID, "imp_456", "order_def", user.ID)
	assertErrCode(t, err, apperrors.ErrCodeConflict)
}

func TestConfirmPaymentUnknownBooking(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	svc := NewPaymentService(PaymentServiceOptions{DB: db, Verifier: &fakeVerifier{}})

	err := svc.ConfirmPayment(context.Background(), 9999, "imp_123", "order_abc", user.ID)
	assertErrCode(t, err, apperrors.ErrCodeNotFound)
}

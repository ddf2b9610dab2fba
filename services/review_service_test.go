package services

import (
	"testing"

	"staynest/constants"
	"staynest/dto"
	apperrors "staynest/errors"
)

func TestSubmitReviewRequiresCheckedOut(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	booking := seedBooking(t, db, room.ID, user.ID, "2026-09-10", "2026-09-12", constants.BookingStatusConfirmed)
	svc := NewReviewService(db)

	req := dto.CreateReviewRequest{Rating: 5, Content: "정말 좋은 호텔이었습니다!"}

	_, err := svc.SubmitReview(booking.ID, user.ID, req)
	assertErrCode(t, err, apperrors.ErrCodeInvalidState)

	db.Model(booking).Update("status", constants.BookingStatusCheckedOut)

	review, err := svc.SubmitReview(booking.ID, user.ID, req)
	if err != nil {
		t.Fatalf("SubmitReview failed after check-out: %v", err)
	}
	if review.RoomID != room.ID {
		t.Errorf("review room id %d, want %d", review.RoomID, room.ID)
	}
}

func TestSubmitReviewRejectsNonOwner(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	owner := seedUser(t, db)
	other := seedUser(t, db)
	booking := seedBooking(t, db, room.ID, owner.ID, "2026-09-10", "2026-09-12", constants.BookingStatusCheckedOut)
	svc := NewReviewService(db)

	_, err := svc.SubmitReview(booking.ID, other.ID, dto.CreateReviewRequest{Rating: 4, Content: "조용하고 깨끗했습니다."})
	assertErrCode(t, err, apperrors.ErrCodeForbidden)
}

func TestSubmitReviewRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	booking := seedBooking(t, db, room.ID, user.ID, "2026-09-10", "2026-09-12", constants.BookingStatusCheckedOut)
	svc := NewReviewService(db)

	req := dto.CreateReviewRequest{Rating: 5, Content: "직원분들이 친절했습니다."}
	if _, err := svc.SubmitReview(booking.ID, user.ID, req); err != nil {
		t.Fatalf("first review failed: %v", err)
	}

	_, err := svc.SubmitReview(booking.ID, user.ID, req)
	assertErrCode(t, err, apperrors.ErrCodeConflict)
}

func TestSubmitReviewValidatesInput(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, constants.RoomStatusAvailable)
	user := seedUser(t, db)
	booking := seedBooking(t, db, room.ID, user.ID, "2026-09-10", "2026-09-12", constants.BookingStatusCheckedOut)
	svc := NewReviewService(db)

	_, err := svc.SubmitReview(booking.ID, user.ID, dto.CreateReviewRequest{Rating: 6, Content: "별점이 범위를 벗어났습니다."})
	assertErrCode(t, err, apperrors.ErrCodeValidation)

	// 한글 9자: rune 기준으로 최소 길이에 못 미침
	_, err = svc.SubmitReview(booking.ID, user.ID, dto.CreateReviewRequest{Rating: 5, Content: "좋아요좋아요좋아요"})
	assertErrCode(t, err, apperrors.ErrCodeValidation)
}

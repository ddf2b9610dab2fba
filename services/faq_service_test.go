package services

import (
	"context"
	"testing"

	"staynest/dto"
	apperrors "staynest/errors"
)

func TestFAQCreateRequiresQuestionAndAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := NewFAQService(FAQServiceOptions{DB: db})

	_, err := svc.CreateFAQ(context.Background(), dto.FAQRequest{Question: " ", Answer: "답변"})
	assertErrCode(t, err, apperrors.ErrCodeRequiredField)

	faq, err := svc.CreateFAQ(context.Background(), dto.FAQRequest{Question: "체크인 시간", Answer: "오후 3시부터입니다."})
	if err != nil {
		t.Fatalf("CreateFAQ failed: %v", err)
	}
	if !faq.IsActive {
		t.Error("new FAQ should default to active")
	}
}

func TestFAQListKeepsInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewFAQService(FAQServiceOptions{DB: db})

	for _, q := range []string{"첫 번째 질문", "두 번째 질문", "세 번째 질문"} {
		if _, err := svc.CreateFAQ(context.Background(), dto.FAQRequest{Question: q, Answer: "답변입니다"}); err != nil {
			t.Fatalf("CreateFAQ failed: %v", err)
		}
	}

	inactive := false
	if _, err := svc.CreateFAQ(context.Background(), dto.FAQRequest{Question: "숨긴 질문", Answer: "답변입니다", IsActive: &inactive}); err != nil {
		t.Fatalf("CreateFAQ failed: %v", err)
	}

	active, err := svc.ListFAQs(false)
	if err != nil {
		t.Fatalf("ListFAQs failed: %v", err)
	}
	if len(active) != 3 {
		t.Fatalf("expected 3 active FAQs, got %d", len(active))
	}
	if active[0].Question != "첫 번째 질문" || active[2].Question != "세 번째 질문" {
		t.Error("active FAQs out of insertion order")
	}

	all, err := svc.ListFAQs(true)
	if err != nil {
		t.Fatalf("ListFAQs failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 FAQs including inactive, got %d", len(all))
	}
}

func TestFAQUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewFAQService(FAQServiceOptions{DB: db})

	faq, err := svc.CreateFAQ(context.Background(), dto.FAQRequest{Question: "조식 시간", Answer: "오전 7시부터입니다."})
	if err != nil {
		t.Fatalf("CreateFAQ failed: %v", err)
	}

	inactive := false
	updated, err := svc.UpdateFAQ(context.Background(), faq.ID, dto.FAQRequest{
		Question: "조식 시간 안내",
		Answer:   "오전 7시부터 10시까지입니다.",
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("UpdateFAQ failed: %v", err)
	}
	if updated.IsActive {
		t.Error("expected FAQ to be deactivated")
	}

	if err := svc.DeleteFAQ(context.Background(), faq.ID); err != nil {
		t.Fatalf("DeleteFAQ failed: %v", err)
	}
	err = svc.DeleteFAQ(context.Background(), faq.ID)
	assertErrCode(t, err, apperrors.ErrCodeNotFound)

	_, err = svc.UpdateFAQ(context.Background(), faq.ID, dto.FAQRequest{Question: "q", Answer: "a"})
	assertErrCode(t, err, apperrors.ErrCodeNotFound)
}

func TestSimilarityScore(t *testing.T) {
	if got := similarityScore("check-in time", "check-in time"); got != 1 {
		t.Errorf("identical strings should score 1, got %f", got)
	}
	if got := similarityScore("abcd", "wxyz"); got != 0 {
		t.Errorf("fully different strings should score 0, got %f", got)
	}
	mid := similarityScore("check-in time", "check-out time")
	if mid <= 0 || mid >= 1 {
		t.Errorf("similar strings should score between 0 and 1, got %f", mid)
	}
}

func TestSuggestSimilarRanksCloseQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := NewFAQService(FAQServiceOptions{DB: db})

	questions := []string{"Check-in time", "Parking information", "Breakfast hours"}
	for _, q := range questions {
		if _, err := svc.CreateFAQ(context.Background(), dto.FAQRequest{Question: q, Answer: "answer"}); err != nil {
			t.Fatalf("CreateFAQ failed: %v", err)
		}
	}

	suggestions, err := svc.SuggestSimilar("check in time", 3)
	if err != nil {
		t.Fatalf("SuggestSimilar failed: %v", err)
	}
	if len(suggestions) == 0 {
		t.Fatal("expected at least one suggestion")
	}
	if suggestions[0].Question != "Check-in time" {
		t.Errorf("expected closest question first, got %q", suggestions[0].Question)
	}
}

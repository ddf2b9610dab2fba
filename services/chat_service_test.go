package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"staynest/constants"
	apperrors "staynest/errors"
	"staynest/models"
)

type fakeGenerator struct {
	reply   string
	err     error
	calls   int
	history []models.ChatMessage
}

func (f *fakeGenerator) Generate(ctx context.Context, systemPrompt string, history []models.ChatMessage) (string, error) {
	f.calls++
	f.history = history
	return f.reply, f.err
}

func TestResolveEmptyMessageWritesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupportService(SupportServiceOptions{DB: db})

	_, _, err := svc.Resolve(context.Background(), "   ", "")
	assertErrCode(t, err, apperrors.ErrCodeValidation)

	var messages int64
	db.Model(&models.ChatMessage{}).Count(&messages)
	if messages != 0 {
		t.Errorf("empty message must not be persisted, found %d rows", messages)
	}
	var sessions int64
	db.Model(&models.ChatSession{}).Count(&sessions)
	if sessions != 0 {
		t.Errorf("empty message must not create a session, found %d rows", sessions)
	}
}

func TestResolveFAQMatchSkipsGenerator(t *testing.T) {
	db := newTestDB(t)
	db.Create(&models.FAQEntry{Question: "체크인 시간", Answer: "오후 3시부터입니다.", IsActive: true})

	gen := &fakeGenerator{reply: "GPT 답변"}
	svc := NewSupportService(SupportServiceOptions{DB: db, Generator: gen})

	answer, sessionID, err := svc.Resolve(context.Background(), "체크인 시간이 언제인가요", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if answer != "오후 3시부터입니다." {
		t.Errorf("expected FAQ answer, got %q", answer)
	}
	if sessionID == "" {
		t.Error("expected a session id")
	}
	if gen.calls != 0 {
		t.Errorf("generator must not run when an FAQ matches, got %d calls", gen.calls)
	}
}

func TestResolveIgnoresInactiveFAQ(t *testing.T) {
	db := newTestDB(t)
	db.Create(&models.FAQEntry{Question: "체크인 시간", Answer: "오후 3시부터입니다.", IsActive: false})

	svc := NewSupportService(SupportServiceOptions{DB: db})

	answer, _, err := svc.Resolve(context.Background(), "체크인 시간", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if answer == "오후 3시부터입니다." {
		t.Error("inactive FAQ must not match")
	}
	// rơi xuống nhóm từ khóa 체크인
	if !strings.Contains(answer, "체크인은 오후 3시부터") {
		t.Errorf("expected check-in keyword answer, got %q", answer)
	}
}

func TestResolveFAQPrefixHeuristic(t *testing.T) {
	db := newTestDB(t)
	db.Create(&models.FAQEntry{Question: "수영장은 몇 층에 있나요 이용 안내", Answer: "수영장은 5층에 있습니다.", IsActive: true})

	svc := NewSupportService(SupportServiceOptions{DB: db})

	// tin nhắn chứa 10 ký tự đầu của câu hỏi
	answer, _, err := svc.Resolve(context.Background(), "수영장은 몇 층에 있는지 궁금해요", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if answer != "수영장은 5층에 있습니다." {
		t.Errorf("expected prefix-matched FAQ answer, got %q", answer)
	}
}

func TestResolveFirstFAQWins(t *testing.T) {
	db := newTestDB(t)
	db.Create(&models.FAQEntry{Question: "조식 안내", Answer: "첫 번째 답변", IsActive: true})
	db.Create(&models.FAQEntry{Question: "조식 안내 시간", Answer: "두 번째 답변", IsActive: true})

	svc := NewSupportService(SupportServiceOptions{DB: db})

	answer, _, err := svc.Resolve(context.Background(), "조식 안내", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if answer != "첫 번째 답변" {
		t.Errorf("expected first matching FAQ to win, got %q", answer)
	}
}

func TestResolveKeywordBuckets(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupportService(SupportServiceOptions{DB: db})

	answer, _, err := svc.Resolve(context.Background(), "주차 가능한가요?", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !strings.Contains(answer, "주차장") {
		t.Errorf("expected parking answer, got %q", answer)
	}

	answer, _, err = svc.Resolve(context.Background(), "외계인 출입이 되나요?", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !strings.HasPrefix(answer, defaultGreeting) {
		t.Errorf("expected default answer with greeting prefix, got %q", answer)
	}
}

func TestResolveWritesTranscriptPerTurn(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupportService(SupportServiceOptions{DB: db})

	_, sessionID, err := svc.Resolve(context.Background(), "예약 방법 알려주세요", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	var messages []models.ChatMessage
	db.Where("session_id = ?", sessionID).Order("id asc").Find(&messages)
	if len(messages) != 2 {
		t.Fatalf("expected 2 transcript rows, got %d", len(messages))
	}
	if messages[0].Role != constants.ChatRoleUser || messages[1].Role != constants.ChatRoleAssistant {
		t.Errorf("unexpected roles: %s, %s", messages[0].Role, messages[1].Role)
	}

	// lượt thứ hai dùng lại session
	_, again, err := svc.Resolve(context.Background(), "취소는 어떻게 하나요", sessionID)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if again != sessionID {
		t.Errorf("expected session %s to be reused, got %s", sessionID, again)
	}

	var count int64
	db.Model(&models.ChatMessage{}).Where("session_id = ?", sessionID).Count(&count)
	if count != 4 {
		t.Errorf("expected 4 transcript rows after two turns, got %d", count)
	}
}

func TestResolveUnknownSessionGetsNewOne(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupportService(SupportServiceOptions{DB: db})

	_, sessionID, err := svc.Resolve(context.Background(), "안녕하세요", "does-not-exist")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sessionID == "" || sessionID == "does-not-exist" {
		t.Errorf("expected a fresh session id, got %q", sessionID)
	}
}

func TestResolveGeneratorReplacesCannedAnswer(t *testing.T) {
	db := newTestDB(t)
	gen := &fakeGenerator{reply: "맞춤 답변입니다."}
	svc := NewSupportService(SupportServiceOptions{DB: db, Generator: gen})

	answer, sessionID, err := svc.Resolve(context.Background(), "늦은 체크아웃 비용이 궁금해요", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if answer != "맞춤 답변입니다." {
		t.Errorf("expected generated answer, got %q", answer)
	}
	if gen.calls != 1 {
		t.Fatalf("expected generator called once, got %d", gen.calls)
	}
	if len(gen.history) == 0 || gen.history[len(gen.history)-1].Role != constants.ChatRoleUser {
		t.Error("generator history must end with the current user message")
	}

	var last models.ChatMessage
	db.Where("session_id = ? AND role = ?", sessionID, constants.ChatRoleAssistant).Order("id desc").First(&last)
	if last.Content != "맞춤 답변입니다." {
		t.Errorf("assistant transcript row %q, want generated answer", last.Content)
	}
}

func TestResolveGeneratorFailureKeepsCannedAnswer(t *testing.T) {
	db := newTestDB(t)
	gen := &fakeGenerator{err: errors.New("rate limited")}
	svc := NewSupportService(SupportServiceOptions{DB: db, Generator: gen})

	answer, _, err := svc.Resolve(context.Background(), "늦은 체크아웃 비용이 궁금해요", "")
	if err != nil {
		t.Fatalf("generator failure must not surface: %v", err)
	}
	if !strings.HasPrefix(answer, defaultGreeting) {
		t.Errorf("expected canned fallback answer, got %q", answer)
	}
}

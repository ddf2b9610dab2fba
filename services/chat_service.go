package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"staynest/constants"
	apperrors "staynest/errors"
	"staynest/models"
	"staynest/services/logger"
)

const (
	faqCacheKey      = "faq:active"
	settingsCacheKey = "chatbot:settings"
	cacheTTL         = 10 * time.Minute

	// transcriptWindow là số tin nhắn gần nhất gửi kèm khi gọi GPT
	transcriptWindow = 10

	defaultGreeting     = "안녕하세요! StayNest 호텔입니다."
	defaultSystemPrompt = "당신은 StayNest 호텔의 AI 컨시어지입니다. 친절하고 전문적으로 고객의 질문에 답변해주세요."
)

// Generator là collaborator sinh câu trả lời (GPT). Lỗi của nó không bao giờ
// đẩy ra ngoài: resolver luôn giữ câu trả lời canned làm phương án dự phòng.
type Generator interface {
	Generate(ctx context.Context, systemPrompt string, history []models.ChatMessage) (string, error)
}

type SupportService struct {
	db        *gorm.DB
	rdb       *redis.Client
	generator Generator
	logger    logger.Logger
}

type SupportServiceOptions struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Generator Generator
	Logger    logger.Logger
}

func NewSupportService(opts SupportServiceOptions) *SupportService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &SupportService{
		db:        opts.DB,
		rdb:       opts.Redis,
		generator: opts.Generator,
		logger:    opts.Logger,
	}
}

// Resolve xử lý một tin nhắn của khách: FAQ -> keyword bucket -> GPT.
// Mỗi lần gọi thành công ghi đúng hai dòng transcript (user + assistant)
// và trả về câu trả lời cùng sessionId để client gửi lại lượt sau.
func (s *SupportService) Resolve(ctx context.Context, message, sessionID string) (string, string, error) {
	if strings.TrimSpace(message) == "" {
		return "", "", apperrors.NewAppError(apperrors.ErrCodeValidation, "메시지를 입력해주세요.", nil)
	}

	session, err := s.resolveSession(sessionID)
	if err != nil {
		return "", "", err
	}

	if err := s.appendMessage(session.ID, constants.ChatRoleUser, message); err != nil {
		return "", "", err
	}

	lowerMessage := strings.ToLower(message)

	matched := s.matchFAQ(ctx, lowerMessage)

	var answer string
	if matched != nil {
		answer = matched.Answer
	} else {
		settings := s.getSettings(ctx)
		greeting := settings.Greeting
		if greeting == "" {
			greeting = defaultGreeting
		}

		answer = cannedAnswer(lowerMessage, greeting)

		// GPT chỉ chạy khi không có FAQ khớp; thất bại thì giữ nguyên
		// câu trả lời canned, không bao giờ lộ lỗi ra phía khách.
		if s.generator != nil {
			systemPrompt := settings.SystemPrompt
			if systemPrompt == "" {
				systemPrompt = defaultSystemPrompt
			}

			history, histErr := s.recentTranscript(session.ID)
			if histErr != nil {
				s.logger.Error("chat: load transcript failed: %v", histErr)
			} else if generated, genErr := s.generator.Generate(ctx, systemPrompt, history); genErr != nil {
				s.logger.Error("chat: generator failed, keeping canned answer: %v", genErr)
			} else if generated != "" {
				answer = generated
			}
		}
	}

	if err := s.appendMessage(session.ID, constants.ChatRoleAssistant, answer); err != nil {
		return "", "", err
	}

	return answer, session.ID, nil
}

// resolveSession tìm session theo id, tạo mới nếu không có hoặc không tồn tại
func (s *SupportService) resolveSession(sessionID string) (*models.ChatSession, error) {
	if sessionID != "" {
		var session models.ChatSession
		if err := s.db.First(&session, "id = ?", sessionID).Error; err == nil {
			return &session, nil
		}
	}

	session := &models.ChatSession{ID: uuid.NewString()}
	if err := s.db.Create(session).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "챗봇 응답 중 오류가 발생했습니다.", err)
	}
	return session, nil
}

func (s *SupportService) appendMessage(sessionID, role, content string) error {
	msg := &models.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	}
	if err := s.db.Create(msg).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "챗봇 응답 중 오류가 발생했습니다.", err)
	}
	return nil
}

// matchFAQ chạy heuristic substring hai chiều trên các FAQ đang active,
// theo thứ tự lưu trữ; entry khớp đầu tiên thắng. Heuristic giữ nguyên
// hành vi cũ: câu hỏi chứa tin nhắn, hoặc tin nhắn chứa 10 ký tự đầu
// của câu hỏi.
func (s *SupportService) matchFAQ(ctx context.Context, lowerMessage string) *models.FAQEntry {
	faqs := s.activeFAQs(ctx)
	for i := range faqs {
		lowerQuestion := strings.ToLower(faqs[i].Question)
		if strings.Contains(lowerQuestion, lowerMessage) ||
			strings.Contains(lowerMessage, firstRunes(lowerQuestion, 10)) {
			return &faqs[i]
		}
	}
	return nil
}

func (s *SupportService) activeFAQs(ctx context.Context) []models.FAQEntry {
	var faqs []models.FAQEntry

	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, faqCacheKey, &faqs); err == nil && len(faqs) > 0 {
			return faqs
		}
	}

	if err := s.db.Where("is_active = ?", true).Order("id asc").Find(&faqs).Error; err != nil {
		s.logger.Error("chat: load FAQ entries failed: %v", err)
		return nil
	}

	if s.rdb != nil && len(faqs) > 0 {
		if err := SetToRedis(ctx, s.rdb, faqCacheKey, faqs, cacheTTL); err != nil {
			s.logger.Error("chat: cache FAQ entries failed: %v", err)
		}
	}
	return faqs
}

func (s *SupportService) getSettings(ctx context.Context) models.ChatbotSettings {
	var settings models.ChatbotSettings

	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, settingsCacheKey, &settings); err == nil && settings.ID != 0 {
			return settings
		}
	}

	if err := s.db.First(&settings).Error; err != nil {
		return models.ChatbotSettings{}
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, settingsCacheKey, settings, cacheTTL); err != nil {
			s.logger.Error("chat: cache settings failed: %v", err)
		}
	}
	return settings
}

// recentTranscript lấy các tin nhắn gần nhất theo thứ tự thời gian tăng dần
func (s *SupportService) recentTranscript(sessionID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := s.db.Where("session_id = ?", sessionID).
		Order("created_at desc, id desc").
		Limit(transcriptWindow).
		Find(&messages).Error; err != nil {
		return nil, err
	}

	// đảo lại thành thứ tự tăng dần
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// cannedAnswer đánh giá lần lượt các nhóm từ khóa, nhóm khớp đầu tiên thắng
func cannedAnswer(lowerMessage, greeting string) string {
	switch {
	case containsAny(lowerMessage, "안녕", "hello"):
		return greeting
	case containsAny(lowerMessage, "예약", "booking"):
		return "예약은 객실 상세 페이지에서 원하시는 날짜와 인원을 선택하여 진행하실 수 있습니다. 더 도움이 필요하시면 말씀해주세요!"
	case containsAny(lowerMessage, "취소", "cancel"):
		return "예약 취소는 마이페이지 > 예약 내역에서 가능합니다. 체크인 3일 전까지 무료 취소가 가능하며, 이후에는 취소 수수료가 발생할 수 있습니다."
	case containsAny(lowerMessage, "체크인", "check-in"):
		return "체크인은 오후 3시부터 가능하며, 체크아웃은 오전 11시까지입니다. 얼리 체크인이나 레이트 체크아웃을 원하시면 미리 문의해주세요."
	case containsAny(lowerMessage, "주차", "parking"):
		return "투숙객 전용 주차장을 운영하고 있으며, 1박당 무료 주차가 제공됩니다. 발렛 파킹 서비스도 이용 가능합니다."
	case containsAny(lowerMessage, "조식", "breakfast"):
		return "조식은 오전 7시부터 10시까지 1층 레스토랑에서 제공됩니다. 한식, 양식 뷔페를 즐기실 수 있으며, 투숙객 할인이 적용됩니다."
	case containsAny(lowerMessage, "가격", "price", "요금"):
		return "객실 요금은 등급과 시즌에 따라 다릅니다. 스탠다드룸은 1박 10만원~, 스위트룸은 1박 45만원~입니다. 자세한 가격은 객실 페이지에서 확인해주세요."
	default:
		return greeting + " 문의하신 내용을 확인하고 있습니다. 구체적인 질문을 해주시면 더 정확한 답변을 드릴 수 있습니다. 예약, 체크인/아웃, 시설, 가격 등에 대해 물어보세요!"
	}
}

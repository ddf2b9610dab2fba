package services

import (
	"context"
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	"staynest/dto"
	apperrors "staynest/errors"
	"staynest/models"
	"staynest/services/logger"
)

type FAQService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type FAQServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewFAQService(opts FAQServiceOptions) *FAQService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &FAQService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

// invalidateCache xóa cache FAQ sau mỗi lần thay đổi để resolver
// không trả lời theo danh sách cũ
func (s *FAQService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, faqCacheKey); err != nil {
		s.logger.Error("faq: invalidate cache failed: %v", err)
	}
}

// ListFAQs trả về FAQ theo thứ tự lưu trữ; admin xem cả entry đã tắt
func (s *FAQService) ListFAQs(includeInactive bool) ([]models.FAQEntry, error) {
	tx := s.db.Order("id asc")
	if !includeInactive {
		tx = tx.Where("is_active = ?", true)
	}

	var faqs []models.FAQEntry
	if err := tx.Find(&faqs).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}
	return faqs, nil
}

func (s *FAQService) CreateFAQ(ctx context.Context, req dto.FAQRequest) (*models.FAQEntry, error) {
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "질문과 답변을 모두 입력해주세요.", nil)
	}

	faq := &models.FAQEntry{
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		IsActive:  true,
		SortOrder: req.SortOrder,
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}

	if err := s.db.Create(faq).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "FAQ 등록 중 오류가 발생했습니다.", err)
	}

	s.invalidateCache(ctx)
	return faq, nil
}

func (s *FAQService) UpdateFAQ(ctx context.Context, id uint, req dto.FAQRequest) (*models.FAQEntry, error) {
	var faq models.FAQEntry
	if err := s.db.First(&faq, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "FAQ를 찾을 수 없습니다.", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	faq.Question = req.Question
	faq.Answer = req.Answer
	faq.Category = req.Category
	faq.SortOrder = req.SortOrder
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}

	if err := s.db.Save(&faq).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "FAQ 수정 중 오류가 발생했습니다.", err)
	}

	s.invalidateCache(ctx)
	return &faq, nil
}

func (s *FAQService) DeleteFAQ(ctx context.Context, id uint) error {
	result := s.db.Delete(&models.FAQEntry{}, id)
	if result.Error != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "FAQ 삭제 중 오류가 발생했습니다.", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "FAQ를 찾을 수 없습니다.", nil)
	}

	s.invalidateCache(ctx)
	return nil
}

// normalizeQuestion chuẩn hóa unicode, bỏ dấu và lowercase để so khớp mờ
func normalizeQuestion(q string) string {
	normalized := norm.NFC.String(q)
	normalized = unidecode.Unidecode(normalized)
	return strings.ToLower(strings.TrimSpace(normalized))
}

func similarityScore(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 0
	}
	dist := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	return 1 - float64(dist)/float64(maxLen)
}

// SuggestSimilar tìm các FAQ có câu hỏi gần giống để admin tránh tạo trùng.
// Ứng viên được chọn bằng bag-of-words rồi chấm điểm lại bằng levenshtein.
func (s *FAQService) SuggestSimilar(question string, limit int) ([]dto.FAQSuggestion, error) {
	if limit <= 0 {
		limit = 5
	}

	var faqs []models.FAQEntry
	if err := s.db.Find(&faqs).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}
	if len(faqs) == 0 {
		return []dto.FAQSuggestion{}, nil
	}

	normalized := normalizeQuestion(question)

	byNormalized := make(map[string]*models.FAQEntry, len(faqs))
	keys := make([]string, 0, len(faqs))
	for i := range faqs {
		key := normalizeQuestion(faqs[i].Question)
		if _, dup := byNormalized[key]; dup {
			continue
		}
		byNormalized[key] = &faqs[i]
		keys = append(keys, key)
	}

	cm := closestmatch.New(keys, []int{2, 3})
	candidates := cm.ClosestN(normalized, limit*2)

	suggestions := make([]dto.FAQSuggestion, 0, len(candidates))
	for _, key := range candidates {
		entry, ok := byNormalized[key]
		if !ok {
			continue
		}
		score := similarityScore(normalized, key)
		if score <= 0 {
			continue
		}
		suggestions = append(suggestions, dto.FAQSuggestion{
			ID:         entry.ID,
			Question:   entry.Question,
			Similarity: score,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Similarity > suggestions[j].Similarity
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// GetChatbotSettings trả về cấu hình chatbot, tạo bản ghi mặc định nếu chưa có
func (s *FAQService) GetChatbotSettings(ctx context.Context) (*models.ChatbotSettings, error) {
	var settings models.ChatbotSettings
	err := s.db.First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = models.ChatbotSettings{
			Greeting:     defaultGreeting,
			SystemPrompt: defaultSystemPrompt,
		}
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}
	return &settings, nil
}

// UpdateChatbotSettings cập nhật tone/greeting/system prompt và xóa cache
func (s *FAQService) UpdateChatbotSettings(ctx context.Context, req dto.ChatbotSettingsRequest) (*models.ChatbotSettings, error) {
	settings, err := s.GetChatbotSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.ToneManner = req.ToneManner
	settings.Greeting = req.Greeting
	settings.SystemPrompt = req.SystemPrompt

	if err := s.db.Save(settings).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "챗봇 설정 저장 중 오류가 발생했습니다.", err)
	}

	if s.rdb != nil {
		if err := DeleteFromRedis(ctx, s.rdb, settingsCacheKey); err != nil {
			s.logger.Error("faq: invalidate settings cache failed: %v", err)
		}
	}
	return settings, nil
}

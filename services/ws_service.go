package services

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/olahol/melody"

	"staynest/dto"
	apperrors "staynest/errors"
	"staynest/services/logger"
)

const wsResolveTimeout = 30 * time.Second

// RegisterChatSocket gắn resolver chatbot vào websocket endpoint.
// Mỗi frame là một dto.ChatRequest, trả về dto.ChatResponse trên cùng session.
func RegisterChatSocket(m *melody.Melody, support *SupportService, log logger.Logger) {
	m.HandleMessage(func(s *melody.Session, raw []byte) {
		var req dto.ChatRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			log.Error("ws: invalid chat frame: %v", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), wsResolveTimeout)
		defer cancel()

		answer, sessionID, err := support.Resolve(ctx, req.Message, req.SessionID)
		if err != nil {
			if appErr := apperrors.GetAppError(err); appErr != nil {
				answer = appErr.Message
			} else {
				answer = "챗봇 응답 중 오류가 발생했습니다."
			}
			sessionID = req.SessionID
		}

		payload, err := json.Marshal(dto.ChatResponse{
			Message:   answer,
			SessionID: sessionID,
		})
		if err != nil {
			log.Error("ws: marshal chat response: %v", err)
			return
		}

		if err := s.Write(payload); err != nil {
			log.Error("ws: write chat response: %v", err)
		}
	})
}

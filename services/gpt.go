package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"staynest/models"
)

const (
	openAIURL   = "https://api.openai.com/v1/chat/completions"
	openAIModel = "gpt-4o-mini"
)

// GPTClient gọi OpenAI Chat Completions để sinh câu trả lời cho chatbot
type GPTClient struct {
	apiKey     string
	httpClient *http.Client
}

// NewGPTClientFromEnv trả về nil nếu OPENAI_API_KEY không được cấu hình,
// khi đó chatbot chỉ dùng FAQ và câu trả lời canned.
func NewGPTClientFromEnv() *GPTClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil
	}
	return &GPTClient{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type gptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type gptRequest struct {
	Model       string       `json:"model"`
	Messages    []gptMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens"`
	Temperature float64      `json:"temperature"`
}

type gptResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate gửi system prompt + transcript gần nhất lên OpenAI
func (g *GPTClient) Generate(ctx context.Context, systemPrompt string, history []models.ChatMessage) (string, error) {
	messages := make([]gptMessage, 0, len(history)+1)
	messages = append(messages, gptMessage{Role: "system", Content: systemPrompt})
	for _, m := range history {
		messages = append(messages, gptMessage{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(gptRequest{
		Model:       openAIModel,
		Messages:    messages,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai request failed: status %d", resp.StatusCode)
	}

	var gptResp gptResponse
	if err := json.NewDecoder(resp.Body).Decode(&gptResp); err != nil {
		return "", err
	}

	if len(gptResp.Choices) == 0 {
		return "", fmt.Errorf("openai response has no choices")
	}
	return strings.TrimSpace(gptResp.Choices[0].Message.Content), nil
}

package assistant

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const responseWordLimit = 30

type (
	AssistantService interface {
		Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error)
	}

	assistantService struct {
		client *http.Client
	}
)

func NewAssistantService() AssistantService {
	return &assistantService{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Chat forwards a short question to the text-generation API. One attempt, no
// retry; the caller decides whether to ask again.
func (s *assistantService) Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" && len(req.Messages) > 0 {
		message = strings.TrimSpace(strings.Join(req.Messages, "\n"))
	}
	if message == "" {
		return domain.ChatResponse{}, domain.ErrEmptyChatMessage
	}

	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		return domain.ChatResponse{}, domain.ErrMissingAPIKey
	}
	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		return domain.ChatResponse{}, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	prompt := fmt.Sprintf(
		"You are a nutrition assistant. Answer in at most %d words.\n\n%s",
		responseWordLimit, message,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
	}
	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", model, apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return domain.ChatResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return domain.ChatResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return domain.ChatResponse{}, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return domain.ChatResponse{}, err
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return domain.ChatResponse{}, domain.ErrAssistantUpstream
	}

	return domain.ChatResponse{
		Reply: strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text),
	}, nil
}

package dietplan

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

type (
	// PlanGenerator turns a natural-language brief into the plan JSON.
	PlanGenerator interface {
		Generate(ctx context.Context, prompt string) (json.RawMessage, error)
	}

	geminiGenerator struct {
		client *http.Client
	}
)

func NewGeminiGenerator() PlanGenerator {
	return &geminiGenerator{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		return nil, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", model, apiKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
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
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrEmptyModelResponse
	}

	return ParsePlanJSON(geminiResp.Candidates[0].Content.Parts[0].Text)
}

// ParsePlanJSON strips code-fence markers from the model output and requires
// what remains to be strict JSON. There is no repair pass; anything else is a
// terminal error.
func ParsePlanJSON(text string) (json.RawMessage, error) {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	cleaned = strings.TrimSpace(cleaned)

	if !json.Valid([]byte(cleaned)) {
		return nil, domain.ErrPlanNotValidJSON
	}
	return json.RawMessage(cleaned), nil
}

package nutrition

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
	// NutritionService estimates calories and macros for one food item so the
	// client can fill them in before logging the meal.
	NutritionService interface {
		EstimateNutrients(ctx context.Context, req domain.EstimateNutrientsRequest) (domain.NutrientEstimate, error)
	}

	nutritionService struct {
		client *http.Client
	}
)

func NewNutritionService() NutritionService {
	return &nutritionService{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *nutritionService) EstimateNutrients(ctx context.Context, req domain.EstimateNutrientsRequest) (domain.NutrientEstimate, error) {
	if req.Food == "" || req.Portion == "" || req.Unit == "" {
		return domain.NutrientEstimate{}, domain.ErrMissingNutrientParams
	}

	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		return domain.NutrientEstimate{}, domain.ErrMissingAPIKey
	}
	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		return domain.NutrientEstimate{}, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": BuildNutrientPrompt(req)},
				},
			},
		},
	}
	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return domain.NutrientEstimate{}, err
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", model, apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return domain.NutrientEstimate{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return domain.NutrientEstimate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return domain.NutrientEstimate{}, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
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
		return domain.NutrientEstimate{}, err
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return domain.NutrientEstimate{}, domain.ErrEmptyModelResponse
	}

	return ParseNutrientJSON(geminiResp.Candidates[0].Content.Parts[0].Text)
}

// BuildNutrientPrompt wraps one food item into the strict-JSON brief.
func BuildNutrientPrompt(req domain.EstimateNutrientsRequest) string {
	var sb strings.Builder
	sb.WriteString("You are a nutrition expert.\n")
	sb.WriteString("Given the food details below, calculate the total calories and the macronutrient breakdown.\n")
	sb.WriteString("Return your answer strictly as a valid JSON object with the following format:\n")
	sb.WriteString(`{
  "total_calories": <number>,
  "macros": {
    "protein": <number>,
    "carbs": <number>,
    "fat": <number>
  }
}
`)
	sb.WriteString("Do not include any text before or after the JSON output.\n")
	sb.WriteString(fmt.Sprintf("Food: %s, Portion: %s, Unit: %s.", req.Food, req.Portion, req.Unit))
	return sb.String()
}

// ParseNutrientJSON strips code-fence markers and requires the remainder to
// unmarshal into the documented estimate shape. No repair pass.
func ParseNutrientJSON(text string) (domain.NutrientEstimate, error) {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	cleaned = strings.TrimSpace(cleaned)

	var estimate domain.NutrientEstimate
	if err := json.Unmarshal([]byte(cleaned), &estimate); err != nil {
		return domain.NutrientEstimate{}, domain.ErrNutrientParseFailed
	}
	return estimate, nil
}

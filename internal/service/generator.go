package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/template"
	"time"

	"github.com/mansoorceksport/titan/internal/domain"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultEquipment         = "Full Gym Access"
	defaultGenetics          = "None specified"

	workoutTemperature = 0.4

	coachSystemPromptTmplStr = `You are Titan AI, an elite fitness and nutrition coach. Respond in {{.Language}}. Be concise, scientific, and motivating.`

	workoutPromptTmplStr = `Create a personalized {{if .Weekly}}FULL WEEKLY ROUTINE{{else}}SINGLE WORKOUT SESSION{{end}} for "Titan" fitness app.
CRITICAL INSTRUCTION: Output the response COMPLETELY in the language: {{.Language}}.

User Biometrics:
- Age: {{.Age}}
- Height: {{.Height}}
- Weight: {{.Weight}}
- Gender: {{.Gender}}
- Genetics: {{.Genetics}}

Parameters:
- Level: {{.Level}}
- Goal: {{.Goal}}
- Split: {{.Split}}
- Focus: {{.Focus}}
- Frequency: {{.Frequency}}
- Equipment: {{.Equipment}}

Logic:
1. If Focus is "Full Weekly Plan", populate "weekly_schedule" (7 days, Mon..Sun).
2. If Focus is specific, populate "exercises".
3. Account for age/weight in intensity.

Return ONLY valid JSON in this EXACT format:
{
  "title": "catchy name",
  "duration_minutes": 45,
  "difficulty": "level assessment",
  "warmup": "general warmup routine",
  "cooldown": "general cooldown routine",
  "exercises": [{"name": "", "sets": "3", "reps": "8-12", "rest": "60s", "notes": "form cue"}],
  "weekly_schedule": [{"day": "Mon", "focus": "Push", "exercises": ["Bench Press"]}]
}`

	foodPromptTmplStr = `Analyze food input: "{{.Query}}". Estimate calories, protein(g), carbs(g), fats(g). Return "food_name" in language: {{.Language}}.
Return ONLY valid JSON in this EXACT format:
{"calories": 0, "protein": 0, "carbs": 0, "fats": 0, "food_name": "short name"}`
)

var errEmptyCompletion = errors.New("no response from AI model")

type workoutPromptContext struct {
	Weekly    bool
	Language  string
	Age       string
	Height    string
	Weight    string
	Gender    string
	Genetics  string
	Level     string
	Goal      string
	Split     string
	Focus     string
	Frequency string
	Equipment string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenRouterGenerator implements domain.PlanGenerator and domain.CoachClient
// over the OpenRouter chat completions API
type OpenRouterGenerator struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client

	workoutTmpl *template.Template
	foodTmpl    *template.Template
	coachTmpl   *template.Template
}

// NewOpenRouterGenerator creates a generator. An empty baseURL uses the public API.
func NewOpenRouterGenerator(apiKey, model, baseURL string, timeout time.Duration) *OpenRouterGenerator {
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &OpenRouterGenerator{
		apiKey:      apiKey,
		model:       model,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		workoutTmpl: template.Must(template.New("workout").Parse(workoutPromptTmplStr)),
		foodTmpl:    template.Must(template.New("food").Parse(foodPromptTmplStr)),
		coachTmpl:   template.Must(template.New("coach").Parse(coachSystemPromptTmplStr)),
	}
}

// GenerateWorkout asks the model for a plan matching req
func (g *OpenRouterGenerator) GenerateWorkout(ctx context.Context, req domain.PlanRequest) (*domain.WorkoutPlan, error) {
	promptCtx := workoutPromptContext{
		Weekly:    req.IsWeekly(),
		Language:  req.Language.Name(),
		Genetics:  defaultGenetics,
		Level:     req.EffectiveLevel(),
		Goal:      string(req.Goal),
		Split:     string(req.Split),
		Focus:     req.Focus,
		Frequency: req.Frequency,
		Equipment: req.Equipment,
	}
	if promptCtx.Equipment == "" {
		promptCtx.Equipment = defaultEquipment
	}
	if p := req.Profile; p != nil {
		promptCtx.Age = fmt.Sprintf("%d", p.Age)
		promptCtx.Height = p.Height
		promptCtx.Weight = p.Weight
		promptCtx.Gender = string(p.Gender)
		if p.GeneticAdvantages != "" {
			promptCtx.Genetics = p.GeneticAdvantages
		}
	}

	var prompt bytes.Buffer
	if err := g.workoutTmpl.Execute(&prompt, promptCtx); err != nil {
		return nil, fmt.Errorf("failed to generate workout prompt: %w", err)
	}

	temp := workoutTemperature
	content, err := g.complete(ctx, []chatMessage{{Role: "user", Content: prompt.String()}}, &temp, true)
	if err != nil {
		return nil, err
	}

	var plan domain.WorkoutPlan
	if err := decodeJSONContent(content, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse AI response as JSON: %w", err)
	}
	return &plan, nil
}

// AnalyzeFood asks the model for a macro estimate of a free-text query
func (g *OpenRouterGenerator) AnalyzeFood(ctx context.Context, query string, lang domain.Language) (*domain.MacroEstimate, error) {
	var prompt bytes.Buffer
	if err := g.foodTmpl.Execute(&prompt, map[string]string{"Query": query, "Language": lang.Name()}); err != nil {
		return nil, fmt.Errorf("failed to generate food prompt: %w", err)
	}

	content, err := g.complete(ctx, []chatMessage{{Role: "user", Content: prompt.String()}}, nil, true)
	if err != nil {
		return nil, err
	}

	var estimate domain.MacroEstimate
	if err := decodeJSONContent(content, &estimate); err != nil {
		return nil, fmt.Errorf("failed to parse AI response as JSON: %w", err)
	}
	return &estimate, nil
}

// Reply continues a coaching conversation. An empty completion is returned
// as an empty string with no error.
func (g *OpenRouterGenerator) Reply(ctx context.Context, history []domain.ChatMessage, message string, lang domain.Language) (string, error) {
	var system bytes.Buffer
	if err := g.coachTmpl.Execute(&system, map[string]string{"Language": lang.Name()}); err != nil {
		return "", fmt.Errorf("failed to generate system prompt: %w", err)
	}

	messages := make([]chatMessage, 0, len(history)+2)
	messages = append(messages, chatMessage{Role: "system", Content: system.String()})
	for _, m := range history {
		role := "user"
		if m.Role == domain.ChatRoleModel {
			role = "assistant"
		}
		messages = append(messages, chatMessage{Role: role, Content: m.Text})
	}
	messages = append(messages, chatMessage{Role: "user", Content: message})

	content, err := g.complete(ctx, messages, nil, false)
	if errors.Is(err, errEmptyCompletion) {
		return "", nil
	}
	return content, err
}

func (g *OpenRouterGenerator) complete(ctx context.Context, messages []chatMessage, temperature *float64, jsonMode bool) (string, error) {
	requestBody := map[string]interface{}{
		"model":    g.model,
		"messages": messages,
	}
	if temperature != nil {
		requestBody["temperature"] = *temperature
	}
	if jsonMode {
		requestBody["response_format"] = map[string]string{"type": "json_object"}
	}

	payload, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "https://titan.app")
	req.Header.Set("X-Title", "Titan")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openrouter api error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message  string                 `json:"message"`
			Code     int                    `json:"code"`
			Metadata map[string]interface{} `json:"metadata"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if apiResponse.Error != nil {
		errorMsg := fmt.Sprintf("openrouter error: %s (code: %d)", apiResponse.Error.Message, apiResponse.Error.Code)
		if providerErr, ok := apiResponse.Error.Metadata["provider_error"].(string); ok {
			errorMsg += " - Provider error: " + providerErr
		}
		return "", errors.New(errorMsg)
	}

	if len(apiResponse.Choices) == 0 || strings.TrimSpace(apiResponse.Choices[0].Message.Content) == "" {
		return "", errEmptyCompletion
	}

	return apiResponse.Choices[0].Message.Content, nil
}

// decodeJSONContent parses content as JSON, falling back to the outermost
// {...} when the model wrapped it in prose or code fences
func decodeJSONContent(content string, dest interface{}) error {
	if err := json.Unmarshal([]byte(content), dest); err == nil {
		return nil
	}

	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start == -1 || end == -1 || start >= end {
		return fmt.Errorf("no JSON object found in text")
	}
	return json.Unmarshal([]byte(content[start:end+1]), dest)
}

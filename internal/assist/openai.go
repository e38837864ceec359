package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	responsesEndpoint = "https://api.openai.com/v1/responses"
	defaultModel      = "gpt-5-mini"
)

const guidePrompt = "You are a travel planning assistant. Given the trip brief below, " +
	"reply with a JSON object with fields: suggestions (array of strings), " +
	"recommendations (object with accommodations, activities, transportation arrays of strings), " +
	"and nextStep (string). Reply with JSON only.\n\nTrip brief:\n"

// OpenAI generates guidance through the OpenAI Responses API, falling
// back to the static playbooks when a call or its parsing fails, so the
// wizard never stalls on the model.
type OpenAI struct {
	apiKey     string
	model      string
	httpClient *http.Client
	fallback   *Static
	logger     *slog.Logger
}

// NewOpenAI creates a model-backed generator. An empty model selects
// the default.
func NewOpenAI(apiKey, model string, logger *slog.Logger) *OpenAI {
	if model == "" {
		model = defaultModel
	}
	return &OpenAI{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 45 * time.Second,
		},
		fallback: NewStatic(),
		logger:   logger,
	}
}

// Guide asks the model for guidance on the brief.
func (g *OpenAI) Guide(ctx context.Context, brief TripBrief) (Response, error) {
	briefJSON, err := json.Marshal(brief)
	if err != nil {
		return Response{}, fmt.Errorf("encoding trip brief: %w", err)
	}

	text, err := g.invoke(ctx, guidePrompt+string(briefJSON))
	if err != nil {
		g.logger.Warn("guidance model call failed, using playbook", "error", err)
		return g.fallback.Guide(ctx, brief)
	}

	parsed, err := parseGuidance(text)
	if err != nil {
		g.logger.Warn("unparseable guidance output, using playbook", "error", err)
		return g.fallback.Guide(ctx, brief)
	}
	return parsed, nil
}

type responsesAPIResponse struct {
	OutputText []string              `json:"output_text"`
	Output     []responsesAPIMessage `json:"output"`
}

type responsesAPIMessage struct {
	Role    string                     `json:"role"`
	Content []responsesAPIContentBlock `json:"content"`
}

type responsesAPIContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (g *OpenAI) invoke(ctx context.Context, prompt string) (string, error) {
	payload := map[string]interface{}{
		"model": g.model,
		"input": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]string{
					{"type": "input_text", "text": prompt},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, responsesEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return "", apiError(resp)
	}

	var response responsesAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", err
	}

	text := strings.TrimSpace(strings.Join(response.OutputText, "\n"))
	if text == "" {
		text = firstOutputText(response)
	}
	if text == "" {
		return "", errors.New("model returned an empty message")
	}
	return text, nil
}

func apiError(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return fmt.Errorf("openai api error: %s", resp.Status)
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error.Message != "" {
		return errors.New(payload.Error.Message)
	}
	return fmt.Errorf("openai api error: %s", resp.Status)
}

func firstOutputText(response responsesAPIResponse) string {
	for _, message := range response.Output {
		for _, block := range message.Content {
			if block.Type == "output_text" && strings.TrimSpace(block.Text) != "" {
				return strings.TrimSpace(block.Text)
			}
		}
	}
	return ""
}

func parseGuidance(output string) (Response, error) {
	// Models occasionally wrap JSON in a markdown fence.
	output = strings.TrimSpace(output)
	output = strings.TrimPrefix(output, "```json")
	output = strings.TrimPrefix(output, "```")
	output = strings.TrimSuffix(output, "```")

	var resp Response
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &resp); err != nil {
		return Response{}, fmt.Errorf("decoding guidance: %w", err)
	}
	return resp, nil
}

package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/getawayapp/getaway-backend/internal/logger"
)

const (
	chatGPTBaseURL = "https://api.openai.com/v1"
	chatGPTModel   = "gpt-3.5-turbo"
)

// ChatGPTHTTPFacade wraps the OpenAI chat completions API.
type ChatGPTHTTPFacade struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewChatGPTHTTPFacade creates a new facade for the OpenAI API.
func NewChatGPTHTTPFacade(apiKey string) *ChatGPTHTTPFacade {
	return &ChatGPTHTTPFacade{
		client:  newHTTPClient(),
		apiKey:  apiKey,
		baseURL: chatGPTBaseURL,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a single user prompt and returns the trimmed assistant
// reply. Pass a negative temperature to use the model default.
func (f *ChatGPTHTTPFacade) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	if f.apiKey == "" {
		return "", ErrNoAPIKey
	}

	reqBody := chatCompletionRequest{
		Model:    chatGPTModel,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}
	if temperature >= 0 {
		reqBody.Temperature = &temperature
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to call chat completions", "error", err)
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("chat completions API error", "status", resp.StatusCode)
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

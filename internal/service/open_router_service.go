package service

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/fadilmartias/jobspec-studio/internal/config"
)

// OpenRouterService completes prompts through the OpenRouter chat
// completions API.
type OpenRouterService struct {
	APIKey string
	Model  string
	client *resty.Client
}

func NewOpenRouterService() *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	return NewOpenRouterServiceWith(cfg.BaseURL, cfg.APIKey, cfg.Model)
}

func NewOpenRouterServiceWith(baseURL, apiKey, model string) *OpenRouterService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(90*time.Second).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")
	return &OpenRouterService{APIKey: apiKey, Model: model, client: client}
}

func (s *OpenRouterService) Name() string { return "openrouter" }

func (s *OpenRouterService) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":      s.Model,
			"max_tokens": maxTokens,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", eris.Wrap(err, "openrouter request failed")
	}
	if resp.IsError() {
		return "", eris.Errorf("openrouter returned status %d: %s", resp.StatusCode(), gjson.Get(resp.String(), "error.message").String())
	}

	zap.L().Debug("openrouter response",
		zap.Int("status", resp.StatusCode()),
		zap.Int64("prompt_tokens", gjson.Get(resp.String(), "usage.prompt_tokens").Int()),
		zap.Int64("completion_tokens", gjson.Get(resp.String(), "usage.completion_tokens").Int()),
	)

	content := gjson.Get(resp.String(), "choices.0.message.content")
	if !content.Exists() || content.String() == "" {
		return "", eris.New("no content in openrouter response")
	}
	return content.String(), nil
}

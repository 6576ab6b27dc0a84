package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/fadilmartias/jobspec-studio/internal/config"
)

// GeminiService completes prompts with the Gemini API, retrying transient
// failures with exponential backoff. After circuitBreakerMax consecutive
// failures it refuses calls for BreakerCooldown; the first call after that
// is a trial whose outcome closes or reopens the breaker.
type GeminiService struct {
	Client            *genai.Client
	Model             string
	MaxRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	RequestTimeout    time.Duration
	BreakerCooldown   time.Duration
	consecutiveErrors atomic.Int32
	openedAt          atomic.Int64
	circuitBreakerMax int32
	now               func() time.Time
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, eris.New("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, eris.Wrap(err, "create gemini client")
	}
	return &GeminiService{
		Client:            client,
		Model:             geminiConfig.Model,
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          90 * time.Second,
		RequestTimeout:    90 * time.Second,
		BreakerCooldown:   time.Minute,
		circuitBreakerMax: 5,
		now:               time.Now,
	}, nil
}

func (s *GeminiService) Name() string { return "gemini" }

func (s *GeminiService) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", eris.New("prompt cannot be empty")
	}
	if err := s.allow(); err != nil {
		return "", err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.1)),
		MaxOutputTokens: int32(maxTokens),
	}

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			zap.L().Info("retrying gemini generate",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", s.MaxRetries),
				zap.Duration("delay", delay),
			)

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return "", eris.Wrap(timeoutCtx.Err(), "context timeout during retry")
			}
		}

		result, err := s.Client.Models.GenerateContent(timeoutCtx, s.Model, genai.Text(prompt), genConfig)
		if err == nil {
			s.consecutiveErrors.Store(0)
			if err := validateGenerateResponse(result); err != nil {
				return "", eris.Wrap(err, "invalid gemini response")
			}
			return result.Text(), nil
		}

		lastErr = err
		if !isRetryableError(err) {
			s.recordFailure()
			return "", eris.Wrap(err, "gemini generate failed")
		}
		zap.L().Warn("retryable gemini error", zap.Int("attempt", attempt+1), zap.Error(err))
	}

	s.recordFailure()
	return "", eris.Wrapf(lastErr, "max retries (%d) exceeded for gemini generate", s.MaxRetries)
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}
	return delay
}

// Healthy reports whether the breaker lets calls through, either closed or
// with its cooldown elapsed.
func (s *GeminiService) Healthy() bool {
	if s.consecutiveErrors.Load() < s.circuitBreakerMax {
		return true
	}
	return s.now().Sub(time.Unix(0, s.openedAt.Load())) >= s.BreakerCooldown
}

// allow admits a call unless the breaker is open. Once the cooldown has
// elapsed exactly one caller moves openedAt forward and goes through as the
// trial.
func (s *GeminiService) allow() error {
	n := s.consecutiveErrors.Load()
	if n < s.circuitBreakerMax {
		return nil
	}
	opened := s.openedAt.Load()
	now := s.now()
	if now.Sub(time.Unix(0, opened)) >= s.BreakerCooldown && s.openedAt.CompareAndSwap(opened, now.UnixNano()) {
		zap.L().Info("gemini circuit breaker half-open, sending trial request")
		return nil
	}
	return eris.Errorf("circuit breaker open: too many consecutive errors (%d)", n)
}

func (s *GeminiService) recordFailure() {
	if s.consecutiveErrors.Add(1) >= s.circuitBreakerMax {
		s.openedAt.Store(s.now().UnixNano())
	}
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()
	if strings.Contains(errMsg, "context canceled") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return false
	}

	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429, 500, 502, 503, 504:
			return true
		default:
			return false
		}
	}

	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF")
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	switch {
	case resp == nil:
		return eris.New("response is nil")
	case len(resp.Candidates) == 0:
		return eris.New("no candidates in response")
	case resp.Candidates[0].Content == nil:
		return eris.New("candidate content is nil")
	case len(resp.Candidates[0].Content.Parts) == 0:
		return eris.New("no parts in content")
	}
	return nil
}

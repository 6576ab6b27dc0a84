package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fadilmartias/jobspec-studio/internal/config"
)

// Gateway is the text-generation capability the structuring pipeline and the
// rewrite endpoint are written against.
type Gateway interface {
	// Generate returns the model's raw answer for prompt. Transport failures
	// are absorbed by implementations.
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
	// Rewrite restyles text according to a free-form instruction.
	Rewrite(ctx context.Context, text, instruction string) (string, error)
	// Available reports whether a live provider backs the gateway and is
	// currently answering.
	Available() bool
}

// Provider is a live text-generation backend.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// RewriteStyle is the closed set of rewrite instructions the stand-in knows.
type RewriteStyle int

const (
	RewriteOther RewriteStyle = iota
	RewritePolite
	RewriteConcise
	RewriteEnthusiastic
	RewriteFormal
)

// ParseRewriteStyle matches instruction against the known style phrases.
// The first phrase contained in instruction wins.
func ParseRewriteStyle(instruction string) RewriteStyle {
	switch {
	case strings.Contains(instruction, "より丁寧に"):
		return RewritePolite
	case strings.Contains(instruction, "簡潔に"):
		return RewriteConcise
	case strings.Contains(instruction, "熱意を込めて"):
		return RewriteEnthusiastic
	case strings.Contains(instruction, "フォーマルに"):
		return RewriteFormal
	default:
		return RewriteOther
	}
}

// NewGateway picks the gateway implementation once, from configuration. A
// provider that cannot be constructed leaves the stand-in in place.
func NewGateway(ctx context.Context) Gateway {
	standIn := NewStandInGateway()

	var (
		provider Provider
		err      error
	)
	switch config.LoadLLMConfig().Provider {
	case "openrouter":
		if config.LoadOpenRouterConfig().APIKey != "" {
			provider = NewOpenRouterService()
		}
	case "gemini":
		if config.LoadGeminiConfig().APIKey != "" {
			provider, err = NewGeminiService(ctx)
		}
	}
	if err != nil {
		zap.L().Warn("live provider unavailable, using stand-in", zap.Error(err))
		return standIn
	}
	if provider == nil {
		zap.L().Info("no live provider configured, using stand-in")
		return standIn
	}

	zap.L().Info("using live provider", zap.String("provider", provider.Name()))
	return NewLiveGateway(provider, standIn)
}

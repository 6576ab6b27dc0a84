package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fadilmartias/jobspec-studio/internal/prompt"
)

const rewriteMaxTokens = 2048

// LiveGateway calls a Provider and answers from the stand-in whenever the
// provider fails.
type LiveGateway struct {
	provider Provider
	fallback *StandInGateway
}

func NewLiveGateway(provider Provider, fallback *StandInGateway) *LiveGateway {
	return &LiveGateway{provider: provider, fallback: fallback}
}

// healthReporter is implemented by providers that can stop answering for a
// while, such as GeminiService with its circuit breaker.
type healthReporter interface {
	Healthy() bool
}

// Available is false while the provider reports itself unhealthy.
func (g *LiveGateway) Available() bool {
	if h, ok := g.provider.(healthReporter); ok {
		return h.Healthy()
	}
	return true
}

func (g *LiveGateway) Generate(ctx context.Context, p string, maxTokens int) (string, error) {
	text, err := g.provider.Complete(ctx, p, maxTokens)
	if err != nil {
		zap.L().Warn("live generation failed, answering from stand-in",
			zap.String("provider", g.provider.Name()),
			zap.Error(err),
		)
		return g.fallback.Generate(ctx, p, maxTokens)
	}
	return text, nil
}

func (g *LiveGateway) Rewrite(ctx context.Context, text, instruction string) (string, error) {
	out, err := g.provider.Complete(ctx, prompt.BuildRewritePrompt(text, instruction), rewriteMaxTokens)
	if err != nil {
		zap.L().Warn("live rewrite failed, answering from stand-in",
			zap.String("provider", g.provider.Name()),
			zap.Error(err),
		)
		return g.fallback.Rewrite(ctx, text, instruction)
	}
	return strings.TrimSpace(out), nil
}

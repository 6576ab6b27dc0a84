package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/fadilmartias/jobspec-studio/internal/model"
	"github.com/fadilmartias/jobspec-studio/internal/prompt"
	"github.com/fadilmartias/jobspec-studio/internal/redact"
	"github.com/fadilmartias/jobspec-studio/internal/service"
)

const (
	maxAttempts      = 2
	DefaultMaxTokens = 4096
)

var ErrEmptyInput = eris.New("job text is empty")

// ExtractionError is returned when every attempt produced output that could
// not be parsed or validated. Err is the failure of the last attempt.
type ExtractionError struct {
	Attempts int
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("JSON parse/validation failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// StructureUsecase turns free-text postings into validated records. Each
// call keeps its own state; concurrent calls share only the gateway.
type StructureUsecase struct {
	gateway   service.Gateway
	maxTokens int
}

func NewStructureUsecase(gateway service.Gateway, maxTokens int) *StructureUsecase {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &StructureUsecase{gateway: gateway, maxTokens: maxTokens}
}

// Structure redacts raw, asks the gateway for a JSON record and validates
// it. A failed first answer is sent back once with a correction request;
// a second failure ends in an *ExtractionError.
func (uc *StructureUsecase) Structure(ctx context.Context, raw string) (*model.JobRecord, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInput
	}

	base := prompt.BuildExtractionPrompt(redact.Redact(raw))
	current := base

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		response, err := uc.gateway.Generate(ctx, current, uc.maxTokens)
		if err != nil {
			lastErr = eris.Wrap(err, "generate")
		} else {
			rec, perr := model.ParseJobRecord(response)
			if perr == nil {
				zap.L().Info("job text structured", zap.Int("attempt", attempt))
				return rec, nil
			}
			lastErr = perr
		}

		zap.L().Warn("structuring attempt failed",
			zap.Int("attempt", attempt),
			zap.String("kind", failureKind(lastErr)),
			zap.Error(lastErr),
		)
		current = prompt.BuildCorrectionPrompt(base, response)
	}

	return nil, &ExtractionError{Attempts: maxAttempts, Err: lastErr}
}

func failureKind(err error) string {
	var verr *model.ValidationError
	switch {
	case errors.Is(err, model.ErrMalformedResponse):
		return "malformed_response"
	case errors.As(err, &verr):
		return "schema_validation"
	default:
		return "gateway"
	}
}

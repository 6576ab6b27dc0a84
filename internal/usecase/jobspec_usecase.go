package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/fadilmartias/jobspec-studio/internal/history"
	"github.com/fadilmartias/jobspec-studio/internal/model"
	"github.com/fadilmartias/jobspec-studio/internal/render"
	"github.com/fadilmartias/jobspec-studio/internal/service"
	"github.com/fadilmartias/jobspec-studio/internal/similarity"
)

var ErrEntryNotFound = eris.New("history entry not found")

// RenderOptions selects the variant of the outreach email.
type RenderOptions struct {
	Tone     render.Tone
	Angle    render.Angle
	Template render.EmailTemplate
}

// Artifacts are the texts rendered from one record.
type Artifacts struct {
	Summary   string   `json:"summary"`
	Email     string   `json:"email"`
	Questions []string `json:"questions"`
}

// JobSpecUsecase is what the HTTP layer talks to: structuring, rendering,
// rewriting and the session history.
type JobSpecUsecase struct {
	structurer *StructureUsecase
	gateway    service.Gateway
	history    *history.Store
	now        func() time.Time
}

func NewJobSpecUsecase(structurer *StructureUsecase, gateway service.Gateway, store *history.Store) *JobSpecUsecase {
	return &JobSpecUsecase{structurer: structurer, gateway: gateway, history: store, now: time.Now}
}

// Process structures text, renders every artifact and adds the result to
// the history.
func (uc *JobSpecUsecase) Process(ctx context.Context, text string, opts RenderOptions) (model.HistoryEntry, error) {
	rec, err := uc.structurer.Structure(ctx, text)
	if err != nil {
		return model.HistoryEntry{}, err
	}
	a := uc.Render(rec, opts)
	return uc.history.Add(rec, a.Summary, a.Email, a.Questions), nil
}

func (uc *JobSpecUsecase) Render(rec *model.JobRecord, opts RenderOptions) Artifacts {
	email := render.ApplyTemplate(opts.Template, render.OutreachEmail(rec, opts.Tone, opts.Angle))
	return Artifacts{
		Summary:   render.InternalSummary(rec),
		Email:     email,
		Questions: render.ClarificationQuestions(rec),
	}
}

func (uc *JobSpecUsecase) Rewrite(ctx context.Context, text, instruction string) (string, error) {
	return uc.gateway.Rewrite(ctx, text, instruction)
}

func (uc *JobSpecUsecase) GatewayAvailable() bool {
	return uc.gateway.Available()
}

func (uc *JobSpecUsecase) History() []model.HistoryEntry {
	return uc.history.List()
}

func (uc *JobSpecUsecase) ClearHistory() {
	uc.history.Clear()
}

func (uc *JobSpecUsecase) Entry(id uuid.UUID) (model.HistoryEntry, error) {
	e, ok := uc.history.Get(id)
	if !ok {
		return model.HistoryEntry{}, ErrEntryNotFound
	}
	return e, nil
}

// Similar ranks the rest of the history against the entry with the given id.
func (uc *JobSpecUsecase) Similar(id uuid.UUID, topN int) ([]similarity.Match, error) {
	e, err := uc.Entry(id)
	if err != nil {
		return nil, err
	}
	return similarity.RankSimilar(e.Record, uc.history.List(), topN), nil
}

// Export renders the report of a history entry, as Markdown or as plain
// text.
func (uc *JobSpecUsecase) Export(id uuid.UUID, plain bool) (string, error) {
	e, err := uc.Entry(id)
	if err != nil {
		return "", err
	}
	md, err := render.ExportMarkdown(e.Record, e.Summary, e.Email, e.Questions, uc.now())
	if err != nil {
		return "", eris.Wrap(err, "export markdown")
	}
	if plain {
		return render.ExportText(md), nil
	}
	return md, nil
}

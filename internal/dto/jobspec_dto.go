package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/fadilmartias/jobspec-studio/internal/model"
	"github.com/fadilmartias/jobspec-studio/internal/similarity"
)

// StructureRequest is the JSON body of POST /structure. Tone, Angle and
// Template accept the English identifiers or the Japanese labels.
type StructureRequest struct {
	Text     string `json:"text" form:"text"`
	Tone     string `json:"tone" form:"tone"`
	Angle    string `json:"angle" form:"angle"`
	Template string `json:"template" form:"template"`
}

// RenderRequest carries a record in its JSON form; it is validated like
// gateway output.
type RenderRequest struct {
	Record   json.RawMessage `json:"record"`
	Tone     string          `json:"tone"`
	Angle    string          `json:"angle"`
	Template string          `json:"template"`
}

type RewriteRequest struct {
	Text        string `json:"text"`
	Instruction string `json:"instruction"`
}

type ArtifactsDTO struct {
	Summary   string   `json:"summary"`
	Email     string   `json:"email"`
	Questions []string `json:"questions"`
}

type HistoryEntryDTO struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	CreatedAt time.Time        `json:"created_at"`
	Record    *model.JobRecord `json:"record"`
	ArtifactsDTO
}

// HistoryItemDTO is the short form used in history listings.
type HistoryItemDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type SimilarDTO struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Score          float64   `json:"score"`
	SharedKeywords []string  `json:"shared_keywords"`
}

func NewHistoryEntryDTO(e model.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:        e.ID,
		Title:     e.Title,
		CreatedAt: e.CreatedAt,
		Record:    e.Record,
		ArtifactsDTO: ArtifactsDTO{
			Summary:   e.Summary,
			Email:     e.Email,
			Questions: e.Questions,
		},
	}
}

func NewSimilarDTOs(matches []similarity.Match) []SimilarDTO {
	out := make([]SimilarDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, SimilarDTO{
			ID:             m.Entry.ID,
			Title:          m.Entry.Title,
			Score:          m.Score,
			SharedKeywords: m.SharedKeywords,
		})
	}
	return out
}

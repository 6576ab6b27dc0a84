package model

import (
	"bytes"
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"
)

type RemoteType string

const (
	RemoteFull   RemoteType = "full_remote"
	RemoteHybrid RemoteType = "hybrid"
	RemoteOnSite RemoteType = "on_site"
)

// Valid reports whether r is one of the declared remote_type literals.
func (r RemoteType) Valid() bool {
	switch r {
	case RemoteFull, RemoteHybrid, RemoteOnSite:
		return true
	}
	return false
}

type RateUnit string

const (
	RateHourly  RateUnit = "hourly"
	RateDaily   RateUnit = "daily"
	RateMonthly RateUnit = "monthly"
	RateYearly  RateUnit = "yearly"
)

func (u RateUnit) Valid() bool {
	switch u {
	case RateHourly, RateDaily, RateMonthly, RateYearly:
		return true
	}
	return false
}

// Rate is the compensation range of a posting. Min <= Max is expected but
// not enforced.
type Rate struct {
	Min  *float64  `json:"min"`
	Max  *float64  `json:"max"`
	Unit *RateUnit `json:"unit"`
}

// JobRecord is the structured form of a free-text job posting. Every field
// is optional; list fields are empty rather than nil once parsed.
type JobRecord struct {
	Title            *string     `json:"title"`
	Company          *string     `json:"company"`
	Role             *string     `json:"role"`
	Summary          *string     `json:"summary"`
	MustRequirements []string    `json:"must_requirements"`
	NiceToHave       []string    `json:"nice_to_have"`
	Tasks            []string    `json:"tasks"`
	StackKeywords    []string    `json:"stack_keywords"`
	Location         *string     `json:"location"`
	RemoteType       *RemoteType `json:"remote_type"`
	Rate             *Rate       `json:"rate"`
	StartDate        *string     `json:"start_date"`
	Duration         *string     `json:"duration"`
	InterviewCount   *int        `json:"interview_count"`
	WorkingHours     *string     `json:"working_hours"`
	ContractType     *string     `json:"contract_type"`
	Notes            *string     `json:"notes"`
	RisksOrUnknowns  []string    `json:"risks_or_unknowns"`
}

// MarshalJSON writes list fields as [] instead of null. Characters such as
// & and < are kept literal.
func (j JobRecord) MarshalJSON() ([]byte, error) {
	type plain JobRecord
	out := plain(j)
	for _, list := range []*[]string{&out.MustRequirements, &out.NiceToHave, &out.Tasks, &out.StackKeywords, &out.RisksOrUnknowns} {
		if *list == nil {
			*list = []string{}
		}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Equal reports whether both records carry the same values. Nil and empty
// lists compare equal.
func (j *JobRecord) Equal(o *JobRecord) bool {
	if j == nil || o == nil {
		return j == o
	}
	return eqPtr(j.Title, o.Title) &&
		eqPtr(j.Company, o.Company) &&
		eqPtr(j.Role, o.Role) &&
		eqPtr(j.Summary, o.Summary) &&
		slices.Equal(j.MustRequirements, o.MustRequirements) &&
		slices.Equal(j.NiceToHave, o.NiceToHave) &&
		slices.Equal(j.Tasks, o.Tasks) &&
		slices.Equal(j.StackKeywords, o.StackKeywords) &&
		eqPtr(j.Location, o.Location) &&
		eqPtr(j.RemoteType, o.RemoteType) &&
		j.Rate.Equal(o.Rate) &&
		eqPtr(j.StartDate, o.StartDate) &&
		eqPtr(j.Duration, o.Duration) &&
		eqPtr(j.InterviewCount, o.InterviewCount) &&
		eqPtr(j.WorkingHours, o.WorkingHours) &&
		eqPtr(j.ContractType, o.ContractType) &&
		eqPtr(j.Notes, o.Notes) &&
		slices.Equal(j.RisksOrUnknowns, o.RisksOrUnknowns)
}

func (r *Rate) Equal(o *Rate) bool {
	if r == nil || o == nil {
		return r == o
	}
	return eqPtr(r.Min, o.Min) && eqPtr(r.Max, o.Max) && eqPtr(r.Unit, o.Unit)
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// HistoryEntry is a structured posting kept in the session history together
// with the artifacts rendered from it.
type HistoryEntry struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	Record    *JobRecord `json:"record"`
	Summary   string     `json:"summary"`
	Email     string     `json:"email"`
	Questions []string   `json:"questions"`
}

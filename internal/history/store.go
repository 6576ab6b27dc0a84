// Package history keeps the postings structured during the lifetime of the
// process. Nothing is persisted.
package history

import (
	"slices"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/fadilmartias/jobspec-studio/internal/model"
)

const (
	DefaultCapacity = 10
	untitled        = "無題の案件"
)

// Store is a bounded history; adding beyond capacity drops the oldest entry.
// It is safe for concurrent use.
type Store struct {
	cache *lru.Cache[uuid.UUID, model.HistoryEntry]
	now   func() time.Time
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[uuid.UUID, model.HistoryEntry](capacity)
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	return &Store{cache: cache, now: time.Now}
}

// Add records a structured posting with its rendered artifacts and returns
// the stored entry.
func (s *Store) Add(rec *model.JobRecord, summary, email string, questions []string) model.HistoryEntry {
	title := untitled
	if rec.Title != nil && *rec.Title != "" {
		title = *rec.Title
	}
	entry := model.HistoryEntry{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: s.now(),
		Record:    rec,
		Summary:   summary,
		Email:     email,
		Questions: questions,
	}
	s.cache.Add(entry.ID, entry)
	return entry
}

// Get looks an entry up without changing its position.
func (s *Store) Get(id uuid.UUID) (model.HistoryEntry, bool) {
	return s.cache.Peek(id)
}

// List returns the entries newest first.
func (s *Store) List() []model.HistoryEntry {
	entries := s.cache.Values()
	slices.Reverse(entries)
	return entries
}

func (s *Store) Len() int { return s.cache.Len() }

func (s *Store) Clear() { s.cache.Purge() }

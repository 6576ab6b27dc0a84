// Package similarity finds earlier postings that share technology keywords
// with a given one.
package similarity

import (
	"slices"
	"strings"

	"github.com/fadilmartias/jobspec-studio/internal/model"
)

// DefaultTopN is used when RankSimilar is asked for a non-positive count.
const DefaultTopN = 3

// Match is a history entry scored against a target record.
type Match struct {
	Entry          model.HistoryEntry `json:"entry"`
	Score          float64            `json:"score"`
	SharedKeywords []string           `json:"shared_keywords"`
}

// Similarity is the case-insensitive Jaccard index of the records'
// stack keywords, along with the shared keywords in lower case, sorted.
// If either record has no keywords the score is 0.
func Similarity(a, b *model.JobRecord) (float64, []string) {
	ka := keywordSet(a)
	kb := keywordSet(b)
	if len(ka) == 0 || len(kb) == 0 {
		return 0, []string{}
	}

	shared := []string{}
	for k := range ka {
		if _, ok := kb[k]; ok {
			shared = append(shared, k)
		}
	}
	slices.Sort(shared)

	union := len(ka) + len(kb) - len(shared)
	return float64(len(shared)) / float64(union), shared
}

// RankSimilar scores every history entry against target and returns the
// topN best matches with a positive score, best first. Entries holding a
// record equal to target are skipped; ties keep history order.
func RankSimilar(target *model.JobRecord, history []model.HistoryEntry, topN int) []Match {
	if topN <= 0 {
		topN = DefaultTopN
	}

	matches := []Match{}
	for _, entry := range history {
		if entry.Record == nil || entry.Record.Equal(target) {
			continue
		}
		score, shared := Similarity(target, entry.Record)
		if score > 0 {
			matches = append(matches, Match{Entry: entry, Score: score, SharedKeywords: shared})
		}
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})

	if len(matches) > topN {
		matches = matches[:topN]
	}
	return matches
}

func keywordSet(rec *model.JobRecord) map[string]struct{} {
	if rec == nil {
		return nil
	}
	set := make(map[string]struct{}, len(rec.StackKeywords))
	for _, kw := range rec.StackKeywords {
		set[strings.ToLower(kw)] = struct{}{}
	}
	return set
}

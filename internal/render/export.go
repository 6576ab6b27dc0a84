package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/jobspec-studio/internal/model"
)

// ExportMarkdown assembles the downloadable report for one structured
// posting.
func ExportMarkdown(rec *model.JobRecord, summary, email string, questions []string, at time.Time) (string, error) {
	var recordJSON strings.Builder
	enc := json.NewEncoder(&recordJSON)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}

	title := "無題"
	if rec.Title != nil && *rec.Title != "" {
		title = *rec.Title
	}

	var qs strings.Builder
	for i, q := range questions {
		if i > 0 {
			qs.WriteString("\n")
		}
		qs.WriteString("- " + q)
	}

	return fmt.Sprintf(`# 案件レポート: %s

生成日時: %s

---

## 社内要約

%s

---

## 提案メール

%s

---

## ヒアリング質問

%s

---

## 構造化データ (JSON)

`+"```json\n%s\n```\n",
		title, at.Format("2006-01-02 15:04"), summary, email, qs.String(), strings.TrimRight(recordJSON.String(), "\n")), nil
}

// ExportText is ExportMarkdown without the JSON code fence.
func ExportText(markdown string) string {
	return strings.ReplaceAll(strings.ReplaceAll(markdown, "```json\n", ""), "\n```", "")
}

package render

import (
	"strings"

	"github.com/fadilmartias/jobspec-studio/internal/model"
)

// InternalSummary renders the labeled field dump shared inside the team.
func InternalSummary(rec *model.JobRecord) string {
	lines := []string{
		"【案件サマリ】" + formatString(rec.Title),
		"",
		"■ 企業: " + formatString(rec.Company),
		"■ ポジション: " + formatString(rec.Role),
		"■ 概要: " + formatString(rec.Summary),
		"",
		"■ 必須スキル: " + formatList(rec.MustRequirements, Unknown),
		"■ 歓迎スキル: " + formatList(rec.NiceToHave, Unknown),
		"■ 業務内容: " + formatList(rec.Tasks, Unknown),
		"■ 技術スタック: " + formatList(rec.StackKeywords, Unknown),
		"",
		"■ 勤務地: " + formatString(rec.Location),
		"■ リモート: " + RemoteLabel(rec.RemoteType),
		"■ 報酬: " + FormatRate(rec.Rate),
		"■ 開始時期: " + formatString(rec.StartDate),
		"■ 期間: " + formatString(rec.Duration),
		"■ 稼働: " + formatString(rec.WorkingHours),
		"■ 契約形態: " + formatString(rec.ContractType),
		"■ 面談回数: " + formatInt(rec.InterviewCount),
		"",
		"■ 備考: " + formatString(rec.Notes),
		"■ 不明点・リスク: " + formatList(rec.RisksOrUnknowns, NoRisks),
	}
	return strings.Join(lines, "\n")
}

package render

import "github.com/fadilmartias/jobspec-studio/internal/model"

// NoOpenQuestions is the only question returned for a complete record
// without risks.
const NoOpenQuestions = "現時点で特に不明点はありませんが、進める中で確認させてください。"

type check struct {
	missing  func(*model.JobRecord) bool
	question string
}

var checklist = []check{
	{func(r *model.JobRecord) bool { return blank(r.Company) }, "企業名を教えていただけますか？"},
	{func(r *model.JobRecord) bool { return blank(r.Summary) }, "案件の概要・背景を教えていただけますか？"},
	{func(r *model.JobRecord) bool { return len(r.MustRequirements) == 0 }, "必須スキル・経験年数の目安を教えていただけますか？"},
	{func(r *model.JobRecord) bool { return !hasRate(r.Rate) }, "報酬レンジ（単価）を教えていただけますか？"},
	{func(r *model.JobRecord) bool { return blank(r.Location) }, "勤務地はどちらになりますか？"},
	{func(r *model.JobRecord) bool { return r.RemoteType == nil || *r.RemoteType == "" }, "リモートワークは可能ですか？（フル/一部/不可）"},
	{func(r *model.JobRecord) bool { return blank(r.WorkingHours) }, "想定稼働時間（週何日、月何時間）を教えていただけますか？"},
	{func(r *model.JobRecord) bool { return blank(r.StartDate) }, "参画開始時期はいつ頃を想定されていますか？"},
	{func(r *model.JobRecord) bool { return blank(r.Duration) }, "契約期間の目安を教えていただけますか？"},
	{func(r *model.JobRecord) bool { return r.InterviewCount == nil }, "面談は何回を予定されていますか？"},
}

// ClarificationQuestions lists what should be confirmed with the client:
// one question per missing item in a fixed order, then one per recorded risk.
// The result is never empty.
func ClarificationQuestions(rec *model.JobRecord) []string {
	var questions []string
	for _, c := range checklist {
		if c.missing(rec) {
			questions = append(questions, c.question)
		}
	}
	for _, risk := range rec.RisksOrUnknowns {
		questions = append(questions, "「"+risk+"」について詳細を教えていただけますか？")
	}
	if len(questions) == 0 {
		questions = append(questions, NoOpenQuestions)
	}
	return questions
}

// blank treats an empty string like a missing one.
func blank(s *string) bool {
	return s == nil || *s == ""
}

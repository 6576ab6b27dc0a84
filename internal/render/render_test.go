package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/jobspec-studio/internal/model"
)

func strp(s string) *string { return &s }
func f64(v float64) *float64 { return &v }

func unitp(u model.RateUnit) *model.RateUnit { return &u }

func remotep(r model.RemoteType) *model.RemoteType { return &r }

func fullRecord() *model.JobRecord {
	n := 2
	return &model.JobRecord{
		Title:            strp("Goエンジニア"),
		Company:          strp("株式会社テスト"),
		Role:             strp("バックエンド"),
		Summary:          strp("決済基盤の開発"),
		MustRequirements: []string{"Go 3年以上", "MySQL"},
		NiceToHave:       []string{"Kubernetes"},
		Tasks:            []string{"API開発"},
		StackKeywords:    []string{"Go", "MySQL", "AWS"},
		Location:         strp("東京都港区"),
		RemoteType:       remotep(model.RemoteFull),
		Rate:             &model.Rate{Min: f64(700000), Max: f64(900000), Unit: unitp(model.RateMonthly)},
		StartDate:        strp("即日"),
		Duration:         strp("長期"),
		InterviewCount:   &n,
		WorkingHours:     strp("週5日"),
		ContractType:     strp("業務委託"),
		Notes:            strp("服装自由"),
		RisksOrUnknowns:  []string{},
	}
}

func TestFormatRate(t *testing.T) {
	cases := []struct {
		name string
		rate *model.Rate
		want string
	}{
		{"both bounds", &model.Rate{Min: f64(700000), Max: f64(900000), Unit: unitp(model.RateMonthly)}, "月額700,000〜900,000円"},
		{"min only", &model.Rate{Min: f64(5000), Unit: unitp(model.RateHourly)}, "時給5,000円〜"},
		{"max only", &model.Rate{Max: f64(30000), Unit: unitp(model.RateDaily)}, "日給〜30,000円"},
		{"no unit", &model.Rate{Min: f64(6000000), Max: f64(8000000)}, "6,000,000〜8,000,000円"},
		{"yearly", &model.Rate{Min: f64(8000000), Unit: unitp(model.RateYearly)}, "年額8,000,000円〜"},
		{"fraction truncated", &model.Rate{Min: f64(1234.9)}, "1,234円〜"},
		{"no bounds", &model.Rate{Unit: unitp(model.RateMonthly)}, Unknown},
		{"nil rate", nil, Unknown},
		{"zero", &model.Rate{Min: f64(0), Unit: unitp(model.RateHourly)}, "時給0円〜"},
		{"beyond int64", &model.Rate{Min: f64(1e20)}, "100,000,000,000,000,000,000円〜"},
		{"inverted range", &model.Rate{Min: f64(900000), Max: f64(700000), Unit: unitp(model.RateMonthly)}, "月額900,000〜700,000円"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, FormatRate(c.rate))
		})
	}
}

func TestRemoteLabel(t *testing.T) {
	full := RemoteLabel(remotep(model.RemoteFull))
	hybrid := RemoteLabel(remotep(model.RemoteHybrid))
	onSite := RemoteLabel(remotep(model.RemoteOnSite))

	assert.Equal(t, "フルリモート", full)
	assert.NotEqual(t, full, hybrid)
	assert.NotEqual(t, full, onSite)
	assert.NotEqual(t, hybrid, onSite)
	assert.Equal(t, Unknown, RemoteLabel(nil))
}

func TestInternalSummaryFull(t *testing.T) {
	s := InternalSummary(fullRecord())
	lines := strings.Split(s, "\n")

	assert.Equal(t, "【案件サマリ】Goエンジニア", lines[0])
	assert.Contains(t, s, "■ 必須スキル: Go 3年以上、MySQL\n")
	assert.Contains(t, s, "■ リモート: フルリモート\n")
	assert.Contains(t, s, "■ 報酬: 月額700,000〜900,000円\n")
	assert.Contains(t, s, "■ 面談回数: 2\n")
	assert.Equal(t, "■ 不明点・リスク: 特になし", lines[len(lines)-1])
	assert.NotContains(t, s, Unknown)
}

func TestInternalSummaryEmptyRecord(t *testing.T) {
	s := InternalSummary(&model.JobRecord{})

	assert.Contains(t, s, "【案件サマリ】要確認")
	assert.Contains(t, s, "■ 必須スキル: 要確認")
	assert.Contains(t, s, "■ 報酬: 要確認")
	assert.Contains(t, s, "■ 面談回数: 要確認")
	assert.True(t, strings.HasSuffix(s, "■ 不明点・リスク: 特になし"))
}

func TestOutreachEmailToneAndAngle(t *testing.T) {
	rec := fullRecord()

	casual := OutreachEmail(rec, ToneCasual, AngleGrowth)
	assert.True(t, strings.HasPrefix(casual, "こんにちは！\n"))
	assert.Contains(t, casual, "技術スタックはGo、MySQL、AWSを中心としており")

	business := OutreachEmail(rec, ToneBusiness, AngleCompensation)
	assert.True(t, strings.HasPrefix(business, "いつもお世話になっております。\n"))
	assert.Contains(t, business, "報酬は月額700,000〜900,000円となっており")

	remote := OutreachEmail(rec, TonePolite, AngleRemoteFlexibility)
	assert.True(t, strings.HasPrefix(remote, "お世話になっております。\n"))
	assert.Contains(t, remote, "勤務形態はフルリモートで、柔軟な働き方が可能です。")
	assert.Contains(t, remote, "勤務地: 東京都港区（フルリモート）")
}

func TestOutreachEmailFallbacks(t *testing.T) {
	email := OutreachEmail(&model.JobRecord{}, ParseTone("謎"), ParseAngle("unknown"))

	assert.True(t, strings.HasPrefix(email, "お世話になっております。\n"))
	assert.Contains(t, email, "魅力的な案件となっております。")
	assert.Contains(t, email, "【要確認】")
	assert.Contains(t, email, "勤務地: 要確認（要確認）")
	assert.True(t, strings.HasSuffix(email, "ご検討のほど、よろしくお願いいたします。"))
}

func TestParseToneAngleTemplate(t *testing.T) {
	assert.Equal(t, TonePolite, ParseTone("丁寧"))
	assert.Equal(t, ToneCasual, ParseTone("casual"))
	assert.Equal(t, Tone(""), ParseTone("端的"))
	assert.Equal(t, AngleGrowth, ParseAngle("技術成長"))
	assert.Equal(t, AngleRemoteFlexibility, ParseAngle("remote-flexibility"))
	assert.Equal(t, Angle(""), ParseAngle("採用穴埋め"))
	assert.Equal(t, TemplateReminder, ParseEmailTemplate("リマインド"))
	assert.Equal(t, EmailTemplate(""), ParseEmailTemplate("other"))
}

func TestApplyTemplate(t *testing.T) {
	assert.Equal(t, "本文", ApplyTemplate("", "本文"))

	follow := ApplyTemplate(TemplateFollowUp, "本文")
	assert.True(t, strings.HasPrefix(follow, "先日ご案内した案件について"))
	assert.Contains(t, follow, "\n\n本文\n\n")

	initial := ApplyTemplate(TemplateInitial, "本文")
	assert.True(t, strings.HasPrefix(initial, "本文\n\n"))
}

func TestClarificationQuestionsEmptyRecord(t *testing.T) {
	qs := ClarificationQuestions(&model.JobRecord{})

	require.Len(t, qs, len(checklist))
	assert.Len(t, qs, 10)
	assert.Equal(t, "企業名を教えていただけますか？", qs[0])
	assert.Equal(t, "面談は何回を予定されていますか？", qs[9])
}

func TestClarificationQuestionsCompleteRecord(t *testing.T) {
	qs := ClarificationQuestions(fullRecord())
	assert.Equal(t, []string{NoOpenQuestions}, qs)
}

func TestClarificationQuestionsRisksAndPartialRate(t *testing.T) {
	rec := fullRecord()
	rec.Company = strp("")
	rec.Rate = &model.Rate{Unit: unitp(model.RateMonthly)}
	rec.RisksOrUnknowns = []string{"チーム構成が不明"}

	qs := ClarificationQuestions(rec)
	assert.Equal(t, []string{
		"企業名を教えていただけますか？",
		"報酬レンジ（単価）を教えていただけますか？",
		"「チーム構成が不明」について詳細を教えていただけますか？",
	}, qs)

	rec = fullRecord()
	rec.Rate = &model.Rate{Max: f64(800000)}
	assert.Equal(t, []string{NoOpenQuestions}, ClarificationQuestions(rec))
}

func TestExportMarkdown(t *testing.T) {
	rec := fullRecord()
	at := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)

	md, err := ExportMarkdown(rec, "要約", "メール", []string{"Q1", "Q2"}, at)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(md, "# 案件レポート: Goエンジニア\n\n生成日時: 2024-02-01 09:30\n"))
	assert.Contains(t, md, "## ヒアリング質問\n\n- Q1\n- Q2\n")
	assert.Contains(t, md, "```json\n{\n  \"title\": \"Goエンジニア\",")
	assert.True(t, strings.HasSuffix(md, "}\n```\n"))

	text := ExportText(md)
	assert.NotContains(t, text, "```")
	assert.Contains(t, text, "\"company\": \"株式会社テスト\"")
}

func TestExportMarkdownUntitled(t *testing.T) {
	md, err := ExportMarkdown(&model.JobRecord{}, "", "", nil, time.Now())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(md, "# 案件レポート: 無題\n"))
	assert.Contains(t, md, "\"tasks\": []")
}

func TestExportMarkdownKeepsSpecialCharacters(t *testing.T) {
	rec := &model.JobRecord{Company: strp("R&D <Lab>"), Tasks: []string{"A&B"}}

	md, err := ExportMarkdown(rec, "", "", nil, time.Now())
	require.NoError(t, err)
	assert.Contains(t, md, `"company": "R&D <Lab>"`)
	assert.Contains(t, md, `"A&B"`)
	assert.NotContains(t, md, `\u0026`)
}

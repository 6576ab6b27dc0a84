package render

import (
	"strings"

	"github.com/fadilmartias/jobspec-studio/internal/model"
)

// Tone selects the greeting of an outreach email.
type Tone string

const (
	TonePolite   Tone = "polite"
	ToneCasual   Tone = "casual"
	ToneBusiness Tone = "business"
)

// ParseTone accepts the English identifiers and the Japanese labels
// (丁寧, カジュアル, ビジネス). Anything else yields the empty Tone, which
// renders the default greeting.
func ParseTone(s string) Tone {
	switch strings.TrimSpace(s) {
	case "polite", "丁寧":
		return TonePolite
	case "casual", "カジュアル":
		return ToneCasual
	case "business", "ビジネス":
		return ToneBusiness
	}
	return ""
}

func (t Tone) greeting() string {
	switch t {
	case ToneCasual:
		return "こんにちは！"
	case ToneBusiness:
		return "いつもお世話になっております。"
	case TonePolite:
		return "お世話になっております。"
	default:
		return "お世話になっております。"
	}
}

// Angle is the persuasive framing of an outreach email.
type Angle string

const (
	AngleGrowth            Angle = "growth"
	AngleCompensation      Angle = "compensation"
	AngleRemoteFlexibility Angle = "remote-flexibility"
)

// ParseAngle accepts the English identifiers and the Japanese labels
// (技術成長, 報酬, リモート). Anything else yields the empty Angle, which
// renders the generic appeal.
func ParseAngle(s string) Angle {
	switch strings.TrimSpace(s) {
	case "growth", "技術成長":
		return AngleGrowth
	case "compensation", "報酬":
		return AngleCompensation
	case "remote-flexibility", "リモート":
		return AngleRemoteFlexibility
	}
	return ""
}

func (a Angle) appeal(rec *model.JobRecord) string {
	switch a {
	case AngleGrowth:
		return "技術スタックは" + formatList(rec.StackKeywords, Unknown) + "を中心としており、スキルアップにつながる環境です。"
	case AngleCompensation:
		return "報酬は" + FormatRate(rec.Rate) + "となっており、ご経験に見合った待遇をご用意しております。"
	case AngleRemoteFlexibility:
		return "勤務形態は" + RemoteLabel(rec.RemoteType) + "で、柔軟な働き方が可能です。"
	default:
		return "魅力的な案件となっております。"
	}
}

// OutreachEmail renders the proposal email for a candidate.
func OutreachEmail(rec *model.JobRecord, tone Tone, angle Angle) string {
	lines := []string{
		tone.greeting(),
		"",
		"下記案件のご紹介です。",
		"",
		"【" + formatString(rec.Title) + "】",
		"企業: " + formatString(rec.Company),
		"ポジション: " + formatString(rec.Role),
		"",
		"概要: " + formatString(rec.Summary),
		"",
		"必須スキル: " + formatList(rec.MustRequirements, Unknown),
		"報酬: " + FormatRate(rec.Rate),
		"勤務地: " + formatString(rec.Location) + "（" + RemoteLabel(rec.RemoteType) + "）",
		"開始: " + formatString(rec.StartDate),
		"",
		angle.appeal(rec),
		"",
		"ご興味がございましたら、詳細をお伝えいたします。",
		"ご検討のほど、よろしくお願いいたします。",
	}
	return strings.Join(lines, "\n")
}

// EmailTemplate frames an outreach email for the stage of the conversation.
type EmailTemplate string

const (
	TemplateInitial    EmailTemplate = "initial"
	TemplateFollowUp   EmailTemplate = "follow-up"
	TemplateReminder   EmailTemplate = "reminder"
	TemplateReProposal EmailTemplate = "re-proposal"
)

// ParseEmailTemplate accepts the English identifiers and the Japanese labels
// (初回提案, フォローアップ, リマインド, 再提案).
func ParseEmailTemplate(s string) EmailTemplate {
	switch strings.TrimSpace(s) {
	case "initial", "初回提案":
		return TemplateInitial
	case "follow-up", "フォローアップ":
		return TemplateFollowUp
	case "reminder", "リマインド":
		return TemplateReminder
	case "re-proposal", "再提案":
		return TemplateReProposal
	}
	return ""
}

// ApplyTemplate wraps body with the template's opening and closing lines.
// The empty template leaves body unchanged.
func ApplyTemplate(tmpl EmailTemplate, body string) string {
	var prefix, suffix string
	switch tmpl {
	case TemplateInitial:
		suffix = "\n\nご興味がございましたら、詳細をお伝えいたします。\nご検討のほど、よろしくお願いいたします。"
	case TemplateFollowUp:
		prefix = "先日ご案内した案件について、改めてご連絡いたします。\n\n"
		suffix = "\n\nご状況いかがでしょうか。\nご不明点等ございましたら、お気軽にお申し付けください。"
	case TemplateReminder:
		prefix = "お忙しいところ恐れ入ります。\n先日の案件について、リマインドのご連絡です。\n\n"
		suffix = "\n\n本案件は他候補者との調整も進んでおります。\nご興味がございましたら、お早めにご連絡いただけますと幸いです。"
	case TemplateReProposal:
		prefix = "以前ご案内した案件について、条件が更新されましたのでご連絡いたします。\n\n"
		suffix = "\n\n前回よりも条件が改善されております。\n改めてご検討いただけますと幸いです。"
	}
	return prefix + body + suffix
}

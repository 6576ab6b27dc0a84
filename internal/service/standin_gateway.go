package service

import (
	"context"
	"encoding/json"

	"github.com/fadilmartias/jobspec-studio/internal/model"
)

// StandInGateway answers deterministically without any network access. Its
// generation output always passes model.ParseJobRecord.
type StandInGateway struct {
	response string
}

func NewStandInGateway() *StandInGateway {
	b, err := json.Marshal(SampleRecord())
	if err != nil {
		panic(err)
	}
	return &StandInGateway{response: string(b)}
}

func (g *StandInGateway) Available() bool { return false }

func (g *StandInGateway) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return g.response, nil
}

func (g *StandInGateway) Rewrite(ctx context.Context, text, instruction string) (string, error) {
	switch ParseRewriteStyle(instruction) {
	case RewritePolite:
		return "【丁寧版】\n" + text, nil
	case RewriteConcise:
		r := []rune(text)
		return string(r[:len(r)/2]) + "...(以下省略)", nil
	case RewriteEnthusiastic:
		return "ぜひご検討ください！\n\n" + text + "\n\n何卒よろしくお願いいたします！", nil
	case RewriteFormal:
		return "拝啓\n\n" + text + "\n\n敬具", nil
	default:
		return "【" + instruction + "版】\n" + text, nil
	}
}

// SampleRecord is the posting the stand-in always extracts.
func SampleRecord() *model.JobRecord {
	remote := model.RemoteHybrid
	unit := model.RateMonthly
	minRate, maxRate := 700000.0, 900000.0
	interviews := 2
	return &model.JobRecord{
		Title:   ptr("【Python】データ基盤エンジニア"),
		Company: ptr("株式会社サンプルテック"),
		Role:    ptr("バックエンドエンジニア"),
		Summary: ptr("データ基盤の設計・構築を担当。既存システムのリプレイスプロジェクトに参画いただきます。"),
		MustRequirements: []string{
			"Python 3年以上",
			"SQLを用いたデータ処理経験",
			"AWSまたはGCPの実務経験",
		},
		NiceToHave: []string{
			"Airflow/Dagsterなどワークフローツールの経験",
			"Sparkの経験",
			"チームリード経験",
		},
		Tasks: []string{
			"データパイプラインの設計・実装",
			"既存バッチ処理のリファクタリング",
			"データ品質モニタリングの構築",
		},
		StackKeywords:  []string{"Python", "AWS", "Glue", "Athena", "Airflow", "Terraform"},
		Location:       ptr("東京都渋谷区"),
		RemoteType:     &remote,
		Rate:           &model.Rate{Min: &minRate, Max: &maxRate, Unit: &unit},
		StartDate:      ptr("2024年2月〜"),
		Duration:       ptr("長期（6ヶ月以上）"),
		InterviewCount: &interviews,
		WorkingHours:   ptr("週5日、140-180h/月"),
		ContractType:   ptr("業務委託"),
		Notes:          ptr("服装自由、フレックス制度あり"),
		RisksOrUnknowns: []string{
			"具体的なチーム構成が不明",
			"リプレイス完了後の体制について要確認",
		},
	}
}

func ptr(s string) *string { return &s }

package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullRecordJSON = `{
  "title": "データ基盤エンジニア",
  "company": "株式会社サンプル",
  "role": "バックエンド",
  "summary": "データ基盤の刷新",
  "must_requirements": ["Python 3年以上"],
  "nice_to_have": [],
  "tasks": ["設計"],
  "stack_keywords": ["Python", "AWS"],
  "location": "東京都渋谷区",
  "remote_type": "hybrid",
  "rate": {"min": 700000, "max": 900000, "unit": "monthly"},
  "start_date": "2024年2月〜",
  "duration": "長期",
  "interview_count": 2,
  "working_hours": "週5日",
  "contract_type": "業務委託",
  "notes": null,
  "risks_or_unknowns": ["チーム構成が不明"]
}`

func TestParseJobRecordFull(t *testing.T) {
	rec, err := ParseJobRecord(fullRecordJSON)
	require.NoError(t, err)

	assert.Equal(t, "データ基盤エンジニア", *rec.Title)
	assert.Equal(t, RemoteHybrid, *rec.RemoteType)
	require.NotNil(t, rec.Rate)
	assert.Equal(t, 700000.0, *rec.Rate.Min)
	assert.Equal(t, 900000.0, *rec.Rate.Max)
	assert.Equal(t, RateMonthly, *rec.Rate.Unit)
	assert.Equal(t, 2, *rec.InterviewCount)
	assert.Nil(t, rec.Notes)
	assert.Equal(t, []string{}, rec.NiceToHave)
	assert.Equal(t, []string{"Python", "AWS"}, rec.StackKeywords)
}

func TestParseJobRecordEmptyObject(t *testing.T) {
	rec, err := ParseJobRecord("  {}\n")
	require.NoError(t, err)

	assert.Nil(t, rec.Title)
	assert.Nil(t, rec.Rate)
	assert.NotNil(t, rec.MustRequirements)
	assert.Empty(t, rec.MustRequirements)
	assert.Empty(t, rec.RisksOrUnknowns)
}

func TestParseJobRecordMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"not json",
		"```json\n{}\n```",
		`{"title": "x"`,
		`["title"]`,
		`"just a string"`,
	} {
		_, err := ParseJobRecord(raw)
		assert.ErrorIs(t, err, ErrMalformedResponse, "input %q", raw)
	}
}

func TestParseJobRecordRejectsUndeclaredEnums(t *testing.T) {
	_, err := ParseJobRecord(`{"remote_type": "remote", "rate": {"unit": "weekly"}}`)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "remote_type", verr.Fields[0].Field)
	assert.Equal(t, "rate.unit", verr.Fields[1].Field)
}

func TestParseJobRecordTypeErrors(t *testing.T) {
	cases := map[string]string{
		"string as number":    `{"title": 3}`,
		"fractional count":    `{"interview_count": 1.5}`,
		"count as string":     `{"interview_count": "2"}`,
		"null list":           `{"tasks": null}`,
		"list of numbers":     `{"stack_keywords": ["Go", 1]}`,
		"rate not object":     `{"rate": "60万"}`,
		"negative rate":       `{"rate": {"min": -1}}`,
		"rate min as string":  `{"rate": {"min": "600000"}}`,
		"remote type boolean": `{"remote_type": true}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseJobRecord(raw)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Error())
		})
	}
}

func TestParseJobRecordIgnoresUnknownKeys(t *testing.T) {
	rec, err := ParseJobRecord(`{"title": "x", "salary": 1}`)
	require.NoError(t, err)
	assert.Equal(t, "x", *rec.Title)
}

func TestParseJobRecordIntegralFloatCount(t *testing.T) {
	rec, err := ParseJobRecord(`{"interview_count": 2.0}`)
	require.NoError(t, err)
	assert.Equal(t, 2, *rec.InterviewCount)
}

func TestJobRecordMarshalWritesEmptyLists(t *testing.T) {
	b, err := json.Marshal(JobRecord{})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, []any{}, m["tasks"])
	assert.Nil(t, m["title"])
	assert.Contains(t, m, "rate")
}

func TestJobRecordMarshalRoundTripThroughParser(t *testing.T) {
	rec, err := ParseJobRecord(fullRecordJSON)
	require.NoError(t, err)

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	again, err := ParseJobRecord(string(b))
	require.NoError(t, err)
	assert.True(t, rec.Equal(again))
}

func TestJobRecordEqual(t *testing.T) {
	a, err := ParseJobRecord(fullRecordJSON)
	require.NoError(t, err)
	b, err := ParseJobRecord(fullRecordJSON)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	other := "別会社"
	b.Company = &other
	assert.False(t, a.Equal(b))

	assert.True(t, (&JobRecord{}).Equal(&JobRecord{Tasks: []string{}}))
	assert.False(t, a.Equal(nil))
}

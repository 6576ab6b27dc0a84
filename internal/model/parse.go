package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"
)

// ErrMalformedResponse means the text could not be read as a JSON object.
var ErrMalformedResponse = eris.New("response is not a valid JSON object")

// FieldError describes one field that failed schema validation.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError collects every field failure found in one document.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: fmt.Sprintf(format, args...)})
}

// ParseJobRecord reads raw as a JSON object and validates it against the
// record schema. It returns ErrMalformedResponse for text that is not a JSON
// object and a *ValidationError when fields carry the wrong type or an
// undeclared enum value. Unknown keys are ignored.
func ParseJobRecord(raw string) (*JobRecord, error) {
	raw = strings.TrimSpace(raw)
	if !gjson.Valid(raw) {
		return nil, ErrMalformedResponse
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return nil, ErrMalformedResponse
	}

	verr := &ValidationError{}
	rec := &JobRecord{
		Title:            optString(doc, "title", verr),
		Company:          optString(doc, "company", verr),
		Role:             optString(doc, "role", verr),
		Summary:          optString(doc, "summary", verr),
		MustRequirements: stringList(doc, "must_requirements", verr),
		NiceToHave:       stringList(doc, "nice_to_have", verr),
		Tasks:            stringList(doc, "tasks", verr),
		StackKeywords:    stringList(doc, "stack_keywords", verr),
		Location:         optString(doc, "location", verr),
		RemoteType:       optRemoteType(doc, "remote_type", verr),
		Rate:             optRate(doc, "rate", verr),
		StartDate:        optString(doc, "start_date", verr),
		Duration:         optString(doc, "duration", verr),
		InterviewCount:   optInt(doc, "interview_count", verr),
		WorkingHours:     optString(doc, "working_hours", verr),
		ContractType:     optString(doc, "contract_type", verr),
		Notes:            optString(doc, "notes", verr),
		RisksOrUnknowns:  stringList(doc, "risks_or_unknowns", verr),
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return rec, nil
}

func isNull(v gjson.Result) bool {
	return !v.Exists() || v.Type == gjson.Null
}

func optString(doc gjson.Result, key string, verr *ValidationError) *string {
	v := doc.Get(key)
	if isNull(v) {
		return nil
	}
	if v.Type != gjson.String {
		verr.add(key, "expected string or null, got %s", v.Type)
		return nil
	}
	s := v.Str
	return &s
}

func optInt(doc gjson.Result, key string, verr *ValidationError) *int {
	v := doc.Get(key)
	if isNull(v) {
		return nil
	}
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) || math.Abs(v.Num) > math.MaxInt32 {
		verr.add(key, "expected integer or null, got %s", v.Raw)
		return nil
	}
	n := int(v.Num)
	return &n
}

func stringList(doc gjson.Result, key string, verr *ValidationError) []string {
	v := doc.Get(key)
	if !v.Exists() {
		return []string{}
	}
	if !v.IsArray() {
		verr.add(key, "expected array of strings, got %s", v.Type)
		return []string{}
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			verr.add(fmt.Sprintf("%s[%d]", key, i), "expected string, got %s", item.Type)
			continue
		}
		out = append(out, item.Str)
	}
	return out
}

func optRemoteType(doc gjson.Result, key string, verr *ValidationError) *RemoteType {
	v := doc.Get(key)
	if isNull(v) {
		return nil
	}
	r := RemoteType(v.Str)
	if v.Type != gjson.String || !r.Valid() {
		verr.add(key, "must be one of full_remote, hybrid, on_site or null, got %s", v.Raw)
		return nil
	}
	return &r
}

func optRate(doc gjson.Result, key string, verr *ValidationError) *Rate {
	v := doc.Get(key)
	if isNull(v) {
		return nil
	}
	if !v.IsObject() {
		verr.add(key, "expected object or null, got %s", v.Type)
		return nil
	}
	rate := &Rate{
		Min: optAmount(v, key+".min", "min", verr),
		Max: optAmount(v, key+".max", "max", verr),
	}
	if u := v.Get("unit"); !isNull(u) {
		unit := RateUnit(u.Str)
		if u.Type != gjson.String || !unit.Valid() {
			verr.add(key+".unit", "must be one of hourly, daily, monthly, yearly or null, got %s", u.Raw)
		} else {
			rate.Unit = &unit
		}
	}
	return rate
}

func optAmount(obj gjson.Result, field, key string, verr *ValidationError) *float64 {
	v := obj.Get(key)
	if isNull(v) {
		return nil
	}
	if v.Type != gjson.Number {
		verr.add(field, "expected number or null, got %s", v.Type)
		return nil
	}
	if v.Num < 0 {
		verr.add(field, "must not be negative, got %s", v.Raw)
		return nil
	}
	n := v.Num
	return &n
}

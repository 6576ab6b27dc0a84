// Package render turns a structured job record into Japanese text artifacts.
// Every function is total over any record: missing data renders as a
// fallback marker.
package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/fadilmartias/jobspec-studio/internal/model"
)

const (
	// Unknown marks a missing value.
	Unknown = "要確認"
	// NoRisks is shown instead of Unknown for an empty risk list.
	NoRisks = "特になし"

	listSeparator = "、"
)

var remoteLabels = map[model.RemoteType]string{
	model.RemoteFull:   "フルリモート",
	model.RemoteHybrid: "一部リモート",
	model.RemoteOnSite: "オンサイト",
}

var rateUnitLabels = map[model.RateUnit]string{
	model.RateHourly:  "時給",
	model.RateDaily:   "日給",
	model.RateMonthly: "月額",
	model.RateYearly:  "年額",
}

func formatString(s *string) string {
	if s == nil {
		return Unknown
	}
	return *s
}

func formatInt(n *int) string {
	if n == nil {
		return Unknown
	}
	return strconv.Itoa(*n)
}

func formatList(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, listSeparator)
}

// RemoteLabel maps a remote type to its display label.
func RemoteLabel(r *model.RemoteType) string {
	if r == nil {
		return Unknown
	}
	if label, ok := remoteLabels[*r]; ok {
		return label
	}
	return Unknown
}

// FormatRate renders a compensation range such as 月額700,000〜900,000円.
// Amounts are truncated to whole yen. An inverted range is printed as given.
func FormatRate(rate *model.Rate) string {
	if rate == nil {
		return Unknown
	}
	label := ""
	if rate.Unit != nil {
		label = rateUnitLabels[*rate.Unit]
	}
	switch {
	case rate.Min != nil && rate.Max != nil:
		return label + yen(*rate.Min) + "〜" + yen(*rate.Max) + "円"
	case rate.Min != nil:
		return label + yen(*rate.Min) + "円〜"
	case rate.Max != nil:
		return label + "〜" + yen(*rate.Max) + "円"
	default:
		return Unknown
	}
}

func yen(v float64) string {
	return humanize.Commaf(math.Trunc(v))
}

// hasRate reports whether at least one bound of the rate is known.
func hasRate(rate *model.Rate) bool {
	return rate != nil && (rate.Min != nil || rate.Max != nil)
}

package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/funnelmetrics/funnel-go/internal/models"
)

// Accepted input date layouts. Exports always write the first one, so an
// exported file re-parses to the same day.
var dateLayouts = []string{"2006-01-02", "01/02/2006", "1/2/2006"}

var requiredSet = func() map[string]struct{} {
	s := make(map[string]struct{})
	for _, c := range models.RequiredColumns() {
		s[c] = struct{}{}
	}
	return s
}()

// NormalizeRow converts one raw row into a typed CampaignRecord. idx is the
// zero-based position in the source sequence and becomes the record ID.
//
// Bad numeric cells fall back to 0 and bad dates to the zero-time sentinel;
// neither is an error. Negative numeric strings pass through unclamped to
// preserve source fidelity. Only a structurally broken row (a required cell
// absent entirely) returns an error.
func NormalizeRow(row map[string]string, idx int) (models.CampaignRecord, error) {
	if row == nil {
		return models.CampaignRecord{}, fmt.Errorf("row is not a cell map")
	}
	for _, col := range models.RequiredColumns() {
		if _, ok := row[col]; !ok {
			return models.CampaignRecord{}, fmt.Errorf("cell %q absent", col)
		}
	}

	rec := models.CampaignRecord{
		ID:                idx,
		Clicks:            parseInt(row[models.ColClicks]),
		Cost:              parseFloat(row[models.ColCost]),
		AvgCPC:            parseFloat(row[models.ColAvgCPC]),
		Installs:          parseInt(row[models.ColInstalls]),
		Trials:            parseInt(row[models.ColTrials]),
		Subscriptions:     parseInt(row[models.ColSubscriptions]),
		SubscriptionValue: parseFloat(row[models.ColSubscriptionValue]),
		StartDate:         ParseDate(row[models.ColStartDate]),
		EndDate:           ParseDate(row[models.ColEndDate]),
		AdGroup:           row[models.ColAdGroup],
	}

	for k, v := range row {
		if _, ok := requiredSet[k]; ok {
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]string)
		}
		rec.Extra[k] = v
	}
	return rec, nil
}

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseDate returns the zero time.Time for unparsable input. The zero value
// is the invalid-date sentinel: date filters with a lower bound never match
// it, so such records drop out of any bounded range.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatDate writes a date the way exports expect it. The invalid-date
// sentinel serializes as an empty cell.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayouts[0])
}

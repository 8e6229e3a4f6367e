// Package funnel holds the pure computation layer: filtering, aggregation
// with safe-division ratios, and funnel-stage projection. Nothing here
// mutates its input or returns an error.
package funnel

import (
	"net/url"
	"time"

	"github.com/funnelmetrics/funnel-go/internal/models"
)

// SafeDivide returns n/d, or 0 when the denominator is 0. Every ratio in
// this package routes through it so zero-record and zero-denominator inputs
// stay finite.
func SafeDivide(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}

// Filter returns the order-preserving subsequence of records matched by f.
// Pure projection: the source slice is never modified.
func Filter(records []models.CampaignRecord, f models.FilterState) []models.CampaignRecord {
	out := make([]models.CampaignRecord, 0, len(records))
	for _, r := range records {
		if matchDate(r, f) && matchAdGroup(r, f) {
			out = append(out, r)
		}
	}
	return out
}

// matchDate compares the record's start date only; the end date plays no
// part in filtering. With no lower bound every record passes, including
// those carrying the invalid-date sentinel.
func matchDate(r models.CampaignRecord, f models.FilterState) bool {
	if f.From.IsZero() {
		return true
	}
	if r.StartDate.Before(f.From) {
		return false
	}
	return f.To.IsZero() || !r.StartDate.After(f.To)
}

func matchAdGroup(r models.CampaignRecord, f models.FilterState) bool {
	if f.AdGroup == "" || f.AdGroup == models.AllAdGroups {
		return true
	}
	return r.AdGroup == f.AdGroup
}

// Aggregate reduces a record sequence into summary totals and derived
// ratios. Deterministic, side-effect free, and happy with empty input
// (all sums and ratios come back 0).
func Aggregate(records []models.CampaignRecord) models.SummaryTotals {
	var s models.SummaryTotals
	for _, r := range records {
		s.Clicks += r.Clicks
		s.Cost += r.Cost
		s.Installs += r.Installs
		s.Trials += r.Trials
		s.Subscriptions += r.Subscriptions
		s.Revenue += float64(r.Subscriptions) * r.SubscriptionValue
	}

	clicks := float64(s.Clicks)
	installs := float64(s.Installs)
	trials := float64(s.Trials)
	subs := float64(s.Subscriptions)

	s.CPI = SafeDivide(s.Cost, installs)
	s.InstallRate = SafeDivide(installs, clicks)
	s.InstallToTrialRate = SafeDivide(trials, installs)
	s.TrialCost = SafeDivide(s.Cost, trials)
	s.InstallToPaidRate = SafeDivide(subs, installs)
	s.TrialToPaidRate = SafeDivide(subs, trials)
	s.CAC = SafeDivide(s.Cost, subs)
	s.ValueCostRatio = SafeDivide(s.Revenue, s.Cost)
	s.OverallConversion = SafeDivide(subs, clicks)
	s.ROI = SafeDivide(s.Revenue-s.Cost, s.Cost)
	return s
}

// Project maps summary totals onto the fixed funnel-stage order. Values are
// taken as-is; monotonicity is assumed upstream, not enforced here.
func Project(s models.SummaryTotals) []models.FunnelStage {
	return []models.FunnelStage{
		{Name: "Clicks", Value: s.Clicks},
		{Name: "Installs", Value: s.Installs},
		{Name: "Trials", Value: s.Trials},
		{Name: "Subscriptions", Value: s.Subscriptions},
	}
}

// ParseFilter builds a FilterState from request query values. Unparsable
// dates are treated as unset rather than rejected.
func ParseFilter(v url.Values) models.FilterState {
	f := models.FilterState{AdGroup: v.Get("ad_group")}
	if t, err := time.Parse("2006-01-02", v.Get("from")); err == nil {
		f.From = t
	}
	if t, err := time.Parse("2006-01-02", v.Get("to")); err == nil {
		f.To = t
	}
	return f
}

package models

import "time"

// Required CSV columns, in the order schema errors report them.
const (
	ColClicks            = "Clicks"
	ColCost              = "Cost"
	ColAvgCPC            = "Avg. CPC"
	ColInstalls          = "Installs"
	ColTrials            = "Trials"
	ColSubscriptions     = "Subscriptions"
	ColSubscriptionValue = "Subscription Value"
	ColStartDate         = "Start Date"
	ColEndDate           = "End Date"
	ColAdGroup           = "Ad Group"
)

func RequiredColumns() []string {
	return []string{
		ColClicks, ColCost, ColAvgCPC, ColInstalls, ColTrials,
		ColSubscriptions, ColSubscriptionValue, ColStartDate, ColEndDate, ColAdGroup,
	}
}

// AllAdGroups is the sentinel meaning "no ad-group filter".
const AllAdGroups = "All Ad Groups"

// RawTable is a parsed CSV: ordered headers plus one map per data row.
// No type guarantees on the values.
type RawTable struct {
	Headers []string
	Rows    []map[string]string
}

// CampaignRecord is one normalized row of campaign performance data.
// Immutable after normalization; ID is the insertion index within a load.
type CampaignRecord struct {
	ID                int       `json:"id"`
	Clicks            int       `json:"clicks"`
	Cost              float64   `json:"cost"`
	AvgCPC            float64   `json:"avg_cpc"`
	Installs          int       `json:"installs"`
	Trials            int       `json:"trials"`
	Subscriptions     int       `json:"subscriptions"`
	SubscriptionValue float64   `json:"subscription_value"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	AdGroup           string    `json:"ad_group"`
	// Extra holds non-required columns untouched, for export fidelity.
	Extra map[string]string `json:"extra,omitempty"`
}

// Dataset is the immutable result of one successful load.
type Dataset struct {
	SessionID string
	LoadedAt  time.Time
	Headers   []string // original column order, required and extra
	Records   []CampaignRecord
}

// AdGroups returns the distinct ad-group labels in first-seen order.
func (d *Dataset) AdGroups() []string {
	seen := make(map[string]struct{}, 8)
	var out []string
	for _, r := range d.Records {
		if _, ok := seen[r.AdGroup]; ok {
			continue
		}
		seen[r.AdGroup] = struct{}{}
		out = append(out, r.AdGroup)
	}
	return out
}

// FilterState selects records by start date and ad group. Zero From/To mean
// unset; AdGroup equal to AllAdGroups (or empty) means no category filter.
type FilterState struct {
	From    time.Time
	To      time.Time
	AdGroup string
}

// SummaryTotals aggregates a record set: raw sums plus derived ratios.
// Revenue is the weighted sum of subscriptions*subscriptionValue per record,
// not a naive sum of the subscription-value column.
type SummaryTotals struct {
	Clicks        int     `json:"clicks"`
	Cost          float64 `json:"cost"`
	Installs      int     `json:"installs"`
	Trials        int     `json:"trials"`
	Subscriptions int     `json:"subscriptions"`
	Revenue       float64 `json:"revenue"`

	CPI                float64 `json:"cpi"`
	InstallRate        float64 `json:"install_rate"`
	InstallToTrialRate float64 `json:"install_to_trial_rate"`
	TrialCost          float64 `json:"trial_cost"`
	InstallToPaidRate  float64 `json:"install_to_paid_rate"`
	TrialToPaidRate    float64 `json:"trial_to_paid_rate"`
	CAC                float64 `json:"cac"`
	ValueCostRatio     float64 `json:"value_cost_ratio"`
	OverallConversion  float64 `json:"overall_conversion"`
	ROI                float64 `json:"roi"`
}

// FunnelStage is one step of the acquisition funnel.
type FunnelStage struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

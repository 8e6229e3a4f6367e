// Package export writes the current filtered view back out as CSV. The
// formatting round-trips: feeding a report back through the load pipeline
// reproduces numerically equal records, dates to day precision.
package export

import (
	"strconv"

	"github.com/funnelmetrics/funnel-go/internal/csvio"
	"github.com/funnelmetrics/funnel-go/internal/dataset"
	"github.com/funnelmetrics/funnel-go/internal/models"
)

type Serializer struct {
	codec csvio.Codec
}

func NewSerializer(codec csvio.Codec) *Serializer { return &Serializer{codec: codec} }

// Report serializes records under the dataset's original header order,
// typed columns re-formatted and passthrough columns verbatim.
func (s *Serializer) Report(headers []string, records []models.CampaignRecord) (string, error) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, len(headers))
		for i, h := range headers {
			row[i] = cell(r, h)
		}
		rows = append(rows, row)
	}
	return s.codec.Encode(headers, rows)
}

// Template produces the header-only CSV used to bootstrap input files.
func (s *Serializer) Template() (string, error) {
	return s.codec.Encode(models.RequiredColumns(), nil)
}

func cell(r models.CampaignRecord, col string) string {
	switch col {
	case models.ColClicks:
		return strconv.Itoa(r.Clicks)
	case models.ColCost:
		return formatFloat(r.Cost)
	case models.ColAvgCPC:
		return formatFloat(r.AvgCPC)
	case models.ColInstalls:
		return strconv.Itoa(r.Installs)
	case models.ColTrials:
		return strconv.Itoa(r.Trials)
	case models.ColSubscriptions:
		return strconv.Itoa(r.Subscriptions)
	case models.ColSubscriptionValue:
		return formatFloat(r.SubscriptionValue)
	case models.ColStartDate:
		return dataset.FormatDate(r.StartDate)
	case models.ColEndDate:
		return dataset.FormatDate(r.EndDate)
	case models.ColAdGroup:
		return r.AdGroup
	default:
		return r.Extra[col]
	}
}

// formatFloat keeps the shortest representation that re-parses to the same
// float64, so exported numerics survive a reimport exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

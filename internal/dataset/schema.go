package dataset

import "github.com/funnelmetrics/funnel-go/internal/models"

// ValidateSchema checks the header row against the required-column set.
// Matching is exact: no case folding, no whitespace trimming. A single
// missing column rejects the entire load.
func ValidateSchema(headers []string) error {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
	}
	var missing []string
	for _, col := range models.RequiredColumns() {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

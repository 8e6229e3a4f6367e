package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnelmetrics/funnel-go/internal/models"
)

func TestValidateSchemaComplete(t *testing.T) {
	headers := append(models.RequiredColumns(), "Campaign", "Notes")
	assert.NoError(t, ValidateSchema(headers))
}

func TestValidateSchemaMissingOne(t *testing.T) {
	var headers []string
	for _, c := range models.RequiredColumns() {
		if c == models.ColSubscriptionValue {
			continue
		}
		headers = append(headers, c)
	}

	err := ValidateSchema(headers)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"Subscription Value"}, se.Missing)
}

func TestValidateSchemaMissingOrder(t *testing.T) {
	// Input order must not leak into the error: missing columns come back
	// in required-set order.
	headers := []string{"Ad Group", "End Date", "Start Date", "Subscription Value", "Subscriptions"}

	err := ValidateSchema(headers)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"Clicks", "Cost", "Avg. CPC", "Installs", "Trials"}, se.Missing)
}

func TestValidateSchemaExactMatch(t *testing.T) {
	// No case folding, no trimming.
	headers := []string{"clicks", "Cost ", "Avg. CPC", "Installs", "Trials",
		"Subscriptions", "Subscription Value", "Start Date", "End Date", "Ad Group"}

	err := ValidateSchema(headers)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"Clicks", "Cost"}, se.Missing)
}

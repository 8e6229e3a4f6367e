package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRow() map[string]string {
	return map[string]string{
		"Clicks":             "100",
		"Cost":               "50",
		"Avg. CPC":           "0.5",
		"Installs":           "20",
		"Trials":             "10",
		"Subscriptions":      "5",
		"Subscription Value": "20",
		"Start Date":         "2024-03-01",
		"End Date":           "2024-03-31",
		"Ad Group":           "Search US",
	}
}

func TestNormalizeRowTyped(t *testing.T) {
	rec, err := NormalizeRow(fullRow(), 3)
	require.NoError(t, err)

	assert.Equal(t, 3, rec.ID)
	assert.Equal(t, 100, rec.Clicks)
	assert.Equal(t, 50.0, rec.Cost)
	assert.Equal(t, 0.5, rec.AvgCPC)
	assert.Equal(t, 20, rec.Installs)
	assert.Equal(t, 10, rec.Trials)
	assert.Equal(t, 5, rec.Subscriptions)
	assert.Equal(t, 20.0, rec.SubscriptionValue)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), rec.StartDate)
	assert.Equal(t, "Search US", rec.AdGroup)
	assert.Nil(t, rec.Extra)
}

func TestNormalizeRowBadNumericsFallBackToZero(t *testing.T) {
	row := fullRow()
	row["Cost"] = "abc"
	row["Clicks"] = ""
	row["Subscription Value"] = "n/a"

	rec, err := NormalizeRow(row, 0)
	require.NoError(t, err)
	assert.Zero(t, rec.Cost)
	assert.Zero(t, rec.Clicks)
	assert.Zero(t, rec.SubscriptionValue)
}

func TestNormalizeRowNegativePassesThrough(t *testing.T) {
	row := fullRow()
	row["Clicks"] = "-7"
	row["Cost"] = "-1.25"

	rec, err := NormalizeRow(row, 0)
	require.NoError(t, err)
	assert.Equal(t, -7, rec.Clicks)
	assert.Equal(t, -1.25, rec.Cost)
}

func TestNormalizeRowInvalidDateSentinel(t *testing.T) {
	row := fullRow()
	row["Start Date"] = "not a date"

	rec, err := NormalizeRow(row, 0)
	require.NoError(t, err)
	assert.True(t, rec.StartDate.IsZero())
}

func TestNormalizeRowPassthroughColumns(t *testing.T) {
	row := fullRow()
	row["Campaign"] = "Spring Launch"
	row["Notes"] = "paused mid-month"

	rec, err := NormalizeRow(row, 0)
	require.NoError(t, err)
	assert.Equal(t, "Spring Launch", rec.Extra["Campaign"])
	assert.Equal(t, "paused mid-month", rec.Extra["Notes"])
}

func TestNormalizeRowStructuralFaults(t *testing.T) {
	_, err := NormalizeRow(nil, 0)
	assert.Error(t, err)

	row := fullRow()
	delete(row, "Ad Group")
	_, err = NormalizeRow(row, 0)
	assert.Error(t, err)
}

func TestParseDateLayouts(t *testing.T) {
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-03-01", "03/01/2024", "3/1/2024", " 2024-03-01 "} {
		assert.Equal(t, want, ParseDate(in), "input %q", in)
	}
	assert.True(t, ParseDate("2024-13-45").IsZero())
	assert.True(t, ParseDate("").IsZero())
}

func TestFormatDateRoundTrip(t *testing.T) {
	d := time.Date(2024, 7, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, d, ParseDate(FormatDate(d)))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

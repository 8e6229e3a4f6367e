// Package dataset turns raw CSV input into the typed, immutable record set
// everything downstream consumes. All load failures surface here; filtering
// and aggregation never fail once a dataset exists.
package dataset

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/funnelmetrics/funnel-go/internal/csvio"
	"github.com/funnelmetrics/funnel-go/internal/models"
)

// Loader runs the full load pipeline: decode, schema validation, per-row
// normalization. The codec is injected so the CSV mechanics stay swappable.
type Loader struct {
	codec csvio.Codec
}

func NewLoader(codec csvio.Codec) *Loader { return &Loader{codec: codec} }

// Load produces a complete dataset or one of the load-boundary errors
// (ParseError, SchemaError, RowProcessingError). No partial dataset is ever
// returned: the first row fault discards the whole batch.
func (l *Loader) Load(r io.Reader) (*models.Dataset, error) {
	table, err := l.codec.Decode(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := ValidateSchema(table.Headers); err != nil {
		return nil, err
	}

	records := make([]models.CampaignRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		rec, err := normalizeGuarded(row, i)
		if err != nil {
			// +2: header row plus 1-based display numbering.
			return nil, &RowProcessingError{Row: i + 2, Err: err}
		}
		records = append(records, rec)
	}

	return &models.Dataset{
		SessionID: uuid.NewString(),
		LoadedAt:  time.Now().UTC(),
		Headers:   table.Headers,
		Records:   records,
	}, nil
}

// normalizeGuarded converts a panic inside row normalization into an error
// so a single poisoned row fails the batch instead of the process.
func normalizeGuarded(row map[string]string, idx int) (rec models.CampaignRecord, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("row processing panic: %v", p)
		}
	}()
	return NormalizeRow(row, idx)
}

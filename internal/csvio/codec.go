// Package csvio is the CSV codec capability injected into the load and
// export paths, so nothing else in the tree touches encoding/csv directly.
package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/funnelmetrics/funnel-go/internal/models"
)

// Codec parses CSV input into a RawTable and writes tables back out.
type Codec interface {
	Decode(r io.Reader) (*models.RawTable, error)
	Encode(headers []string, rows [][]string) (string, error)
}

type stdCodec struct{}

func NewCodec() Codec { return stdCodec{} }

func (stdCodec) Decode(r io.Reader) (*models.RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows surface later as row errors, not here

	// Headers pass through byte for byte: schema matching is whitespace-
	// and case-sensitive, so the codec must not normalize them.
	headers, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: header row required")
	}
	if err != nil {
		return nil, err
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return &models.RawTable{Headers: headers, Rows: rows}, nil
}

func (stdCodec) Encode(headers []string, rows [][]string) (string, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(headers); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

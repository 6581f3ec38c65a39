package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rosterdb/rosterdb/internal/core/roster"
)

// Format selects an output encoding for a record sequence.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

var (
	ErrInvalidFormat  = errors.New("invalid export format")
	ErrEmptyResultSet = errors.New("empty result set")
)

// Download is an encoded result set plus the static per-format metadata the
// HTTP layer needs to serve it as an attachment.
type Download struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Encode renders records in the requested format. CSV derives its header
// from the record attribute order and applies standard field quoting; it
// fails with ErrEmptyResultSet when there is no record to derive a header
// from. JSON encodes an empty sequence as [].
func Encode(records []*roster.Record, format Format) (*Download, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(records)
	case FormatCSV:
		return encodeCSV(records)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

func encodeJSON(records []*roster.Record) (*Download, error) {
	if records == nil {
		records = []*roster.Record{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}

	return &Download{
		Data:        data,
		ContentType: "application/json",
		Filename:    "nba_players_filtered.json",
	}, nil
}

func encodeCSV(records []*roster.Record) (*Download, error) {
	if len(records) == 0 {
		return nil, ErrEmptyResultSet
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(records[0].Columns()); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(record.Values()); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return &Download{
		Data:        buf.Bytes(),
		ContentType: "text/csv",
		Filename:    "nba_players_filtered.csv",
	}, nil
}

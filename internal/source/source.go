// Package source loads tables from CSV and snapshot (JSON or YAML) input.
package source

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hrutik5321/dhumal/internal/ui/table"
)

const (
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DetectFormat guesses the input format from a file name, defaulting to CSV.
func DetectFormat(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".tsv", ".tab":
		return FormatTSV
	}
	return FormatCSV
}

type CSVOptions struct {
	Comma rune
	// Heading takes the first record as the heading row.
	Heading bool
	// RawText keeps numeric-looking fields as text so they align left.
	RawText bool
}

// ReadCSV reads delimited records into a table. Records may have different lengths.
func ReadCSV(r io.Reader, opts CSVOptions) (*table.Table, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1

	t := table.New("")
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		if first && opts.Heading {
			t.SetHeading(table.Strings(rec...))
			first = false
			continue
		}
		first = false

		row := make(table.Row, len(rec))
		for i, field := range rec {
			row[i] = fieldCell(field, opts.RawText)
		}
		t.AddRow(row)
	}
	return t, nil
}

// fieldCell makes JSON number literals Numbers; everything else, including "+5",
// "007" and "NaN", stays Text.
func fieldCell(field string, raw bool) table.Cell {
	if raw {
		return table.Text(field)
	}
	return table.Number(field)
}

// ReadSnapshot decodes a {title, heading, rows} document. JSON and YAML share one
// schema; numbers keep their literal text in both.
func ReadSnapshot(r io.Reader, format string) (*table.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap table.Snapshot
	if format == FormatYAML {
		if snap, err = decodeYAML(data); err != nil {
			return nil, fmt.Errorf("parse yaml snapshot: %w", err)
		}
		return table.FromSnapshot(snap), nil
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return table.FromSnapshot(snap), nil
}

// Read dispatches on format.
func Read(r io.Reader, format string, opts CSVOptions) (*table.Table, error) {
	switch format {
	case FormatJSON, FormatYAML:
		return ReadSnapshot(r, format)
	case FormatTSV:
		opts.Comma = '\t'
		return ReadCSV(r, opts)
	case FormatCSV, "":
		return ReadCSV(r, opts)
	}
	return nil, fmt.Errorf("unknown input format %q", format)
}

// WriteSnapshot encodes the snapshot of t as indented JSON or YAML.
func WriteSnapshot(w io.Writer, t *table.Table, format string) error {
	if format == FormatYAML {
		data, err := encodeYAML(t.Snapshot())
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	data, err := json.MarshalIndent(t.Snapshot(), "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

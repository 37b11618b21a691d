// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collection reads collection exports: comma-separated files with a
// header line followed by one record per release in a fixed 13-column
// layout.
package collection

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/labelsheet/pkg/types"
)

// ErrArity is returned for a record that does not have types.RowArity fields.
var ErrArity = errors.New("wrong number of fields")

// utf8BOM prefixes exports saved by some spreadsheet tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile opens the export at path and parses it with Read.
func ReadFile(path string) ([]types.CollectionRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.InputError{Path: path, Err: fmt.Errorf("can't open CSV file: %w", err)}
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		var inErr *types.InputError
		if errors.As(err, &inErr) {
			inErr.Path = path
			return nil, inErr
		}
		return nil, &types.InputError{Path: path, Err: err}
	}
	return rows, nil
}

// Read parses an export from r. The first record is the header and is
// skipped. Any later record with the wrong number of fields aborts the read.
func Read(r io.Reader) ([]types.CollectionRow, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	var rows []types.CollectionRow
	header := true
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &types.InputError{Err: fmt.Errorf("file not CSV file: %w", err)}
		}
		if header {
			header = false
			continue
		}
		line, _ := cr.FieldPos(0)
		row, err := FromRecord(record, line)
		if err != nil {
			return nil, &types.InputError{Line: line, Err: err}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FromRecord maps the positional fields of one record onto a row.
func FromRecord(record []string, line int) (types.CollectionRow, error) {
	if len(record) != types.RowArity {
		return types.CollectionRow{}, fmt.Errorf("%w: got %d, want %d", ErrArity, len(record), types.RowArity)
	}
	return types.CollectionRow{
		CatalogueNumber:  record[0],
		Artist:           record[1],
		Title:            record[2],
		Label:            record[3],
		Format:           record[4],
		Rating:           record[5],
		Released:         record[6],
		ReleaseID:        record[7],
		CollectionFolder: record[8],
		DateAdded:        record[9],
		MediaCondition:   record[10],
		SleeveCondition:  record[11],
		Notes:            record[12],
		Line:             line,
	}, nil
}

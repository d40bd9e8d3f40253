package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ParseCSV reads a comma-delimited table with a header row. Records that fail
// to parse are collected in Table.Skipped and reading continues.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrSourceMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrSourceMalformed, err)
	}
	table := newTable(header)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			table.skip(parseErr.StartLine, parseErr.Err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceMalformed, err)
		}

		line, _ := reader.FieldPos(0)
		if !validUTF8(record) {
			table.skip(line, errors.New("invalid UTF-8"))
			continue
		}
		table.appendRecord(line, record)
	}
	return table, nil
}

func validUTF8(record []string) bool {
	for _, field := range record {
		if !utf8.ValidString(field) {
			return false
		}
	}
	return true
}

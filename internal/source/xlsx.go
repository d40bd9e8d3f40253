package source

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads a table from a workbook sheet. The first row is the header.
// An empty sheet name selects the first sheet in the workbook.
func ParseXLSX(r io.Reader, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: excelize.OpenReader > %w", ErrSourceMalformed, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrSourceMalformed)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: f.GetRows(%s) > %w", ErrSourceMalformed, sheet, err)
	}

	var table *Table
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		if table == nil {
			table = newTable(row)
			continue
		}
		table.appendRecord(i+1, row)
	}
	if table == nil {
		return nil, fmt.Errorf("%w: sheet %s has no header row", ErrSourceMalformed, sheet)
	}
	return table, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

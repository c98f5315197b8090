package loader

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/extrame/xls"
)

const maxRows = 65536

func decodeXLS(data []byte) (v any, err error) {
	// extrame/xls panics on some truncated workbooks.
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, fmt.Errorf("error reading workbook: %v", r)
		}
	}()

	workbook, err := xls.OpenReader(bytes.NewReader(data), "cp1252")
	if err != nil {
		return nil, fmt.Errorf("error creating workbook: %w", err)
	}

	return rowsToRecords(workbook.ReadAllCells(maxRows)), nil
}

// rowsToRecords treats the first non-blank row as the header and turns every
// later non-blank row into an object keyed by header cell. Cell values stay
// strings.
func rowsToRecords(rows [][]string) []any {
	records := make([]any, 0, len(rows))

	var header []string
	for _, row := range rows {
		if isBlank(row) {
			continue
		}

		if header == nil {
			header = make([]string, len(row))
			for i, cell := range row {
				header[i] = strings.TrimSpace(cell)
			}
			continue
		}

		record := make(map[string]any, len(header))
		for i, key := range header {
			if key == "" || i >= len(row) {
				continue
			}
			record[key] = strings.TrimSpace(row[i])
		}
		records = append(records, record)
	}

	return records
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

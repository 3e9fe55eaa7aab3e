// Package parser holds the format-specific front ends that turn raw
// statement bytes into either ordered rows (tabular sources) or extracted
// text (PDF sources). Front ends decode only; field resolution and
// classification happen downstream.
package parser

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates a workbook that decodes but carries no worksheets.
var ErrNoSheets = fmt.Errorf("workbook has no sheets")

// ExcelRows decodes an XLSX workbook and returns the cell grid of its first
// worksheet. Blank cells surface as empty strings. Decode failure is the
// only fatal, whole-document error in this front end.
func ExcelRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
)

// statementRow is the struct-based fast path for CSV exports whose headers
// already use the common statement names. gocsv matches columns by header,
// so field order in the file does not matter.
type statementRow struct {
	Date        string `csv:"date"`
	Particulars string `csv:"particulars"`
	Narration   string `csv:"narration"`
	Withdrawals string `csv:"withdrawals"`
	Debit       string `csv:"debit"`
	DrCr        string `csv:"dr/cr"`
	Type        string `csv:"type"`
}

// CSVRows decodes a CSV statement export into a cell grid. Files with
// recognizable headers go through the typed gocsv path; everything else is
// read generically with a lenient reader and left for the column sniffer to
// work out.
func CSVRows(data []byte) ([][]string, error) {
	if rows, ok := typedCSVRows(data); ok {
		return rows, nil
	}
	return genericCSVRows(data)
}

// typedCSVRows attempts struct-based unmarshaling. It succeeds only when at
// least one row carries both a date and an amount token, so header-less or
// foreign-layout files fall through to the generic reader.
func typedCSVRows(data []byte) ([][]string, bool) {
	var parsed []statementRow
	if err := gocsv.UnmarshalBytes(data, &parsed); err != nil || len(parsed) == 0 {
		return nil, false
	}

	rows := [][]string{{"date", "particulars", "withdrawals", "dr/cr"}}
	usable := 0
	for _, r := range parsed {
		desc := r.Particulars
		if desc == "" {
			desc = r.Narration
		}
		amount := r.Withdrawals
		if amount == "" {
			amount = r.Debit
		}
		marker := r.DrCr
		if marker == "" {
			marker = r.Type
		}
		if strings.TrimSpace(r.Date) != "" && strings.TrimSpace(amount) != "" {
			usable++
		}
		rows = append(rows, []string{r.Date, desc, amount, marker})
	}
	if usable == 0 {
		return nil, false
	}
	return rows, true
}

func genericCSVRows(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

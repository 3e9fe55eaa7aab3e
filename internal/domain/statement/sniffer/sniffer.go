// Package sniffer resolves which columns of a tabular statement hold the
// four semantic fields (date, description, amount, debit/credit marker).
// Detection never fails: when no header row qualifies it degrades to a
// positional default so downstream stages can still walk the rows.
package sniffer

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Unknown marks a column the sniffer could not resolve.
const Unknown = -1

// headerScanWindow bounds how many leading rows are probed for headers.
const headerScanWindow = 10

// Mapping is the immutable result of column classification. Each index is
// either a valid 0-based column or Unknown.
type Mapping struct {
	Date        int
	Description int
	Amount      int
	Type        int

	// HeaderRow is the detected (or forced) header row index. Data rows
	// start strictly after it.
	HeaderRow int
}

// Resolved counts how many of the four fields were identified.
func (m Mapping) Resolved() int {
	n := 0
	for _, idx := range []int{m.Date, m.Description, m.Amount, m.Type} {
		if idx != Unknown {
			n++
		}
	}
	return n
}

// Exact header names, matched after lower-casing and trimming.
var (
	exactDate   = []string{"date"}
	exactDesc   = []string{"particulars", "narration"}
	exactAmount = []string{"withdrawals", "debit", "dr"}
	exactType   = []string{"dr/cr", "type", "tran type"}
)

// Broader keyword lists for the fuzzy pass. Substring containment first,
// then subsequence matching to absorb spacing and punctuation variants
// ("Txn Date", "Withdrawal Amt.").
var (
	fuzzyDate   = []string{"date", "txn date", "value date", "transaction date"}
	fuzzyDesc   = []string{"particular", "narration", "description", "details", "remarks", "transaction remarks"}
	fuzzyAmount = []string{"withdrawal", "debit", "dr amount", "amount", "amt"}
	fuzzyType   = []string{"dr/cr", "cr/dr", "dr cr", "type", "indicator"}
)

// Detect scans at most the first ten rows for a header row and returns the
// resulting Mapping. A row qualifies once at least two of the four fields
// resolve; the earliest qualifying row wins. When no row qualifies, row 0 is
// treated as the header unconditionally and only the exact pass is re-run
// against it. Detect never signals an error; callers must tolerate Unknown
// indices.
func Detect(rows [][]string) Mapping {
	limit := len(rows)
	if limit > headerScanWindow {
		limit = headerScanWindow
	}

	for i := 0; i < limit; i++ {
		m := classifyRow(rows[i], true)
		if m.Resolved() >= 2 {
			m.HeaderRow = i
			return m
		}
	}

	// Degrade rather than fail: force row 0, exact matching only. All four
	// indices may remain unresolved.
	m := Mapping{Date: Unknown, Description: Unknown, Amount: Unknown, Type: Unknown}
	if len(rows) > 0 {
		m = classifyRow(rows[0], false)
	}
	m.HeaderRow = 0
	if m.Date == Unknown && m.Resolved() < 2 {
		// Positional default: assume the leading column is the date.
		m.Date = 0
	}
	return m
}

func classifyRow(row []string, fuzzyPass bool) Mapping {
	m := Mapping{Date: Unknown, Description: Unknown, Amount: Unknown, Type: Unknown}

	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = strings.ToLower(strings.TrimSpace(cell))
	}

	// First pass: exact names.
	for i, cell := range cells {
		switch {
		case m.Date == Unknown && matchesExact(cell, exactDate):
			m.Date = i
		case m.Description == Unknown && matchesExact(cell, exactDesc):
			m.Description = i
		case m.Amount == Unknown && matchesExact(cell, exactAmount):
			m.Amount = i
		case m.Type == Unknown && matchesExact(cell, exactType):
			m.Type = i
		}
	}

	if !fuzzyPass {
		return m
	}

	// Second pass: fuzzy keywords fill whatever the exact pass left open.
	for i, cell := range cells {
		if cell == "" {
			continue
		}
		if taken(i, m) {
			continue
		}
		switch {
		case m.Type == Unknown && matchesFuzzy(cell, fuzzyType):
			m.Type = i
		case m.Date == Unknown && matchesFuzzy(cell, fuzzyDate):
			m.Date = i
		case m.Description == Unknown && matchesFuzzy(cell, fuzzyDesc):
			m.Description = i
		case m.Amount == Unknown && matchesFuzzy(cell, fuzzyAmount):
			m.Amount = i
		}
	}

	return m
}

func taken(idx int, m Mapping) bool {
	return idx == m.Date || idx == m.Description || idx == m.Amount || idx == m.Type
}

func matchesExact(cell string, names []string) bool {
	for _, name := range names {
		if cell == name {
			return true
		}
	}
	return false
}

func matchesFuzzy(cell string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(cell, kw) {
			return true
		}
	}
	// Subsequence match tolerates punctuation and spacing noise, but only
	// for headers short enough that it stays meaningful.
	if len(cell) <= 24 {
		for _, kw := range keywords {
			if len(kw) >= 4 && fuzzy.Match(kw, cell) {
				return true
			}
		}
	}
	return false
}

// ProbeDateOrder inspects sample date cells below the header and reports
// whether they are provably day-first (a leading component above 12).
// Returns (dayFirst, confident); when not confident the caller keeps its
// configured default.
func ProbeDateOrder(rows [][]string, m Mapping) (bool, bool) {
	if m.Date == Unknown {
		return false, false
	}
	for i := m.HeaderRow + 1; i < len(rows); i++ {
		row := rows[i]
		if m.Date >= len(row) {
			continue
		}
		first, second, ok := splitDateParts(row[m.Date])
		if !ok {
			continue
		}
		if first > 12 && first <= 31 {
			return true, true
		}
		if second > 12 && second <= 31 {
			return false, true
		}
	}
	return false, false
}

func splitDateParts(val string) (int, int, bool) {
	parts := strings.FieldsFunc(strings.TrimSpace(val), func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	if len(parts) < 2 {
		return 0, 0, false
	}
	first, ok1 := leadingInt(parts[0])
	second, ok2 := leadingInt(parts[1])
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return first, second, true
}

func leadingInt(s string) (int, bool) {
	n := 0
	seen := false
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		seen = true
	}
	return n, seen && n > 0
}

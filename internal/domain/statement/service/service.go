// Package service wires the statement front ends, the normalizer, the
// column sniffer and the classifiers into the extraction engine. The engine
// is a pure, synchronous, single-document transform: one statement in, one
// ordered transaction sequence out, no shared mutable state between
// invocations. It may be invoked concurrently for independent documents.
package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/spendlens/statement-engine/internal/domain/statement"
	"github.com/spendlens/statement-engine/internal/domain/statement/classifier"
	"github.com/spendlens/statement-engine/internal/domain/statement/normalizer"
	"github.com/spendlens/statement-engine/internal/domain/statement/parser"
	"github.com/spendlens/statement-engine/internal/domain/statement/sniffer"
)

// Engine extracts normalized withdrawal transactions from statement bytes.
type Engine struct {
	logger     *slog.Logger
	monthFirst bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithMonthFirstDates flips the default day-first reading of ambiguous
// two-part dates. The per-document dialect probe still overrides it when
// the sample rows are unambiguous.
func WithMonthFirstDates() Option {
	return func(e *Engine) { e.monthFirst = true }
}

// New creates an extraction engine. A nil logger falls back to the default
// slog logger.
func New(logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Skip records one candidate that was dropped for a per-record fault.
// Fewer records than expected plus these diagnostics are the only
// observable symptoms of per-record failures.
type Skip struct {
	Row    int
	Reason string
	Raw    string
}

// Result is the outcome of one extraction run.
type Result struct {
	RunID          uuid.UUID
	Transactions   []statement.Transaction
	RowsSeen       int
	RowsSkipped    int
	CreditsDropped int
	Excluded       int
	Skips          []Skip
}

// ParseWorkbook runs the tabular pipeline over an XLSX workbook (first
// worksheet only). Failure to decode the container is the only error.
func (e *Engine) ParseWorkbook(data []byte) (*Result, error) {
	rows, err := parser.ExcelRows(data)
	if err != nil {
		return nil, fmt.Errorf("workbook front end: %w", err)
	}
	return e.extractRows(rows), nil
}

// ParseCSV runs the tabular pipeline over a CSV export.
func (e *Engine) ParseCSV(data []byte) (*Result, error) {
	rows, err := parser.CSVRows(data)
	if err != nil {
		return nil, fmt.Errorf("csv front end: %w", err)
	}
	return e.extractRows(rows), nil
}

// ParsePDF extracts the document text and runs the free-text pipeline.
func (e *Engine) ParsePDF(data []byte) (*Result, error) {
	text, err := parser.PDFText(data)
	if err != nil {
		return nil, fmt.Errorf("pdf front end: %w", err)
	}
	return e.ExtractText(text), nil
}

// ExtractText runs the free-text pipeline over already-extracted document
// text. Exposed for callers that bring their own text extraction.
func (e *Engine) ExtractText(text string) *Result {
	result := &Result{RunID: uuid.New()}
	norm := &normalizer.Normalizer{MonthFirst: e.monthFirst}

	candidates := parser.TextCandidates(text)
	records := make([]statement.RawRecord, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, statement.RawRecord{
			Row:         c.Ordinal,
			Date:        c.Date,
			Description: c.Description,
			Amount:      c.Amount,
			TypeMarker:  c.Marker,
		})
	}

	e.assemble(result, norm, records)
	e.logSummary("text", result)
	return result
}

// extractRows classifies columns, probes the date dialect and assembles
// transactions from every row after the header.
func (e *Engine) extractRows(rows [][]string) *Result {
	result := &Result{RunID: uuid.New()}

	mapping := sniffer.Detect(rows)
	norm := &normalizer.Normalizer{MonthFirst: e.monthFirst}
	if dayFirst, confident := sniffer.ProbeDateOrder(rows, mapping); confident {
		norm.MonthFirst = !dayFirst
	}

	records := make([]statement.RawRecord, 0, len(rows))
	for i := mapping.HeaderRow + 1; i < len(rows); i++ {
		row := rows[i]
		if emptyRow(row) {
			result.RowsSkipped++
			continue
		}
		date := cell(row, mapping.Date)
		amount := cell(row, mapping.Amount)
		if date == "" || amount == "" {
			// Not a transaction row (separator, subtotal, ragged cells).
			result.RowsSkipped++
			continue
		}
		records = append(records, statement.RawRecord{
			Row:         i + 1,
			Date:        date,
			Description: cell(row, mapping.Description),
			Amount:      amount,
			TypeMarker:  cell(row, mapping.Type),
			Fields:      row,
		})
	}

	e.assemble(result, norm, records)
	e.logSummary("tabular", result)
	return result
}

// assemble turns raw records into transactions with per-record fault
// isolation: each record yields either a transaction, a dropped credit, or
// a skip diagnostic, and a failing record never affects its siblings. The
// exclusion sweep runs last as a separate filtering pass.
func (e *Engine) assemble(result *Result, norm *normalizer.Normalizer, records []statement.RawRecord) {
	result.RowsSeen += len(records)

	candidates := make([]statement.Transaction, 0, len(records))
	for _, rec := range records {
		tx, skip := buildTransaction(norm, rec)
		if skip != nil {
			result.Skips = append(result.Skips, *skip)
			e.logger.Warn("record skipped",
				"row", skip.Row, "reason", skip.Reason, "raw", skip.Raw)
			continue
		}
		if tx == nil {
			result.CreditsDropped++
			continue
		}
		candidates = append(candidates, *tx)
	}

	for _, tx := range candidates {
		if classifier.Excluded(tx) {
			result.Excluded++
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}
}

// buildTransaction normalizes and classifies one record. Returns
// (nil, nil) for records classified as credits. The skip result stands in
// for the catch-log-skip contract: malformed records surface as a value,
// never as a panic or batch abort.
func buildTransaction(norm *normalizer.Normalizer, rec statement.RawRecord) (*statement.Transaction, *Skip) {
	amount := normalizer.Amount(rec.Amount)
	description := normalizer.Description(rec.Description)

	if classifier.ClassifyDebit(rec.TypeMarker, rec.Amount, description) == classifier.Credit {
		return nil, nil
	}
	if !amount.IsPositive() {
		return nil, &Skip{Row: rec.Row, Reason: "unparseable or zero amount", Raw: rec.Amount}
	}

	return &statement.Transaction{
		Date:              norm.Date(rec.Date),
		Description:       description,
		Amount:            amount,
		PaymentMethod:     classifier.ClassifyPayment(description),
		SuggestedCategory: classifier.ClassifyCategory(description),
		Type:              statement.TypeWithdrawal,
		RawData:           rec.RawData(),
	}, nil
}

func (e *Engine) logSummary(source string, r *Result) {
	e.logger.Info("extraction complete",
		"run_id", r.RunID,
		"source", source,
		"rows_seen", r.RowsSeen,
		"withdrawals", len(r.Transactions),
		"credits_dropped", r.CreditsDropped,
		"excluded", r.Excluded,
		"skipped", r.RowsSkipped+len(r.Skips))
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

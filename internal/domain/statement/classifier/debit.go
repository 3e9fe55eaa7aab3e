package classifier

import (
	"strings"

	"github.com/spendlens/statement-engine/internal/domain/statement/normalizer"
)

// Decision is the outcome of debit classification.
type Decision int

const (
	// Withdrawal marks the record as an outgoing transaction.
	Withdrawal Decision = iota
	// Credit marks an inflow; the record is excluded immediately.
	Credit
)

var (
	debitDescWords  = []string{"withdrawal", "debit", "payment"}
	creditDescWords = []string{"salary", "interest", "credit", "deposit"}
)

// ClassifyDebit decides withdrawal vs credit for one candidate. Checks run
// in strict priority order, first match wins:
//
//  1. explicit type marker ("dr"/"debit" vs "cr"/"credit")
//  2. literal negative sign on the raw, pre-normalized amount token
//  3. debit-indicating description words
//  4. credit-indicating description words
//  5. default: withdrawal
//
// The default biases toward inclusion: silently dropping an ambiguous debit
// is worse than asking the user to discard a spurious one; the exclusion
// sweep is the backstop against false positives.
func ClassifyDebit(marker, rawAmount, description string) Decision {
	m := strings.ToLower(strings.TrimSpace(marker))
	if m != "" {
		if strings.Contains(m, "dr") || strings.Contains(m, "debit") {
			return Withdrawal
		}
		if strings.Contains(m, "cr") || strings.Contains(m, "credit") {
			return Credit
		}
	}

	if normalizer.HasNegativeSign(rawAmount) {
		return Withdrawal
	}

	desc := strings.ToLower(description)
	for _, w := range debitDescWords {
		if strings.Contains(desc, w) {
			return Withdrawal
		}
	}
	for _, w := range creditDescWords {
		if strings.Contains(desc, w) {
			return Credit
		}
	}

	return Withdrawal
}

// Package statement defines the canonical types produced by the statement
// parsing engine: normalized withdrawal transactions plus the raw records
// they were assembled from.
package statement

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the closed set of payment channels a withdrawal can be
// attributed to.
type PaymentMethod string

const (
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCard PaymentMethod = "Card"
	PaymentBank PaymentMethod = "Bank"
	PaymentCash PaymentMethod = "Cash"
)

// Spending categories suggested for a withdrawal. CategoryDefault is the
// catch-all when no pattern matches.
const (
	CategoryFoodDining    = "Food & Dining"
	CategoryTransport     = "Transportation"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryUtilities     = "Utilities"
	CategoryHealthcare    = "Healthcare"
	CategoryEducation     = "Education"
	CategoryGroceries     = "Groceries"
	CategoryATM           = "ATM Withdrawal"
	CategoryBankCharges   = "Bank Charges"
	CategoryDefault       = "Bank Transactions"
)

// TypeWithdrawal is the engine's sole output class. Credits are dropped
// before a Transaction is ever constructed.
const TypeWithdrawal = "withdrawal"

// Transaction is one normalized withdrawal extracted from a statement.
// Constructed once, immutable thereafter; identity is structural
// (date + description + amount), which the persistence layer uses for
// duplicate suppression.
type Transaction struct {
	Date              time.Time         `json:"date"`
	Description       string            `json:"description"`
	Amount            decimal.Decimal   `json:"amount"`
	PaymentMethod     PaymentMethod     `json:"paymentMethod"`
	SuggestedCategory string            `json:"suggestedCategory"`
	Type              string            `json:"type"`
	RawData           map[string]string `json:"rawData,omitempty"`
}

// Key returns the structural identity used for duplicate suppression by the
// caller. The engine itself never de-duplicates.
func (t Transaction) Key() string {
	return fmt.Sprintf("%s|%s|%s", t.Date.Format("2006-01-02"), t.Description, t.Amount.String())
}

// RawRecord is one candidate transaction before normalization: a tabular row
// or a matched text region. Ephemeral; produced by a front end and consumed
// once by the extractor.
type RawRecord struct {
	// Row is the 1-based source row for tabular input, or the match ordinal
	// for free-text input. Used only for diagnostics.
	Row int

	// Raw field tokens exactly as they appeared in the source.
	Date        string
	Description string
	Amount      string
	TypeMarker  string

	// Fields holds the full original row (tabular sources only).
	Fields []string
}

// RawData renders the record's original values for the Transaction audit
// trail.
func (r RawRecord) RawData() map[string]string {
	raw := map[string]string{
		"date":        r.Date,
		"description": r.Description,
		"amount":      r.Amount,
	}
	if r.TypeMarker != "" {
		raw["type"] = r.TypeMarker
	}
	return raw
}

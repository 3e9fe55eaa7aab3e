package classifier

import (
	"strings"

	"github.com/spendlens/statement-engine/internal/domain/statement"
)

// Ordered payment-method table. UPI markers come first because UPI
// narrations frequently embed bank and card words that would otherwise
// misfire.
var paymentTable = newTable([]tableEntry{
	{result: string(statement.PaymentUPI), keywords: []string{
		"upi", "@ybl", "@oksbi", "@okaxis", "@okhdfcbank", "@okicici", "@paytm", "@ptyes", "@ibl", "@axl",
		"gpay", "google pay", "phonepe", "paytm", "bhim", "vpa",
	}},
	{result: string(statement.PaymentCard), keywords: []string{
		"credit card", "debit card", "visa", "mastercard", "master card", "rupay", "amex", "pos/", "pos ", "card",
	}},
	{result: string(statement.PaymentBank), keywords: []string{
		"neft", "rtgs", "imps", "ecs", "nach", "ach", "cheque", "chq", "clearing", "transfer",
	}},
	{result: string(statement.PaymentCash), keywords: []string{
		"cash withdrawal", "self withdrawal", "cash wdl", "cash",
	}},
}, "")

// ClassifyPayment maps a cleaned description to a payment method. The
// primary ordered table runs first; a secondary keyword check catches what
// it missed; the absolute default is Bank.
func ClassifyPayment(description string) statement.PaymentMethod {
	if result := paymentTable.lookup(description); result != "" {
		return statement.PaymentMethod(result)
	}

	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "atm") || strings.Contains(desc, "cash"):
		return statement.PaymentCash
	case strings.Contains(desc, "card") || strings.Contains(desc, "pos"):
		return statement.PaymentCard
	case strings.Contains(desc, "upi") || strings.Contains(desc, "@"):
		return statement.PaymentUPI
	}
	return statement.PaymentBank
}

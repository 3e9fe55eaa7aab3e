package classifier

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/spendlens/statement-engine/internal/domain/statement"
)

func TestClassifyDebit(t *testing.T) {
	t.Run("explicit marker wins over everything", func(t *testing.T) {
		assert.Equal(t, Withdrawal, ClassifyDebit("Dr", "450.00", "salary credit"))
		assert.Equal(t, Credit, ClassifyDebit("Cr", "-450.00", "atm withdrawal"))
		assert.Equal(t, Withdrawal, ClassifyDebit("DEBIT", "", ""))
		assert.Equal(t, Credit, ClassifyDebit("CREDIT", "", ""))
	})

	t.Run("raw negative sign marks a withdrawal", func(t *testing.T) {
		assert.Equal(t, Withdrawal, ClassifyDebit("", "-450.00", "salary"))
		assert.Equal(t, Withdrawal, ClassifyDebit("", "(450.00)", "interest"))
	})

	t.Run("description words decide when marker and sign are absent", func(t *testing.T) {
		assert.Equal(t, Withdrawal, ClassifyDebit("", "450.00", "ATM Withdrawal MG Road"))
		assert.Equal(t, Withdrawal, ClassifyDebit("", "450.00", "UPI payment to merchant"))
		assert.Equal(t, Credit, ClassifyDebit("", "450.00", "Salary for March"))
		assert.Equal(t, Credit, ClassifyDebit("", "450.00", "Interest earned"))
	})

	t.Run("ambiguous records default to withdrawal", func(t *testing.T) {
		assert.Equal(t, Withdrawal, ClassifyDebit("", "450.00", "Swiggy Order"))
	})
}

func TestClassifyPayment(t *testing.T) {
	cases := []struct {
		desc     string
		expected statement.PaymentMethod
	}{
		{"UPI/merchant@ybl/lunch", statement.PaymentUPI},
		{"PhonePe transfer", statement.PaymentUPI},
		{"POS 445566 DMART VISA", statement.PaymentCard},
		{"NEFT/AXIS0001/RENT", statement.PaymentBank},
		{"CHQ 004512 CLEARING", statement.PaymentBank},
		{"CASH WITHDRAWAL SELF", statement.PaymentCash},
		{"Swiggy Order", statement.PaymentBank}, // absolute default
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyPayment(tc.desc))
		})
	}
}

func TestClassifyPayment_SecondaryKeywords(t *testing.T) {
	// Descriptions the primary table misses but the secondary check catches.
	assert.Equal(t, statement.PaymentUPI, ClassifyPayment("paid via someapp@bank"))
	assert.Equal(t, statement.PaymentCash, ClassifyPayment("ATM MG ROAD 004"))
}

func TestClassifyCategory(t *testing.T) {
	cases := []struct {
		desc     string
		expected string
	}{
		{"Swiggy Order", statement.CategoryFoodDining},
		{"ZOMATO BANGALORE", statement.CategoryFoodDining},
		{"UBER RIDES", statement.CategoryTransport},
		{"AMAZON PAY", statement.CategoryShopping},
		{"NETFLIX.COM", statement.CategoryEntertainment},
		{"AIRTEL POSTPAID BILL", statement.CategoryUtilities},
		{"APOLLO PHARMACY", statement.CategoryHealthcare},
		{"UDEMY COURSE", statement.CategoryEducation},
		{"BIGBASKET ORDER", statement.CategoryGroceries},
		{"ATM WDL MG ROAD", statement.CategoryATM},
		{"SMS ALERT CHRG", statement.CategoryBankCharges},
		{"NEFT TO LANDLORD", statement.CategoryDefault},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyCategory(tc.desc))
		})
	}
}

func TestClassifyCategory_OrderPreserved(t *testing.T) {
	// "swiggy" (dining) must outrank the later generic "store" (shopping)
	// when both appear.
	assert.Equal(t, statement.CategoryFoodDining, ClassifyCategory("SWIGGY STORE BANGALORE"))
}

func TestExcluded(t *testing.T) {
	withdrawal := func(desc string, amount string) statement.Transaction {
		return statement.Transaction{
			Description: desc,
			Amount:      decimal.RequireFromString(amount),
			Type:        statement.TypeWithdrawal,
		}
	}

	t.Run("non-expense patterns", func(t *testing.T) {
		for _, desc := range []string{
			"SALARY MARCH 2024",
			"Interest credited",
			"Dividend payout",
			"Refund from Amazon",
			"Cashback offer",
			"Opening Balance",
			"CLOSING BALANCE",
			"Self transfer to savings",
			"Own account transfer",
		} {
			assert.True(t, Excluded(withdrawal(desc, "100")), desc)
		}
	})

	t.Run("bare balance and total lines", func(t *testing.T) {
		assert.True(t, Excluded(withdrawal("Balance", "100")))
		assert.True(t, Excluded(withdrawal("  TOTAL  ", "100")))
	})

	t.Run("defensive type and amount checks", func(t *testing.T) {
		tx := withdrawal("Swiggy Order", "100")
		tx.Type = "credit"
		assert.True(t, Excluded(tx))

		assert.True(t, Excluded(withdrawal("Swiggy Order", "0")))
	})

	t.Run("ordinary expenses survive", func(t *testing.T) {
		assert.False(t, Excluded(withdrawal("Swiggy Order", "450.00")))
		assert.False(t, Excluded(withdrawal("ATM WDL", "500")))
	})
}

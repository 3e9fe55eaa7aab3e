package service

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// StatementGenerator produces realistic fake statement tables for tests and
// benchmarks.
type StatementGenerator struct {
	faker *gofakeit.Faker
}

// NewStatementGenerator creates a generator with a fixed seed for
// reproducibility.
func NewStatementGenerator(seed int64) *StatementGenerator {
	return &StatementGenerator{faker: gofakeit.New(seed)}
}

var sampleMerchants = []string{
	"SWIGGY BANGALORE", "ZOMATO ORDER", "AMAZON PAY INDIA", "FLIPKART PAYMENTS",
	"UPI/9876543210@ybl/GROCERY", "ATM WDL MG ROAD", "NEFT/AXIS/RENT",
	"BIGBASKET", "UBER RIDES", "NETFLIX SUBSCRIPTION", "AIRTEL POSTPAID",
	"APOLLO PHARMACY", "IRCTC TICKET", "POS 445566 DMART",
}

// Rows builds a statement table: a standard header row followed by n data
// rows, roughly one in five of which is a credit.
func (g *StatementGenerator) Rows(n int) [][]string {
	rows := [][]string{{"Date", "Particulars", "Withdrawals", "Dr/Cr"}}
	for i := 0; i < n; i++ {
		marker := "Dr"
		desc := sampleMerchants[g.faker.Number(0, len(sampleMerchants)-1)]
		if g.faker.Number(0, 4) == 0 {
			marker = "Cr"
			desc = "SALARY CREDIT " + g.faker.Company()
		}
		day := g.faker.Number(1, 28)
		month := g.faker.Number(1, 12)
		amount := fmt.Sprintf("%d.%02d", g.faker.Number(10, 99999), g.faker.Number(0, 99))
		rows = append(rows, []string{
			fmt.Sprintf("%02d/%02d/2024", day, month), desc, amount, marker,
		})
	}
	return rows
}

// TextLines renders the same shape of data as free-form statement text,
// for exercising the template and fallback paths.
func (g *StatementGenerator) TextLines(n int) string {
	var out string
	out += "Statement of Account\n"
	for _, row := range g.Rows(n)[1:] {
		out += fmt.Sprintf("%s %s %s %s\n", row[0], row[1], row[2], row[3])
	}
	return out
}

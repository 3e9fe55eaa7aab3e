package service

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/spendlens/statement-engine/internal/domain/statement"
)

func newTestEngine(t testing.TB, opts ...Option) *Engine {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return New(logger, opts...)
}

func workbookBytes(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return buf.Bytes()
}

func TestEngine_ParseCSV(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("single debit row", func(t *testing.T) {
		data := []byte("Date,Particulars,Withdrawals,Dr/Cr\n" +
			"01/03/2024,Swiggy Order,450.00,Dr\n")

		result, err := engine.ParseCSV(data)
		require.NoError(t, err)
		require.Len(t, result.Transactions, 1)

		tx := result.Transactions[0]
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), tx.Date)
		assert.Equal(t, "Swiggy Order", tx.Description)
		assert.True(t, tx.Amount.Equal(decimal.RequireFromString("450.00")), "got %s", tx.Amount)
		assert.Equal(t, statement.CategoryFoodDining, tx.SuggestedCategory)
		assert.Equal(t, statement.TypeWithdrawal, tx.Type)
		assert.Equal(t, statement.PaymentBank, tx.PaymentMethod)
		assert.Equal(t, "450.00", tx.RawData["amount"])
	})

	t.Run("credit rows produce no output", func(t *testing.T) {
		data := []byte("Date,Particulars,Withdrawals,Dr/Cr\n" +
			"01/03/2024,Swiggy Order,450.00,Cr\n")

		result, err := engine.ParseCSV(data)
		require.NoError(t, err)
		assert.Empty(t, result.Transactions)
		assert.Equal(t, 1, result.CreditsDropped)
	})

	t.Run("exclusion overrides the debit decision", func(t *testing.T) {
		data := []byte("Date,Particulars,Withdrawals,Dr/Cr\n" +
			"01/03/2024,SALARY MARCH 2024,50000.00,Dr\n" +
			"02/03/2024,Swiggy Order,450.00,Dr\n")

		result, err := engine.ParseCSV(data)
		require.NoError(t, err)
		require.Len(t, result.Transactions, 1)
		assert.Equal(t, "Swiggy Order", result.Transactions[0].Description)
		assert.Equal(t, 1, result.Excluded)
	})

	t.Run("blank and ragged rows are skipped not fatal", func(t *testing.T) {
		data := []byte("Date,Particulars,Withdrawals,Dr/Cr\n" +
			"01/03/2024,Swiggy Order,450.00,Dr\n" +
			",,,\n" +
			"03/03/2024,,,\n" +
			"04/03/2024,Uber Ride,230.00,Dr\n")

		result, err := engine.ParseCSV(data)
		require.NoError(t, err)
		assert.Len(t, result.Transactions, 2)
		assert.Equal(t, 2, result.RowsSkipped)
	})

	t.Run("no recognizable header still yields a result", func(t *testing.T) {
		data := []byte("01/03/2024,something,unclear\n" +
			"02/03/2024,more,text\n")

		result, err := engine.ParseCSV(data)
		require.NoError(t, err)
		// Amount column unresolved: zero transactions, but no error.
		assert.NotNil(t, result)
	})

	t.Run("unparseable amount becomes a skip diagnostic", func(t *testing.T) {
		data := []byte("Date,Particulars,Withdrawals,Dr/Cr\n" +
			"01/03/2024,Swiggy Order,notanumber,Dr\n")

		result, err := engine.ParseCSV(data)
		require.NoError(t, err)
		assert.Empty(t, result.Transactions)
		require.Len(t, result.Skips, 1)
		assert.Equal(t, 2, result.Skips[0].Row)
	})

	t.Run("output preserves source row order", func(t *testing.T) {
		data := []byte("Date,Particulars,Withdrawals,Dr/Cr\n" +
			"05/03/2024,Zomato Order,300.00,Dr\n" +
			"01/03/2024,Uber Ride,230.00,Dr\n")

		result, err := engine.ParseCSV(data)
		require.NoError(t, err)
		require.Len(t, result.Transactions, 2)
		assert.Equal(t, "Zomato Order", result.Transactions[0].Description)
		assert.Equal(t, "Uber Ride", result.Transactions[1].Description)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		data := []byte("Date,Particulars,Withdrawals,Dr/Cr\n" +
			"01/03/2024,Swiggy Order,450.00,Dr\n" +
			"02/03/2024,ATM WDL,500.00,Dr\n")

		first, err := engine.ParseCSV(data)
		require.NoError(t, err)
		second, err := engine.ParseCSV(data)
		require.NoError(t, err)
		assert.Equal(t, first.Transactions, second.Transactions)
	})
}

func TestEngine_ParseWorkbook(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("standard statement sheet", func(t *testing.T) {
		data := workbookBytes(t, [][]string{
			{"Date", "Particulars", "Withdrawals", "Dr/Cr"},
			{"01/03/2024", "UPI/merchant@ybl/lunch", "450.00", "Dr"},
			{"02/03/2024", "SALARY CREDIT", "50000.00", "Cr"},
		})

		result, err := engine.ParseWorkbook(data)
		require.NoError(t, err)
		require.Len(t, result.Transactions, 1)
		assert.Equal(t, statement.PaymentUPI, result.Transactions[0].PaymentMethod)
		assert.Equal(t, 1, result.CreditsDropped)
	})

	t.Run("metadata rows above the header", func(t *testing.T) {
		data := workbookBytes(t, [][]string{
			{"HDFC Bank"},
			{"Statement for account 1234"},
			{"Date", "Narration", "Debit", "Type"},
			{"15/03/2024", "NEFT RENT PAYMENT", "12000.00", "Dr"},
		})

		result, err := engine.ParseWorkbook(data)
		require.NoError(t, err)
		require.Len(t, result.Transactions, 1)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), result.Transactions[0].Date)
	})

	t.Run("corrupt workbook is fatal", func(t *testing.T) {
		_, err := engine.ParseWorkbook([]byte("not a workbook"))
		require.Error(t, err)
	})

	t.Run("headerless sheet never raises", func(t *testing.T) {
		data := workbookBytes(t, [][]string{
			{"01/03/2024", "something", "450.00"},
		})

		result, err := engine.ParseWorkbook(data)
		require.NoError(t, err)
		assert.NotNil(t, result)
	})
}

func TestEngine_ExtractText(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("template matches", func(t *testing.T) {
		text := "01/03/2024 UPI/SWIGGY/ORDER 450.00 DR\n" +
			"02/03/2024 SALARY CREDIT 50,000.00 CR\n"

		result := engine.ExtractText(text)
		require.Len(t, result.Transactions, 1)
		assert.Equal(t, "UPI/SWIGGY/ORDER", result.Transactions[0].Description)
		assert.Equal(t, statement.CategoryFoodDining, result.Transactions[0].SuggestedCategory)
		assert.Equal(t, 1, result.CreditsDropped)
	})

	t.Run("falls through to line parsing when templates miss", func(t *testing.T) {
		text := "Account Statement\n" +
			"01/03/2024 | debit | GROCERY STORE | 450 | ref 21\n"

		result := engine.ExtractText(text)
		require.Len(t, result.Transactions, 1)
		assert.Contains(t, result.Transactions[0].Description, "GROCERY STORE")
	})

	t.Run("empty text yields empty result", func(t *testing.T) {
		result := engine.ExtractText("")
		assert.Empty(t, result.Transactions)
	})
}

func TestEngine_MonthFirstOption(t *testing.T) {
	engine := newTestEngine(t, WithMonthFirstDates())

	// Ambiguous date: month-first reads 01/03 as January 3rd.
	data := []byte("Date,Particulars,Withdrawals,Dr/Cr\n" +
		"01/03/2024,Swiggy Order,450.00,Dr\n")

	result, err := engine.ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), result.Transactions[0].Date)
}

func TestEngine_DialectProbeOverridesDefault(t *testing.T) {
	// Configured month-first, but a 15/03 sample proves day-first.
	engine := newTestEngine(t, WithMonthFirstDates())

	data := []byte("Date,Particulars,Withdrawals,Dr/Cr\n" +
		"15/03/2024,Uber Ride,230.00,Dr\n" +
		"01/03/2024,Swiggy Order,450.00,Dr\n")

	result, err := engine.ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), result.Transactions[1].Date)
}

func BenchmarkEngine_ParseCSV(b *testing.B) {
	gen := NewStatementGenerator(42)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(b, w.WriteAll(gen.Rows(1000)))
	data := buf.Bytes()

	engine := newTestEngine(b)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = engine.ParseCSV(data)
	}
}

func BenchmarkEngine_ExtractText(b *testing.B) {
	gen := NewStatementGenerator(42)
	text := gen.TextLines(1000)

	engine := newTestEngine(b)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = engine.ExtractText(text)
	}
}

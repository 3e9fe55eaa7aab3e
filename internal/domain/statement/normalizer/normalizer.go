// Package normalizer converts raw statement tokens into canonical values.
// Every function degrades to a stated default instead of returning an error:
// unparseable dates become the current date, unparseable amounts become zero,
// empty descriptions become a placeholder.
package normalizer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// MaxDescriptionLen caps normalized descriptions.
	MaxDescriptionLen = 100

	// PlaceholderDescription stands in for empty or fully-stripped input.
	PlaceholderDescription = "Transaction"
)

// serialEpoch is the spreadsheet date-serialization epoch (Excel's day zero).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// now is a test hook.
var now = time.Now

// Normalizer holds the locale knobs for token conversion. The zero value
// prefers day-first dates, matching the dominant source-region convention.
type Normalizer struct {
	// MonthFirst prefers MM/DD over DD/MM when a two-part date is ambiguous.
	MonthFirst bool
}

// New returns a day-first Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

var twoDigitYearRe = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2})$`)

// Date converts a raw date token to a calendar date. Accepts a numeric
// spreadsheet serial (days since the Excel epoch) or a string in one of the
// supported formats, tried most-specific first. Falls back to the current
// date; never returns an error.
func (n *Normalizer) Date(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return today()
	}

	// Numeric serial date (spreadsheet cells often surface as "45357").
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial > 0 && serial < 200000 {
			return serialEpoch.AddDate(0, 0, int(serial))
		}
		return today()
	}

	dayFirst := []string{"02/01/2006", "02-01-2006", "2/1/2006", "2-1-2006"}
	monthFirst := []string{"01/02/2006", "01-02-2006", "1/2/2006", "1-2-2006"}
	layouts := append([]string{}, dayFirst...)
	if n.MonthFirst {
		layouts = append(append([]string{}, monthFirst...), dayFirst...)
	}
	layouts = append(layouts, "2006/01/02", "2006-01-02")

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	// Two-digit years pivot at 50: <50 maps to 2000+YY, >=50 to 1900+YY.
	// Go's "06" layout pivots at 69, so handle these by hand.
	if m := twoDigitYearRe.FindStringSubmatch(value); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if n.MonthFirst {
			day, month = month, day
		}
		yy, _ := strconv.Atoi(m[3])
		year := 1900 + yy
		if yy < 50 {
			year = 2000 + yy
		}
		if validDate(year, month, day) {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		}
	}

	// Locale-default attempts for textual and dotted dates.
	for _, layout := range []string{
		"02 Jan 2006", "2 Jan 2006", "02-Jan-2006", "2-Jan-2006",
		"Jan 2, 2006", "Jan 02, 2006", "02.01.2006", "2006-01-02T15:04:05Z",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	return today()
}

func today() time.Time {
	y, m, d := now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == month
}

var currencyMarkers = []string{"₹", "Rs.", "Rs", "INR", "R$", "$", "€", "£", "¥", "USD", "EUR", "GBP"}

// Amount parses a raw amount token into a non-negative decimal. Currency
// symbols, thousands separators, parentheses and sign markers are stripped
// before parsing; the result is always the absolute value. Returns zero on
// empty or unparseable input. Sign stripping means the returned amount never
// encodes debit vs credit; that decision is made elsewhere against the raw
// token.
func Amount(value string) decimal.Decimal {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero
	}

	for _, sym := range currencyMarkers {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.Trim(s, "()")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "+")
	s = strings.TrimSuffix(s, "-")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Abs()
}

// HasNegativeSign reports whether the raw, pre-normalized amount token
// carries an explicit negative marker. Some formats encode debits as
// negative amounts even though Amount discards the sign.
func HasNegativeSign(value string) bool {
	s := strings.TrimSpace(value)
	return strings.HasPrefix(s, "-") ||
		(strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"))
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Description normalizes free text: collapses whitespace runs, strips
// characters outside the allow-list (letters, digits, space, @ / - . ( )),
// caps the length and trims. Empty input yields the placeholder.
func Description(value string) string {
	s := whitespaceRe.ReplaceAllString(value, " ")
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '@', r == '/', r == '-', r == '.', r == '(', r == ')':
			return r
		}
		return -1
	}, s)
	s = strings.TrimSpace(s)
	if len(s) > MaxDescriptionLen {
		s = strings.TrimSpace(s[:MaxDescriptionLen])
	}
	if s == "" {
		return PlaceholderDescription
	}
	return s
}

package parser

import (
	"regexp"
	"strings"
)

// Candidate is one possible transaction located inside extracted statement
// text, with its raw captured tokens. Candidates over-generate by design:
// every match from every template contributes, and the debit classifier and
// exclusion engine prune false positives downstream.
type Candidate struct {
	Ordinal     int
	Raw         string
	Date        string
	Description string
	Amount      string
	Marker      string
}

// Ordered transaction templates, most bank-format-specific first, most
// generic last. Each captures date, description, amount and an optional
// debit/credit marker in named groups.
var transactionTemplates = []*regexp.Regexp{
	// "01/03/2024 UPI/SWIGGY/... 450.00 DR" (marker-suffixed rows)
	regexp.MustCompile(`(?m)^\s*(?P<date>\d{1,2}[/-]\d{1,2}[/-]\d{4})\s+(?P<desc>.+?)\s+(?P<amount>(?:₹|Rs\.?|INR)?\s?-?[\d,]+\.\d{2})\s+(?P<marker>DR|CR|Dr|Cr)\b.*$`),
	// "01/03/2024 NEFT PAYMENT DR 1,200.00" (marker before amount)
	regexp.MustCompile(`(?m)^\s*(?P<date>\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s+(?P<desc>.+?)\s+(?P<marker>DR|CR|Dr|Cr)\s+(?P<amount>(?:₹|Rs\.?|INR)?\s?[\d,]+\.?\d*)\s*$`),
	// "01-03-24 ATM WDL 500.00" (no marker; amount trails the line)
	regexp.MustCompile(`(?m)^\s*(?P<date>\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s+(?P<desc>.+?)\s+(?P<amount>-?[\d,]+\.\d{2})\s*$`),
}

// Non-transaction line markers skipped by the fallback scanner.
var skipLineRe = regexp.MustCompile(`(?i)opening\s+balance|closing\s+balance|page\s+\d+|statement\s+(?:of|period|date)|account\s+(?:no|number|holder|summary)`)

var (
	dateTokenRe   = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`)
	amountTokenRe = regexp.MustCompile(`(?:₹|Rs\.?|INR)?\s?-?\d{1,3}(?:,\d{2,3})*(?:\.\d{1,2})?\b`)
	debitWordRe   = regexp.MustCompile(`(?i)\b(?:dr|debit|withdrawal)\b`)
	creditWordRe  = regexp.MustCompile(`(?i)\b(?:cr|credit)\b`)
)

// minFallbackLineLen is the shortest line the fallback scanner considers.
const minFallbackLineLen = 10

// TextCandidates locates candidate transactions inside extracted document
// text. Every template is applied to the whole text and all matches
// contribute. Only when no template produces a single candidate does the
// line-oriented fallback run.
func TextCandidates(text string) []Candidate {
	var candidates []Candidate
	seen := 0

	for _, re := range transactionTemplates {
		dateIdx := re.SubexpIndex("date")
		descIdx := re.SubexpIndex("desc")
		amountIdx := re.SubexpIndex("amount")
		markerIdx := re.SubexpIndex("marker")

		for _, m := range re.FindAllStringSubmatch(text, -1) {
			seen++
			c := Candidate{
				Ordinal: seen,
				Raw:     strings.TrimSpace(m[0]),
				Date:    m[dateIdx],
				Amount:  strings.TrimSpace(m[amountIdx]),
			}
			if descIdx >= 0 {
				c.Description = strings.TrimSpace(m[descIdx])
			}
			if markerIdx >= 0 {
				c.Marker = m[markerIdx]
			}
			if c.Date == "" || c.Amount == "" {
				// Malformed capture drops this one candidate only.
				continue
			}
			candidates = append(candidates, c)
		}
	}

	if len(candidates) == 0 {
		return lineCandidates(text)
	}
	return candidates
}

// lineCandidates is the fallback strategy: scan line by line for anything
// that carries a date-shaped token, a currency-shaped number and a
// debit-indicating word.
func lineCandidates(text string) []Candidate {
	var candidates []Candidate
	ordinal := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < minFallbackLineLen || skipLineRe.MatchString(line) {
			continue
		}

		date := dateTokenRe.FindString(line)
		if date == "" {
			continue
		}
		amount := bestAmountToken(line, date)
		if amount == "" {
			continue
		}
		if !debitWordRe.MatchString(line) {
			continue
		}

		ordinal++
		candidates = append(candidates, Candidate{
			Ordinal:     ordinal,
			Raw:         line,
			Date:        date,
			Description: stripTokens(line, date, amount),
			Amount:      amount,
			Marker:      debitWordRe.FindString(line),
		})
	}
	return candidates
}

// bestAmountToken returns the last currency-shaped token on the line that is
// not part of the date. Statements put the amount after the narration, so
// the trailing token is the most likely amount.
func bestAmountToken(line, date string) string {
	rest := strings.Replace(line, date, " ", 1)
	tokens := amountTokenRe.FindAllString(rest, -1)
	for i := len(tokens) - 1; i >= 0; i-- {
		t := strings.TrimSpace(tokens[i])
		if strings.ContainsAny(t, "0123456789") && t != "" {
			return t
		}
	}
	return ""
}

// stripTokens derives a description by removing the matched date and amount
// substrings and any debit/credit keywords from the line.
func stripTokens(line, date, amount string) string {
	s := strings.Replace(line, date, " ", 1)
	s = strings.Replace(s, amount, " ", 1)
	s = debitWordRe.ReplaceAllString(s, " ")
	s = creditWordRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

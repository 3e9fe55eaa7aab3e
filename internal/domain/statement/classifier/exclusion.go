package classifier

import (
	"regexp"
	"strings"

	"github.com/spendlens/statement-engine/internal/domain/statement"
)

// Exclusion patterns for records that look like withdrawals but are not
// expenses. This sweep runs last, over candidates already classified as
// withdrawals, because the upstream heuristics are probabilistic and this
// is the final point before output.
var exclusionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bsalary\b`),
	regexp.MustCompile(`(?i)\binterest\b`),
	regexp.MustCompile(`(?i)\bdividend\b`),
	regexp.MustCompile(`(?i)\brefund\b`),
	regexp.MustCompile(`(?i)\bcashback\b`),
	regexp.MustCompile(`(?i)opening\s+balance`),
	regexp.MustCompile(`(?i)closing\s+balance`),
	regexp.MustCompile(`(?i)\bb/?f\s+balance\b`),
	regexp.MustCompile(`(?i)own\s+account\s+transfer`),
	regexp.MustCompile(`(?i)self\s+transfer`),
	regexp.MustCompile(`(?i)transfer\s+to\s+self`),
	regexp.MustCompile(`(?i)auto\s+sweep`),
}

// Excluded reports whether a candidate must be dropped from final output.
// Matching any non-expense pattern, a bare balance/total line, a type other
// than withdrawal, or a non-positive amount all exclude the record. The
// type and amount checks are deliberately redundant with the upstream
// classifiers.
func Excluded(tx statement.Transaction) bool {
	if tx.Type != statement.TypeWithdrawal {
		return true
	}
	if !tx.Amount.IsPositive() {
		return true
	}

	desc := strings.TrimSpace(strings.ToLower(tx.Description))
	if desc == "balance" || desc == "total" {
		return true
	}
	for _, re := range exclusionPatterns {
		if re.MatchString(desc) {
			return true
		}
	}
	return false
}

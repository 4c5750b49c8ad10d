package parsing

import (
	"regexp"
	"strings"
)

// budgetPattern matches salary ranges like "$120k-$150k", "$120,000 – $150,000"
// or "$90 to $110k/year". Both a dollar sign and a range separator are
// required, so lone figures never read as budgets.
var budgetPattern = regexp.MustCompile(
	`(?i)\$\s*\d{1,3}(?:,\d{3})*(?:\.\d+)?\s*k?\s*(?:[-–—]|to)\s*\$?\s*\d{1,3}(?:,\d{3})*(?:\.\d+)?\s*k?(?:\s*/\s*(?:year|yr|annum|annually))?`)

// ExtractBudget returns the first salary range found in the text, verbatim
// except for whitespace normalization. Returns "" when no range is present.
func ExtractBudget(text string) string {
	match := budgetPattern.FindString(text)
	if match == "" {
		return ""
	}
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(match), " ")
}

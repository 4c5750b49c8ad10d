package parsing

import (
	"regexp"
	"strings"
)

var (
	companyLabelPattern = regexp.MustCompile(`(?im)^\s*(?:company|employer|organization)\s*:\s*(.+)$`)

	// atCompanyPattern captures a capitalized phrase after "at" or "@". Token
	// characters exclude periods so the run stops at sentence boundaries.
	atCompanyPattern = regexp.MustCompile(`(?:\bat\s+|@\s*)([A-Z][A-Za-z0-9&'-]*(?:\s+[A-Z][A-Za-z0-9&'-]*)*)`)
)

// ExtractCompany finds the hiring company: an explicit label line wins, then
// an "at <Capitalized Phrase>" pattern. Returns "" when neither matches; the
// caller may still fill company from the title/company split.
func ExtractCompany(text string) string {
	if m := companyLabelPattern.FindStringSubmatch(text); m != nil {
		return cleanCompany(m[1])
	}
	if m := atCompanyPattern.FindStringSubmatch(text); m != nil {
		return cleanCompany(m[1])
	}
	return ""
}

func cleanCompany(raw string) string {
	company := strings.TrimSpace(raw)
	company = strings.Trim(company, ".,;:!?")
	return strings.TrimSpace(company)
}

package parsing

import (
	"strings"

	"github.com/jonathan/job-match-engine/internal/types"
)

var (
	remoteIndicators = []string{
		"fully remote", "100% remote", "remote-first", "remote first",
		"work from home", "work from anywhere", "wfh", "remote",
	}
	hybridIndicators = []string{
		"hybrid", "days in office", "days in the office", "in-office days",
		"days per week in office", "partially remote",
	}
	onsiteIndicators = []string{
		"onsite", "on-site", "on site", "in office", "in-office",
		"in person", "in-person", "office-based",
	}
)

// DetectWorkArrangement classifies where the job is performed. A location
// string that is itself an arrangement keyword decides directly. Otherwise
// the combined text is scanned: remote indicators win unless a hybrid
// indicator also appears (hybrid is the more specific answer), then hybrid
// indicators, then onsite indicators. Returns "" when nothing matches.
func DetectWorkArrangement(text, location string) string {
	if direct := arrangementFromLocation(location); direct != "" {
		return direct
	}

	combined := strings.ToLower(text + " " + location)
	if containsAny(combined, remoteIndicators) {
		if containsAny(combined, hybridIndicators) {
			return types.RemoteStatusHybrid
		}
		return types.RemoteStatusRemote
	}
	if containsAny(combined, hybridIndicators) {
		return types.RemoteStatusHybrid
	}
	if containsAny(combined, onsiteIndicators) {
		return types.RemoteStatusOnsite
	}
	return ""
}

// arrangementFromLocation maps a location string that is exactly an
// arrangement keyword, optionally parenthesized, to its status.
func arrangementFromLocation(location string) string {
	folded := strings.ToLower(strings.TrimSpace(location))
	folded = strings.TrimPrefix(folded, "(")
	folded = strings.TrimSuffix(folded, ")")
	folded = strings.TrimSpace(folded)

	switch folded {
	case "remote", "fully remote", "100% remote":
		return types.RemoteStatusRemote
	case "hybrid":
		return types.RemoteStatusHybrid
	case "onsite", "on-site", "on site", "in office", "in-office":
		return types.RemoteStatusOnsite
	}
	return ""
}

// IsArrangementKeyword reports whether the value reads as a work-arrangement
// keyword rather than a real location.
func IsArrangementKeyword(value string) bool {
	return arrangementFromLocation(value) != ""
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

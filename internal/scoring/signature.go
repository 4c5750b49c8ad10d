package scoring

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/jonathan/job-match-engine/internal/types"
)

// ResumeSignature computes a SHA-256 digest over the logical resume content
// used for matching. Callers tag in-flight score requests with it and discard
// stale responses: same content, same signature. Hidden bullets are excluded,
// so toggling visibility changes the signature exactly when it changes the
// match input. Returns "" for a nil resume.
func ResumeSignature(resume *types.Resume) string {
	if resume == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(resume.Title)
	sb.WriteString("\x1f")
	sb.WriteString(resume.Summary)
	for _, section := range resume.Sections {
		sb.WriteString("\x1e")
		sb.WriteString(section.Title)
		for _, bullet := range section.Bullets {
			if bullet.IsVisible() {
				sb.WriteString("\x1f")
				sb.WriteString(bullet.Text)
			}
		}
	}

	digest := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(digest[:])
}

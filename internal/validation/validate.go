// Package validation checks incoming resume documents before they reach the
// matching engine.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-match-engine/internal/types"
)

// ErrEmptyResume is returned when a resume has no content to match against.
var ErrEmptyResume = errors.New("resume document has no matchable content")

// ResumeError reports the field-level problems found in a resume document.
type ResumeError struct {
	Fields []FieldError
}

// FieldError is one failed constraint on one field.
type FieldError struct {
	Field   string
	Message string
}

func (e *ResumeError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid resume document:\n")
	for i, fe := range e.Fields {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateResume checks a resume document's structural constraints. A nil or
// contentless resume fails with ErrEmptyResume; field constraint violations
// are collected into a ResumeError.
func ValidateResume(resume *types.Resume) error {
	if resume == nil {
		return ErrEmptyResume
	}

	if err := validate.Struct(resume); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			re := &ResumeError{}
			for _, fe := range invalid {
				re.Fields = append(re.Fields, FieldError{
					Field:   fe.Namespace(),
					Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
				})
			}
			return re
		}
		return fmt.Errorf("failed to validate resume: %w", err)
	}

	if !hasContent(resume) {
		return ErrEmptyResume
	}
	return nil
}

func hasContent(resume *types.Resume) bool {
	if strings.TrimSpace(resume.Title) != "" || strings.TrimSpace(resume.Summary) != "" {
		return true
	}
	for _, section := range resume.Sections {
		if strings.TrimSpace(section.Title) != "" {
			return true
		}
		for _, bullet := range section.Bullets {
			if bullet.IsVisible() && strings.TrimSpace(bullet.Text) != "" {
				return true
			}
		}
	}
	return false
}

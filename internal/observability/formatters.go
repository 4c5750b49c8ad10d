// Package observability provides formatted terminal output for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-match-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// ANSI sequences for highlighted segments.
const (
	emphasisOn  = "\x1b[1;33m"
	emphasisOff = "\x1b[0m"
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobMetadata outputs a human-readable summary of derived job metadata.
func (p *Printer) PrintJobMetadata(md *types.JobMetadata) {
	if md == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", orDash(md.Title)))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", orDash(md.Company)))
	sb.WriteString(fmt.Sprintf("Type:     %s\n", orDash(md.JobType)))
	sb.WriteString(fmt.Sprintf("Where:    %s\n", orDash(joinNonEmpty(md.Location, md.RemoteStatus))))
	if md.Budget != "" {
		sb.WriteString(fmt.Sprintf("Budget:   %s\n", md.Budget))
	}

	appendList(&sb, "Technical Skills", md.Skills)
	appendList(&sb, "Soft Skills", md.SoftSkills)

	if len(md.HighFrequencyKeywords) > 0 {
		sb.WriteString("\nHigh-Frequency Keywords:\n")
		count := min(len(md.HighFrequencyKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			hf := md.HighFrequencyKeywords[i]
			sb.WriteString(fmt.Sprintf("  • %s (%dx, %s)\n", hf.Keyword, hf.Frequency, hf.Importance))
		}
		if len(md.HighFrequencyKeywords) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(md.HighFrequencyKeywords)-count))
		}
	}

	p.printBox("DERIVED JOB METADATA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchAnalysis outputs the scored coverage result.
func (p *Printer) PrintMatchAnalysis(analysis *types.MatchAnalysis) {
	if analysis == nil {
		p.printBox("MATCH ANALYSIS", "No candidate keywords, no score")
		return
	}

	var sb strings.Builder
	label := "Estimated Fit"
	if analysis.Authoritative {
		label = "Match Score"
	}
	sb.WriteString(fmt.Sprintf("%s:  %d%%\n", label, analysis.SimilarityScore))
	sb.WriteString(fmt.Sprintf("Technical:      %d%%\n", analysis.TechnicalScore))
	sb.WriteString(fmt.Sprintf("Coverage:       %d of %d keywords\n",
		analysis.MatchCount, analysis.TotalJobKeywords))

	appendList(&sb, "Matched", analysis.MatchingKeywords)
	appendList(&sb, "Missing", analysis.MissingKeywords)

	p.printBox("MATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHighlighted renders highlight segments with ANSI emphasis.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHighlighted(segments []types.Segment) {
	for _, segment := range segments {
		if segment.IsMatch {
			fmt.Fprintf(p.out, "%s%s%s", emphasisOn, segment.Text, emphasisOff)
			continue
		}
		fmt.Fprint(p.out, segment.Text)
	}
	fmt.Fprintln(p.out)
}

func appendList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", label))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > count {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-count))
	}
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " · ")
}

func orDash(value string) string {
	if value == "" {
		return "—"
	}
	return value
}

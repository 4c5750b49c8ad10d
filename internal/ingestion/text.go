// Package ingestion loads job posting content from text or HTML files and
// cleans it for the parsing engine while preserving heading and bullet
// structure.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	spaceRunPattern = regexp.MustCompile(`\s+`)
	blankRunPattern = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes posting content while preserving structure: line
// endings become LF, trailing whitespace is trimmed, markdown headings and
// bullets keep their markers, and runs of blank lines shrink to at most two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Markdown headings keep their marker, leading indent dropped.
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Bullet lines keep marker and indentation.
	if isBulletLine(trimmed) {
		indent := len(line) - len(trimmed)
		return strings.Repeat(" ", indent) + trimmed
	}

	indent := len(line) - len(trimmed)
	content := spaceRunPattern.ReplaceAllString(strings.TrimSpace(line), " ")
	return strings.Repeat(" ", indent) + content
}

func isBulletLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// ReadJobPosting loads a job posting from a file, extracting text from HTML
// when the extension says so, and returns cleaned text plus content metadata.
func ReadJobPosting(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("job posting file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read job posting: %w", err)
	}

	text := string(content)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		extracted, extractErr := ExtractTextFromHTML(text)
		if extractErr != nil {
			return "", nil, fmt.Errorf("failed to extract text from HTML: %w", extractErr)
		}
		text = extracted
	}

	cleaned := CleanText(text)
	return cleaned, NewMetadata(cleaned, path), nil
}

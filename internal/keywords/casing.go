package keywords

import "strings"

// Capitalize upper-cases the first letter of a word, leaving the rest as-is.
func Capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// TitleCaseWord title-cases a single token while preserving acronyms and
// slash/hyphen compounds ("CI/CD" stays "CI/CD", "front-end" becomes
// "Front-End", "DevOps" stays "DevOps").
func TitleCaseWord(word string) string {
	if word == "" {
		return ""
	}
	if strings.Contains(word, "/") {
		return titleCaseParts(word, "/")
	}
	if strings.Contains(word, "-") {
		return titleCaseParts(word, "-")
	}
	// Short all-caps tokens are treated as acronyms.
	if word == strings.ToUpper(word) && len(word) <= 4 {
		return word
	}
	// Mixed-case tokens keep their casing.
	if word != strings.ToUpper(word) && word != strings.ToLower(word) {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

func titleCaseParts(word, sep string) string {
	parts := strings.Split(word, sep)
	for i, part := range parts {
		if part == "" {
			continue
		}
		if part == strings.ToUpper(part) {
			// Preserve acronym segments regardless of length.
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
	}
	return strings.Join(parts, sep)
}

// TitleCasePhrase title-cases every word of a space-separated phrase.
func TitleCasePhrase(phrase string) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = TitleCaseWord(w)
	}
	return strings.Join(words, " ")
}

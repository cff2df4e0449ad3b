package icd

import "strings"

// parseSubsetText parses the raw source text of one subset into
// entries.
//
// Each non-blank line is "<code>,<description>". The line is split at
// the first comma only; descriptions may contain further commas and may
// be wrapped in double quotes. Surrounding whitespace is trimmed from
// both segments, and surrounding quotes from the description. A line
// with no comma is a MalformedLineError.
//
// Structural duplicates (identical code and description) collapse to a
// single entry. First-occurrence order is preserved.
func parseSubsetText(subset Subset, text string) ([]Entry, error) {
	lines := strings.Split(text, "\n")
	entries := make([]Entry, 0, len(lines))
	seen := make(map[Entry]struct{}, len(lines))

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		code, desc, ok := strings.Cut(line, ",")
		if !ok {
			return nil, &MalformedLineError{Subset: subset, Line: i + 1, Text: line}
		}

		entry := Entry{
			Code:        strings.TrimSpace(code),
			Description: strings.Trim(strings.TrimSpace(desc), `"`),
		}

		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		entries = append(entries, entry)
	}

	return entries, nil
}

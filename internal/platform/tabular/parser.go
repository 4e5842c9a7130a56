// Package tabular reads the published-spreadsheet export used by the schedule feed.
//
// The format is deliberately naive: one record per line, fields split on a single
// delimiter, no quoting. A value that contains the delimiter is split into two fields;
// callers that need quoted CSV must not use this package.
package tabular

import "strings"

// Record maps header names to the trimmed field values of one line.
type Record map[string]string

// Parse splits text into records keyed by the first line's field names.
// Fields past the header width are dropped and missing trailing fields are absent.
func Parse(text string, delim rune) []Record {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	header := splitTrimmed(lines[0], delim)

	out := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := splitTrimmed(line, delim)
		rec := make(Record, len(header))
		for i, value := range fields {
			if i >= len(header) {
				break
			}
			rec[header[i]] = value
		}
		out = append(out, rec)
	}

	return out
}

// Header returns the trimmed field names of the first line.
func Header(text string, delim rune) []string {
	first, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return splitTrimmed(first, delim)
}

func splitTrimmed(line string, delim rune) []string {
	parts := strings.Split(line, string(delim))
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

package leytext

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLines converts extracted plain text into the line sequence the
// segmenter scans: Unicode NFC form, internal whitespace collapsed to
// single spaces, leading/trailing whitespace trimmed, blank lines dropped.
// Source pages arrive with mixed encodings and mojibake artifacts; NFC
// keeps accented heading words matchable by a single pattern.
func NormalizeLines(text string) []string {
	text = norm.NFC.String(text)

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.Join(strings.Fields(raw), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

package assembler

import "strings"

const commentMarker = "//"

// SourceLine is a significant line together with its position in the input.
type SourceLine struct {
	Number int
	Text   string
}

// Preprocess strips comments and surrounding whitespace and drops the lines
// left empty. Relative order is preserved.
func Preprocess(lines []string) []string {
	sig := preprocess(lines)
	out := make([]string, len(sig))
	for i, l := range sig {
		out[i] = l.Text
	}
	return out
}

func preprocess(lines []string) []SourceLine {
	var out []SourceLine
	for i, line := range lines {
		if idx := strings.Index(line, commentMarker); idx != -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, SourceLine{Number: i + 1, Text: line})
	}
	return out
}

// SplitLines breaks source text into lines, normalising CRLF endings.
func SplitLines(src string) []string {
	return strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
}

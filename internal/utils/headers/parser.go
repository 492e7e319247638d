package headers

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseHeaders converts an array of header strings ("Key: Value") into a map.
//
// The key is everything before the first colon and is kept verbatim. The colon
// must be followed by at least one whitespace character; the value is the rest
// of the line with surrounding whitespace removed. Lines that do not match are
// skipped, and a repeated key keeps the value of its last line.
func ParseHeaders(h []string) map[string]string {
	m := make(map[string]string)
	for _, hdr := range h {
		key, value, ok := splitLine(hdr)
		if ok {
			m[key] = value
		}
	}
	return m
}

func splitLine(line string) (key, value string, ok bool) {
	key, rest, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	if !unicode.IsSpace(r) {
		return "", "", false
	}
	return key, strings.TrimSpace(rest), true
}

// SplitLines breaks a block of text into lines, dropping the "\r" of CRLF endings.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

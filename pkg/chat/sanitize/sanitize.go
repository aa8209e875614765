package sanitize

import "strings"

// Clean strips NUL bytes and C0/C1 control characters from free-text input,
// keeping tab, newline and carriage return so lists survive, then trims
// surrounding whitespace. This guards logs and storage against control-byte
// injection; it is not a prompt-injection defense.
func Clean(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		// C0 (0x00-0x1F), DEL (0x7F) and C1 (0x80-0x9F)
		if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}

// CleanAndTruncate cleans s and cuts it to at most max runes.
func CleanAndTruncate(s string, max int) string {
	cleaned := Clean(s)
	runes := []rune(cleaned)
	if len(runes) <= max {
		return cleaned
	}
	return strings.TrimSpace(string(runes[:max]))
}

package sanitize

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "need 225/65R17 tires", "need 225/65R17 tires"},
		{"trims whitespace", "  hello  ", "hello"},
		{"strips NUL", "he\x00llo", "hello"},
		{"strips C0 controls", "a\x01\x02\x03b", "ab"},
		{"strips DEL and C1", "a\x7fb\u0085c", "abc"},
		{"keeps newline and tab", "line1\n\tline2", "line1\n\tline2"},
		{"keeps unicode text", "prix pneus été 205/55R16", "prix pneus été 205/55R16"},
		{"only controls becomes empty", "\x00\x01\x1f", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanAndTruncate(t *testing.T) {
	if got := CleanAndTruncate("abcdef", 4); got != "abcd" {
		t.Errorf("got %q, want abcd", got)
	}
	if got := CleanAndTruncate("abc", 4); got != "abc" {
		t.Errorf("got %q, want abc", got)
	}
	// Cut point landing on whitespace must not leave a trailing space.
	if got := CleanAndTruncate("ab cdef", 3); got != "ab" {
		t.Errorf("got %q, want ab", got)
	}
	// Rune-based, not byte-based.
	if got := CleanAndTruncate("ééééé", 3); got != "ééé" {
		t.Errorf("got %q, want ééé", got)
	}
}

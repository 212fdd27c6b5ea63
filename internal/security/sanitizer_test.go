package security

import (
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain name", "alice", "alice"},
		{"Trims whitespace", "  bob  ", "bob"},
		{"Strips tags", "<b>mallory</b>", "mallory"},
		{"Strips script", "<script>alert(1)</script>eve", "eve"},
		{"Removes null bytes", "tr\x00udy", "trudy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.input); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeName_LengthCap(t *testing.T) {
	long := strings.Repeat("x", 200)
	if got := SanitizeName(long); len(got) != maxNameLength {
		t.Errorf("SanitizeName() length = %d, want %d", len(got), maxNameLength)
	}
}

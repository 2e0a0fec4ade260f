package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailform/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", sanitizer.Trim("  hello\t\n"))
	assert.Equal(t, "", sanitizer.Trim("   "))
	assert.Equal(t, "", sanitizer.Trim(""))
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"truncated", "hello world", 5, "hello"},
		{"zero limit", "hello", 0, ""},
		{"negative limit", "hello", -1, ""},
		{"multibyte runes counted not bytes", "héllo wörld", 5, "héllo"},
		{"empty input", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.MaxLength(tt.input, tt.maxLen))
		})
	}
}

func TestRemoveControlChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab", sanitizer.RemoveControlChars("a\x00\x1bb"))
	assert.Equal(t, "line1\nline2", sanitizer.RemoveControlChars("line1\nline2"))
	assert.Equal(t, "tab\there", sanitizer.RemoveControlChars("tab\there"))
}

func TestMaxLengthLongMessage(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 6000)
	assert.Len(t, sanitizer.MaxLength(long, 5000), 5000)
}

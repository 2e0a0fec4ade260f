package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailform/pkg/sanitizer"
)

func TestStripScriptTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"script removed with content", `before<script>alert(1)</script>after`, "beforeafter"},
		{"case insensitive", `<SCRIPT src="x">payload</SCRIPT>`, ""},
		{"script with attributes", `<script type="text/javascript">x()</script>ok`, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.StripScriptTags(tt.input))
		})
	}
}

func TestRemoveJavaScriptEvents(t *testing.T) {
	t.Parallel()

	out := sanitizer.RemoveJavaScriptEvents(`<img src="x" onerror="alert(1)">`)
	assert.NotContains(t, out, "onerror")

	out = sanitizer.RemoveJavaScriptEvents(`<a href="javascript:alert(1)">x</a>`)
	assert.NotContains(t, strings.ToLower(out), "javascript:")
}

func TestNeutralizeHTML(t *testing.T) {
	t.Parallel()

	out := sanitizer.NeutralizeHTML(`<script>alert("xss")</script><b onclick="x()">hi</b>`)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "<b")
	assert.Contains(t, out, "hi")
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", sanitizer.CleanText("", 100))
		assert.Equal(t, "", sanitizer.CleanText("   \t ", 100))
	})

	t.Run("never contains executable markup", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			`<script>document.cookie</script>`,
			`hello <script src="//evil">x</script> world`,
			`<img src=x onerror=alert(1)>`,
			`<a href="javascript:void(0)">click</a>`,
		}
		for _, in := range inputs {
			out := sanitizer.CleanText(in, 5000)
			assert.NotContains(t, out, "<script", "input %q", in)
			assert.NotContains(t, out, "<img", "input %q", in)
			assert.NotContains(t, out, "<a ", "input %q", in)
		}
	})

	t.Run("output bounded by max length", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.CleanText(strings.Repeat("x", 300), 200)
		assert.Len(t, out, 200)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Jane Doe", sanitizer.CleanText("  Jane Doe \n", 200))
	})
}

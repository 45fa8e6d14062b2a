package quoting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoters(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		quote func(string) string
		in    string
		want  string
	}{
		{"double plain", DoubleQuote, "scores", `"scores"`},
		{"double empty", DoubleQuote, "", `""`},
		{"double embedded", DoubleQuote, `lo"w`, `"lo""w"`},
		{"double breakout", DoubleQuote, `a"."b`, `"a"".""b"`},
		{"double keeps backslash", DoubleQuote, `a\b`, `"a\b"`},
		{"backtick plain", Backtick, "scores", "`scores`"},
		{"backtick embedded", Backtick, "lo`w", "`lo``w`"},
		{"backtick only", Backtick, "`", "````"},
		{"bracket plain", Bracket, "scores", "[scores]"},
		{"bracket closing", Bracket, "up]per", "[up]]per]"},
		{"bracket opening kept", Bracket, "lo[w", "[lo[w]"},
		{"bracket space", Bracket, "range end", "[range end]"},
		{"unicode", DoubleQuote, "höhe", `"höhe"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.quote(tt.in))
		})
	}
}

func TestEscapeString(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"":            "",
		"low":         "low",
		"o'clock":     "o''clock",
		"''":          "''''",
		`C:\range`:    `C:\\range`,
		"' OR 1=1 --": "'' OR 1=1 --",
		"naïve's":     "naïve''s",
		"nul\x00byte": "nul\x00byte",
		`mixed\'both`: `mixed\\''both`,
	}
	for in, want := range tests {
		assert.Equal(t, want, EscapeString(in), "input %q", in)
	}
}

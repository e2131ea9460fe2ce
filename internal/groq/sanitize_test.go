package groq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"bold markers removed", "**bold** text", "bold text"},
		{"triple asterisks removed", "***emphasis***", "emphasis"},
		{"double underscores removed", "__underline__", "underline"},
		{"escaped backslashes removed", `a\\b`, "ab"},
		{"mixed run removed", `*\_*noise*\_*`, "noise"},
		{"single asterisk kept", "2 * 3 = 6", "2 * 3 = 6"},
		{"single underscore kept", "snake_case", "snake_case"},
		{"single backslash kept", `C:\temp`, `C:\temp`},
		{"empty string", "", ""},
		{"json survives", `{"score": 80, "analysis": "**strong**"}`, `{"score": 80, "analysis": "strong"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"**bold** and __underlined__",
		`mix *\_ of _* everything`,
		"clean text",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once))
	}
}

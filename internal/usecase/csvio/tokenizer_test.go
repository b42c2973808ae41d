package csvio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "plain fields",
			input: "a,b,c\n1,2,3\n",
			want:  [][]string{{"a", "b", "c"}, {"1", "2", "3"}},
		},
		{
			name:  "no trailing newline",
			input: "a,b",
			want:  [][]string{{"a", "b"}},
		},
		{
			name:  "empty fields",
			input: "Asset,,x,\n",
			want:  [][]string{{"Asset", "", "x", ""}},
		},
		{
			name:  "comma inside quotes",
			input: `x,"Main St, Apt 4",y`,
			want:  [][]string{{"x", "Main St, Apt 4", "y"}},
		},
		{
			name:  "doubled quote inside quotes",
			input: `"say ""hi""",z`,
			want:  [][]string{{`say "hi"`, "z"}},
		},
		{
			name:  "newline inside quotes",
			input: "\"line one\nline two\",end\nnext\n",
			want:  [][]string{{"line one\nline two", "end"}, {"next"}},
		},
		{
			name:  "crlf line endings",
			input: "a,b\r\nc,d\r\n",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "blank line",
			input: "a\n\nb\n",
			want:  [][]string{{"a"}, {""}, {"b"}},
		},
		{
			name:  "unterminated quote",
			input: "a,\"open, still open\nmore",
			want:  [][]string{{"a", "open, still open\nmore"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

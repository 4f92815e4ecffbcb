package repl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitCommands(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [][]string
		wantErr bool
	}{
		{
			name:  "simple command",
			input: "add hello",
			want:  [][]string{{"add", "hello"}},
		},
		{
			name:  "double quoted string",
			input: `add "hello world"`,
			want:  [][]string{{"add", "hello world"}},
		},
		{
			name:  "single quoted string",
			input: `add 'hello world'`,
			want:  [][]string{{"add", "hello world"}},
		},
		{
			name:  "escaped space outside quotes",
			input: `add hello\ world`,
			want:  [][]string{{"add", "hello world"}},
		},
		{
			name:  "escaped quote in double quotes",
			input: `add "hello \"world\""`,
			want:  [][]string{{"add", `hello "world"`}},
		},
		{
			name:  "backslash literal in single quotes",
			input: `add 'hello\world'`,
			want:  [][]string{{"add", `hello\world`}},
		},
		{
			name:  "empty words",
			input: `has "" '' x`,
			want:  [][]string{{"has", "", "", "x"}},
		},
		{
			name:  "several commands",
			input: "add a b; has a ;len\nlist",
			want:  [][]string{{"add", "a", "b"}, {"has", "a"}, {"len"}, {"list"}},
		},
		{
			name:  "quoted separator",
			input: `add "a;b" 'c d'; len`,
			want:  [][]string{{"add", "a;b", "c d"}, {"len"}},
		},
		{
			name:  "escaped separator",
			input: `add a\;b`,
			want:  [][]string{{"add", "a;b"}},
		},
		{
			name:  "empty commands",
			input: " ;; \n ; len;",
			want:  [][]string{{"len"}},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "tabs and carriage returns",
			input: "add\thello\r\n",
			want:  [][]string{{"add", "hello"}},
		},
		{
			name:    "unclosed double quote",
			input:   `add "hello world`,
			wantErr: true,
		},
		{
			name:    "unclosed single quote",
			input:   `add 'hello world`,
			wantErr: true,
		},
		{
			name:    "unterminated escape at end",
			input:   `add hello\`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitCommands(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("SplitCommands() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitCommands() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

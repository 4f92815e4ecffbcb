package repl_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pinego.io/pinego/repl"
	"pinego.io/pinego/statictrie"
)

func newDynamic(t *testing.T, mode string) repl.Store {
	t.Helper()
	st, err := repl.NewDynamicStore(mode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return st
}

func TestEvalString(t *testing.T) {
	st := newDynamic(t, repl.ModeRunes)
	s := `add Hello Hello! Hell; add Hell
has Hella Hello
prefix Hella
count Hell; len
rm Hello; rm Hello
list`
	expected := `added "Hello"
added "Hello!"
added "Hell"
exists "Hell"
"Hella" false
"Hello" true
4
3
3
removed "Hello"
absent "Hello"
"Hell"
"Hello!"
`
	got, errs := repl.EvalString(st, s, repl.Options{})
	if len(errs) > 0 {
		t.Errorf("EvalString() errors: %v", errs)
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("EvalString() mismatch (-want +got):\n%s", diff)
	}
}

func TestEvalEmptyWord(t *testing.T) {
	st := newDynamic(t, repl.ModeBytes)
	got, errs := repl.EvalString(st, `add ""; has ""; len; list`, repl.Options{})
	if len(errs) > 0 {
		t.Errorf("EvalString() errors: %v", errs)
	}
	expected := "added \"\"\n\"\" true\n1\n\"\"\n"
	if got != expected {
		t.Errorf("EvalString() got %q, want %q", got, expected)
	}
}

func TestEvalStatic(t *testing.T) {
	st, err := repl.NewStaticStore(5, "Helo!Dank")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, errs := repl.EvalString(st, "add Hello Hello! Danke; has Hello!; len", repl.Options{})
	if len(errs) != 1 || !errors.Is(errs[0], statictrie.ErrLengthMismatch) {
		t.Errorf("Expected one length mismatch error, got %v", errs)
	}
	if !strings.Contains(got, `added "Hello"`) || !strings.Contains(got, `added "Danke"`) ||
		!strings.Contains(got, `can't add "Hello!"`) || !strings.HasSuffix(got, "\"Hello!\" false\n2\n") {
		t.Errorf("Unexpected output:\n%s", got)
	}
	if !strings.Contains(st.Describe(), `over "Helo!Dank", 2 words`) {
		t.Errorf("Describe() = %q", st.Describe())
	}
}

func TestEvalErrors(t *testing.T) {
	st := newDynamic(t, repl.ModeRunes)
	_, errs := repl.EvalString(st, `foo; add; prefix a b; len x; add "unclosed`, repl.Options{})
	if len(errs) != 1 {
		t.Errorf("Expected a single split error for the whole line, got %v", errs)
	}
	_, errs = repl.EvalString(st, `foo; add; prefix a b; len x; len`, repl.Options{})
	if len(errs) != 4 {
		t.Errorf("Expected 4 errors, got %v", errs)
	}
}

func TestEvalAllAndListLimit(t *testing.T) {
	st := newDynamic(t, repl.ModeGraphemes)
	var out strings.Builder
	in := strings.NewReader("add a b c d\nlist\n")
	errs := repl.EvalAll(st, in, &out, repl.Options{MaxList: 2})
	if len(errs) > 0 {
		t.Errorf("EvalAll() errors: %v", errs)
	}
	want := "added \"a\"\nadded \"b\"\nadded \"c\"\nadded \"d\"\n\"a\"\n\"b\"\n... 2 more\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("EvalAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownMode(t *testing.T) {
	if _, err := repl.NewDynamicStore("words"); err == nil {
		t.Error("Expected error for unknown mode")
	}
	if _, err := repl.NewStaticStore(0, "ab"); !errors.Is(err, statictrie.ErrInvalidArgument) {
		t.Errorf("Expected invalid argument, got %v", err)
	}
}

func TestComplete(t *testing.T) {
	st := newDynamic(t, repl.ModeRunes)
	repl.EvalString(st, "add carton cartoon cat dog", repl.Options{})
	ac := repl.NewCompletion(st)
	tests := []struct {
		line       string
		pos        int
		newLine    string
		newPos     int
		candidates []string
	}{
		{"has car", 7, "has carto", 9, []string{"carton", "cartoon"}},
		{"has do", 6, "has dog", 7, []string{"dog"}},
		{"has x", 5, "has x", 5, nil},
		{"has c and more", 5, "has ca and more", 6, []string{"carton", "cartoon", "cat"}},
		{"ad", 2, "add", 3, []string{"add"}},
		{"len; co", 7, "len; count", 10, []string{"count"}},
		{"l", 1, "l", 1, []string{"len", "list"}},
	}
	for _, tt := range tests {
		newLine, newPos, candidates := ac.Complete(tt.line, tt.pos)
		if newLine != tt.newLine || newPos != tt.newPos {
			t.Errorf("Complete(%q, %d) = %q, %d, want %q, %d", tt.line, tt.pos, newLine, newPos, tt.newLine, tt.newPos)
		}
		if diff := cmp.Diff(tt.candidates, candidates); diff != "" {
			t.Errorf("Complete(%q) candidates mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestCompleteBeyondMax(t *testing.T) {
	st := newDynamic(t, repl.ModeRunes)
	for i := range 25 {
		st.Add(fmt.Sprintf("ab%02d", i))
	}
	st.Add("ac")
	ac := repl.NewCompletion(st)
	newLine, newPos, candidates := ac.Complete("has a", 5)
	if newLine != "has a" || newPos != 5 {
		t.Errorf("Complete() = %q, %d, expected no extension past 'a'", newLine, newPos)
	}
	if len(candidates) != repl.DefaultMaxCompletions {
		t.Errorf("Expected %d candidates, got %d", repl.DefaultMaxCompletions, len(candidates))
	}
	newLine, newPos, _ = ac.Complete("has ab1", 7)
	if newLine != "has ab1" || newPos != 7 {
		t.Errorf("Complete() = %q, %d", newLine, newPos)
	}
	st.Remove("ac")
	newLine, newPos, _ = ac.Complete("has a", 5)
	if newLine != "has ab" || newPos != 6 {
		t.Errorf("Complete() = %q, %d, expected extension to 'ab'", newLine, newPos)
	}
}

func TestEvalStringListLimit(t *testing.T) {
	st := newDynamic(t, repl.ModeRunes)
	got, errs := repl.EvalString(st, "add a b c; list", repl.Options{MaxList: 1})
	if len(errs) > 0 {
		t.Errorf("EvalString() errors: %v", errs)
	}
	expected := "added \"a\"\nadded \"b\"\nadded \"c\"\n\"a\"\n... 2 more\n"
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("EvalString() mismatch (-want +got):\n%s", diff)
	}
}

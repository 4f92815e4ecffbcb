package repl

import (
	"fmt"
	"maps"
	"strings"
	"unicode/utf8"

	"fortio.org/terminal"
	"pinego.io/pinego/alphabet"
	"pinego.io/pinego/trie"
)

// DefaultMaxCompletions is the number of candidates looked at for completion.
const DefaultMaxCompletions = 20

// AutoComplete completes command names, then stored words.
type AutoComplete struct {
	Store    Store
	Max      int
	commands *trie.Trie[byte]
}

func NewCompletion(st Store) *AutoComplete {
	names := trie.New[byte]()
	for n := range maps.Keys(commands) {
		names.Insert(alphabet.Bytes(n))
	}
	return &AutoComplete{Store: st, Max: DefaultMaxCompletions, commands: names}
}

func (a *AutoComplete) AutoComplete() terminal.AutoCompleteCallback {
	return func(t *terminal.Terminal, line string, pos int, key rune) (newLine string, newPos int, ok bool) {
		if key != '\t' {
			return // only tab for now
		}
		return a.autoCompleteCallback(t, line, pos)
	}
}

func (a *AutoComplete) autoCompleteCallback(t *terminal.Terminal, line string, pos int) (newLine string, newPos int, ok bool) {
	newLine, newPos, candidates := a.Complete(line, pos)
	if len(candidates) == 0 {
		return
	}
	if len(candidates) > 1 {
		fmt.Fprint(t.Out, "One of: ")
		for _, c := range candidates {
			fmt.Fprintf(t.Out, "%q ", c)
		}
		fmt.Fprintln(t.Out)
	}
	return newLine, newPos, true
}

// Complete extends the word ending at pos with the longest prefix shared by
// its candidates: command names for the first word of a command, stored words
// otherwise. Returns the new line, the new cursor position and the candidates.
func (a *AutoComplete) Complete(line string, pos int) (string, int, []string) {
	head := line[:pos]
	start := strings.LastIndexAny(head, " \t;") + 1
	partial := head[start:]
	var candidates []string
	isCommand := commandPosition(head[:start])
	if isCommand {
		for w := range a.commands.WithPrefix(alphabet.Bytes(partial)) {
			candidates = append(candidates, string(w))
		}
	} else {
		candidates = a.Store.List(partial, a.Max)
	}
	if len(candidates) == 0 {
		return line, pos, nil
	}
	common := commonPrefix(candidates)
	if !isCommand {
		// candidates can be truncated to Max: shrink until every stored word
		// starting with partial also starts with common.
		total := a.Store.CountPrefix(partial)
		for len(common) > len(partial) && a.Store.CountPrefix(common) != total {
			_, size := utf8.DecodeLastRuneInString(common)
			common = common[:len(common)-size]
		}
	}
	return head[:start] + common + line[pos:], start + len(common), candidates
}

// commandPosition is true when the word following before is a command name.
func commandPosition(before string) bool {
	return strings.TrimSpace(before) == "" || strings.HasSuffix(strings.TrimRight(before, " \t"), ";")
}

func commonPrefix(words []string) string {
	p := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, p) {
			_, size := utf8.DecodeLastRuneInString(p)
			p = p[:len(p)-size]
		}
	}
	return p
}

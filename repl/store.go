package repl

import (
	"cmp"
	"fmt"

	"pinego.io/pinego/alphabet"
	"pinego.io/pinego/statictrie"
	"pinego.io/pinego/trie"
)

// Store is the string view of a trie the commands operate on.
type Store interface {
	// Add inserts word, returns true if it is new.
	Add(word string) (bool, error)
	Has(word string) bool
	// Remove deletes word, returns false if it wasn't there.
	Remove(word string) bool
	// LongestPrefix is in symbols, not bytes.
	LongestPrefix(word string) int
	CountPrefix(prefix string) int
	// List returns, in order, up to limit (all if limit <= 0) words starting with prefix.
	List(prefix string, limit int) []string
	Len() int
	Describe() string
}

// Symbol modes of the dynamic store.
const (
	ModeBytes     = "bytes"
	ModeRunes     = "runes"
	ModeGraphemes = "graphemes"
)

type dynamicStore[S cmp.Ordered] struct {
	trie  *trie.Trie[S]
	split func(string) []S
	mode  string
}

// NewDynamicStore returns a store backed by an unbounded trie, splitting
// words according to mode (one of ModeBytes, ModeRunes, ModeGraphemes).
func NewDynamicStore(mode string) (Store, error) {
	switch mode {
	case ModeBytes:
		return &dynamicStore[byte]{trie.New[byte](), alphabet.Bytes, mode}, nil
	case ModeRunes:
		return &dynamicStore[rune]{trie.New[rune](), alphabet.Runes, mode}, nil
	case ModeGraphemes:
		return &dynamicStore[string]{trie.New[string](), alphabet.Graphemes, mode}, nil
	}
	return nil, fmt.Errorf("unknown symbol mode %q, should be one of %s, %s or %s",
		mode, ModeBytes, ModeRunes, ModeGraphemes)
}

func (d *dynamicStore[S]) Add(word string) (bool, error) {
	return d.trie.Insert(d.split(word)), nil
}

func (d *dynamicStore[S]) Has(word string) bool {
	return d.trie.Contains(d.split(word))
}

func (d *dynamicStore[S]) Remove(word string) bool {
	return d.trie.Remove(d.split(word))
}

func (d *dynamicStore[S]) LongestPrefix(word string) int {
	return d.trie.LongestPrefix(d.split(word))
}

func (d *dynamicStore[S]) CountPrefix(prefix string) int {
	return d.trie.CountPrefix(d.split(prefix))
}

func (d *dynamicStore[S]) List(prefix string, limit int) []string {
	var res []string
	for w := range d.trie.WithPrefix(d.split(prefix)) {
		res = append(res, alphabet.Join(w))
		if len(res) == limit {
			break
		}
	}
	return res
}

func (d *dynamicStore[S]) Len() int {
	return d.trie.Len()
}

func (d *dynamicStore[S]) Describe() string {
	return fmt.Sprintf("dynamic trie of %s, %d words", d.mode, d.trie.Len())
}

type staticStore struct {
	trie *statictrie.Trie[rune]
}

// NewStaticStore returns a store backed by a static trie of words of
// wordLength runes taken from symbols.
func NewStaticStore(wordLength int, symbols string) (Store, error) {
	t, err := statictrie.NewString(wordLength, symbols)
	if err != nil {
		return nil, err
	}
	return &staticStore{t}, nil
}

func (s *staticStore) Add(word string) (bool, error) {
	return s.trie.Insert([]rune(word))
}

func (s *staticStore) Has(word string) bool {
	return s.trie.Contains([]rune(word))
}

func (s *staticStore) Remove(word string) bool {
	return s.trie.Remove([]rune(word))
}

func (s *staticStore) LongestPrefix(word string) int {
	return s.trie.LongestPrefix([]rune(word))
}

func (s *staticStore) CountPrefix(prefix string) int {
	return s.trie.CountPrefix([]rune(prefix))
}

func (s *staticStore) List(prefix string, limit int) []string {
	var res []string
	for w := range s.trie.WithPrefix([]rune(prefix)) {
		res = append(res, string(w))
		if len(res) == limit {
			break
		}
	}
	return res
}

func (s *staticStore) Len() int {
	return s.trie.Len()
}

func (s *staticStore) Describe() string {
	return fmt.Sprintf("static trie of %d runes over %q, %d words",
		s.trie.WordLength(), string(s.trie.Alphabet()), s.trie.Len())
}

// Package statictrie implements a prefix tree for words of one fixed length
// over a fixed alphabet. Nodes are arrays of one slot per alphabet symbol,
// indexed by the symbol's position, held in an arena and addressed by handle.
//
// As with the dynamic trie, a Trie is not safe for concurrent use and an
// [Iterator] must not be used after its trie has been modified.
package statictrie // import "pinego.io/pinego/statictrie"

import (
	"fmt"

	"fortio.org/log"
	"pinego.io/pinego/alphabet"
)

// Errors returned by this package, usable with errors.Is.
var (
	ErrInvalidArgument = alphabet.ErrInvalidArgument
	ErrLengthMismatch  = alphabet.ErrLengthMismatch
	ErrUnknownSymbol   = alphabet.ErrUnknownSymbol
)

// Trie is a set of words of exactly WordLength symbols taken from its alphabet.
// The zero value has no alphabet and isn't usable: use [New], [NewString] or [From].
type Trie[S comparable] struct {
	alphabet   *alphabet.Alphabet[S]
	wordLength int
	nodes      *arena
	root       handle // always allocated.
	size       int
}

// New creates an empty trie for words of wordLength symbols from symbols.
// Returns [ErrInvalidArgument] if wordLength isn't positive, symbols is empty
// or holds a repeated symbol.
func New[S comparable](wordLength int, symbols []S) (*Trie[S], error) {
	if wordLength <= 0 {
		return nil, fmt.Errorf("%w: word length has to be at least one, got %d", ErrInvalidArgument, wordLength)
	}
	a, err := alphabet.New(symbols...)
	if err != nil {
		return nil, err
	}
	t := &Trie[S]{alphabet: a, wordLength: wordLength}
	t.Reset()
	log.LogVf("statictrie: new trie for words of %d symbols over %d symbols alphabet", wordLength, a.Len())
	return t, nil
}

// NewString is [New] for rune words, with the alphabet given as a string.
func NewString(wordLength int, symbols string) (*Trie[rune], error) {
	return New(wordLength, []rune(symbols))
}

// From creates a trie holding words. Fails if the parameters are invalid (see [New])
// or if any of the words can't be inserted (see [Trie.Insert]).
func From[S comparable](wordLength int, symbols []S, words ...[]S) (*Trie[S], error) {
	t, err := New(wordLength, symbols)
	if err != nil {
		return nil, err
	}
	for _, w := range words {
		if _, err := t.Insert(w); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Insert adds word. Returns true if it wasn't already present.
// Fails with [ErrLengthMismatch] or [ErrUnknownSymbol], leaving the trie
// unchanged, if word doesn't fit the trie.
func (t *Trie[S]) Insert(word []S) (bool, error) {
	if len(word) != t.wordLength {
		return false, fmt.Errorf("%w: word has %d symbols, trie stores words of %d",
			ErrLengthMismatch, len(word), t.wordLength)
	}
	idx, err := t.alphabet.Indices(word)
	if err != nil {
		return false, err
	}
	return t.insertIndices(idx), nil
}

// insertIndices adds an already validated word.
func (t *Trie[S]) insertIndices(idx []int) bool {
	h := t.root
	last := len(idx) - 1
	for _, i := range idx[:last] {
		c := t.nodes.slot(h, i)
		if c == empty {
			c = t.nodes.alloc()
			t.nodes.setSlot(h, i, c)
		}
		h = c
	}
	if t.nodes.slot(h, idx[last]) == terminal {
		return false
	}
	t.nodes.setSlot(h, idx[last], terminal)
	t.size++
	return true
}

// Contains reports whether word is stored. Words of the wrong length or with
// symbols outside the alphabet are simply not found.
func (t *Trie[S]) Contains(word []S) bool {
	return len(word) == t.wordLength && t.LongestPrefix(word) == t.wordLength
}

// LongestPrefix returns the length of the longest prefix of word that is a
// path in the trie, stopping at the first symbol outside the alphabet.
func (t *Trie[S]) LongestPrefix(word []S) int {
	h := t.root
	for n, s := range word {
		if n == t.wordLength {
			return n
		}
		i, ok := t.alphabet.PositionOf(s)
		if !ok {
			return n
		}
		c := t.nodes.slot(h, i)
		if c == empty {
			return n
		}
		h = c
	}
	return len(word)
}

// HasPrefix reports whether at least one stored word starts with prefix.
func (t *Trie[S]) HasPrefix(prefix []S) bool {
	return t.size > 0 && len(prefix) <= t.wordLength && t.LongestPrefix(prefix) == len(prefix)
}

// Remove deletes word and releases the nodes only it was using.
// Returns false, and changes nothing, if word isn't stored.
func (t *Trie[S]) Remove(word []S) bool {
	if len(word) != t.wordLength {
		return false
	}
	idx, err := t.alphabet.Indices(word)
	if err != nil {
		return false
	}
	path := make([]handle, 0, t.wordLength) // path[d] is the node at depth d.
	h := t.root
	for _, i := range idx {
		path = append(path, h)
		h = t.nodes.slot(h, i)
		if h == empty {
			return false
		}
	}
	t.size--
	d := len(path) - 1
	t.nodes.setSlot(path[d], idx[d], empty)
	// Words all have the same length so a node with any occupied slot is
	// still on the path of another word. Root (d == 0) stays.
	for ; d > 0 && !t.nodes.occupied(path[d]); d-- {
		t.nodes.release(path[d])
		t.nodes.setSlot(path[d-1], idx[d-1], empty)
	}
	log.Debugf("statictrie: removed word, kept nodes down to depth %d", d)
	return true
}

// Alphabet returns a copy of the alphabet symbols, in index order.
func (t *Trie[S]) Alphabet() []S {
	return t.alphabet.Symbols()
}

// WordLength returns the number of symbols of every word.
func (t *Trie[S]) WordLength() int {
	return t.wordLength
}

// Len returns the number of distinct words in the trie.
func (t *Trie[S]) Len() int {
	return t.size
}

// Size is the same as [Trie.Len].
func (t *Trie[S]) Size() int {
	return t.size
}

// Reset empties the trie, dropping all its nodes at once.
func (t *Trie[S]) Reset() {
	t.nodes = newArena(t.alphabet.Len())
	t.root = t.nodes.alloc()
	t.size = 0
}

// Clone returns a deep copy of t: further changes to either don't affect the other.
func (t *Trie[S]) Clone() *Trie[S] {
	c := &Trie[S]{alphabet: t.alphabet, wordLength: t.wordLength}
	c.Reset()
	c.insertAll(t)
	return c
}

// CopyFrom replaces t, alphabet and word length included, by a deep copy of other.
func (t *Trie[S]) CopyFrom(other *Trie[S]) {
	if t == other {
		return
	}
	t.alphabet, t.wordLength = other.alphabet, other.wordLength
	t.Reset()
	t.insertAll(other)
}

func (t *Trie[S]) insertAll(other *Trie[S]) {
	for it := other.Iter(); it.Next(); {
		t.insertIndices(it.index)
	}
}

// Take returns a new trie owning the nodes of t. t keeps its alphabet and
// word length and gets a fresh empty root.
func (t *Trie[S]) Take() *Trie[S] {
	m := &Trie[S]{
		alphabet:   t.alphabet,
		wordLength: t.wordLength,
		nodes:      t.nodes,
		root:       t.root,
		size:       t.size,
	}
	t.Reset()
	log.LogVf("statictrie: moved %d words (%d nodes) to a new trie", m.size, m.nodes.live)
	return m
}

// MoveFrom makes t own the nodes, alphabet and word length of other, which
// is left empty with a fresh root.
func (t *Trie[S]) MoveFrom(other *Trie[S]) {
	if t == other {
		return
	}
	t.alphabet, t.wordLength = other.alphabet, other.wordLength
	t.nodes, t.root, t.size = other.nodes, other.root, other.size
	other.Reset()
	log.LogVf("statictrie: moved in %d words (%d nodes)", t.size, t.nodes.live)
}

// nodeCount returns the number of allocated node records, root included.
func (t *Trie[S]) nodeCount() int {
	return t.nodes.live
}

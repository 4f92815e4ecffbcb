// Package trie implements a prefix tree storing distinct words (sequences of
// any ordered symbol type) without limit on the word length or alphabet.
//
// Children of a node are kept in an ordered map so words enumerate in
// lexicographic order. A Trie is not safe for concurrent use: callers must
// serialize writers and quiesce readers during writes. An [Iterator] must
// not be used after the trie it walks has been modified.
package trie // import "pinego.io/pinego/trie"

import (
	"cmp"

	"fortio.org/log"
	"github.com/emirpasic/gods/maps/treemap"
)

type node[S cmp.Ordered] struct {
	// Children of this node keyed by symbol, nil until the first one is added.
	children *treemap.Map
	// This node is the end of a stored word, in addition to maybe having children.
	final bool
}

func compare[S cmp.Ordered](a, b any) int {
	return cmp.Compare(a.(S), b.(S))
}

func (n *node[S]) child(s S) *node[S] {
	if n.children == nil {
		return nil
	}
	c, found := n.children.Get(s)
	if !found {
		return nil
	}
	return c.(*node[S])
}

func (n *node[S]) addChild(s S) *node[S] {
	if n.children == nil {
		n.children = treemap.NewWith(compare[S])
	}
	c := &node[S]{}
	n.children.Put(s, c)
	return c
}

func (n *node[S]) removeChild(s S) {
	n.children.Remove(s)
	if n.children.Empty() {
		n.children = nil
	}
}

func (n *node[S]) hasChildren() bool {
	return n.children != nil && !n.children.Empty()
}

// Trie is a set of words of symbols S. Use [New] or [From] to create one.
type Trie[S cmp.Ordered] struct {
	root *node[S] // never nil once initialized, even when empty.
	size int
}

// New creates an empty trie.
func New[S cmp.Ordered]() *Trie[S] {
	return &Trie[S]{root: &node[S]{}}
}

// From creates a trie holding the given words.
func From[S cmp.Ordered](words ...[]S) *Trie[S] {
	t := New[S]()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func (t *Trie[S]) top() *node[S] {
	if t.root == nil {
		t.root = &node[S]{}
	}
	return t.root
}

// Insert adds word, creating the missing nodes along its path. The empty word
// is valid. Returns true if the word wasn't already present.
func (t *Trie[S]) Insert(word []S) bool {
	n := t.top()
	for _, s := range word {
		c := n.child(s)
		if c == nil {
			c = n.addChild(s)
		}
		n = c
	}
	if n.final {
		return false
	}
	n.final = true
	t.size++
	return true
}

// walk follows word from the root and returns the deepest node reached along
// with how many symbols were consumed to get there.
func (t *Trie[S]) walk(word []S) (*node[S], int) {
	n := t.top()
	for i, s := range word {
		c := n.child(s)
		if c == nil {
			return n, i
		}
		n = c
	}
	return n, len(word)
}

// Contains reports whether word was inserted (and not removed since).
func (t *Trie[S]) Contains(word []S) bool {
	n, l := t.walk(word)
	return l == len(word) && n.final
}

// LongestPrefix returns the length of the longest prefix of word that is a
// path in the trie. For instance if the trie only contains "Hello", then
// LongestPrefix("Help me") is 3. Whether that path ends a stored word doesn't
// matter.
func (t *Trie[S]) LongestPrefix(word []S) int {
	_, l := t.walk(word)
	return l
}

// HasPrefix reports whether at least one stored word starts with prefix.
func (t *Trie[S]) HasPrefix(prefix []S) bool {
	return t.LongestPrefix(prefix) == len(prefix) && t.size > 0
}

// Remove deletes word and prunes the nodes only it was using.
// Returns false, and changes nothing, if word wasn't present.
func (t *Trie[S]) Remove(word []S) bool {
	path := make([]*node[S], 0, len(word)+1)
	n := t.top()
	path = append(path, n)
	for _, s := range word {
		n = n.child(s)
		if n == nil {
			return false
		}
		path = append(path, n)
	}
	if !n.final {
		return false
	}
	n.final = false
	t.size--
	// path[i] is reached from path[i-1] with word[i-1]. Root (i == 0) is never pruned.
	pruned := 0
	for i := len(path) - 1; i > 0; i-- {
		if path[i].final || path[i].hasChildren() {
			break
		}
		path[i-1].removeChild(word[i-1])
		pruned++
	}
	log.Debugf("trie: removed word of %d symbols, pruned %d nodes", len(word), pruned)
	return true
}

// Len returns the number of distinct words in the trie.
func (t *Trie[S]) Len() int {
	return t.size
}

// Size is the same as [Trie.Len].
func (t *Trie[S]) Size() int {
	return t.size
}

// Reset empties the trie.
func (t *Trie[S]) Reset() {
	t.root = &node[S]{}
	t.size = 0
}

// Clone returns a deep copy of t: further changes to either don't affect the other.
func (t *Trie[S]) Clone() *Trie[S] {
	c := New[S]()
	for w := range t.All() {
		c.Insert(w)
	}
	return c
}

// CopyFrom replaces the content of t by a deep copy of other's.
func (t *Trie[S]) CopyFrom(other *Trie[S]) {
	if t == other {
		return
	}
	t.Reset()
	for w := range other.All() {
		t.Insert(w)
	}
}

// Take returns a new trie owning the nodes of t, leaving t empty (but usable).
// No words are copied.
func (t *Trie[S]) Take() *Trie[S] {
	m := &Trie[S]{root: t.top(), size: t.size}
	t.Reset()
	log.LogVf("trie: moved %d words to a new trie", m.size)
	return m
}

// MoveFrom makes t own the nodes of other and leaves other empty.
func (t *Trie[S]) MoveFrom(other *Trie[S]) {
	if t == other {
		return
	}
	t.root, t.size = other.top(), other.size
	other.Reset()
	log.LogVf("trie: moved in %d words", t.size)
}

// nodeCount returns the number of nodes, root included.
func (t *Trie[S]) nodeCount() int {
	count := 0
	stack := []*node[S]{t.top()}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if n.children != nil {
			for _, c := range n.children.Values() {
				stack = append(stack, c.(*node[S]))
			}
		}
	}
	return count
}

package trie

import (
	"cmp"
	"iter"
	"slices"

	"github.com/emirpasic/gods/maps/treemap"
)

type frame[S cmp.Ordered] struct {
	node *node[S]
	// Position among the children of node, valid only if hasKids.
	kids    treemap.Iterator
	hasKids bool
}

// Iterator walks the words of a trie in ascending order, depth first, keeping
// the path from the root to the current word so each [Iterator.Next] resumes
// where the previous one stopped. Iterators over the same trie are
// independent. The trie must not be modified while an iterator is in use.
type Iterator[S cmp.Ordered] struct {
	prefix  []S
	frames  []frame[S] // root (or subtree start) first.
	symbols []S        // symbols[i] leads from frames[i] to frames[i+1].
	limit   int        // number of words below the start node, -1 when unknown.
	count   int
	started bool
	done    bool
}

func newIterator[S cmp.Ordered](start *node[S], prefix []S, limit int) *Iterator[S] {
	it := &Iterator[S]{prefix: prefix, limit: limit}
	it.push(start)
	return it
}

func (it *Iterator[S]) push(n *node[S]) {
	f := frame[S]{node: n}
	if n.children != nil {
		f.kids = n.children.Iterator()
		f.hasKids = true
	}
	it.frames = append(it.frames, f)
}

// Next advances to the next word, returning false once every word has been visited.
func (it *Iterator[S]) Next() bool {
	if it.done {
		return false
	}
	if it.limit >= 0 && it.count == it.limit {
		it.done = true
		return false
	}
	if !it.started {
		it.started = true
		// Start node itself is the smallest word (the empty word for the root).
		if it.frames[0].node.final {
			it.count++
			return true
		}
	}
	for {
		top := &it.frames[len(it.frames)-1]
		if top.hasKids && top.kids.Next() {
			// Go deeper.
			it.symbols = append(it.symbols, top.kids.Key().(S))
			child := top.kids.Value().(*node[S])
			it.push(child)
			if child.final {
				it.count++
				return true
			}
			continue
		}
		if len(it.frames) == 1 {
			it.done = true
			return false
		}
		// Backtrack.
		it.frames = it.frames[:len(it.frames)-1]
		it.symbols = it.symbols[:len(it.symbols)-1]
	}
}

// Word returns the current word, valid after [Iterator.Next] returned true.
// The returned slice is a copy, changing it has no effect on the trie.
func (it *Iterator[S]) Word() []S {
	w := make([]S, 0, len(it.prefix)+len(it.symbols))
	w = append(w, it.prefix...)
	return append(w, it.symbols...)
}

// Iter returns an iterator positioned before the first word.
func (t *Trie[S]) Iter() *Iterator[S] {
	return newIterator(t.top(), nil, t.size)
}

// All returns the words in ascending order.
func (t *Trie[S]) All() iter.Seq[[]S] {
	return seq(t.Iter)
}

// WithPrefix returns, in ascending order, the words starting with prefix.
func (t *Trie[S]) WithPrefix(prefix []S) iter.Seq[[]S] {
	n, l := t.walk(prefix)
	if l != len(prefix) {
		return func(func([]S) bool) {}
	}
	prefix = slices.Clone(prefix)
	return seq(func() *Iterator[S] {
		return newIterator(n, prefix, -1)
	})
}

// CountPrefix returns how many words start with prefix.
func (t *Trie[S]) CountPrefix(prefix []S) int {
	if len(prefix) == 0 {
		return t.size
	}
	n, l := t.walk(prefix)
	if l != len(prefix) {
		return 0
	}
	count := 0
	for it := newIterator(n, nil, -1); it.Next(); {
		count++
	}
	return count
}

// Words returns all the words in ascending order.
func (t *Trie[S]) Words() [][]S {
	res := make([][]S, 0, t.size)
	for w := range t.All() {
		res = append(res, w)
	}
	return res
}

// seq makes a fresh iterator for each range loop so sequences can be reused.
func seq[S cmp.Ordered](newIt func() *Iterator[S]) iter.Seq[[]S] {
	return func(yield func([]S) bool) {
		for it := newIt(); it.Next(); {
			if !yield(it.Word()) {
				return
			}
		}
	}
}

package statictrie

import (
	"iter"
	"slices"
)

// Iterator walks the words of a trie in ascending alphabet index order,
// keeping the stack of nodes from the start node to the cursor and the slot
// index chosen at each depth. Iterators over the same trie are independent.
// The trie must not be modified while an iterator is in use.
type Iterator[S comparable] struct {
	trie   *Trie[S]
	prefix []S
	base   int      // depth of nodes[0].
	nodes  []handle // current path, start node first.
	index  []int    // index[d] is the slot last chosen in nodes[d].
	limit  int      // number of words below the start node, -1 when unknown.
	count  int
	done   bool
}

func (t *Trie[S]) newIterator(start handle, prefix []S, limit int) *Iterator[S] {
	return &Iterator[S]{
		trie:   t,
		prefix: prefix,
		base:   len(prefix),
		nodes:  []handle{start},
		index:  make([]int, 0, t.wordLength),
		limit:  limit,
	}
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
	a := it.trie.nodes
	for {
		d := len(it.nodes) - 1
		from := 0
		if len(it.index) > d {
			// Been here before: resume after the last slot tried.
			from = it.index[d] + 1
			it.index = it.index[:d]
		}
		i := a.next(it.nodes[d], from)
		if i < 0 {
			if d == 0 {
				it.done = true
				return false
			}
			// Backtrack.
			it.nodes = it.nodes[:d]
			continue
		}
		it.index = append(it.index, i)
		if it.base+len(it.index) == it.trie.wordLength {
			it.count++
			return true
		}
		// Go deeper.
		it.nodes = append(it.nodes, a.slot(it.nodes[d], i))
	}
}

// Word returns the current word, valid after [Iterator.Next] returned true.
func (it *Iterator[S]) Word() []S {
	w := make([]S, 0, it.trie.wordLength)
	w = append(w, it.prefix...)
	for _, i := range it.index {
		w = append(w, it.trie.alphabet.At(i))
	}
	return w
}

// Iter returns an iterator positioned before the first word.
func (t *Trie[S]) Iter() *Iterator[S] {
	return t.newIterator(t.root, nil, t.size)
}

// All returns the words in ascending order.
func (t *Trie[S]) All() iter.Seq[[]S] {
	return seq(t.Iter)
}

// WithPrefix returns, in ascending order, the stored words starting with prefix.
func (t *Trie[S]) WithPrefix(prefix []S) iter.Seq[[]S] {
	if !t.HasPrefix(prefix) {
		return func(func([]S) bool) {}
	}
	prefix = slices.Clone(prefix)
	if len(prefix) == t.wordLength {
		return func(yield func([]S) bool) {
			yield(slices.Clone(prefix))
		}
	}
	start := t.prefixNode(prefix)
	return seq(func() *Iterator[S] {
		return t.newIterator(start, prefix, -1)
	})
}

// CountPrefix returns how many stored words start with prefix.
func (t *Trie[S]) CountPrefix(prefix []S) int {
	switch {
	case len(prefix) == 0:
		return t.size
	case !t.HasPrefix(prefix):
		return 0
	case len(prefix) == t.wordLength:
		return 1
	}
	count := 0
	for it := t.newIterator(t.prefixNode(prefix), prefix, -1); it.Next(); {
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

// prefixNode returns the node reached by an existing prefix shorter than WordLength.
func (t *Trie[S]) prefixNode(prefix []S) handle {
	h := t.root
	for _, s := range prefix {
		i, _ := t.alphabet.PositionOf(s)
		h = t.nodes.slot(h, i)
	}
	return h
}

// seq makes a fresh iterator for each range loop so sequences can be reused.
func seq[S comparable](newIt func() *Iterator[S]) iter.Seq[[]S] {
	return func(yield func([]S) bool) {
		for it := newIt(); it.Next(); {
			if !yield(it.Word()) {
				return
			}
		}
	}
}

// Package alphabet holds what the trie packages share: a dense index over a
// fixed set of symbols, the validation errors and helpers to turn strings
// into symbol sequences and back.
package alphabet // import "pinego.io/pinego/alphabet"

import (
	"fmt"
	"slices"

	"fortio.org/sets"
)

// Alphabet is an ordered sequence of distinct symbols. The position of a
// symbol in the sequence is its index, which also defines the ordering
// static tries enumerate words in. An Alphabet is immutable once built.
type Alphabet[S comparable] struct {
	symbols []S
	index   map[S]int
}

// New builds an alphabet from the given symbols, in that order.
// Returns [ErrInvalidArgument] if there are no symbols or if a symbol is repeated.
func New[S comparable](symbols ...S) (*Alphabet[S], error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: alphabet has to have at least one symbol", ErrInvalidArgument)
	}
	seen := sets.New[S]()
	for _, s := range symbols {
		if seen.Has(s) {
			return nil, fmt.Errorf("%w: alphabet may only contain unique symbols, %v is repeated", ErrInvalidArgument, s)
		}
		seen.Add(s)
	}
	a := &Alphabet[S]{
		symbols: slices.Clone(symbols),
		index:   make(map[S]int, len(symbols)),
	}
	for i, s := range a.symbols {
		a.index[s] = i
	}
	return a, nil
}

// Len is the number of symbols.
func (a *Alphabet[S]) Len() int {
	return len(a.symbols)
}

// PositionOf returns the index of s, false if s isn't part of the alphabet.
func (a *Alphabet[S]) PositionOf(s S) (int, bool) {
	i, ok := a.index[s]
	return i, ok
}

// At returns the symbol at index i.
func (a *Alphabet[S]) At(i int) S {
	return a.symbols[i]
}

// Symbols returns a copy of the symbols in index order.
func (a *Alphabet[S]) Symbols() []S {
	return slices.Clone(a.symbols)
}

// Indices maps every symbol of word to its index. The whole word is checked
// before anything is returned: any symbol outside the alphabet yields
// [ErrUnknownSymbol] and a nil slice.
func (a *Alphabet[S]) Indices(word []S) ([]int, error) {
	res := make([]int, len(word))
	for n, s := range word {
		i, ok := a.index[s]
		if !ok {
			return nil, fmt.Errorf("%w: %v at position %d", ErrUnknownSymbol, s, n)
		}
		res[n] = i
	}
	return res, nil
}

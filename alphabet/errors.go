package alphabet

import "errors"

var (
	// ErrInvalidArgument is returned when an alphabet or a trie can't be built
	// from the given parameters (empty alphabet, repeated symbol, zero word length).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLengthMismatch is returned when a word doesn't have the fixed length a trie requires.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrUnknownSymbol is returned when a word uses a symbol outside the alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")
)

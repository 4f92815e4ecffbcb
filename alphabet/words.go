package alphabet

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// Bytes splits s into byte symbols.
func Bytes(s string) []byte {
	return []byte(s)
}

// Runes splits s into unicode code points.
func Runes(s string) []rune {
	return []rune(s)
}

// UTF16 splits s into UTF-16 code units.
func UTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// Graphemes splits s into user perceived characters (extended grapheme
// clusters), so for instance a flag emoji or a letter followed by a
// combining accent is a single symbol.
func Graphemes(s string) []string {
	res := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		res = append(res, g.Str())
	}
	return res
}

// Join turns a word back into a string. It is the inverse of [Bytes],
// [Runes], [UTF16] and [Graphemes]; other symbol types are concatenated
// using their default format.
func Join[S any](word []S) string {
	switch w := any(word).(type) {
	case []byte:
		return string(w)
	case []rune:
		return string(w)
	case []uint16:
		return string(utf16.Decode(w))
	case []string:
		return strings.Join(w, "")
	}
	var sb strings.Builder
	for _, s := range word {
		fmt.Fprint(&sb, s)
	}
	return sb.String()
}

package statictrie

import (
	"math"

	"fortio.org/log"
	"fortio.org/safecast"
)

// handle identifies a node record in an arena.
type handle uint32

const (
	// empty slot.
	empty handle = 0
	// Shared marker for every node at full depth: a word ends in a slot holding
	// it, so stored words don't cost a record each.
	terminal handle = math.MaxUint32
)

// arena owns all the nodes of one trie. Each node is a record of width slots,
// one per alphabet symbol; a slot is empty, the terminal marker or the handle
// of the child node it owns. Released records go to a free list for reuse.
type arena struct {
	width int
	slots []handle // record h (h >= 1) is slots[(h-1)*width : h*width].
	free  []handle
	live  int
}

func newArena(width int) *arena {
	return &arena{width: width}
}

func (a *arena) alloc() handle {
	a.live++
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		return h
	}
	a.slots = append(a.slots, make([]handle, a.width)...)
	h := handle(safecast.MustConvert[uint32](len(a.slots) / a.width))
	if h == terminal {
		panic("statictrie: too many nodes")
	}
	if h&(h-1) == 0 {
		log.Debugf("statictrie: arena grew to %d records of %d slots", h, a.width)
	}
	return h
}

// release returns an already emptied record to the free list.
func (a *arena) release(h handle) {
	a.free = append(a.free, h)
	a.live--
}

func (a *arena) record(h handle) []handle {
	start := int(h-1) * a.width
	return a.slots[start : start+a.width]
}

func (a *arena) slot(h handle, i int) handle {
	return a.slots[int(h-1)*a.width+i]
}

func (a *arena) setSlot(h handle, i int, c handle) {
	a.slots[int(h-1)*a.width+i] = c
}

// occupied reports whether at least one slot of h is in use.
func (a *arena) occupied(h handle) bool {
	return a.next(h, 0) >= 0
}

// next returns the index of the first non empty slot of h at or after from, -1 if none.
func (a *arena) next(h handle, from int) int {
	for i, c := range a.record(h)[from:] {
		if c != empty {
			return from + i
		}
	}
	return -1
}

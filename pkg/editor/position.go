package editor

import "fmt"

// Position is a place in the element sequence, counted from one end.
// At(1) is the first element, FromEnd(1) the last.
type Position struct {
	n       int
	fromEnd bool
}

// At is the 1-based position n counted from the start.
func At(n int) Position { return Position{n: n} }

// FromEnd is the 1-based position k counted from the end.
func FromEnd(k int) Position { return Position{n: k, fromEnd: true} }

// End inserts after the last element.
var End = FromEnd(1)

func (p Position) String() string {
	if p.fromEnd {
		return fmt.Sprintf("%d from end", p.n)
	}
	return fmt.Sprintf("%d", p.n)
}

// insertIndex returns the slice index at which an inserted element ends up
// at p in a sequence that currently holds size elements.
func (p Position) insertIndex(size int) (int, bool) {
	idx := p.n - 1
	if p.fromEnd {
		idx = size + 1 - p.n
	}
	return idx, p.n >= 1 && idx >= 0 && idx <= size
}

// index returns the slice index of the existing element at p.
func (p Position) index(size int) (int, bool) {
	idx := p.n - 1
	if p.fromEnd {
		idx = size - p.n
	}
	return idx, p.n >= 1 && idx >= 0 && idx < size
}

// Package arena provides the bounded allocation region backing the variable
// system. All worker threads of a run share one Arena through the owning
// context; cells are handed out for the duration of the run and never freed.
//
// Cells are allocated from fixed-size chunks so that pointers into the table
// stay valid as it grows. Capacity is fixed at construction; exhaustion is
// reported with ErrExhausted rather than growing without bound, mirroring the
// budgeted shared region the execution engine sizes up front.
package arena

import (
	"errors"
	"fmt"
)

// ErrExhausted is returned when a table or string budget is used up.
var ErrExhausted = errors.New("arena exhausted")

const chunkSize = 256

// Table hands out stable pointers to zero-valued T cells, up to a fixed
// capacity.
type Table[T any] struct {
	chunks [][]T
	n      int
	cap    int
}

// NewTable creates a Table with room for capacity cells.
func NewTable[T any](capacity int) *Table[T] {
	if capacity <= 0 {
		capacity = chunkSize
	}
	return &Table[T]{cap: capacity}
}

// Alloc returns a pointer to a fresh zero-valued cell. The pointer remains
// valid for the lifetime of the Table.
func (t *Table[T]) Alloc() (*T, error) {
	if t.n >= t.cap {
		return nil, fmt.Errorf("table full at %d cells: %w", t.cap, ErrExhausted)
	}
	if t.n%chunkSize == 0 {
		size := chunkSize
		if remaining := t.cap - t.n; remaining < size {
			size = remaining
		}
		t.chunks = append(t.chunks, make([]T, size))
	}
	chunk := t.chunks[len(t.chunks)-1]
	cell := &chunk[t.n%chunkSize]
	t.n++
	return cell, nil
}

// Len reports the number of allocated cells.
func (t *Table[T]) Len() int { return t.n }

// Cap reports the table capacity.
func (t *Table[T]) Cap() int { return t.cap }

// Interner deduplicates strings under a byte budget. Interning the same text
// twice charges the budget once and returns the identical string.
type Interner struct {
	seen   map[string]string
	used   int
	budget int
}

// NewInterner creates an Interner with the given byte budget.
func NewInterner(budget int) *Interner {
	if budget <= 0 {
		budget = 64 * 1024
	}
	return &Interner{seen: make(map[string]string), budget: budget}
}

// Intern returns a canonical copy of s, charging its length against the
// budget on first sight.
func (in *Interner) Intern(s string) (string, error) {
	if canon, ok := in.seen[s]; ok {
		return canon, nil
	}
	if in.used+len(s) > in.budget {
		return "", fmt.Errorf("string budget %dB exceeded interning %q: %w", in.budget, s, ErrExhausted)
	}
	in.used += len(s)
	in.seen[s] = s
	return s, nil
}

// Used reports the bytes charged so far.
func (in *Interner) Used() int { return in.used }

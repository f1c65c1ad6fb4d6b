package removable

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/casella"
	"github.com/npillmayer/casella/seq"
)

// Set is a removable set without an ordering guarantee. Construct with
//
//     S := removable.NewSet(3, 1, 4, 1, 5)   // duplicates are dropped
//
// Now
//
//     S.Size()       // 4: {3,1,4,5}
//     S.Erase(1)     // {3,5,4}, erased values sit behind the boundary
//     S.Erase(4)     // {3,5}
//     S.Unerase()    // {3,5,4}, restores the *last* erased value
//
// Erasing swaps the element with the last active one and pulls the
// partition boundary in, so both Erase and Unerase are O(1). The relative
// order of active elements is unspecified and changes under mutation.
//
// Values must be comparable in the sense of the Go language specification.
type Set struct {
	items    []interface{} // one flat backing store, active prefix + erased suffix
	boundary int           // active = items[:boundary], erased = items[boundary:]
}

// NewSet creates a removable set from a universe of values. Duplicates are
// dropped; all remaining values start out active.
func NewSet(values ...interface{}) *Set {
	s := &Set{}
	s.items = seq.Unique(values)
	s.boundary = len(s.items)
	return s
}

// Size returns the number of active elements.
func (s *Set) Size() int {
	return s.boundary
}

// Empty is true if no elements are active.
func (s *Set) Empty() bool {
	return s.boundary == 0
}

// Capacity returns the size of the universe, i.e. active plus erased
// elements.
func (s *Set) Capacity() int {
	return len(s.items)
}

// At returns the active element at position i. Positions at or beyond
// Size() are outside the active region; At panics for them.
func (s *Set) At(i int) interface{} {
	if i < 0 || i >= s.boundary {
		panic(fmt.Sprintf("removable.Set.At() outside active region: %d", i))
	}
	return s.items[i]
}

// Find scans the active elements for a value and returns its position,
// or -1 if the value is not active. O(n).
func (s *Set) Find(value interface{}) int {
	for i := 0; i < s.boundary; i++ {
		if s.items[i] == value {
			return i
		}
	}
	return -1
}

// Has is true if a value is active.
func (s *Set) Has(value interface{}) bool {
	return s.Find(value) >= 0
}

// Erase removes a value from the active region. It returns false, without
// mutating anything, if the value is not active.
//
// The erased value becomes the first element of the erased region and
// stays reachable there until it is either restored by the next Unerase,
// or buried by a further Erase.
func (s *Set) Erase(value interface{}) bool {
	p := s.Find(value)
	if p < 0 {
		return false
	}
	s.eraseAt(p)
	return true
}

// eraseAt swaps the element at p with the last active one and shrinks the
// active region. p must be < boundary.
func (s *Set) eraseAt(p int) {
	s.items[p], s.items[s.boundary-1] = s.items[s.boundary-1], s.items[p]
	s.boundary--
}

// Unerase restores the most recently erased element, reversing the effect
// of the matching Erase. It is a no-op, returning false, if nothing is
// erased. No data moves: the value sitting right behind the boundary
// simply becomes active again.
func (s *Set) Unerase() bool {
	if s.boundary == len(s.items) {
		return false
	}
	s.boundary++
	return true
}

// EraseIf erases every active element satisfying a predicate and returns
// how many were erased. Erasing swaps a yet-unseen element into the
// current slot, so the slot is re-tested instead of advanced past.
func (s *Set) EraseIf(predicate func(interface{}) bool) int {
	cnt := 0
	i := 0
	for i < s.boundary {
		if predicate(s.items[i]) {
			s.eraseAt(i) // swapped-in element lands at i, re-test it
			cnt++
		} else {
			i++
		}
	}
	return cnt
}

// Reset restores every erased element, i.e. the full universe becomes
// active again.
func (s *Set) Reset() {
	s.boundary = len(s.items)
}

// ResetSorted restores every erased element and additionally sorts the
// universe by a comparator. Useful if a client wants a known traversal
// order going forward, which this container otherwise does not maintain.
func (s *Set) ResetSorted(cmp utils.Comparator) {
	s.boundary = len(s.items)
	sort.SliceStable(s.items, func(i, j int) bool {
		return cmp(s.items[i], s.items[j]) < 0
	})
}

// Reinit discards the universe and replaces it with a new one, as if the
// set had been freshly constructed from the given values.
func (s *Set) Reinit(values ...interface{}) {
	s.items = seq.Unique(values)
	s.boundary = len(s.items)
}

// Values returns a copy of the active elements. The copy stays valid
// across later mutations of the set.
func (s *Set) Values() []interface{} {
	return append([]interface{}(nil), s.items[:s.boundary]...)
}

// Each calls a function for every active element. The set must not be
// mutated during the iteration.
func (s *Set) Each(f func(interface{})) {
	for i := 0; i < s.boundary; i++ {
		f(s.items[i])
	}
}

func (s *Set) String() string {
	return seq.Format(s.items[:s.boundary], casella.Braces)
}

// Dump is a debugging helper, tracing active and erased regions.
func (s *Set) Dump() {
	tracer().Debugf("removable set %s + erased %s", s,
		seq.Format(s.items[s.boundary:], casella.Braces))
}

package removable

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/casella"
	"github.com/npillmayer/casella/seq"
)

// OrderedSet is a removable set whose active elements are always sorted
// under a comparator. Construct with
//
//     S := removable.NewOrderedSet(utils.IntComparator, 9, 1, 5, 3)
//
// Now
//
//     S.String()     // {1,3,5,9}
//     S.Erase(3)     // {1,5,9}
//     S.Find(5)      // 1, by binary search
//     S.Unerase()    // {1,3,5,9}, 3 returns to its sorted slot
//
// Erase rotates the removed element to the partition boundary, Unerase
// rotates it back into sorted position, so both cost O(k) moves, with k
// the distance between the element and the boundary. Lookup is O(log n).
//
// The comparator must be a strict weak order and is fixed for the
// lifetime of the container.
type OrderedSet struct {
	items    []interface{} // one flat backing store, active prefix + erased suffix
	boundary int           // active = items[:boundary], erased = items[boundary:]
	cmp      utils.Comparator
}

// NewOrderedSet creates an ordered removable set from a universe of
// values. Duplicates are dropped, the remainder is sorted by cmp, and all
// values start out active.
func NewOrderedSet(cmp utils.Comparator, values ...interface{}) *OrderedSet {
	s := &OrderedSet{cmp: cmp}
	s.items = seq.Unique(values)
	s.sortAll()
	s.boundary = len(s.items)
	return s
}

func (s *OrderedSet) sortAll() {
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.cmp(s.items[i], s.items[j]) < 0
	})
}

// lowerBound returns the first active position whose element is not less
// than value, or boundary if there is none.
func (s *OrderedSet) lowerBound(value interface{}) int {
	return sort.Search(s.boundary, func(i int) bool {
		return s.cmp(s.items[i], value) >= 0
	})
}

// Size returns the number of active elements.
func (s *OrderedSet) Size() int {
	return s.boundary
}

// Empty is true if no elements are active.
func (s *OrderedSet) Empty() bool {
	return s.boundary == 0
}

// Capacity returns the size of the universe, i.e. active plus erased
// elements.
func (s *OrderedSet) Capacity() int {
	return len(s.items)
}

// At returns the active element at position i; active elements are
// sorted, so At(0) is the least element. Positions at or beyond Size()
// are outside the active region; At panics for them.
func (s *OrderedSet) At(i int) interface{} {
	if i < 0 || i >= s.boundary {
		panic(fmt.Sprintf("removable.OrderedSet.At() outside active region: %d", i))
	}
	return s.items[i]
}

// Find locates a value among the active elements by binary search and
// returns its position, or -1 if the value is not active. O(log n).
func (s *OrderedSet) Find(value interface{}) int {
	p := s.lowerBound(value)
	if p < s.boundary && s.cmp(s.items[p], value) == 0 {
		return p
	}
	return -1
}

// Has is true if a value is active.
func (s *OrderedSet) Has(value interface{}) bool {
	return s.Find(value) >= 0
}

// Erase removes a value from the active region. It returns false, without
// mutating anything, if the value is not active.
//
// The subrange from the value's position to the boundary is rotated left
// by one: the remainder of the active region stays sorted, and the erased
// value comes to rest right at the boundary, which is exactly the
// top-of-stack slot of the erased region.
func (s *OrderedSet) Erase(value interface{}) bool {
	p := s.Find(value)
	if p < 0 {
		return false
	}
	s.eraseAt(p)
	return true
}

// eraseAt rotates [p,boundary) left by one and shrinks the active region.
// p must be < boundary.
func (s *OrderedSet) eraseAt(p int) {
	v := s.items[p]
	copy(s.items[p:s.boundary-1], s.items[p+1:s.boundary])
	s.items[s.boundary-1] = v
	s.boundary--
}

// Unerase restores the most recently erased element into its sorted slot,
// reversing the effect of the matching Erase. It is a no-op, returning
// false, if nothing is erased.
func (s *OrderedSet) Unerase() bool {
	if s.boundary == len(s.items) {
		return false
	}
	v := s.items[s.boundary]
	// first active position with an element greater than v
	x := sort.Search(s.boundary, func(i int) bool {
		return s.cmp(s.items[i], v) > 0
	})
	copy(s.items[x+1:s.boundary+1], s.items[x:s.boundary])
	s.items[x] = v
	s.boundary++
	return true
}

// EraseIf erases every active element satisfying a predicate and returns
// how many were erased. Erasing shifts the successor element into the
// current slot, so the slot is re-tested instead of advanced past.
func (s *OrderedSet) EraseIf(predicate func(interface{}) bool) int {
	cnt := 0
	i := 0
	for i < s.boundary {
		if predicate(s.items[i]) {
			s.eraseAt(i) // successor slides into i, re-test it
			cnt++
		} else {
			i++
		}
	}
	return cnt
}

// Reset restores every erased element and re-sorts the whole universe.
//
// The re-sort is unconditional: the rotations performed by Erase and
// Unerase keep only the active region sorted, while the erased region
// reflects erase history, not element order. A bulk restore cannot assume
// anything about the combined sequence.
func (s *OrderedSet) Reset() {
	s.boundary = len(s.items)
	s.sortAll()
}

// Reinit discards the universe and replaces it with a new one, as if the
// set had been freshly constructed from the given values.
func (s *OrderedSet) Reinit(values ...interface{}) {
	s.items = seq.Unique(values)
	s.sortAll()
	s.boundary = len(s.items)
}

// ReinitSorted is a fast path for Reinit for callers that can guarantee
// the input to be free of duplicates and sorted under this set's
// comparator; it skips the deduplication and sort passes.
//
// The guarantee is an unchecked precondition. Handing in unsorted or
// duplicated values silently breaks the sortedness of the container, and
// with it every subsequent binary search.
func (s *OrderedSet) ReinitSorted(values ...interface{}) {
	s.items = append([]interface{}(nil), values...)
	s.boundary = len(s.items)
}

// Values returns a copy of the active elements, in sorted order. The copy
// stays valid across later mutations of the set.
func (s *OrderedSet) Values() []interface{} {
	return append([]interface{}(nil), s.items[:s.boundary]...)
}

// Each calls a function for every active element, in sorted order. The
// set must not be mutated during the iteration.
func (s *OrderedSet) Each(f func(interface{})) {
	for i := 0; i < s.boundary; i++ {
		f(s.items[i])
	}
}

func (s *OrderedSet) String() string {
	return seq.Format(s.items[:s.boundary], casella.Braces)
}

// Dump is a debugging helper, tracing active and erased regions.
func (s *OrderedSet) Dump() {
	tracer().Debugf("removable set %s + erased %s", s,
		seq.Format(s.items[s.boundary:], casella.Braces))
}

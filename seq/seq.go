/*
Package seq provides small utilities for sequences of values:
order-preserving deduplication, sorted copies, diagnostic formatting and a
permutation visitor.

The functions in this package operate on slices of interface{} and never
mutate their input; they are the supporting cast for the containers in
package removable and for the solvers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/casella"
)

// Unique copies the distinct values of a sequence into a fresh slice,
// preserving the relative order of first occurrences. The input is not
// assumed to be sorted and is left untouched. Values must be comparable
// in the sense of the Go language specification, as they are used as map
// keys internally.
func Unique(values []interface{}) []interface{} {
	if len(values) == 0 {
		return []interface{}{}
	}
	seen := make(map[interface{}]struct{}, len(values))
	result := make([]interface{}, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// SortedBy returns a sorted copy of a sequence, ordered by a comparator.
// The input slice is left untouched.
func SortedBy(values []interface{}, cmp utils.Comparator) []interface{} {
	result := append([]interface{}(nil), values...)
	sort.SliceStable(result, func(i, j int) bool {
		return cmp(result[i], result[j]) < 0
	})
	return result
}

// Format renders a sequence with the given bracket tokens, e.g. as
// "{1,2,3}" with casella.Braces. Values are stringified with their
// natural fmt representation.
func Format(values []interface{}, b casella.Brackets) string {
	var buf bytes.Buffer
	buf.WriteString(b.Open)
	for i, v := range values {
		if i > 0 {
			buf.WriteString(b.Sep)
		}
		buf.WriteString(fmt.Sprintf("%v", v))
	}
	buf.WriteString(b.Close)
	return buf.String()
}

// EachPermutation calls a visitor function for every permutation of a
// sequence (Heap's algorithm). The slice handed to the visitor is reused
// between calls; visitors must copy it if they want to keep it. Returning
// false from the visitor stops the iteration.
//
// The input slice is left untouched.
func EachPermutation(values []interface{}, visit func([]interface{}) bool) {
	perm := append([]interface{}(nil), values...)
	var iterate func(k int) bool
	iterate = func(k int) bool {
		if k <= 1 {
			return visit(perm)
		}
		for i := 0; i < k-1; i++ {
			if !iterate(k - 1) {
				return false
			}
			if k%2 == 0 {
				perm[i], perm[k-1] = perm[k-1], perm[i]
			} else {
				perm[0], perm[k-1] = perm[k-1], perm[0]
			}
		}
		return iterate(k - 1)
	}
	iterate(len(perm))
}

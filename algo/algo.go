// Package algo implements comparison-based sorting and searching over
// in-memory slices, together with a wall-clock benchmark harness that
// times the algorithms against their standard-library counterparts.
//
// All algorithms order elements by an extracted key rather than by a
// comparator. Functions without the By suffix compare elements as their
// own keys and are restricted to cmp.Ordered element types; the By
// variants accept an explicit KeyFunc for arbitrary element types.
package algo

import "cmp"

// KeyFunc is a function type that maps an element to the value it is
// ordered by. Keys are compared with the <, >, and == operators, so K
// must satisfy cmp.Ordered. A KeyFunc is assumed to be total over its
// input: none of the algorithms recover from a panicking key, the panic
// propagates to the caller unchanged.
type KeyFunc[T any, K cmp.Ordered] func(T) K

// identity is the key used by the non-By convenience variants.
func identity[T cmp.Ordered](v T) T { return v }

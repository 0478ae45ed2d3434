package algo

import "cmp"

// BinarySearch searches sorted for target, comparing elements as their
// own keys. See BinarySearchBy for the full contract, including the
// unchecked sortedness precondition.
func BinarySearch[T cmp.Ordered](sorted []T, target T) (int, bool) {
	return BinarySearchBy(sorted, target, identity[T])
}

// BinarySearchBy searches sorted for an element whose key equals target
// and returns its index. The boolean result reports whether such an
// element exists; when it is false the returned index is 0 and carries
// no meaning, so a miss can never be mistaken for a hit at index 0.
// When several elements match, no particular one of them is guaranteed.
//
// The input must already be in non-descending key order. The
// precondition is NOT checked: on unsorted input the result is
// unspecified and the search may miss elements that are present. Use
// IsSortedBy to verify when in doubt.
//
// The search is iterative over the closed interval [0, len(sorted)-1]
// with floor midpoints and a three-way branch per probe, performing
// O(log n) key comparisons.
func BinarySearchBy[T any, K cmp.Ordered](sorted []T, target K, key KeyFunc[T, K]) (int, bool) {
	low, high := 0, len(sorted)-1
	for low <= high {
		mid := low + (high-low)/2
		midKey := key(sorted[mid])
		switch {
		case midKey == target:
			return mid, true
		case midKey < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return 0, false
}

// LinearSearch scans data for target, comparing elements as their own
// keys. See LinearSearchBy.
func LinearSearch[T cmp.Ordered](data []T, target T) (int, bool) {
	return LinearSearchBy(data, target, identity[T])
}

// LinearSearchBy scans data from the start and returns the index of the
// first element whose key equals target, in original element order. The
// boolean result reports whether a match was found. The input does not
// need to be sorted.
func LinearSearchBy[T any, K cmp.Ordered](data []T, target K, key KeyFunc[T, K]) (int, bool) {
	for i, v := range data {
		if key(v) == target {
			return i, true
		}
	}
	return 0, false
}

package algo

import "cmp"

// MergeSort returns a new slice with the elements of data in
// non-descending order, comparing elements as their own keys.
// The input slice is never modified.
func MergeSort[T cmp.Ordered](data []T) []T {
	return MergeSortBy(data, identity[T])
}

// MergeSortBy returns a new slice with the elements of data in
// non-descending key order. The sort is stable: elements with equal keys
// keep their original relative order. The input slice is never modified.
//
// The implementation is the classic recursive merge sort. Slices of
// length one or less are returned as fresh copies, longer slices are
// split at the floor midpoint, sorted recursively, and merged with ties
// taken from the left run.
func MergeSortBy[T any, K cmp.Ordered](data []T, key KeyFunc[T, K]) []T {
	if len(data) <= 1 {
		out := make([]T, len(data))
		copy(out, data)
		return out
	}
	mid := len(data) / 2
	left := MergeSortBy(data[:mid], key)
	right := MergeSortBy(data[mid:], key)
	return merge(left, right, key)
}

// merge combines two sorted runs into one sorted slice. Taking the left
// element when the head keys are equal is what makes the sort stable.
func merge[T any, K cmp.Ordered](left, right []T, key KeyFunc[T, K]) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if key(left[i]) <= key(right[j]) {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}

// InsertionSort returns a new slice with the elements of data in
// non-descending order, comparing elements as their own keys.
// The input slice is never modified.
func InsertionSort[T cmp.Ordered](data []T) []T {
	return InsertionSortBy(data, identity[T])
}

// InsertionSortBy returns a new slice with the elements of data in
// non-descending key order, built by insertion sort over a copy of the
// input. Predecessors with strictly greater keys are shifted one slot
// right before each element is placed, so equal keys never move past
// each other and the sort is stable. Already sorted input performs one
// failed comparison per element, giving the O(n) best case.
// The input slice is never modified.
func InsertionSortBy[T any, K cmp.Ordered](data []T, key KeyFunc[T, K]) []T {
	out := make([]T, len(data))
	copy(out, data)
	for i := 1; i < len(out); i++ {
		current := out[i]
		currentKey := key(current)
		j := i - 1
		for j >= 0 && key(out[j]) > currentKey {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = current
	}
	return out
}

// IsSorted reports whether data is in non-descending order, comparing
// elements as their own keys.
func IsSorted[T cmp.Ordered](data []T) bool {
	return IsSortedBy(data, identity[T])
}

// IsSortedBy reports whether the keys of data are non-descending. It is
// the check callers can run before BinarySearchBy when the sortedness of
// their input is in doubt.
func IsSortedBy[T any, K cmp.Ordered](data []T, key KeyFunc[T, K]) bool {
	for i := 1; i < len(data); i++ {
		if key(data[i-1]) > key(data[i]) {
			return false
		}
	}
	return true
}

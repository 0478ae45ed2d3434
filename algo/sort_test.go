package algo_test

import (
	"math/rand"
	"reflect"
	"slices"
	"testing"

	"github.com/melody88h/ProjectBike/algo"
)

// record pairs a sort key with the element's position in the original
// input, making stability violations observable.
type record struct {
	key int
	seq int
}

func recordKey(r record) int { return r.key }

func TestMergeSortBasic(t *testing.T) {
	got := algo.MergeSort([]int{5, 3, 1, 4, 2})
	want := []int{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeSort = %v, want %v", got, want)
	}
}

func TestInsertionSortBasic(t *testing.T) {
	got := algo.InsertionSort([]int{5, 3, 1, 4, 2})
	want := []int{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InsertionSort = %v, want %v", got, want)
	}
}

func TestSortEmptyInput(t *testing.T) {
	input := []int{}
	if got := algo.MergeSort(input); got == nil || len(got) != 0 {
		t.Errorf("MergeSort(empty) = %v, want new empty slice", got)
	}
	if got := algo.InsertionSort(input); got == nil || len(got) != 0 {
		t.Errorf("InsertionSort(empty) = %v, want new empty slice", got)
	}
}

func TestSortSingleElement(t *testing.T) {
	input := []string{"only"}
	for _, got := range [][]string{algo.MergeSort(input), algo.InsertionSort(input)} {
		if !reflect.DeepEqual(got, input) {
			t.Errorf("sorting single element = %v, want %v", got, input)
		}
	}
}

func TestSortInputUnchanged(t *testing.T) {
	data := []int{9, 1, 8, 2, 7}
	orig := make([]int, len(data))
	copy(orig, data)
	algo.MergeSort(data)
	algo.InsertionSort(data)
	if !reflect.DeepEqual(data, orig) {
		t.Errorf("input mutated: %v, want %v", data, orig)
	}
}

func TestSortRandomAgainstStdlib(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, size := range []int{0, 1, 2, 3, 10, 100, 1000} {
		data := make([]int, size)
		for i := range data {
			// small value range forces duplicate keys
			data[i] = rnd.Intn(50)
		}
		want := make([]int, size)
		copy(want, data)
		slices.Sort(want)
		if got := algo.MergeSort(data); !reflect.DeepEqual(got, want) {
			t.Errorf("size %d: MergeSort = %v, want %v", size, got, want)
		}
		if got := algo.InsertionSort(data); !reflect.DeepEqual(got, want) {
			t.Errorf("size %d: InsertionSort = %v, want %v", size, got, want)
		}
	}
}

func TestSortStability(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	data := make([]record, 200)
	for i := range data {
		data[i] = record{key: rnd.Intn(10), seq: i}
	}
	sorted := map[string][]record{
		"merge":     algo.MergeSortBy(data, recordKey),
		"insertion": algo.InsertionSortBy(data, recordKey),
	}
	for name, out := range sorted {
		if len(out) != len(data) {
			t.Fatalf("%s: length %d, want %d", name, len(out), len(data))
		}
		for i := 1; i < len(out); i++ {
			if out[i-1].key > out[i].key {
				t.Fatalf("%s: keys descend at %d: %d > %d", name, i, out[i-1].key, out[i].key)
			}
			if out[i-1].key == out[i].key && out[i-1].seq > out[i].seq {
				t.Errorf("%s: equal keys reordered at %d: seq %d before %d", name, i, out[i-1].seq, out[i].seq)
			}
		}
	}
}

func TestSortAllEqualKeys(t *testing.T) {
	data := []record{{7, 0}, {7, 1}, {7, 2}, {7, 3}}
	if got := algo.MergeSortBy(data, recordKey); !reflect.DeepEqual(got, data) {
		t.Errorf("MergeSortBy(all equal) = %v, want original order %v", got, data)
	}
	if got := algo.InsertionSortBy(data, recordKey); !reflect.DeepEqual(got, data) {
		t.Errorf("InsertionSortBy(all equal) = %v, want original order %v", got, data)
	}
}

func TestSortIdempotent(t *testing.T) {
	data := []int{4, 4, 2, 9, 2, 0}
	once := algo.MergeSort(data)
	twice := algo.MergeSort(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("resorting changed content: %v, want %v", twice, once)
	}
	once = algo.InsertionSort(data)
	twice = algo.InsertionSort(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("resorting changed content: %v, want %v", twice, once)
	}
}

func TestMergeSortByKey(t *testing.T) {
	words := []string{"banana", "pear", "apple", "plum", "fig"}
	got := algo.MergeSortBy(words, func(s string) int { return len(s) })
	// pear stays ahead of plum, both have length four
	want := []string{"fig", "pear", "plum", "apple", "banana"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeSortBy(len) = %v, want %v", got, want)
	}
}

func TestInsertionSortSortedInputLinear(t *testing.T) {
	data := make([]int, 256)
	for i := range data {
		data[i] = i
	}
	calls := 0
	algo.InsertionSortBy(data, func(v int) int {
		calls++
		return v
	})
	// one current key plus one failed predecessor comparison per element
	if calls > 2*len(data) {
		t.Errorf("sorted input took %d key calls, want at most %d", calls, 2*len(data))
	}
}

func TestIsSorted(t *testing.T) {
	cases := []struct {
		data []int
		want bool
	}{
		{[]int{}, true},
		{[]int{1}, true},
		{[]int{1, 2, 2, 3}, true},
		{[]int{2, 1}, false},
		{[]int{1, 3, 2}, false},
	}
	for _, c := range cases {
		if got := algo.IsSorted(c.data); got != c.want {
			t.Errorf("IsSorted(%v) = %v, want %v", c.data, got, c.want)
		}
	}
}

func TestSortKeyPanicPropagates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected key panic to propagate")
		}
	}()
	algo.MergeSortBy([]int{3, 1}, func(int) int { panic("bad key") })
}

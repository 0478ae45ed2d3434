package algo

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/benbjohnson/clock"
)

// Metric keys present in the maps returned by BenchmarkSortBy and
// BenchmarkSearchBy. Every value is a mean wall-clock duration for one
// run of the named subject, in milliseconds rounded to two decimals.
const (
	MetricMergeSortMS    = "merge_sort_ms"
	MetricBuiltinSortMS  = "builtin_sorted_ms"
	MetricBinarySearchMS = "binary_search_ms"
	MetricLinearSearchMS = "linear_search_ms"
	MetricBuiltinInMS    = "builtin_in_ms"
)

// DefaultRepeats is the number of back-to-back runs averaged per metric
// when a BenchConfig does not set its own count.
const DefaultRepeats = 5

// BenchConfig holds configuration settings for the benchmark harness.
type BenchConfig struct {
	Repeats int         // number of back-to-back runs averaged per metric
	Clock   clock.Clock // timing source, nil for the real monotonic clock
}

// DefaultBenchConfig returns the default configuration options used if none provided.
func DefaultBenchConfig() *BenchConfig {
	return &BenchConfig{
		Repeats: DefaultRepeats,
		Clock:   clock.New(),
	}
}

// mergeBenchConfig takes a provided config and replaces any values not set with the defaults.
func mergeBenchConfig(c *BenchConfig) *BenchConfig {
	d := DefaultBenchConfig()
	if c == nil {
		return d
	}
	if c.Repeats < 1 {
		c.Repeats = d.Repeats
	}
	if c.Clock == nil {
		c.Clock = d.Clock
	}
	return c
}

// BenchmarkSort times MergeSort against the standard library's stable
// sort over data, comparing elements as their own keys. See
// BenchmarkSortBy.
func BenchmarkSort[T cmp.Ordered](data []T, config *BenchConfig) map[string]float64 {
	return BenchmarkSortBy(data, identity[T], config)
}

// BenchmarkSortBy runs MergeSortBy and the standard library's stable
// sort config.Repeats times each over data and returns the mean
// wall-clock milliseconds per run under the keys MetricMergeSortMS and
// MetricBuiltinSortMS. Each metric is one monotonic measurement around
// all of its repeats, divided by the repeat count.
//
// The harness itself never sorts on behalf of the caller and never
// modifies data: every repeat works from the input as given, with the
// standard library reference sorting a fresh copy to match
// MergeSortBy's allocation of a new result. Panics raised by key
// propagate unchanged.
func BenchmarkSortBy[T any, K cmp.Ordered](data []T, key KeyFunc[T, K], config *BenchConfig) map[string]float64 {
	config = mergeBenchConfig(config)
	results := make(map[string]float64, 2)
	results[MetricMergeSortMS] = timeRuns(config, func() {
		MergeSortBy(data, key)
	})
	results[MetricBuiltinSortMS] = timeRuns(config, func() {
		cp := make([]T, len(data))
		copy(cp, data)
		slices.SortStableFunc(cp, func(a, b T) int {
			return cmp.Compare(key(a), key(b))
		})
	})
	return results
}

// BenchmarkSearch times the search algorithms for target over data,
// comparing elements as their own keys. See BenchmarkSearchBy.
func BenchmarkSearch[T cmp.Ordered](data []T, target T, config *BenchConfig) map[string]float64 {
	return BenchmarkSearchBy(data, target, identity[T], config)
}

// BenchmarkSearchBy runs BinarySearchBy, LinearSearchBy, and the
// standard library's membership scan config.Repeats times each for
// target over data and returns the mean wall-clock milliseconds per run
// under the keys MetricBinarySearchMS, MetricLinearSearchMS, and
// MetricBuiltinInMS.
//
// data is used exactly as given: the harness neither sorts it nor
// checks that it is sorted, so the binary search timing is only
// meaningful when the caller passes input satisfying BinarySearchBy's
// precondition. data is never modified and panics raised by key
// propagate unchanged.
func BenchmarkSearchBy[T any, K cmp.Ordered](data []T, target K, key KeyFunc[T, K], config *BenchConfig) map[string]float64 {
	config = mergeBenchConfig(config)
	results := make(map[string]float64, 3)
	results[MetricBinarySearchMS] = timeRuns(config, func() {
		BinarySearchBy(data, target, key)
	})
	results[MetricLinearSearchMS] = timeRuns(config, func() {
		LinearSearchBy(data, target, key)
	})
	results[MetricBuiltinInMS] = timeRuns(config, func() {
		slices.ContainsFunc(data, func(v T) bool {
			return key(v) == target
		})
	})
	return results
}

// timeRuns executes fn config.Repeats times back to back inside a
// single monotonic measurement and returns the mean duration per run in
// milliseconds, rounded half away from zero to two decimals.
func timeRuns(config *BenchConfig, fn func()) float64 {
	start := config.Clock.Now()
	for i := 0; i < config.Repeats; i++ {
		fn()
	}
	elapsed := config.Clock.Since(start)
	perRun := float64(elapsed) / float64(config.Repeats) / float64(time.Millisecond)
	return math.Round(perRun*100) / 100
}

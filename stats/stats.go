// Package stats provides numerical summaries over trip measurements:
// duration distributions, z-score outlier detection, pairwise station
// distances, and vectorized fare calculation.
package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/melody88h/ProjectBike/algo"
)

// DefaultZScoreThreshold flags values more than three standard deviations
// from the mean.
const DefaultZScoreThreshold = 3.0

// ErrEmptyInput is returned when a summary is requested over no values.
var ErrEmptyInput = errors.New("empty input")

// DurationStats summarizes a distribution of trip durations in minutes.
// Std is the population standard deviation.
type DurationStats struct {
	Mean   float64
	Median float64
	Std    float64
	P25    float64
	P75    float64
	P90    float64
}

// DurationSummary computes DurationStats over durations. Percentiles use
// linear interpolation between the two nearest ranks of a sorted copy,
// with the median as the 50th percentile. The input is not modified.
func DurationSummary(durations []float64) (DurationStats, error) {
	if len(durations) == 0 {
		return DurationStats{}, ErrEmptyInput
	}

	sorted := algo.MergeSort(durations)
	m := mean(durations)

	return DurationStats{
		Mean:   m,
		Median: percentile(sorted, 0.50),
		Std:    stdDev(durations, m),
		P25:    percentile(sorted, 0.25),
		P75:    percentile(sorted, 0.75),
		P90:    percentile(sorted, 0.90),
	}, nil
}

// ZScoreOutliers returns the indexes of values whose z-score magnitude
// strictly exceeds threshold. A zero-variance input has no outliers.
func ZScoreOutliers(values []float64, threshold float64) []int {
	if len(values) == 0 {
		return nil
	}

	m := mean(values)
	sd := stdDev(values, m)
	if sd == 0 {
		return nil
	}

	var outliers []int
	for i, v := range values {
		if math.Abs((v-m)/sd) > threshold {
			outliers = append(outliers, i)
		}
	}
	return outliers
}

// DistanceMatrix returns the n×n matrix of pairwise euclidean distances
// between station coordinates, in coordinate degrees.
func DistanceMatrix(latitudes, longitudes []float64) ([][]float64, error) {
	if len(latitudes) != len(longitudes) {
		return nil, fmt.Errorf("mismatched coordinates: %d latitudes against %d longitudes", len(latitudes), len(longitudes))
	}

	n := len(latitudes)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			dLat := latitudes[i] - latitudes[j]
			dLon := longitudes[i] - longitudes[j]
			matrix[i][j] = math.Sqrt(dLat*dLat + dLon*dLon)
		}
	}
	return matrix, nil
}

// Fares computes element-wise trip fares as
// unlockFee + perMinute*duration + perKM*distance. Unlike the pricing
// strategies the results are not rounded.
func Fares(durations, distances []float64, perMinute, perKM, unlockFee float64) ([]float64, error) {
	if len(durations) != len(distances) {
		return nil, fmt.Errorf("mismatched inputs: %d durations against %d distances", len(durations), len(distances))
	}

	fares := make([]float64, len(durations))
	for i := range durations {
		fares[i] = unlockFee + perMinute*durations[i] + perKM*distances[i]
	}
	return fares, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdDev(values []float64, mean float64) float64 {
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// percentile returns the value at fraction p of sorted using linear
// interpolation between the two nearest ranks. sorted must be non-empty.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	index := p * float64(n-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

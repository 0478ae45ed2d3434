// Package analysis computes usage analytics over a cleaned dataset. Every
// result is deterministically ordered: ascending groupings sort their keys
// with the merge sort from package algo, and descending rankings run the
// same stable sort on negated counts over aggregates built in ascending
// key order, so ties stay in ascending key order.
package analysis

import (
	"cmp"
	"fmt"
	"math"

	"github.com/melody88h/ProjectBike/algo"
	"github.com/melody88h/ProjectBike/dataset"
	"github.com/melody88h/ProjectBike/pricing"
	"github.com/melody88h/ProjectBike/stats"
)

// Totals are the headline numbers of a cleaned dataset.
type Totals struct {
	TotalTrips         int
	TotalDistanceKM    float64
	AvgDurationMinutes float64
}

// StationCount ranks a start station by trip count. Name is left-joined
// from the station file and stays empty when the station is unknown.
type StationCount struct {
	StationID string
	Name      string
	TripCount int
}

// HourCount is the number of trips starting in one hour of day.
type HourCount struct {
	Hour      int
	TripCount int
}

// UserTypeDistance is the mean trip distance for one user type.
type UserTypeDistance struct {
	UserType      string
	AvgDistanceKM float64
}

// BikeTypeCost is the summed maintenance cost for one bike type.
type BikeTypeCost struct {
	BikeType  string
	TotalCost float64
}

// RouteCount ranks a start/end station pair by trip count.
type RouteCount struct {
	StartStationID string
	EndStationID   string
	TripCount      int
}

// MonthCount is the number of trips starting in one YYYY-MM month.
type MonthCount struct {
	Month     string
	TripCount int
}

// BoxStats is the five-number duration summary for one user type.
type BoxStats struct {
	UserType string
	Min      float64
	P25      float64
	Median   float64
	P75      float64
	Max      float64
}

// UserTypeRevenue is the summed trip revenue for one user type.
type UserTypeRevenue struct {
	UserType string
	Revenue  float64
}

// TripTotals returns trip count, total distance, and average duration.
// Distance and duration are rounded to two decimals.
func TripTotals(ds *dataset.CleanDataset) Totals {
	totals := Totals{TotalTrips: len(ds.Trips)}
	if len(ds.Trips) == 0 {
		return totals
	}

	var distance, duration float64
	for _, trip := range ds.Trips {
		distance += trip.DistanceKM
		duration += trip.DurationMinutes
	}
	totals.TotalDistanceKM = round2(distance)
	totals.AvgDurationMinutes = round2(duration / float64(len(ds.Trips)))
	return totals
}

// TopStartStations returns the n most used start stations, descending by
// trip count.
func TopStartStations(ds *dataset.CleanDataset, n int) []StationCount {
	counts := make(map[string]int)
	for _, trip := range ds.Trips {
		counts[trip.StartStationID]++
	}

	names := make(map[string]string, len(ds.Stations))
	for _, station := range ds.Stations {
		names[station.StationID] = station.Name
	}

	entries := make([]StationCount, 0, len(counts))
	for _, id := range sortedKeys(counts) {
		entries = append(entries, StationCount{StationID: id, Name: names[id], TripCount: counts[id]})
	}
	ranked := algo.MergeSortBy(entries, func(e StationCount) int { return -e.TripCount })

	return head(ranked, n)
}

// PeakUsageHours returns trips per start hour, ascending by hour. Hours
// with no trips are omitted.
func PeakUsageHours(ds *dataset.CleanDataset) []HourCount {
	counts := make(map[int]int)
	for _, trip := range ds.Trips {
		counts[trip.StartTime.Hour()]++
	}

	entries := make([]HourCount, 0, len(counts))
	for _, hour := range sortedKeys(counts) {
		entries = append(entries, HourCount{Hour: hour, TripCount: counts[hour]})
	}
	return entries
}

// AvgDistanceByUserType returns the mean trip distance per user type,
// rounded to two decimals, ascending by type.
func AvgDistanceByUserType(ds *dataset.CleanDataset) []UserTypeDistance {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, trip := range ds.Trips {
		sums[trip.UserType] += trip.DistanceKM
		counts[trip.UserType]++
	}

	entries := make([]UserTypeDistance, 0, len(sums))
	for _, userType := range sortedKeys(sums) {
		entries = append(entries, UserTypeDistance{
			UserType:      userType,
			AvgDistanceKM: round2(sums[userType] / float64(counts[userType])),
		})
	}
	return entries
}

// MaintenanceCostByBikeType returns the summed maintenance cost per bike
// type, rounded to two decimals, ascending by type.
func MaintenanceCostByBikeType(ds *dataset.CleanDataset) []BikeTypeCost {
	sums := make(map[string]float64)
	for _, record := range ds.Maintenance {
		sums[record.BikeType] += record.Cost
	}

	entries := make([]BikeTypeCost, 0, len(sums))
	for _, bikeType := range sortedKeys(sums) {
		entries = append(entries, BikeTypeCost{BikeType: bikeType, TotalCost: round2(sums[bikeType])})
	}
	return entries
}

// TopRoutes returns the n most ridden start/end station pairs, descending
// by trip count.
func TopRoutes(ds *dataset.CleanDataset, n int) []RouteCount {
	type route struct {
		start, end string
	}
	counts := make(map[route]int)
	for _, trip := range ds.Trips {
		counts[route{trip.StartStationID, trip.EndStationID}]++
	}

	entries := make([]RouteCount, 0, len(counts))
	for r, count := range counts {
		entries = append(entries, RouteCount{StartStationID: r.start, EndStationID: r.end, TripCount: count})
	}

	// Stable sorts compose: end station, then start station, then the
	// negated count, leaving ties ordered by ascending station pair.
	entries = algo.MergeSortBy(entries, func(e RouteCount) string { return e.EndStationID })
	entries = algo.MergeSortBy(entries, func(e RouteCount) string { return e.StartStationID })
	entries = algo.MergeSortBy(entries, func(e RouteCount) int { return -e.TripCount })

	return head(entries, n)
}

// MonthlyTrend returns trips per month of start time, ascending by month.
func MonthlyTrend(ds *dataset.CleanDataset) []MonthCount {
	counts := make(map[string]int)
	for _, trip := range ds.Trips {
		counts[trip.StartTime.Format("2006-01")]++
	}

	entries := make([]MonthCount, 0, len(counts))
	for _, month := range sortedKeys(counts) {
		entries = append(entries, MonthCount{Month: month, TripCount: counts[month]})
	}
	return entries
}

// DurationBoxStats returns the boxplot five-number duration summary per
// user type, ascending by type.
func DurationBoxStats(ds *dataset.CleanDataset) []BoxStats {
	durations := make(map[string][]float64)
	for _, trip := range ds.Trips {
		durations[trip.UserType] = append(durations[trip.UserType], trip.DurationMinutes)
	}

	entries := make([]BoxStats, 0, len(durations))
	for _, userType := range sortedKeys(durations) {
		values := durations[userType]
		summary, err := stats.DurationSummary(values)
		if err != nil {
			continue
		}

		box := BoxStats{
			UserType: userType,
			Min:      values[0],
			Max:      values[0],
			P25:      summary.P25,
			Median:   summary.Median,
			P75:      summary.P75,
		}
		for _, v := range values[1:] {
			box.Min = math.Min(box.Min, v)
			box.Max = math.Max(box.Max, v)
		}
		entries = append(entries, box)
	}
	return entries
}

// RevenueByUserType prices every trip with the strategy for its user type
// and returns the summed revenue per type, rounded to two decimals,
// ascending by type. A trip that cannot be priced aborts the whole run.
func RevenueByUserType(ds *dataset.CleanDataset) ([]UserTypeRevenue, error) {
	sums := make(map[string]float64)
	for _, trip := range ds.Trips {
		strategy, err := pricing.ForUserType(trip.UserType)
		if err != nil {
			return nil, fmt.Errorf("trip %s: %w", trip.TripID, err)
		}
		cost, err := strategy.Cost(trip.DurationMinutes, trip.DistanceKM)
		if err != nil {
			return nil, fmt.Errorf("trip %s: %w", trip.TripID, err)
		}
		sums[trip.UserType] += cost
	}

	entries := make([]UserTypeRevenue, 0, len(sums))
	for _, userType := range sortedKeys(sums) {
		entries = append(entries, UserTypeRevenue{UserType: userType, Revenue: round2(sums[userType])})
	}
	return entries, nil
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return algo.MergeSort(keys)
}

func head[T any](entries []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n < len(entries) {
		return entries[:n]
	}
	return entries
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

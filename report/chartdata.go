package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/melody88h/ProjectBike/analysis"
	"github.com/melody88h/ProjectBike/dataset"
)

// Chart data files written under the figures directory.
const (
	TripsPerStationFile    = "trips_per_station.csv"
	MonthlyTrendFile       = "monthly_trend.csv"
	DurationHistogramFile  = "duration_histogram.csv"
	DurationByUserTypeFile = "duration_by_user_type.csv"
)

// DefaultHistogramBins is the bin count of the duration histogram.
const DefaultHistogramBins = 30

// WriteChartData writes the chart-ready CSV series into dir, one file per
// chart, concurrently. bins sets the duration histogram resolution; a
// value below 1 falls back to DefaultHistogramBins.
func WriteChartData(dir string, ds *dataset.CleanDataset, s *Summary, bins int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create figures directory: %w", err)
	}
	if bins < 1 {
		bins = DefaultHistogramBins
	}

	var g errgroup.Group
	g.Go(func() error {
		return writeTripsPerStation(filepath.Join(dir, TripsPerStationFile), s.TopStations)
	})
	g.Go(func() error {
		return writeMonthlyTrend(filepath.Join(dir, MonthlyTrendFile), s.MonthlyTrend)
	})
	g.Go(func() error {
		return writeDurationHistogram(filepath.Join(dir, DurationHistogramFile), ds, bins)
	})
	g.Go(func() error {
		return writeDurationByUserType(filepath.Join(dir, DurationByUserTypeFile), s.BoxStats)
	})
	return g.Wait()
}

func writeTripsPerStation(path string, stations []analysis.StationCount) error {
	records := make([][]string, len(stations))
	for i, station := range stations {
		records[i] = []string{station.StationID, station.Name, strconv.Itoa(station.TripCount)}
	}
	return writeChartCSV(path, []string{"station_id", "station_name", "trip_count"}, records)
}

func writeMonthlyTrend(path string, trend []analysis.MonthCount) error {
	records := make([][]string, len(trend))
	for i, month := range trend {
		records[i] = []string{month.Month, strconv.Itoa(month.TripCount)}
	}
	return writeChartCSV(path, []string{"month", "trip_count"}, records)
}

func writeDurationHistogram(path string, ds *dataset.CleanDataset, bins int) error {
	durations := make([]float64, len(ds.Trips))
	for i, trip := range ds.Trips {
		durations[i] = trip.DurationMinutes
	}

	edges, counts := histogram(durations, bins)
	records := make([][]string, len(counts))
	for i := range counts {
		records[i] = []string{chartFloat(edges[i]), chartFloat(edges[i+1]), strconv.Itoa(counts[i])}
	}
	return writeChartCSV(path, []string{"bin_start", "bin_end", "count"}, records)
}

func writeDurationByUserType(path string, boxes []analysis.BoxStats) error {
	records := make([][]string, len(boxes))
	for i, box := range boxes {
		records[i] = []string{
			box.UserType,
			chartFloat(box.Min), chartFloat(box.P25), chartFloat(box.Median),
			chartFloat(box.P75), chartFloat(box.Max),
		}
	}
	return writeChartCSV(path, []string{"user_type", "min", "p25", "median", "p75", "max"}, records)
}

// histogram counts values into equal-width bins between the minimum and
// maximum value. The last bin is right-inclusive. An all-equal input
// collapses into a single bin.
func histogram(values []float64, bins int) ([]float64, []int) {
	if len(values) == 0 {
		return nil, nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return []float64{lo, hi}, []int{len(values)}
	}

	width := (hi - lo) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi

	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return edges, counts
}

func writeChartCSV(path string, header []string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write chart header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write chart record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func chartFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

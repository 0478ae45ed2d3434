// Package report renders the analysis results as a plain-text summary, as
// chart-ready CSV series, and as an xlsx workbook.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/melody88h/ProjectBike/algo"
	"github.com/melody88h/ProjectBike/analysis"
	"github.com/melody88h/ProjectBike/stats"
)

// ReportFile is the name of the text report.
const ReportFile = "summary_report.txt"

// Summary aggregates everything the report outputs render.
type Summary struct {
	Totals          analysis.Totals
	TopStations     []analysis.StationCount
	PeakHours       []analysis.HourCount
	AvgDistance     []analysis.UserTypeDistance
	TopRoutes       []analysis.RouteCount
	MonthlyTrend    []analysis.MonthCount
	MaintenanceCost []analysis.BikeTypeCost
	Revenue         []analysis.UserTypeRevenue
	BoxStats        []analysis.BoxStats
	DurationStats   stats.DurationStats
	OutlierCount    int
	// SortBench and SearchBench are benchmark metric maps keyed by metric
	// name, in milliseconds per run.
	SortBench   map[string]float64
	SearchBench map[string]float64
}

// Render writes the plain-text summary report to w.
func Render(w io.Writer, s *Summary) error {
	lines := []string{
		strings.Repeat("=", 60),
		"CityBike — Summary Report",
		strings.Repeat("=", 60),
		"",
		"--- Overall Summary ---",
		fmt.Sprintf("Total trips: %d", s.Totals.TotalTrips),
		fmt.Sprintf("Total distance: %.2f km", s.Totals.TotalDistanceKM),
		fmt.Sprintf("Average duration: %.2f min (%s)", s.Totals.AvgDurationMinutes, FormatDuration(s.Totals.AvgDurationMinutes)),
	}

	lines = append(lines, "", "--- Top Start Stations ---")
	for _, station := range s.TopStations {
		lines = append(lines, fmt.Sprintf("%-10s %-24s %d", station.StationID, station.Name, station.TripCount))
	}

	lines = append(lines, "", "--- Peak Usage Hours ---")
	for _, hour := range s.PeakHours {
		lines = append(lines, fmt.Sprintf("%02d:00  %d", hour.Hour, hour.TripCount))
	}

	lines = append(lines, "", "--- Average Distance by User Type ---")
	for _, entry := range s.AvgDistance {
		lines = append(lines, fmt.Sprintf("%s: %.2f km", entry.UserType, entry.AvgDistanceKM))
	}

	lines = append(lines, "", "--- Top Routes ---")
	for _, route := range s.TopRoutes {
		lines = append(lines, fmt.Sprintf("%s -> %s: %d", route.StartStationID, route.EndStationID, route.TripCount))
	}

	lines = append(lines, "", "--- Monthly Trend ---")
	for _, month := range s.MonthlyTrend {
		lines = append(lines, fmt.Sprintf("%s: %d", month.Month, month.TripCount))
	}

	lines = append(lines, "", "--- Maintenance Cost by Bike Type ---")
	for _, entry := range s.MaintenanceCost {
		lines = append(lines, fmt.Sprintf("%s: %s", entry.BikeType, FormatCurrency(entry.TotalCost)))
	}

	lines = append(lines, "", "--- Revenue by User Type ---")
	for _, entry := range s.Revenue {
		lines = append(lines, fmt.Sprintf("%s: %s", entry.UserType, FormatCurrency(entry.Revenue)))
	}

	lines = append(lines, "", "--- Trip Duration Statistics ---")
	lines = append(lines,
		fmt.Sprintf("mean: %.2f", s.DurationStats.Mean),
		fmt.Sprintf("median: %.2f", s.DurationStats.Median),
		fmt.Sprintf("std: %.2f", s.DurationStats.Std),
		fmt.Sprintf("p25: %.2f", s.DurationStats.P25),
		fmt.Sprintf("p75: %.2f", s.DurationStats.P75),
		fmt.Sprintf("p90: %.2f", s.DurationStats.P90),
		fmt.Sprintf("Detected %d duration outliers", s.OutlierCount),
	)

	if len(s.SortBench) > 0 || len(s.SearchBench) > 0 {
		lines = append(lines, "", "--- Algorithm Benchmarks ---")
		if len(s.SortBench) > 0 {
			lines = append(lines, "sort (ms per run):")
			lines = append(lines, metricLines(s.SortBench)...)
		}
		if len(s.SearchBench) > 0 {
			lines = append(lines, "search (ms per run):")
			lines = append(lines, metricLines(s.SearchBench)...)
		}
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// WriteText renders the report into the file at path, creating parent
// directories as needed.
func WriteText(path string, s *Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	if err := Render(file, s); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// metricLines renders a benchmark metric map in stable key order.
func metricLines(metrics map[string]float64) []string {
	lines := make([]string, 0, len(metrics))
	for _, key := range sortedMetricKeys(metrics) {
		lines = append(lines, fmt.Sprintf("  %s: %.2f", key, metrics[key]))
	}
	return lines
}

func sortedMetricKeys(metrics map[string]float64) []string {
	keys := make([]string, 0, len(metrics))
	for key := range metrics {
		keys = append(keys, key)
	}
	return algo.MergeSort(keys)
}

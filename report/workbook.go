package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// WorkbookFile is the name of the xlsx export.
const WorkbookFile = "summary_report.xlsx"

// WriteWorkbook saves the summary as an xlsx workbook with Summary,
// Stations, and Benchmarks sheets.
func WriteWorkbook(path string, s *Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}

	summaryRows := [][]interface{}{
		{"Metric", "Value"},
		{"Total trips", s.Totals.TotalTrips},
		{"Total distance (km)", s.Totals.TotalDistanceKM},
		{"Average duration (min)", s.Totals.AvgDurationMinutes},
		{"Duration mean", s.DurationStats.Mean},
		{"Duration median", s.DurationStats.Median},
		{"Duration std", s.DurationStats.Std},
		{"Duration p25", s.DurationStats.P25},
		{"Duration p75", s.DurationStats.P75},
		{"Duration p90", s.DurationStats.P90},
		{"Duration outliers", s.OutlierCount},
	}
	if err := setRows(f, summarySheet, summaryRows); err != nil {
		return err
	}

	stationRows := [][]interface{}{{"Station ID", "Name", "Trips"}}
	for _, station := range s.TopStations {
		stationRows = append(stationRows, []interface{}{station.StationID, station.Name, station.TripCount})
	}
	if err := addSheet(f, "Stations", stationRows); err != nil {
		return err
	}

	benchRows := [][]interface{}{{"Metric", "Milliseconds per run"}}
	for _, key := range sortedMetricKeys(s.SortBench) {
		benchRows = append(benchRows, []interface{}{key, s.SortBench[key]})
	}
	for _, key := range sortedMetricKeys(s.SearchBench) {
		benchRows = append(benchRows, []interface{}{key, s.SearchBench[key]})
	}
	if err := addSheet(f, "Benchmarks", benchRows); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create workbook directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func addSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	return setRows(f, name, rows)
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("resolve cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set cell %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

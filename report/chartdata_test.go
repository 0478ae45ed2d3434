package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melody88h/ProjectBike/dataset"
)

func chartDataset() *dataset.CleanDataset {
	return &dataset.CleanDataset{
		Trips: []dataset.Trip{
			{TripID: "T1", DurationMinutes: 10},
			{TripID: "T2", DurationMinutes: 20},
			{TripID: "T3", DurationMinutes: 30},
			{TripID: "T4", DurationMinutes: 40},
		},
	}
}

func readChartCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteChartData(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figures")
	require.NoError(t, WriteChartData(dir, chartDataset(), testSummary(), 2))

	stations := readChartCSV(t, filepath.Join(dir, TripsPerStationFile))
	require.Len(t, stations, 3)
	assert.Equal(t, []string{"station_id", "station_name", "trip_count"}, stations[0])
	assert.Equal(t, []string{"S001", "Hauptbahnhof", "3"}, stations[1])
	assert.Equal(t, []string{"S002", "Alexanderplatz", "2"}, stations[2])

	trend := readChartCSV(t, filepath.Join(dir, MonthlyTrendFile))
	require.Len(t, trend, 3)
	assert.Equal(t, []string{"month", "trip_count"}, trend[0])
	assert.Equal(t, []string{"2024-06", "4"}, trend[1])

	histogram := readChartCSV(t, filepath.Join(dir, DurationHistogramFile))
	require.Len(t, histogram, 3)
	assert.Equal(t, []string{"bin_start", "bin_end", "count"}, histogram[0])
	assert.Equal(t, []string{"10", "25", "2"}, histogram[1])
	assert.Equal(t, []string{"25", "40", "2"}, histogram[2])

	boxes := readChartCSV(t, filepath.Join(dir, DurationByUserTypeFile))
	require.Len(t, boxes, 2)
	assert.Equal(t, []string{"user_type", "min", "p25", "median", "p75", "max"}, boxes[0])
	assert.Equal(t, []string{"casual", "10", "20", "30", "40", "50"}, boxes[1])
}

func TestWriteChartDataDefaultBins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteChartData(dir, chartDataset(), testSummary(), 0))

	histogram := readChartCSV(t, filepath.Join(dir, DurationHistogramFile))
	// Header plus DefaultHistogramBins rows.
	assert.Len(t, histogram, DefaultHistogramBins+1)
}

func TestWriteChartDataEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	s := &Summary{}
	require.NoError(t, WriteChartData(dir, &dataset.CleanDataset{}, s, 10))

	histogram := readChartCSV(t, filepath.Join(dir, DurationHistogramFile))
	assert.Len(t, histogram, 1)

	stations := readChartCSV(t, filepath.Join(dir, TripsPerStationFile))
	assert.Len(t, stations, 1)
}

func TestHistogram(t *testing.T) {
	edges, counts := histogram([]float64{10, 20, 30, 40}, 2)

	assert.Equal(t, []float64{10, 25, 40}, edges)
	assert.Equal(t, []int{2, 2}, counts)
}

func TestHistogramSingleValue(t *testing.T) {
	edges, counts := histogram([]float64{5, 5, 5}, 4)

	assert.Equal(t, []float64{5, 5}, edges)
	assert.Equal(t, []int{3}, counts)
}

func TestHistogramMaxValueLandsInLastBin(t *testing.T) {
	_, counts := histogram([]float64{0, 1, 2, 3}, 3)

	assert.Equal(t, []int{1, 1, 2}, counts)
}

func TestHistogramEmpty(t *testing.T) {
	edges, counts := histogram(nil, 5)

	assert.Nil(t, edges)
	assert.Nil(t, counts)
}

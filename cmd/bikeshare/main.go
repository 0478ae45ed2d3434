// Command bikeshare runs the CityBike analytics pipeline: it loads the
// raw CSV files, cleans them, computes the usage analytics and duration
// statistics, benchmarks the core algorithms, and writes the text
// report, chart-data series, and xlsx workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/melody88h/ProjectBike/algo"
	"github.com/melody88h/ProjectBike/analysis"
	"github.com/melody88h/ProjectBike/dataset"
	"github.com/melody88h/ProjectBike/internal/config"
	"github.com/melody88h/ProjectBike/internal/logging"
	"github.com/melody88h/ProjectBike/pricing"
	"github.com/melody88h/ProjectBike/report"
	"github.com/melody88h/ProjectBike/stats"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	dataDir := flag.String("data", "", "directory containing trips.csv, stations.csv and maintenance.csv (overrides config)")
	outDir := flag.String("out", "", "output directory (overrides config)")
	repeats := flag.Int("repeats", 0, "benchmark repeats per metric (overrides config)")
	top := flag.Int("top", 0, "number of stations and routes in the rankings (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *repeats > 0 {
		cfg.Bench.Repeats = *repeats
	}
	if *top > 0 {
		cfg.Report.TopStations = *top
	}

	logger, err := logging.Setup(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer logging.Close()

	if err := run(context.Background(), cfg, logger, os.Stdout); err != nil {
		logger.Error("Pipeline failed", "error", err)
		logging.Close()
		os.Exit(1)
	}
}

// run executes the pipeline steps and prints the rendered report to
// stdout.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	start := time.Now()
	logger.Info("Starting CityBike pipeline",
		slog.String("data_dir", cfg.Data.Dir),
		slog.String("output_dir", cfg.Output.Dir))

	ds, err := dataset.Load(ctx, cfg.Data.Dir)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	logger.Info("Loaded raw data",
		slog.Int("trips", len(ds.Trips)),
		slog.Int("stations", len(ds.Stations)),
		slog.Int("maintenance", len(ds.Maintenance)))

	insp := dataset.Inspect(ds)
	logger.Info("Inspected trips",
		slog.Any("empty_cells", insp.EmptyTripCells),
		slog.Any("user_types", insp.UserTypes))
	for _, trip := range insp.SampleTrips {
		logger.Debug("Sample trip",
			slog.String("trip_id", trip.TripID),
			slog.String("start_time", trip.StartTime),
			slog.String("user_type", trip.UserType))
	}

	clean, cleanReport := dataset.Clean(ds)
	logger.Info("Cleaned data",
		slog.Int("trips", len(clean.Trips)),
		slog.Int("stations", len(clean.Stations)),
		slog.Int("maintenance", len(clean.Maintenance)),
		slog.Int("duplicate_trips", cleanReport.DuplicateTrips),
		slog.Int("unparseable_trips", cleanReport.UnparseableTrips),
		slog.Int("inconsistent_trips", cleanReport.InconsistentTrips),
		slog.Int("dropped_stations", cleanReport.DroppedStations),
		slog.Int("zeroed_costs", cleanReport.ZeroedCosts),
		slog.Int("zero_dates", cleanReport.ZeroDates))

	if err := dataset.ExportClean(clean, cfg.Output.Dir); err != nil {
		return fmt.Errorf("export clean data: %w", err)
	}
	logger.Info("Exported clean data", slog.String("dir", cfg.Output.Dir))

	revenue, err := analysis.RevenueByUserType(clean)
	if err != nil {
		return fmt.Errorf("revenue by user type: %w", err)
	}

	durations := make([]float64, len(clean.Trips))
	distances := make([]float64, len(clean.Trips))
	for i, trip := range clean.Trips {
		durations[i] = trip.DurationMinutes
		distances[i] = trip.DistanceKM
	}

	durStats, err := stats.DurationSummary(durations)
	if err != nil {
		return fmt.Errorf("duration statistics: %w", err)
	}
	outliers := stats.ZScoreOutliers(durations, cfg.Stats.ZScoreThreshold)
	logger.Info("Computed duration statistics",
		slog.Float64("mean", durStats.Mean),
		slog.Float64("median", durStats.Median),
		slog.Float64("std", durStats.Std),
		slog.Int("outliers", len(outliers)))

	latitudes := make([]float64, len(clean.Stations))
	longitudes := make([]float64, len(clean.Stations))
	for i, station := range clean.Stations {
		latitudes[i] = station.Latitude
		longitudes[i] = station.Longitude
	}
	matrix, err := stats.DistanceMatrix(latitudes, longitudes)
	if err != nil {
		return fmt.Errorf("station distance matrix: %w", err)
	}
	logger.Info("Computed station distance matrix", slog.Int("size", len(matrix)))

	fares, err := stats.Fares(durations, distances, pricing.CasualPerMinute, pricing.CasualPerKM, pricing.CasualUnlockFee)
	if err != nil {
		return fmt.Errorf("vectorized fares: %w", err)
	}
	var fareTotal float64
	for _, fare := range fares {
		fareTotal += fare
	}
	logger.Info("Computed vectorized casual fares",
		slog.String("total", report.FormatCurrency(fareTotal)))

	benchCfg := &algo.BenchConfig{Repeats: cfg.Bench.Repeats}
	sortBench := algo.BenchmarkSort(durations, benchCfg)
	sorted := algo.MergeSort(durations)
	searchBench := algo.BenchmarkSearch(sorted, sorted[len(sorted)/2], benchCfg)
	logger.Info("Benchmarked algorithms",
		slog.Any("sort_ms", sortBench),
		slog.Any("search_ms", searchBench))

	summary := &report.Summary{
		Totals:          analysis.TripTotals(clean),
		TopStations:     analysis.TopStartStations(clean, cfg.Report.TopStations),
		PeakHours:       analysis.PeakUsageHours(clean),
		AvgDistance:     analysis.AvgDistanceByUserType(clean),
		TopRoutes:       analysis.TopRoutes(clean, cfg.Report.TopStations),
		MonthlyTrend:    analysis.MonthlyTrend(clean),
		MaintenanceCost: analysis.MaintenanceCostByBikeType(clean),
		Revenue:         revenue,
		BoxStats:        analysis.DurationBoxStats(clean),
		DurationStats:   durStats,
		OutlierCount:    len(outliers),
		SortBench:       sortBench,
		SearchBench:     searchBench,
	}

	reportPath := filepath.Join(cfg.Output.Dir, report.ReportFile)
	if err := report.WriteText(reportPath, summary); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}
	logger.Info("Wrote text report", slog.String("path", reportPath))

	if err := report.WriteChartData(cfg.FiguresDir(), clean, summary, cfg.Report.HistogramBins); err != nil {
		return fmt.Errorf("write chart data: %w", err)
	}
	logger.Info("Wrote chart data", slog.String("dir", cfg.FiguresDir()))

	workbookPath := filepath.Join(cfg.Output.Dir, report.WorkbookFile)
	if err := report.WriteWorkbook(workbookPath, summary); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	logger.Info("Wrote workbook", slog.String("path", workbookPath))

	if err := report.Render(stdout, summary); err != nil {
		return fmt.Errorf("print report: %w", err)
	}

	logger.Info("Pipeline complete",
		slog.Int("trips", summary.Totals.TotalTrips),
		slog.String("elapsed", time.Since(start).String()))
	return nil
}

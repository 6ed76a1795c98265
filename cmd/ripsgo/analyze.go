package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jrfloren/ripsgo/embed"
	"github.com/jrfloren/ripsgo/metric"
	"github.com/jrfloren/ripsgo/tda"
)

// Input shapes accepted by analyze.
const (
	inputSeries = "series"
	inputPoints = "points"
	inputMatrix = "matrix"
)

var (
	analyzeConfig      string
	analyzeType        string
	analyzeMetric      string
	analyzeMaxScale    float64
	analyzeMaxDim      int
	analyzeFormat      string
	analyzeOutput      string
	analyzeStatsDir    string
	analyzeEmbedDim    int
	analyzeEmbedDelay  int
	analyzeMaxSamples  int
	analyzeColumn      int
	analyzeIncludeZero bool
	analyzeTimeLimit   time.Duration
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input.csv | directory>",
	Short: "Compute persistence diagrams from CSV input",
	Long: `Analyze a CSV file, or every *.csv in a directory, and emit the
persistence diagram as (dimension, birth, death) triples.

With --type series (the default) the last column of each row is treated
as the trace amplitude, downsampled, delay-embedded, and analyzed; use
--column to pick a different channel. --type points reads one point per
row; --type matrix reads a precomputed symmetric distance matrix.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	flags := analyzeCmd.Flags()
	flags.StringVar(&analyzeConfig, "config", "", "YAML config file with engine tunables")
	flags.StringVar(&analyzeType, "type", inputSeries, "input shape: series, points or matrix")
	flags.StringVar(&analyzeMetric, "metric", "", "distance metric: "+strings.Join(metric.Names(), ", "))
	flags.Float64Var(&analyzeMaxScale, "max-scale", 0, "filtration threshold; 0 = largest pairwise distance")
	flags.IntVar(&analyzeMaxDim, "max-dim", 1, "highest homology dimension to report")
	flags.StringVar(&analyzeFormat, "format", "csv", "diagram output format: csv or json")
	flags.StringVar(&analyzeOutput, "output", "", "output file (single input) or directory (batch); default stdout / input directory")
	flags.StringVar(&analyzeStatsDir, "stats-dir", "", "also write descriptive statistics CSVs into this directory")
	flags.IntVar(&analyzeEmbedDim, "embed-dim", embed.DefaultDimension, "delay embedding dimension (series input)")
	flags.IntVar(&analyzeEmbedDelay, "embed-delay", embed.DefaultDelay, "delay between embedding coordinates, in samples")
	flags.IntVar(&analyzeMaxSamples, "max-samples", 1000, "downsample the trace to at most this many samples")
	flags.IntVar(&analyzeColumn, "column", -1, "trace column index; -1 = last column")
	flags.BoolVar(&analyzeIncludeZero, "include-zero", false, "keep zero-persistence pairs in the diagram")
	flags.DurationVar(&analyzeTimeLimit, "time-limit", 0, "per-stage wall-clock budget; 0 = unlimited")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	switch analyzeType {
	case inputSeries, inputPoints, inputMatrix:
	default:
		return fmt.Errorf("unknown --type %q", analyzeType)
	}
	switch analyzeFormat {
	case "csv", "json":
	default:
		return fmt.Errorf("unknown --format %q", analyzeFormat)
	}

	cfg, opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	input := args[0]
	info, err := os.Stat(input)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return analyzeOne(cmd.Context(), input, analyzeOutput, cfg, opts)
	}

	// Batch mode: every *.csv in the directory, deterministic order.
	entries, err := os.ReadDir(input)
	if err != nil {
		return err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return fmt.Errorf("%s: no .csv files", input)
	}

	outDir := analyzeOutput
	if outDir == "" {
		outDir = input
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for _, name := range names {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		out := filepath.Join(outDir, base+"_diagram."+analyzeFormat)
		if err := analyzeOne(cmd.Context(), filepath.Join(input, name), out, cfg, opts); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
	}

	return nil
}

// resolveOptions layers explicit flags over the config file (or defaults).
func resolveOptions(cmd *cobra.Command) (tda.Config, tda.Options, error) {
	cfg := tda.DefaultConfig()
	if analyzeConfig != "" {
		loaded, err := tda.LoadConfig(analyzeConfig)
		if err != nil {
			return tda.Config{}, tda.Options{}, err
		}
		cfg = loaded
	}
	flagSet := cmd.Flags()
	if flagSet.Changed("metric") {
		cfg.Metric = analyzeMetric
	}
	if flagSet.Changed("max-scale") {
		cfg.MaxScale = analyzeMaxScale
	}
	if flagSet.Changed("max-dim") {
		cfg.MaxDimension = analyzeMaxDim
	}
	if flagSet.Changed("include-zero") {
		cfg.IncludeZeroPersistence = analyzeIncludeZero
	}
	if flagSet.Changed("embed-dim") {
		cfg.Embedding.Dimension = analyzeEmbedDim
	}
	if flagSet.Changed("embed-delay") {
		cfg.Embedding.Delay = analyzeEmbedDelay
	}
	if flagSet.Changed("max-samples") {
		cfg.Embedding.MaxSamples = analyzeMaxSamples
	}

	opts, err := cfg.Options()
	if err != nil {
		return tda.Config{}, tda.Options{}, err
	}
	if flagSet.Changed("time-limit") {
		opts.TimeLimit = analyzeTimeLimit
	}

	return cfg, opts, nil
}

// analyzeOne processes a single CSV file and writes its diagram to
// outPath ("" = stdout), plus optional statistics.
func analyzeOne(ctx context.Context, path, outPath string, cfg tda.Config, opts tda.Options) error {
	rows, err := readTable(path)
	if err != nil {
		return err
	}

	var (
		result *tda.Result
		series []float64
		cloud  [][]float64
	)
	switch analyzeType {
	case inputSeries:
		series, err = seriesColumn(rows, analyzeColumn)
		if err != nil {
			return err
		}
		series, err = embed.Downsample(series, cfg.Embedding.MaxSamples)
		if err != nil {
			return err
		}
		cloud, err = embed.Delay(series, cfg.EmbedOptions())
		if err != nil {
			return err
		}
		result, err = tda.AnalyzePoints(ctx, cloud, opts)
	case inputPoints:
		cloud = rows
		result, err = tda.AnalyzePoints(ctx, cloud, opts)
	case inputMatrix:
		var dm *metric.DistanceMatrix
		dm, err = metric.DistanceMatrixFromDense(rows)
		if err != nil {
			return err
		}
		result, err = tda.AnalyzeDistances(ctx, dm, opts)
	}
	if err != nil {
		return err
	}

	if analyzeStatsDir != "" {
		if err := writeStats(path, series, cloud); err != nil {
			return err
		}
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if analyzeFormat == "json" {
		return result.Diagram.WriteJSON(w)
	}

	return result.Diagram.WriteCSV(w)
}

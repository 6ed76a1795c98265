package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jrfloren/ripsgo/stats"
)

var statsColumn int

var statsCmd = &cobra.Command{
	Use:   "stats <input.csv>",
	Short: "Print descriptive statistics of a CSV table",
	Long: `Summarize each column of a CSV table: count, mean, std, min,
quartiles and max. The same summaries the analyze command can store
next to each diagram with --stats-dir.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := readTable(args[0])
		if err != nil {
			return err
		}
		if statsColumn >= 0 {
			series, err := seriesColumn(rows, statsColumn)
			if err != nil {
				return err
			}
			s, err := stats.Describe(series)
			if err != nil {
				return err
			}

			return stats.WriteCSV(cmd.OutOrStdout(), []string{fmt.Sprintf("col_%d", statsColumn)}, []stats.Summary{s})
		}
		sums, err := stats.DescribeColumns(rows)
		if err != nil {
			return err
		}
		names := make([]string, len(sums))
		for i := range names {
			names[i] = fmt.Sprintf("col_%d", i)
		}

		return stats.WriteCSV(cmd.OutOrStdout(), names, sums)
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsColumn, "column", -1, "summarize a single column; -1 = all columns")
	rootCmd.AddCommand(statsCmd)
}

// writeStats stores the raw-trace and embedded-cloud summaries for one
// analyzed file, named after it the way the original shot archives are.
func writeStats(inputPath string, series []float64, cloud [][]float64) error {
	if err := os.MkdirAll(analyzeStatsDir, 0o755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	if series != nil {
		s, err := stats.Describe(series)
		if err != nil {
			return err
		}
		if err := writeStatsFile(filepath.Join(analyzeStatsDir, base+"_raw_stats.csv"),
			[]string{"amplitude"}, []stats.Summary{s}); err != nil {
			return err
		}
	}
	if cloud != nil {
		sums, err := stats.DescribeColumns(cloud)
		if err != nil {
			return err
		}
		names := make([]string, len(sums))
		for i := range names {
			names[i] = fmt.Sprintf("dim_%d", i+1)
		}
		if err := writeStatsFile(filepath.Join(analyzeStatsDir, base+"_embedded_stats.csv"),
			names, sums); err != nil {
			return err
		}
	}

	return nil
}

func writeStatsFile(path string, names []string, sums []stats.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return stats.WriteCSV(f, names, sums)
}

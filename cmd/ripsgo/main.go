// Command ripsgo runs persistent-homology analysis over CSV inputs:
// single-channel traces, embedded point clouds or precomputed distance
// matrices. Instrument-specific conversion (scope traces, spreadsheets,
// MCA dumps) happens upstream; this tool consumes plain CSV.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ripsgo",
	Short: "Persistent homology for plasma diagnostic traces",
	Long: `ripsgo builds Vietoris-Rips filtrations from diagnostic data and
computes persistence diagrams: (dimension, birth, death) triples ready
for plotting or classification.

Inputs are CSV files - a 1-D trace, a point cloud (one point per row),
or a full distance matrix - or a directory of such files for batch runs.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ripsgo:", err)
		os.Exit(1)
	}
}

// Package main implements the partitioner command-line tool: it reads a
// road-network graph and coordinate file, recursively bisects it with
// Inertial Flow, and writes out the resulting hierarchical partition.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// settings mirrors the bound cobra/viper flags for a single partitioner run.
type settings struct {
	graphPath       string
	graphFormat     string
	coordinatePath  string
	recursionDepth  int
	bFactor         float64
	minimumCellSize int
	partitionFile   string
	assignmentCSV   string
	cutCSV          string
	numberOfThreads int
}

var cfg settings

var rootCmd = &cobra.Command{
	Use:   "partitioner",
	Short: "Recursively partition a road network with Inertial Flow",
	Long: `partitioner reads a graph and its node coordinates, recursively
bisects it into balanced, low-cut cells using Inertial Flow max-flow
computations, and writes the resulting hierarchical PartitionID
assignment to disk.`,
	RunE: runPartition,
}

// Execute runs the root command, exiting with the process's documented
// exit codes: 0 success, 1 invariant violation, 2 I/O error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func init() {
	flags := rootCmd.Flags()

	flags.StringVarP(&cfg.graphPath, "graph", "g", "", "graph file path (required)")
	flags.StringVar(&cfg.graphFormat, "graph-format", "dimacs", "graph format: dimacs|ddsg|metis")
	flags.StringVarP(&cfg.coordinatePath, "coordinates", "c", "", "coordinates file path (required)")
	flags.IntVarP(&cfg.recursionDepth, "recursion-depth", "r", 1, "recursion depth, in [1,31]")
	flags.Float64VarP(&cfg.bFactor, "b-factor", "b", 0.25, "inertial flow balance factor, in (0,0.5]")
	flags.IntVarP(&cfg.minimumCellSize, "minimum-cell-size", "m", 50, "minimum cell size to keep bisecting")
	flags.StringVarP(&cfg.partitionFile, "partition-file", "p", "", "output binary partition file")
	flags.StringVarP(&cfg.assignmentCSV, "assignment-csv", "a", "", "output per-node assignment CSV")
	flags.StringVarP(&cfg.cutCSV, "cut-csv", "o", "", "output cut-edge CSV")
	flags.IntVarP(&cfg.numberOfThreads, "number-of-threads", "n", runtime.GOMAXPROCS(0), "worker count")

	_ = rootCmd.MarkFlagRequired("graph")
	_ = rootCmd.MarkFlagRequired("coordinates")

	bindAndOverlay(flags)
}

// bindAndOverlay binds every flag into viper under its documented config
// key so a partitioner.yaml in the working directory or a matching
// PARTITIONER_* environment variable can supply it, then re-reads any
// value viper resolved back into cfg.
func bindAndOverlay(flags *pflag.FlagSet) {
	pairs := []struct {
		key  string
		flag string
	}{
		{"graph.path", "graph"},
		{"graph.format", "graph-format"},
		{"graph.coordinates", "coordinates"},
		{"partition.depth", "recursion-depth"},
		{"partition.balance", "b-factor"},
		{"partition.min-cell-size", "minimum-cell-size"},
		{"output.partition", "partition-file"},
		{"output.assignment-csv", "assignment-csv"},
		{"output.cut-csv", "cut-csv"},
		{"runtime.threads", "number-of-threads"},
	}
	for _, p := range pairs {
		if err := viper.BindPFlag(p.key, flags.Lookup(p.flag)); err != nil {
			fmt.Fprintf(os.Stderr, "partitioner: binding %s: %v\n", p.key, err)
		}
	}

	viper.SetConfigName("partitioner")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("partitioner")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "partitioner: reading config file: %v\n", err)
		}
	}

	// Re-read every key so a config file or PARTITIONER_* env var can
	// override the flag default even when the flag itself wasn't passed.
	cfg.graphPath = viper.GetString("graph.path")
	cfg.graphFormat = viper.GetString("graph.format")
	cfg.coordinatePath = viper.GetString("graph.coordinates")
	cfg.recursionDepth = viper.GetInt("partition.depth")
	cfg.bFactor = viper.GetFloat64("partition.balance")
	cfg.minimumCellSize = viper.GetInt("partition.min-cell-size")
	cfg.partitionFile = viper.GetString("output.partition")
	cfg.assignmentCSV = viper.GetString("output.assignment-csv")
	cfg.cutCSV = viper.GetString("output.cut-csv")
	cfg.numberOfThreads = viper.GetInt("runtime.threads")
}

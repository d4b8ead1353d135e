// Package main provides the meanshift CLI entry point.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/TrevorS/meanshift"
	"github.com/TrevorS/meanshift/internal/dataset"
	"github.com/TrevorS/meanshift/internal/report"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "meanshift",
		Short: "Mean-shift clustering for delimited point files",
		Long: `meanshift refines every point of a data set toward its local density
peak with a Gaussian kernel, then merges peaks that lie within the merge
radius of each other into clusters.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "meanshift v%s (%s)\n", version, commit)
		},
	})

	runCmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Cluster the points in a file",
		Long: `Cluster the points in a delimited text file. Each record holds an optional
label followed by the coordinates. Files ending in .zst are decompressed.`,
		Args: cobra.ExactArgs(1),
		RunE: runCluster,
	}
	runCmd.Flags().String("config", "", "YAML config file")
	runCmd.Flags().Float64("bandwidth", 1.0, "Gaussian kernel bandwidth")
	runCmd.Flags().Float64("radius", 3.0, "Neighborhood radius cutoff")
	runCmd.Flags().Float64("merge-radius", 0, "Mode merge radius (0 means radius/5)")
	runCmd.Flags().Int("max-iterations", 300, "Refinement iteration cap per point")
	runCmd.Flags().Float64("threshold", 1e-6, "Convergence threshold")
	runCmd.Flags().Int("workers", 0, "Worker goroutines (0 means NumCPU)")
	runCmd.Flags().String("algorithm", "auto", "Neighbor search: auto, brute, kdtree or balltree")
	runCmd.Flags().Bool("no-header", false, "Input has no header row")
	runCmd.Flags().Bool("no-label", false, "Input has no label column")
	runCmd.Flags().String("delimiter", ",", "Field delimiter")
	runCmd.Flags().String("format", "text", "Output format: text, json or yaml")
	runCmd.Flags().String("log-level", "warn", "Log level: debug, info, warn or error")
	runCmd.Flags().Bool("log-json", false, "Emit JSON logs")
	rootCmd.AddCommand(runCmd)

	return rootCmd
}

func runCluster(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	cfg := meanshift.DefaultConfig()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := meanshift.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if flags.Changed("bandwidth") {
		cfg.Bandwidth, _ = flags.GetFloat64("bandwidth")
	}
	if flags.Changed("radius") {
		cfg.RadiusCutoff, _ = flags.GetFloat64("radius")
	}
	if flags.Changed("merge-radius") {
		cfg.MergeRadius, _ = flags.GetFloat64("merge-radius")
	}
	if flags.Changed("max-iterations") {
		cfg.MaxIterations, _ = flags.GetInt("max-iterations")
	}
	if flags.Changed("threshold") {
		cfg.ConvergenceThreshold, _ = flags.GetFloat64("threshold")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("algorithm") {
		algo, _ := flags.GetString("algorithm")
		cfg.Algorithm = meanshift.Algorithm(strings.ToLower(algo))
	}

	levelName, _ := flags.GetString("log-level")
	jsonLogs, _ := flags.GetBool("log-json")
	logger, err := newLogger(cmd.ErrOrStderr(), levelName, jsonLogs)
	if err != nil {
		return err
	}
	cfg.Logger = logger

	formatName, _ := flags.GetString("format")
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	opts := dataset.DefaultOptions()
	noHeader, _ := flags.GetBool("no-header")
	noLabel, _ := flags.GetBool("no-label")
	opts.Header = !noHeader
	opts.LabelColumn = !noLabel
	delim, _ := flags.GetString("delimiter")
	if delim == `\t` {
		delim = "\t"
	}
	if utf8.RuneCountInString(delim) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", delim)
	}
	opts.Comma, _ = utf8.DecodeRuneInString(delim)

	points, err := dataset.ReadFile(args[0], opts)
	if err != nil {
		return err
	}
	logger.Debug("dataset loaded", "path", args[0], "points", len(points))

	res, err := meanshift.Cluster(points, cfg)
	if err != nil {
		return fmt.Errorf("clustering %s: %w", args[0], err)
	}
	return report.Write(cmd.OutOrStdout(), res, format)
}

func newLogger(w io.Writer, levelName string, jsonLogs bool) (*meanshift.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", levelName)
	}
	opts := &slog.HandlerOptions{Level: level}
	if jsonLogs {
		return meanshift.NewLogger(slog.NewJSONHandler(w, opts)), nil
	}
	return meanshift.NewLogger(slog.NewTextHandler(w, opts)), nil
}

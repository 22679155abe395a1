package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/saddle-tools/indexgen/internal/config"
	"github.com/saddle-tools/indexgen/internal/pipeline"
)

var version = "dev"

var (
	flagOutput  string
	flagFull    bool
	flagVerbose bool
	flagConfig  string
)

func main() {
	root := &cobra.Command{
		Use:     "indexgen [path]",
		Short:   "Generate a structural index and overview report for a codebase",
		Args:    cobra.MaximumNArgs(1),
		Version: version,
		RunE:    runIndex,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(flagVerbose)
		},
	}
	root.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "directory for generated artifacts (default: the indexed path)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.Flags().BoolVar(&flagFull, "full", false, "force a full rebuild instead of an incremental update")

	root.AddCommand(searchCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg, rootArg(args), flagOutput)
	if err != nil {
		return err
	}
	result, err := p.Run(flagFull)
	if err != nil {
		return err
	}

	fmt.Printf("Indexed %d files (%d LOC, %d functions, %d classes) [%s]\n",
		result.Stats.TotalFiles, result.Stats.TotalLOC,
		result.Stats.TotalFunctions, result.Stats.TotalClasses, result.Mode)
	if result.StaleFiles > 0 {
		fmt.Printf("Flagged %d potentially stale files\n", result.StaleFiles)
	}
	if result.Chunks > 0 {
		fmt.Printf("Embedded %d semantic chunks\n", result.Chunks)
	}
	fmt.Println("Artifacts written to", result.OutputDir)
	return nil
}

func searchCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query> [path]",
		Short: "Semantic search over the indexed codebase",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			path := "."
			if len(args) > 1 {
				path = args[1]
			}
			p, err := pipeline.New(cfg, path, flagOutput)
			if err != nil {
				return err
			}
			results, err := p.Search(args[0], limit)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("No results (is the embedding model installed and the codebase indexed?)")
				return nil
			}
			for _, r := range results {
				loc := r.FilePath
				if r.FunctionName != "" {
					loc = fmt.Sprintf("%s:%d %s()", r.FilePath, r.StartLine, r.FunctionName)
				}
				fmt.Printf("%.3f  %s\n    %s\n", r.Distance, loc, r.Snippet)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "maximum number of results")
	return cmd
}

func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

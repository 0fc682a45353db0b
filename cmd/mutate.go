package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	lmconfig "github.com/conneroisu/leanmutator/internal/config"
	"github.com/conneroisu/leanmutator/internal/discover"
	lmerrors "github.com/conneroisu/leanmutator/internal/errors"
	"github.com/conneroisu/leanmutator/internal/langparser"
	"github.com/conneroisu/leanmutator/internal/logging"
	"github.com/conneroisu/leanmutator/internal/mutation"
	"github.com/conneroisu/leanmutator/internal/operator"
	"github.com/conneroisu/leanmutator/internal/report"
	"github.com/conneroisu/leanmutator/internal/runner"
	"github.com/conneroisu/leanmutator/internal/scheduler"
)

var mutateCmd = &cobra.Command{
	Use:   "mutate <paths...>",
	Short: "Run mutation testing over one or more files or directories",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMutate,
}

func init() {
	flags := mutateCmd.Flags()
	flags.StringSlice("operators", nil, "operator names to enable (default: all)")
	flags.StringSlice("exclude", nil, "substring patterns to exclude from the scan")
	flags.Int("timeout", 0, "per-mutation timeout in milliseconds")
	flags.Int("parallel", 0, "number of concurrent runner workers")
	flags.String("output", "", "output format: console|json|html")
	flags.String("report", "", "report file path (default: stdout)")
	flags.Int("threshold", 0, "minimum mutation score (0-100) for exit code 0")
	flags.Bool("verbose", false, "also emit a Markdown summary with weak-spot analysis")
	flags.Bool("no-color", false, "disable ANSI color in console output")
	flags.Bool("isolated", false, "use isolated (parse-only) mode instead of build mode")
	flags.Bool("source-patterns", true, "also run the source-pattern operator pass")

	viper.BindPFlag("operators", flags.Lookup("operators"))
	viper.BindPFlag("exclude", flags.Lookup("exclude"))
	viper.BindPFlag("timeout", flags.Lookup("timeout"))
	viper.BindPFlag("parallel", flags.Lookup("parallel"))
	viper.BindPFlag("output", flags.Lookup("output"))
	viper.BindPFlag("report", flags.Lookup("report"))
	viper.BindPFlag("threshold", flags.Lookup("threshold"))

	rootCmd.AddCommand(mutateCmd)
}

func runMutate(cmd *cobra.Command, args []string) error {
	cfg, err := lmconfig.Load()
	if err != nil {
		return lmerrors.NewUserInputError(err.Error())
	}

	cfg.TargetFiles = args
	cfg.Isolated, _ = cmd.Flags().GetBool("isolated")
	cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	cfg.NoColor, _ = cmd.Flags().GetBool("no-color")
	sourcePatterns, _ := cmd.Flags().GetBool("source-patterns")

	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	logger := logging.NewLogger(logging.DefaultConfig())
	ctx := context.Background()

	files, err := discover.Files(cfg.TargetFiles)
	if err != nil {
		return lmerrors.NewUserInputError(fmt.Sprintf("discovering source files: %v", err))
	}

	var filtered []string
	for _, f := range files {
		if !discover.MatchesExclude(f, cfg.Exclude) {
			filtered = append(filtered, f)
		}
	}
	if len(filtered) == 0 {
		return lmerrors.NewUserInputError("no source files found under the given paths")
	}

	registry := operator.NewRegistry()
	enabledOps := registry.Select(cfg.Operators)
	if len(enabledOps) == 0 {
		return lmerrors.NewUserInputError("no operators matched the requested --operators list")
	}

	var allMutations []mutation.Mutation
	sources := scheduler.Sources{}

	for _, file := range filtered {
		source, err := os.ReadFile(file)
		if err != nil {
			logger.Error(ctx, err, "failed to read source file", "file", file)
			continue
		}
		sources[file] = source

		root, parseErr := langparser.Parse(source, file)
		if root == nil {
			logger.Error(ctx, parseErr, "failed to parse source file, skipping", "file", file)
			continue
		}
		if parseErr != nil {
			logger.Warn(ctx, parseErr, "partial parse; later commands in this file were skipped", "file", file)
		}

		muts := mutation.Generate(root, source, file, enabledOps, sourcePatterns)
		allMutations = append(allMutations, renumbered(muts, len(allMutations))...)
	}

	mode := runner.ModeBuild
	if cfg.Isolated {
		mode = runner.ModeIsolated
	}

	runnerCfg := runner.Config{
		Mode:         mode,
		TimeoutMs:    cfg.Timeout,
		BuildCommand: splitCommand(cfg.TestCommand),
	}

	results, stats := scheduler.Run(ctx, allMutations, sources, scheduler.Config{
		NumWorkers:   cfg.Parallel,
		RunnerConfig: runnerCfg,
	})

	if err := writeReport(cmd, cfg, results, stats); err != nil {
		return err
	}

	if stats.Score() < float64(cfg.Threshold) {
		os.Exit(1)
	}
	return nil
}

// renumbered reassigns monotonic IDs starting at offset, since each
// file's Generate call starts its own traversal count from zero but
// the run-wide Mutation.ID must be unique across every scanned file.
func renumbered(muts []mutation.Mutation, offset int) []mutation.Mutation {
	out := make([]mutation.Mutation, len(muts))
	for i, m := range muts {
		m.ID = offset + i
		out[i] = m
	}
	return out
}

func splitCommand(testCommand string) []string {
	return strings.Fields(testCommand)
}

func writeReport(cmd *cobra.Command, cfg *lmconfig.Config, results []mutation.Result, stats mutation.Stats) error {
	out := os.Stdout
	if cfg.Report != "" {
		f, err := os.Create(cfg.Report)
		if err != nil {
			return lmerrors.NewWorkflowError(cfg.Report, "failed to create report file", err)
		}
		defer f.Close()
		out = f
	}

	switch cfg.Output {
	case "json":
		data, err := report.MarshalJSON(results, stats)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case "html":
		fmt.Fprint(out, report.RenderHTML(results, stats))
	default:
		report.WriteConsole(out, results, stats, !cfg.NoColor)
	}

	if cfg.Verbose {
		fmt.Fprintln(cmd.ErrOrStderr(), report.WriteMarkdown(results, stats))
	}

	return nil
}

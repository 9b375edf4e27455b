package commands

import (
	"fmt"

	"github.com/leapstack-labs/js2py/internal/cli/output"
	"github.com/leapstack-labs/js2py/internal/engine"
	"github.com/leapstack-labs/js2py/internal/state"
	"github.com/spf13/cobra"
)

// buildReport is the JSON shape of a build run.
type buildReport struct {
	RunID      string         `json:"run_id"`
	Root       string         `json:"root"`
	Stats      state.RunStats `json:"stats"`
	DurationMS int64          `json:"duration_ms"`
	Failures   []buildFailure `json:"failures"`
}

type buildFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "build [directory]",
		Short: "Translate every JavaScript file in a directory",
		Long: `Translate every file with a configured extension under a directory.

Builds are incremental: a file whose content hash matches the last
successful build and whose output still exists is skipped. Files are
translated in parallel; --jobs bounds the number of workers.`,
		Example: `  # Build the current directory
  js2py build

  # Rebuild everything
  js2py build src --force

  # Use two workers
  js2py build -j 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, dirArg(args), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Ignore content hashes and translate every file")
	cmd.Flags().IntP("jobs", "j", 0, "Parallel translations (0 = number of CPUs)")

	return cmd
}

func runBuild(cmd *cobra.Command, dir string, force bool) error {
	c := NewCommandContext(cmd)

	eng, err := c.NewEngine(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	result, err := eng.Build(cmd.Context(), dir, engine.BuildOptions{Force: force})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	renderBuildResult(c.Renderer, result)

	if result.HasErrors() {
		return fmt.Errorf("%d file(s) failed to translate", result.Stats.Failed)
	}
	return nil
}

func renderBuildResult(r *output.Renderer, result *engine.BuildResult) {
	if r.EffectiveMode() == output.ModeJSON {
		report := buildReport{
			RunID:      result.RunID,
			Root:       result.Root,
			Stats:      result.Stats,
			DurationMS: result.Duration.Milliseconds(),
			Failures:   []buildFailure{},
		}
		for _, f := range result.Failures() {
			report.Failures = append(report.Failures, buildFailure{Path: displayPath(f.Path), Error: f.Err.Error()})
		}
		_ = r.JSON(report)
		return
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "build"))
		r.Println("")
		r.Println(output.FormatKeyValue("Run", result.RunID))
		r.Println("")
	}

	for _, f := range result.Files {
		switch f.Status {
		case state.FileStatusTranslated:
			r.StatusLine(displayPath(f.Path), "success", "→ "+displayPath(f.OutputPath))
		case state.FileStatusFailed:
			r.StatusLine(displayPath(f.Path), "error", f.Err.Error())
		case state.FileStatusSkipped:
			r.StatusLine(displayPath(f.Path), "info", "unchanged")
		}
	}

	summary := result.Summary()
	if result.HasErrors() {
		r.Error(summary)
		return
	}
	r.Success(summary)
}

package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/js2py/internal/engine"
	"github.com/spf13/cobra"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Build, then rebuild whenever a file changes",
		Long: `Run an incremental build and keep watching the directory.

Every write to a file with a configured extension triggers a new
incremental build. Press Ctrl+C to stop.`,
		Example: `  # Watch the current directory
  js2py watch

  # Watch a source tree
  js2py watch src`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, dirArg(args))
		},
	}

	cmd.Flags().IntP("jobs", "j", 0, "Parallel translations (0 = number of CPUs)")

	return cmd
}

func runWatch(cmd *cobra.Command, dir string) error {
	c := NewCommandContext(cmd)

	eng, err := c.NewEngine(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return eng.Watch(ctx, dir, func(result *engine.BuildResult, err error) {
		if err != nil {
			if ctx.Err() == nil {
				c.Renderer.Error("build failed: " + err.Error())
			}
			return
		}
		renderBuildResult(c.Renderer, result)
	})
}

// Package commands implements the js2py subcommands.
package commands

import (
	"io"
	"log/slog"

	"github.com/leapstack-labs/js2py/internal/cli/output"
	"github.com/leapstack-labs/js2py/internal/config"
	"github.com/leapstack-labs/js2py/internal/engine"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Format))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// NewEngine creates an engine from the current configuration. Code printed
// in stdout output mode goes to stdout. The caller must Close the engine.
func (c *CommandContext) NewEngine(stdout io.Writer) (*engine.Engine, error) {
	return engine.New(engine.Config{
		Indent:     c.Cfg.Indent,
		Output:     c.Cfg.Output,
		Suffix:     c.Cfg.Suffix,
		Extensions: c.Cfg.Extensions,
		Jobs:       c.Cfg.Jobs,
		StatePath:  c.Cfg.StatePath,
		Stdout:     stdout,
		Logger:     c.Logger,
	})
}

// dirArg returns the first argument or ".".
func dirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

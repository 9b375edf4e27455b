package commands

import (
	"github.com/leapstack-labs/js2py/internal/lsp"
	"github.com/spf13/cobra"
)

// NewLSPCommand creates the lsp command.
func NewLSPCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the LSP server for IDE integration.

The server communicates over stdin/stdout using JSON-RPC. Open
documents are checked on every change: constructs that cannot be
translated are published as errors, lossy lowerings as warnings.
Hovering over a statement previews its Python translation.`,
		Example: `  # Start LSP server (usually called by an IDE)
  js2py lsp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLSP(cmd, version)
		},
	}

	return cmd
}

func runLSP(cmd *cobra.Command, version string) error {
	c := NewCommandContext(cmd)
	server := lsp.NewServer(cmd.InOrStdin(), cmd.OutOrStdout(), lsp.Config{
		Indent:  c.Cfg.Indent,
		Version: version,
		Logger:  c.Logger,
	})
	return server.Run()
}

// Package cli provides the command-line interface for js2py.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/leapstack-labs/js2py/internal/cli/commands"
	"github.com/leapstack-labs/js2py/internal/config"
	"github.com/leapstack-labs/js2py/pkg/source"
	"github.com/leapstack-labs/js2py/pkg/translate"
	"github.com/spf13/cobra"
)

// ErrUsage is returned when the command line is incomplete. The usage
// message has already been printed when it is returned.
var ErrUsage = errors.New("usage")

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "js2py <source file>",
		Short: "js2py - JavaScript to Python translator",
		Long: `js2py translates a subset of JavaScript into equivalent Python source.

Given a file, it writes the translation next to it as <file>.py.
Subcommands translate whole directories, report every untranslatable
construct, watch for changes and serve translation over HTTP.`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Verbose)
			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if cfg.ConfigFile != "" {
				logger.Debug("using config file", "path", cfg.ConfigFile)
			}
			return nil
		},
		RunE:          runTranslate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Built with Go and tree-sitter
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: js2py.yaml, searched upward)")
	rootCmd.PersistentFlags().Int("indent", 0, "Indent width of generated Python (default 4)")
	rootCmd.PersistentFlags().String("output", "", "Where translations go: file or stdout")
	rootCmd.PersistentFlags().String("suffix", "", "Output file suffix (default .py)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Report format (auto|text|markdown|json)")
	rootCmd.PersistentFlags().StringSlice("extensions", nil, "File extensions picked up in directories")
	rootCmd.PersistentFlags().String("state", "", "Path to state database")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputFile, config.OutputStdout}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewBuildCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewLSPCommand(Version))
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// runTranslate translates a single file: the command's original purpose.
func runTranslate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s <source file>\n", cmd.Root().Name())
		return ErrUsage
	}
	path := args[0]

	c := commands.NewCommandContext(cmd)
	eng, err := c.NewEngine(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	res := eng.TranslateFile(cmd.Context(), path)
	if res.Err != nil {
		printErrorContext(cmd.ErrOrStderr(), path, res.Source, res.Err)
		return res.Err
	}

	if res.OutputPath != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote python code into %s\n", res.OutputPath)
	}
	return nil
}

// printErrorContext shows where a translation error points in text, the
// source the error's span refers to.
func printErrorContext(w io.Writer, path, text string, err error) {
	span, ok := translate.ErrorSpan(err)
	if !ok || span.End > len(text) {
		return
	}
	f := source.NewFile(path, text)
	pos := f.Position(span.Start)
	_, _ = fmt.Fprintf(w, "%s:%d:%d\n%s\n", path, pos.Line, pos.Column, f.Caret(span))
}

// Execute runs the root command.
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs the root command with explicit arguments and streams.
func ExecuteArgs(args []string, stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrUsage) {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for js2py.

To load completions:

Bash:
  $ source <(js2py completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ js2py completion bash > /etc/bash_completion.d/js2py
  # macOS:
  $ js2py completion bash > $(brew --prefix)/etc/bash_completion.d/js2py

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ js2py completion zsh > "${fpath[1]}/_js2py"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ js2py completion fish | source

  # To load completions for each session, execute once:
  $ js2py completion fish > ~/.config/fish/completions/js2py.fish

PowerShell:
  PS> js2py completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> js2py completion powershell > js2py.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}

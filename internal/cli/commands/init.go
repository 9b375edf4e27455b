package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/js2py/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// starterConfig is the document written by js2py init.
type starterConfig struct {
	Indent     int          `yaml:"indent"`
	Output     string       `yaml:"output"`
	Suffix     string       `yaml:"suffix"`
	Format     string       `yaml:"format"`
	Extensions []string     `yaml:"extensions"`
	Jobs       int          `yaml:"jobs"`
	StatePath  string       `yaml:"state_path"`
	LogLevel   string       `yaml:"log_level"`
	Serve      starterServe `yaml:"serve"`
}

type starterServe struct {
	Addr        string `yaml:"addr"`
	ReadTimeout string `yaml:"read_timeout"`
	MaxBody     int64  `yaml:"max_body"`
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a js2py.yaml configuration file",
		Long: `Write a js2py.yaml with the default settings.

Every key can later be overridden by JS2PY_* environment variables
or command-line flags.`,
		Example: `  # Initialize in current directory
  js2py init

  # Initialize in a new directory
  js2py init my-project

  # Overwrite an existing config
  js2py init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(NewCommandContext(cmd), dirArg(args), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(c *CommandContext, dir string, force bool) error {
	r := c.Renderer

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.ConfigFileName)
	}

	data, err := renderStarterConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	c.Logger.Debug("wrote config", "path", configPath)

	r.StatusLine(configPath, "success", "")
	r.Println("")
	r.Success("js2py project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Run 'js2py check' to find constructs that cannot be translated")
	r.Println("  2. Run 'js2py build' to translate every file")
	r.Println("  3. Run 'js2py watch' to rebuild on change")

	return nil
}

func renderStarterConfig() ([]byte, error) {
	def := config.Default()
	doc := starterConfig{
		Indent:     def.Indent,
		Output:     def.Output,
		Suffix:     def.Suffix,
		Format:     def.Format,
		Extensions: def.Extensions,
		Jobs:       def.Jobs,
		StatePath:  def.StatePath,
		LogLevel:   def.LogLevel,
		Serve: starterServe{
			Addr:        def.Serve.Addr,
			ReadTimeout: def.Serve.ReadTimeout.String(),
			MaxBody:     def.Serve.MaxBody,
		},
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}
	header := "# js2py configuration. Precedence: flags > JS2PY_* env > this file > defaults.\n"
	return append([]byte(header), data...), nil
}

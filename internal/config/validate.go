package config

import (
	"fmt"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Indent < 1 || c.Indent > 16 {
		return fmt.Errorf("indent must be between 1 and 16, got %d", c.Indent)
	}

	switch c.Output {
	case OutputFile, OutputStdout:
	default:
		return fmt.Errorf("output must be %q or %q, got %q", OutputFile, OutputStdout, c.Output)
	}

	switch c.Format {
	case "", "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("format must be one of auto, text, markdown, json; got %q", c.Format)
	}

	if c.Output == OutputFile && c.Suffix == "" {
		return fmt.Errorf("suffix is required when output is %q", OutputFile)
	}

	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}

	for i, ext := range c.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return fmt.Errorf("extensions[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}

	if c.Serve.MaxBody < 0 {
		return fmt.Errorf("serve.max_body must not be negative")
	}
	return nil
}

package config

import "time"

// Default configuration values.
const (
	DefaultIndent      = 4
	DefaultOutput      = OutputFile
	DefaultSuffix      = ".py"
	DefaultFormat      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultStateFile   = ".js2py/state.db"
	DefaultLogLevel    = "info"
	DefaultAddr        = ":8011"
	DefaultReadTimeout = 10 * time.Second
	DefaultMaxBody     = 1 << 20
)

// DefaultExtensions are the file extensions picked up when walking directories.
func DefaultExtensions() []string {
	return []string{".js", ".mjs", ".ts"}
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Indent:     DefaultIndent,
		Output:     DefaultOutput,
		Suffix:     DefaultSuffix,
		Format:     DefaultFormat,
		Extensions: DefaultExtensions(),
		StatePath:  DefaultStateFile,
		LogLevel:   DefaultLogLevel,
		Serve: ServeConfig{
			Addr:        DefaultAddr,
			ReadTimeout: DefaultReadTimeout,
			MaxBody:     DefaultMaxBody,
		},
	}
}

func defaultMap() map[string]interface{} {
	return map[string]interface{}{
		"indent":             DefaultIndent,
		"output":             DefaultOutput,
		"suffix":             DefaultSuffix,
		"format":             DefaultFormat,
		"extensions":         DefaultExtensions(),
		"jobs":               0,
		"state_path":         DefaultStateFile,
		"log_level":          DefaultLogLevel,
		"verbose":            false,
		"serve.addr":         DefaultAddr,
		"serve.read_timeout": DefaultReadTimeout.String(),
		"serve.max_body":     DefaultMaxBody,
	}
}

// Package config provides configuration management for js2py.
//
// Configuration is layered with koanf. Precedence, highest first:
// flags > JS2PY_* environment variables > js2py.yaml > defaults.
package config

import "time"

// Config holds all configuration options.
type Config struct {
	Indent     int         `koanf:"indent"`
	Output     string      `koanf:"output"` // file or stdout
	Suffix     string      `koanf:"suffix"`
	Format     string      `koanf:"format"` // auto, text, markdown or json
	Extensions []string    `koanf:"extensions"`
	Jobs       int         `koanf:"jobs"`
	StatePath  string      `koanf:"state_path"`
	LogLevel   string      `koanf:"log_level"`
	Verbose    bool        `koanf:"verbose"`
	Serve      ServeConfig `koanf:"serve"`

	// ProjectRoot is the directory relative paths resolve against.
	ProjectRoot string `koanf:"-"`
	// ConfigFile is the config file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// ServeConfig holds configuration for the HTTP translation service.
type ServeConfig struct {
	Addr        string        `koanf:"addr"`
	ReadTimeout time.Duration `koanf:"read_timeout"`
	MaxBody     int64         `koanf:"max_body"`
}

// Output destinations.
const (
	OutputFile   = "file"
	OutputStdout = "stdout"
)

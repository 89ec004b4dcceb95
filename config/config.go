// Package config loads the settings of the logfn generator.
//
// Settings are read from `.logfn.yaml`, `.logfn.yml` or `.logfn.toml` in the working directory,
// or from the file named by the LOGFN_CONFIG environment variable. The format follows the file
// extension. Every setting is optional:
//
//	mode: direct            # or suspending
//	source_tag: logfnsrc
//	output_suffix: _logfn
//	facade:
//	  import: github.com/arloliu/go-logfn/logger
//	  name: logger
//	outcome_types: [Result]
//	concurrency: 4
//	log_level: info
//
// The LOGFN_MODE environment variable overrides mode.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/go-logfn/generator"
	"github.com/arloliu/go-logfn/logger"
	"github.com/arloliu/go-logfn/wrap"
)

// Environment variables read by LoadDefault and Load.
const (
	EnvConfig = "LOGFN_CONFIG"
	EnvMode   = "LOGFN_MODE"
)

// FileNames are the config file names looked up by Discover, in order.
var FileNames = []string{".logfn.yaml", ".logfn.yml", ".logfn.toml"}

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid config")
)

// Config holds the generator settings.
type Config struct {
	Mode         string   `yaml:"mode" toml:"mode"`
	SourceTag    string   `yaml:"source_tag" toml:"source_tag"`
	OutputSuffix string   `yaml:"output_suffix" toml:"output_suffix"`
	Facade       Facade   `yaml:"facade" toml:"facade"`
	OutcomeTypes []string `yaml:"outcome_types" toml:"outcome_types"`
	Concurrency  int      `yaml:"concurrency" toml:"concurrency"`
	LogLevel     string   `yaml:"log_level" toml:"log_level"`

	// path is the file the config was loaded from, empty for defaults.
	path string
}

// Facade names the logger package generated code calls.
type Facade struct {
	Import string `yaml:"import" toml:"import"`
	Name   string `yaml:"name" toml:"name"`
}

// Default returns the default settings with environment overrides applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnv()

	return cfg
}

// Load reads the config file at path. Missing settings get their defaults.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{path: path}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		// an empty document decodes to io.EOF
		if err := dec.Decode(cfg); err != nil && len(bytes.TrimSpace(content)) > 0 {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w %s: unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w %q, expected .yaml, .yml or .toml", ErrUnsupportedFormat, filepath.Ext(path))
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Discover returns the path of the first config file in dir, see FileNames.
func Discover(dir string) (string, bool) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}

	return "", false
}

// LoadDefault loads the file named by LOGFN_CONFIG, else the config file discovered in dir, else
// the defaults.
func LoadDefault(dir string) (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}
	if path, ok := Discover(dir); ok {
		return Load(path)
	}

	return Default(), nil
}

// Path returns the file the config was loaded from, empty for defaults.
func (c *Config) Path() string {
	return c.path
}

func (c *Config) applyDefaults() {
	if c.Mode == "" {
		c.Mode = wrap.ModeDirect
	}
	if c.SourceTag == "" {
		c.SourceTag = generator.DefaultSourceTag
	}
	if c.OutputSuffix == "" {
		c.OutputSuffix = generator.DefaultSuffix
	}
	if c.Facade.Import == "" {
		c.Facade.Import = generator.DefaultFacadeImport
		if c.Facade.Name == "" {
			c.Facade.Name = generator.DefaultFacadeName
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = logger.InfoLevel.String()
	}
}

func (c *Config) applyEnv() {
	if mode := os.Getenv(EnvMode); mode != "" {
		c.Mode = mode
	}
}

// Validate checks the settings by building generator options from them.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	if _, err := generator.New(c.Options()...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Level returns the parsed log level, InfoLevel when invalid.
func (c *Config) Level() logger.Level {
	lv, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.InfoLevel
	}

	return lv
}

// Options returns the generator options for the settings.
func (c *Config) Options() []generator.Option {
	opts := []generator.Option{
		generator.WithMode(c.Mode),
		generator.WithSourceTag(c.SourceTag),
		generator.WithSuffix(c.OutputSuffix),
		generator.WithFacade(c.Facade.Import, c.Facade.Name),
		generator.WithConcurrency(c.Concurrency),
	}
	if len(c.OutcomeTypes) > 0 {
		opts = append(opts, generator.WithOutcomeTypes(c.OutcomeTypes...))
	}

	return opts
}

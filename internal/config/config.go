// Package config loads compiler settings from an sfc.yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-sfc/internal/log"
	"github.com/grindlemire/go-sfc/internal/sfcgen"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "sfc.yaml"

	// DefaultExtension is appended to a source file name to name its output.
	DefaultExtension = ".js"

	ScopeBindings = "bindings"
	ScopeMembers  = "members"

	WhitespaceCondense = "condense"
	WhitespacePreserve = "preserve"
)

// Config is the contents of sfc.yaml.
type Config struct {
	// Runtime is the module render helpers are imported from.
	Runtime string `yaml:"runtime,omitempty"`

	// Scope is "bindings" or "members".
	Scope string `yaml:"scope,omitempty"`

	// Whitespace is "condense" or "preserve".
	Whitespace string `yaml:"whitespace,omitempty"`

	// StrictBlocks rejects repeated <template> or <script> blocks.
	StrictBlocks bool `yaml:"strictBlocks,omitempty"`

	CustomElements CustomElementsConfig `yaml:"customElements,omitempty"`
	Output         OutputConfig         `yaml:"output,omitempty"`

	// Jobs bounds concurrent compilations. Zero means one per CPU.
	Jobs int `yaml:"jobs,omitempty"`

	configPath string
}

// CustomElementsConfig selects the custom element policy. At most one
// field may be set.
type CustomElementsConfig struct {
	// Tag is a single tag name treated as a custom element.
	Tag string `yaml:"tag,omitempty"`

	// Pattern is a regular expression matched against tag names.
	Pattern string `yaml:"pattern,omitempty"`
}

// OutputConfig controls where compiled modules are written.
type OutputConfig struct {
	// Dir is the output directory. Empty writes next to the source.
	Dir string `yaml:"dir,omitempty"`

	// Extension is appended to the source file name.
	Extension string `yaml:"extension,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads sfc.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. A missing
// file is reported with an error matching fs.ErrNotExist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.configPath = path
	log.Config("loaded %s", path)
	return cfg, nil
}

// Parse decodes YAML configuration, applies defaults and validates the
// result. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Runtime == "" {
		c.Runtime = sfcgen.DefaultRuntime
	}
	if c.Scope == "" {
		c.Scope = ScopeBindings
	}
	if c.Whitespace == "" {
		c.Whitespace = WhitespaceCondense
	}
	if c.Output.Extension == "" {
		c.Output.Extension = DefaultExtension
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Scope {
	case ScopeBindings, ScopeMembers:
	default:
		return fmt.Errorf("scope must be %q or %q, got %q", ScopeBindings, ScopeMembers, c.Scope)
	}
	switch c.Whitespace {
	case WhitespaceCondense, WhitespacePreserve:
	default:
		return fmt.Errorf("whitespace must be %q or %q, got %q", WhitespaceCondense, WhitespacePreserve, c.Whitespace)
	}
	if c.CustomElements.Tag != "" && c.CustomElements.Pattern != "" {
		return errors.New("customElements: set either tag or pattern, not both")
	}
	if c.CustomElements.Pattern != "" {
		if _, err := sfcgen.NewPatternCustomElement(c.CustomElements.Pattern); err != nil {
			return fmt.Errorf("customElements: %w", err)
		}
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	return nil
}

// Options converts the configuration into compiler options.
func (c *Config) Options() (sfcgen.Options, error) {
	if err := c.Validate(); err != nil {
		return sfcgen.Options{}, err
	}
	opts := sfcgen.Options{
		Runtime:      c.Runtime,
		StrictBlocks: c.StrictBlocks,
	}
	if c.Scope == ScopeMembers {
		opts.Scope = sfcgen.ScopeMembers
	}
	if c.Whitespace == WhitespacePreserve {
		opts.Whitespace = sfcgen.WhitespacePreserve
	}
	switch {
	case c.CustomElements.Tag != "":
		opts.CustomElement = sfcgen.ExactCustomElement(c.CustomElements.Tag)
	case c.CustomElements.Pattern != "":
		p, err := sfcgen.NewPatternCustomElement(c.CustomElements.Pattern)
		if err != nil {
			return sfcgen.Options{}, err
		}
		opts.CustomElement = p
	default:
		opts.CustomElement = sfcgen.NoCustomElements{}
	}
	return opts, nil
}

// OutputPath returns where the module compiled from src is written.
func (c *Config) OutputPath(src string) string {
	name := filepath.Base(src) + c.Output.Extension
	if c.Output.Dir == "" {
		return filepath.Join(filepath.Dir(src), name)
	}
	return filepath.Join(c.Output.Dir, name)
}

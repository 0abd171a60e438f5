// ============================================================================
// chime - expression language
// ============================================================================
//
// Package:     config
// Description: Typed configuration loaded from TOML or YAML files
// Created:     2026-10-02
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/RonaldDijks/chime/foundation/chime/evaluator"
	"github.com/RonaldDijks/chime/foundation/chime/token"
	mdwerror "github.com/RonaldDijks/chime/foundation/core/error"
	mdwlog "github.com/RonaldDijks/chime/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "CHIME_CONFIG"

// Scope modes of the REPL
const (
	ScopeSession = "session"
	ScopeLine    = "line"
)

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	REPL      REPLConfig      `toml:"repl" yaml:"repl"`
	Evaluator EvaluatorConfig `toml:"evaluator" yaml:"evaluator"`

	// Path of the file the config was loaded from, empty for defaults
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// REPLConfig holds settings of the interactive front ends
type REPLConfig struct {
	Prompt         string `toml:"prompt" yaml:"prompt"`
	ShowAST        bool   `toml:"show_ast" yaml:"show_ast"`
	Scope          string `toml:"scope" yaml:"scope"`
	MaxInputLength int    `toml:"max_input_length" yaml:"max_input_length"`
}

// EvaluatorConfig holds bindings seeded into every new scope
type EvaluatorConfig struct {
	Bindings map[string]interface{} `toml:"bindings" yaml:"bindings"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format follows
// the extension; anything but .yaml and .yml is read as TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.Newf("config file not found: %s", path).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Load")
	}

	var cfg Config
	if err := decode(path, &cfg); err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.Path = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func decode(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, cfg)
	default:
		_, err := toml.DecodeFile(path, cfg)
		return err
	}
}

// SearchPaths returns the locations LoadFromEnv tries when CHIME_CONFIG
// is unset, in order
func SearchPaths() []string {
	paths := []string{
		"./chime.toml",
		"./configs/chime.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "chime", "config.toml"))
	}
	return paths
}

// LoadFromEnv loads the file named by CHIME_CONFIG, or the first existing
// file of SearchPaths. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "> "
	}
	if c.REPL.Scope == "" {
		c.REPL.Scope = ScopeSession
	}
	if c.REPL.MaxInputLength == 0 {
		c.REPL.MaxInputLength = 4096
	}
}

// Validate checks every setting and reports the first problem found
func (c *Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return mdwerror.Newf(format, args...).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("path", c.Path)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level: %v", err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format: %v", err)
	}

	switch c.REPL.Scope {
	case ScopeSession, ScopeLine:
	default:
		return invalid("repl.scope: must be %q or %q, got %q", ScopeSession, ScopeLine, c.REPL.Scope)
	}
	if c.REPL.MaxInputLength < 0 {
		return invalid("repl.max_input_length: must not be negative, got %d", c.REPL.MaxInputLength)
	}

	for _, name := range c.bindingNames() {
		if !isIdentifier(name) {
			return invalid("evaluator.bindings: %q is not a valid identifier", name)
		}
		if _, err := toValue(c.Evaluator.Bindings[name]); err != nil {
			return invalid("evaluator.bindings.%s: %v", name, err)
		}
	}

	return nil
}

// EvaluatorBindings converts the configured bindings to runtime values
func (c *Config) EvaluatorBindings() (map[string]evaluator.Value, error) {
	bindings := make(map[string]evaluator.Value, len(c.Evaluator.Bindings))
	for _, name := range c.bindingNames() {
		v, err := toValue(c.Evaluator.Bindings[name])
		if err != nil {
			return nil, mdwerror.Wrap(err, "evaluator.bindings."+name).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.EvaluatorBindings")
		}
		bindings[name] = v
	}
	return bindings, nil
}

func (c *Config) bindingNames() []string {
	names := make([]string, 0, len(c.Evaluator.Bindings))
	for name := range c.Evaluator.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// toValue accepts the numeric and boolean types produced by the TOML and
// YAML decoders
func toValue(raw interface{}) (evaluator.Value, error) {
	switch v := raw.(type) {
	case bool:
		return evaluator.Bool(v), nil
	case float64:
		return evaluator.Float(v), nil
	case int:
		return evaluator.Float(float64(v)), nil
	case int64:
		return evaluator.Float(float64(v)), nil
	default:
		return nil, mdwerror.Newf("unsupported value %v of type %T, want a number or a boolean", raw, raw)
	}
}

// isIdentifier reports whether name lexes as a single chime identifier
func isIdentifier(name string) bool {
	if name == "" || token.IsKeyword(name) {
		return false
	}
	for i, r := range name {
		if i == 0 && !unicode.IsLetter(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RonaldDijks/chime/foundation/chime/evaluator"
	mdwerror "github.com/RonaldDijks/chime/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.REPL.Prompt != "> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, "> ")
	}
	if cfg.REPL.Scope != ScopeSession {
		t.Errorf("REPL.Scope = %v, want %v", cfg.REPL.Scope, ScopeSession)
	}
	if cfg.REPL.MaxInputLength != 4096 {
		t.Errorf("REPL.MaxInputLength = %v, want 4096", cfg.REPL.MaxInputLength)
	}
	if cfg.REPL.ShowAST {
		t.Error("REPL.ShowAST should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid, got %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "chime.toml", `
[general]
log_level = "debug"
log_format = "json"

[repl]
prompt = "chime> "
show_ast = true
scope = "line"

[evaluator.bindings]
pi = 3.5
answer = 42
debug = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Path != path {
		t.Errorf("Path = %v, want %v", cfg.Path, path)
	}
	if cfg.General.LogLevel != "debug" || cfg.General.LogFormat != "json" {
		t.Errorf("General = %+v", cfg.General)
	}
	if cfg.REPL.Prompt != "chime> " || !cfg.REPL.ShowAST || cfg.REPL.Scope != ScopeLine {
		t.Errorf("REPL = %+v", cfg.REPL)
	}
	if cfg.REPL.MaxInputLength != 4096 {
		t.Errorf("REPL.MaxInputLength = %v, want default 4096", cfg.REPL.MaxInputLength)
	}

	bindings, err := cfg.EvaluatorBindings()
	if err != nil {
		t.Fatalf("EvaluatorBindings() error = %v", err)
	}
	want := map[string]evaluator.Value{
		"pi":     evaluator.Float(3.5),
		"answer": evaluator.Float(42),
		"debug":  evaluator.Bool(true),
	}
	if len(bindings) != len(want) {
		t.Fatalf("EvaluatorBindings() = %v, want %v", bindings, want)
	}
	for name, v := range want {
		if bindings[name] != v {
			t.Errorf("bindings[%s] = %v, want %v", name, bindings[name], v)
		}
	}
}

func TestLoad_YAML(t *testing.T) {
	for _, ext := range []string{"yaml", "yml"} {
		t.Run(ext, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "chime."+ext, `
general:
  log_level: info
repl:
  max_input_length: 128
evaluator:
  bindings:
    half: 0.5
    count: 3
`)

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.General.LogLevel != "info" {
				t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
			}
			if cfg.REPL.MaxInputLength != 128 {
				t.Errorf("REPL.MaxInputLength = %v, want 128", cfg.REPL.MaxInputLength)
			}

			bindings, err := cfg.EvaluatorBindings()
			if err != nil {
				t.Fatalf("EvaluatorBindings() error = %v", err)
			}
			if bindings["half"] != evaluator.Float(0.5) || bindings["count"] != evaluator.Float(3) {
				t.Errorf("EvaluatorBindings() = %v", bindings)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		wantCode mdwerror.Code
	}{
		{"missing file", filepath.Join(dir, "missing.toml"), mdwerror.CodeNotFound},
		{"malformed toml", writeFile(t, dir, "bad.toml", "[repl\nprompt = "), mdwerror.CodeConfigError},
		{"malformed yaml", writeFile(t, dir, "bad.yaml", "repl: [unterminated"), mdwerror.CodeConfigError},
		{"unknown scope", writeFile(t, dir, "scope.toml", "[repl]\nscope = \"global\""), mdwerror.CodeInvalidConfig},
		{"negative length", writeFile(t, dir, "len.toml", "[repl]\nmax_input_length = -1"), mdwerror.CodeInvalidConfig},
		{"bad log level", writeFile(t, dir, "level.toml", "[general]\nlog_level = \"loud\""), mdwerror.CodeInvalidConfig},
		{"bad log format", writeFile(t, dir, "format.toml", "[general]\nlog_format = \"xml\""), mdwerror.CodeInvalidConfig},
		{"string binding", writeFile(t, dir, "str.toml", "[evaluator.bindings]\nname = \"x\""), mdwerror.CodeInvalidConfig},
		{"keyword binding", writeFile(t, dir, "kw.toml", "[evaluator.bindings]\nlet = 1"), mdwerror.CodeInvalidConfig},
		{"non identifier binding", writeFile(t, dir, "ident.toml", "[evaluator.bindings]\n\"2x\" = 1"), mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path)
			if err == nil {
				t.Fatalf("Load() = %+v, want error", cfg)
			}
			if got := mdwerror.GetCode(err); got != tt.wantCode {
				t.Errorf("GetCode() = %v, want %v (%v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.toml", "[repl]\nprompt = \"env> \"")

	t.Setenv(EnvConfigPath, path)
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.REPL.Prompt != "env> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, "env> ")
	}

	t.Setenv(EnvConfigPath, filepath.Join(dir, "nope.toml"))
	if _, err := LoadFromEnv(); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Expected CodeNotFound for a missing CHIME_CONFIG file, got %v", err)
	}
}

func TestLoadFromEnv_SearchPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", dir)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Expected defaults without a file, got config from %s", cfg.Path)
	}

	writeFile(t, dir, filepath.Join(".config", "chime", "config.toml"), "[repl]\nprompt = \"home> \"")
	cfg, err = LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.REPL.Prompt != "home> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, "home> ")
	}

	writeFile(t, dir, filepath.Join("configs", "chime.toml"), "[repl]\nprompt = \"configs> \"")
	cfg, err = LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.REPL.Prompt != "configs> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, "configs> ")
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"pi", true},
		{"x2", true},
		{"größe", true},
		{"", false},
		{"2x", false},
		{"a_b", false},
		{"true", false},
		{"let", false},
	}

	for _, tt := range tests {
		if got := isIdentifier(tt.name); got != tt.want {
			t.Errorf("isIdentifier(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.UI.SyntaxThemeOrDefault(); got != "github-dark" {
		t.Errorf("default theme = %q, want github-dark", got)
	}
	if got := cfg.Log.LevelOrDefault(); got != "info" {
		t.Errorf("default log level = %q, want info", got)
	}
}

func TestLoad_ReadsTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\nsyntax_theme = \"dracula\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.UI.SyntaxThemeOrDefault(); got != "dracula" {
		t.Errorf("theme = %q, want dracula", got)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

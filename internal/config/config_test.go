package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `version: 1
generator:
  base_url: "https://quiz.example.com"
  api_key_env: "QUIZKIT_API_KEY"
ui:
  mode: live
  no_color: true
`

func writeConfig(t *testing.T, dir string, contents string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("version: 1\nbogus: true\n"))
	if err == nil {
		t.Fatalf("expected unknown field to fail parsing")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("error does not name the bad field: %v", err)
	}
}

func TestParseRejectsMultipleDocuments(t *testing.T) {
	_, err := Parse([]byte("version: 1\n---\nversion: 2\n"))
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multi-document error, got %v", err)
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := Config{Version: 1}
	cfg.Generator.BaseURL = "  https://quiz.example.com  "
	Normalize(&cfg)
	if cfg.Generator.BaseURL != "https://quiz.example.com" {
		t.Fatalf("base url not trimmed: %q", cfg.Generator.BaseURL)
	}
	if cfg.Generator.APIKeyEnv != DefaultAPIKeyEnv {
		t.Fatalf("api key env default = %q", cfg.Generator.APIKeyEnv)
	}
	if cfg.UI.Mode != UIModeAuto {
		t.Fatalf("ui mode default = %q", cfg.UI.Mode)
	}
}

func TestValidateCollectsIssues(t *testing.T) {
	cfg := Config{}
	Normalize(&cfg)
	cfg.UI.Mode = "fancy"

	// Missing version, missing base url, bad ui mode.
	err := Validate(&cfg)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %v", len(verr.Issues), verr)
	}
}

func TestValidateRejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"ftp://quiz.example.com", "quiz.example.com", "https://"} {
		cfg := Config{Version: 1}
		cfg.Generator.BaseURL = raw
		Normalize(&cfg)
		if err := Validate(&cfg); err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := writeConfig(t, t.TempDir(), validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Generator.BaseURL != "https://quiz.example.com" {
		t.Fatalf("unexpected base url %q", cfg.Generator.BaseURL)
	}
	if cfg.UI.Mode != UIModeLive || !cfg.UI.NoColor {
		t.Fatalf("unexpected ui config %+v", cfg.UI)
	}
}

func TestAPIKeyReadsNamedVariable(t *testing.T) {
	t.Setenv("QUIZKIT_TEST_KEY", "sk-test")
	cfg := Config{}
	cfg.Generator.APIKeyEnv = "QUIZKIT_TEST_KEY"
	if got := cfg.APIKey(); got != "sk-test" {
		t.Fatalf("APIKey = %q", got)
	}
}

func TestFindConfigPathSearchesUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := writeConfig(t, root, validConfig)

	got, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != want {
		t.Fatalf("found %q, want %q", got, want)
	}
}

func TestFindConfigPathReportsMissing(t *testing.T) {
	_, err := FindConfigPath(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), ConfigFileName) {
		t.Fatalf("expected missing-config error, got %v", err)
	}
}

func TestScaffoldWritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := Scaffold(path); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffolded config: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("unexpected version %d", cfg.Version)
	}
	if err := Scaffold(path); err == nil {
		t.Fatalf("expected second scaffold to refuse overwrite")
	}
}

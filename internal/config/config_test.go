package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/amonks/propdemo/alias"
	"github.com/amonks/propdemo/internal/config"
	"github.com/amonks/propdemo/internal/testsupport"
)

func writeGlobalConfig(t *testing.T, homeDir, content string) {
	t.Helper()

	configDir := filepath.Join(homeDir, ".config", "propdemo")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	policy, err := cfg.Policy()
	if err != nil {
		t.Fatalf("unexpected policy error: %v", err)
	}
	if policy != alias.DefaultPolicy {
		t.Errorf("policy = %q, expected %q", policy, alias.DefaultPolicy)
	}
	if cfg.Separator() != "." {
		t.Errorf("separator = %q, expected %q", cfg.Separator(), ".")
	}
	if len(cfg.Properties) != 0 {
		t.Errorf("expected no properties, got %v", cfg.Properties)
	}
}

func TestLoad_Full(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	configContent := `
[selector]
policy = "separator"
separator = ":"

[properties]
myapp.output-charset = "ISO-8859-1"
"myapp.verbose" = true
myapp.max-thread-pool-size = 8
myapp.locales = ["en", "de"]

[properties.server]
port = 8080
`

	if err := os.WriteFile(filepath.Join(tmpDir, "propdemo.toml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	policy, err := cfg.Policy()
	if err != nil {
		t.Fatalf("unexpected policy error: %v", err)
	}
	if policy != alias.PolicySeparator {
		t.Errorf("policy = %q, expected %q", policy, alias.PolicySeparator)
	}
	if cfg.Separator() != ":" {
		t.Errorf("separator = %q, expected %q", cfg.Separator(), ":")
	}

	expected := map[string]string{
		"myapp.output-charset":       "ISO-8859-1",
		"myapp.verbose":              "true",
		"myapp.max-thread-pool-size": "8",
		"myapp.locales":              "en,de",
		"server.port":                "8080",
	}
	if !reflect.DeepEqual(cfg.Properties, expected) {
		t.Fatalf("properties = %v, expected %v", cfg.Properties, expected)
	}

	names := cfg.PropertyNames()
	if names[0] != "myapp.locales" || names[len(names)-1] != "server.port" {
		t.Fatalf("expected sorted property names, got %v", names)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	configContent := `this is not valid toml [`

	if err := os.WriteFile(filepath.Join(tmpDir, "propdemo.toml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := config.Load(tmpDir)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestLoad_UnknownPolicy(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(tmpDir, "propdemo.toml"), []byte("[selector]\npolicy = \"shortest\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	_, err = cfg.Policy()
	if !errors.Is(err, alias.ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}

func TestLoad_UsesGlobalWhenProjectMissing(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[selector]
policy = "all"

[properties]
myapp.output-charset = "global"
`)

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Selector.Policy != "all" {
		t.Errorf("Policy = %q, expected %q", cfg.Selector.Policy, "all")
	}
	if cfg.Properties["myapp.output-charset"] != "global" {
		t.Errorf("expected global property, got %v", cfg.Properties)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[selector]
policy = "all"
separator = ":"

[properties]
myapp.output-charset = "global"
myapp.verbose = "global"
`)

	projectContent := `
[selector]
policy = "sorted-last"

[properties]
myapp.output-charset = "project"
`

	repoDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(repoDir, "propdemo.toml"), []byte(projectContent), 0o644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}

	cfg, err := config.Load(repoDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Selector.Policy != "sorted-last" {
		t.Errorf("Policy = %q, expected %q", cfg.Selector.Policy, "sorted-last")
	}
	if cfg.Selector.Separator != ":" {
		t.Errorf("Separator = %q, expected %q", cfg.Selector.Separator, ":")
	}
	if cfg.Properties["myapp.output-charset"] != "project" {
		t.Errorf("expected project property to win, got %v", cfg.Properties)
	}
	if cfg.Properties["myapp.verbose"] != "global" {
		t.Errorf("expected global property to merge in, got %v", cfg.Properties)
	}
}

func TestLoad_ProjectEmptyOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[selector]
policy = "all"
separator = ":"
`)

	projectContent := `
[selector]
policy = ""
separator = ""
`

	repoDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(repoDir, "propdemo.toml"), []byte(projectContent), 0o644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}

	cfg, err := config.Load(repoDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Selector.Policy != "" {
		t.Errorf("Policy = %q, expected empty string", cfg.Selector.Policy)
	}
	if cfg.Separator() != alias.DefaultSeparator {
		t.Errorf("Separator() = %q, expected default", cfg.Separator())
	}
}

func TestLoadPath_RequiresFile(t *testing.T) {
	testsupport.SetupTestHome(t)

	_, err := config.LoadPath(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadPath_ReadsFile(t *testing.T) {
	testsupport.SetupTestHome(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[selector]\npolicy = \"all\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.LoadPath(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Selector.Policy != "all" {
		t.Errorf("Policy = %q, expected %q", cfg.Selector.Policy, "all")
	}
}

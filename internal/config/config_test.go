package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Handlers.Groups) != 0 {
		t.Errorf("expected empty group selection, got %d", len(cfg.Handlers.Groups))
	}

	if cfg.Output.JSON {
		t.Error("expected JSON output to default to false")
	}

	if cfg.Output.TitleCase {
		t.Error("expected title casing to default to false")
	}

	// An empty selection enables the whole catalog.
	if len(cfg.EnabledGroups()) == 0 {
		t.Error("expected EnabledGroups to fall back to the full catalog")
	}
}

func TestEnableGroup(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.EnableGroup("year"); err != nil {
		t.Fatalf("failed to enable group: %v", err)
	}

	if len(cfg.Handlers.Groups) != 1 {
		t.Errorf("expected 1 enabled group, got %d", len(cfg.Handlers.Groups))
	}

	if cfg.Handlers.Groups[0] != "year" {
		t.Errorf("expected group year, got %s", cfg.Handlers.Groups[0])
	}

	// Explicit selection replaces the catalog fallback.
	if len(cfg.EnabledGroups()) != 1 {
		t.Errorf("expected 1 group from EnabledGroups, got %d", len(cfg.EnabledGroups()))
	}

	// Try to enable duplicate
	if err := cfg.EnableGroup("year"); err == nil {
		t.Error("expected error when enabling duplicate group")
	}

	// Try to enable unknown group
	if err := cfg.EnableGroup("nonsense"); err == nil {
		t.Error("expected error when enabling unknown group")
	}
}

func TestDisableGroup(t *testing.T) {
	cfg := DefaultConfig()

	cfg.EnableGroup("year")
	if err := cfg.DisableGroup("year"); err != nil {
		t.Fatalf("failed to disable group: %v", err)
	}
	if len(cfg.Handlers.Groups) != 0 {
		t.Error("expected empty selection after disabling")
	}

	// Try to disable a group that is not enabled
	if err := cfg.DisableGroup("year"); err == nil {
		t.Error("expected error when disabling group that is not enabled")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()

	// Empty selection is valid (means: everything)
	if err := cfg.Validate(); err != nil {
		t.Errorf("validation failed with default config: %v", err)
	}

	cfg.Handlers.Groups = []string{"year", "resolution"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validation failed with valid groups: %v", err)
	}

	cfg.Handlers.Groups = []string{"nonsense"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation to fail with unknown group")
	}
}

func TestReportDir(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ReportDir() == "" {
		t.Error("expected a non-empty default report directory")
	}

	cfg.Reports.Directory = "/custom/reports"
	if cfg.ReportDir() != "/custom/reports" {
		t.Errorf("expected configured directory, got %s", cfg.ReportDir())
	}
}

func TestSaveAndLoad(t *testing.T) {
	// Skip this test for now - would require mocking ConfigPath
	// We'll test Save/Load functionality in integration tests
	t.Skip("Skipping Save/Load test - requires mocking")
}

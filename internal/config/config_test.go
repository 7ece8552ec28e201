package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_GetCasesPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				CasesPath:   "cases",
				Flags:       Flags{},
			},
			expected: "cases",
		},
		{
			name: "with cases path flag",
			config: &Config{
				ProjectPath: "/project",
				CasesPath:   "cases",
				Flags: Flags{
					CasesPath: "fixtures",
				},
			},
			expected: "/project/fixtures",
		},
		{
			name: "absolute cases path",
			config: &Config{
				ProjectPath: "/project",
				CasesPath:   "cases",
				Flags: Flags{
					CasesPath: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetCasesPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_CasePaths(t *testing.T) {
	cfg := New()
	paths := cfg.CasePaths("/cases/group-a/case-1")

	if paths.Original != filepath.Join("/cases/group-a/case-1", cfg.CaseFiles.Original) {
		t.Errorf("unexpected original path: %s", paths.Original)
	}
	if paths.Expected != filepath.Join("/cases/group-a/case-1", cfg.CaseFiles.Expected) {
		t.Errorf("unexpected expected path: %s", paths.Expected)
	}
	if paths.Actual != filepath.Join("/cases/group-a/case-1", cfg.CaseFiles.Actual) {
		t.Errorf("unexpected actual path: %s", paths.Actual)
	}
	if paths.Settings != filepath.Join("/cases/group-a/case-1", cfg.CaseFiles.Settings) {
		t.Errorf("unexpected settings path: %s", paths.Settings)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.Workers != DefaultWorkers {
		t.Errorf("expected Workers %d, got %d", DefaultWorkers, cfg.Workers)
	}

	if cfg.RootLabel != DefaultRootLabel {
		t.Errorf("expected RootLabel %s, got %s", DefaultRootLabel, cfg.RootLabel)
	}

	names := cfg.CaseFiles.Names()
	if len(names) != 4 {
		t.Fatalf("expected 4 case file names, got %d", len(names))
	}

	if cfg.DefaultProvider != DefaultProvider {
		t.Errorf("expected DefaultProvider %s, got %s", DefaultProvider, cfg.DefaultProvider)
	}
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("SMT_CASES_PATH", "fixtures")
	t.Setenv("SMT_WORKERS", "12")
	t.Setenv("SMT_MUTATOR", "replace")

	cfg := New()
	if cfg.CasesPath != "fixtures" {
		t.Errorf("expected env cases path, got %s", cfg.CasesPath)
	}
	if cfg.Workers != 12 {
		t.Errorf("expected env worker count, got %d", cfg.Workers)
	}
	if cfg.DefaultProvider != "replace" {
		t.Errorf("expected env default provider, got %s", cfg.DefaultProvider)
	}
}

func TestLoad_FlagOverrides(t *testing.T) {
	cfg := Load(Flags{Workers: 8, Includes: []string{"group-a"}})

	if cfg.Workers != 8 {
		t.Errorf("expected flag to override workers, got %d", cfg.Workers)
	}
	if len(cfg.Flags.Includes) != 1 {
		t.Errorf("expected includes carried through, got %v", cfg.Flags.Includes)
	}

	// Zero worker flag keeps the default.
	cfg = Load(Flags{})
	if cfg.Workers != DefaultWorkers {
		t.Errorf("expected default workers, got %d", cfg.Workers)
	}
}

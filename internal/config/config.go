package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"smt/internal/domain"
)

// CaseFiles names the role files that make a directory a leaf case.
type CaseFiles struct {
	Original string
	Expected string
	Actual   string
	Settings string
}

// Names returns the role file names in a fixed order.
func (cf CaseFiles) Names() []string {
	return []string{cf.Original, cf.Expected, cf.Actual, cf.Settings}
}

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	CasesPath   string
	RootLabel   string

	// Role file names within a case directory
	CaseFiles CaseFiles

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Workers int

	// DefaultProvider is the mutation provider name used for cases whose
	// settings omit one
	DefaultProvider string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Workers      int
	CasesPath    string
	Includes     []string
	Accept       bool
	FailFast     bool
	OpenFailures bool
}

// New creates a new Config with defaults, overridden by environment
// variables (a .env file in the project dir is honored if present).
func New() *Config {
	cfg := &Config{
		ProjectPath: DefaultProjectPath,
		CasesPath:   DefaultCasesPath,
		RootLabel:   DefaultRootLabel,
		CaseFiles: CaseFiles{
			Original: DefaultOriginalFile,
			Expected: DefaultExpectedFile,
			Actual:   DefaultActualFile,
			Settings: DefaultSettingsFile,
		},
		OutputJSONFile:  DefaultOutputJSONFile,
		OutputJSONDir:   DefaultOutputJSONDir,
		Workers:         DefaultWorkers,
		DefaultProvider: DefaultProvider,
		Flags:           Flags{Workers: DefaultWorkers},
	}
	cfg.applyEnv()
	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	// Apply flag overrides
	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}

	return cfg
}

// applyEnv overrides defaults from the environment. The .env file might not
// exist, that's okay - plain environment variables still apply.
func (c *Config) applyEnv() {
	_ = godotenv.Load(filepath.Join(c.ProjectPath, ".env"))

	if v := os.Getenv("SMT_CASES_PATH"); v != "" {
		c.CasesPath = v
	}
	if v := os.Getenv("SMT_ROOT_LABEL"); v != "" {
		c.RootLabel = v
	}
	if v := os.Getenv("SMT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Workers = n
		}
	}
	if v := os.Getenv("SMT_MUTATOR"); v != "" {
		c.DefaultProvider = v
	}
}

// GetCasesPath returns the case root directory, using the flag if provided.
func (c *Config) GetCasesPath() string {
	path := c.CasesPath
	if c.Flags.CasesPath != "" {
		path = c.Flags.CasesPath
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectPath, path)
}

// GetOutputPath returns the full path to the output JSON file. Resolves to an
// absolute path so run and failures always read/write the same file
// regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// CasePaths resolves the role file paths for one case directory.
func (c *Config) CasePaths(dir string) domain.CasePaths {
	return domain.CasePaths{
		Original: filepath.Join(dir, c.CaseFiles.Original),
		Expected: filepath.Join(dir, c.CaseFiles.Expected),
		Actual:   filepath.Join(dir, c.CaseFiles.Actual),
		Settings: filepath.Join(dir, c.CaseFiles.Settings),
	}
}

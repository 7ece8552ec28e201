package domain

// CasePaths holds the resolved file paths for one leaf case. It is built
// right before the case runner is invoked and not retained afterwards.
type CasePaths struct {
	Original string // input artifact fed to the mutation provider
	Expected string // recorded expectation the candidate is compared against
	Actual   string // where the produced candidate is written
	Settings string // per-case settings file
}

// CaseSettings is the parsed per-case settings file.
type CaseSettings struct {
	// Provider selects the mutation provider by registered name.
	// Empty means the identity provider.
	Provider string `yaml:"provider"`

	// Command is the argv for the command provider. The original artifact is
	// piped to stdin, the candidate is read from stdout.
	Command []string `yaml:"command,omitempty"`

	// Env holds extra environment variables for the command provider.
	Env map[string]string `yaml:"env,omitempty"`

	// Replacements are applied in order by the replace provider.
	Replacements []Replacement `yaml:"replacements,omitempty"`
}

// Replacement is one literal find/replace rule.
type Replacement struct {
	Find    string `yaml:"find"`
	Replace string `yaml:"replace"`
}

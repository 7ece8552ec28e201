package cli

import "smt/internal/config"

// Flags holds command-line flags
type Flags struct {
	Workers      int
	CasesPath    string
	Includes     []string
	Accept       bool
	FailFast     bool
	OpenFailures bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:      f.Workers,
		CasesPath:    f.CasesPath,
		Includes:     f.Includes,
		Accept:       f.Accept,
		FailFast:     f.FailFast,
		OpenFailures: f.OpenFailures,
	}
}

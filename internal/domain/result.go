package domain

import "time"

// CaseStatus is the outcome of one registered case.
type CaseStatus string

const (
	StatusPassed  CaseStatus = "passed"
	StatusFailed  CaseStatus = "failed"
	StatusSkipped CaseStatus = "skipped"
)

// CaseResult represents the result of executing (or skipping) a single case.
type CaseResult struct {
	QualifiedName string        // root-to-case labels joined with "/"
	Label         string        // case display name
	Dir           string        // case directory
	Status        CaseStatus
	Message       string        // failure message, including the diff excerpt
	Duration      time.Duration // time taken by the runner, zero for skipped cases
}

// CaseFailure is one failed case as persisted in the results file.
type CaseFailure struct {
	QualifiedName string `json:"qualified_name"`
	Dir           string `json:"dir"`
	Message       string `json:"message"`
	Resolved      bool   `json:"resolved,omitempty"` // marked resolved in the failures viewer
}

// RunMeta contains metadata about one harness run.
type RunMeta struct {
	TotalCases      int      `json:"total_cases"`
	PassedCases     int      `json:"passed_cases"`
	FailedCases     int      `json:"failed_cases"`
	SkippedCases    int      `json:"skipped_cases"`
	Duration        string   `json:"duration"`
	DurationSeconds float64  `json:"duration_seconds"`
	Workers         int      `json:"workers"`
	Includes        []string `json:"includes,omitempty"`
	Accept          bool     `json:"accept,omitempty"`
	Timestamp       string   `json:"timestamp"`
}

// RunOutput is the complete persisted output of one run.
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []CaseFailure `json:"details"`
}

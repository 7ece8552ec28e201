package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"smt/internal/domain"
)

// Save writes run results to the configured JSON output file.
func (s *JSONStorage) Save(results []domain.CaseResult, duration time.Duration, workers int, includes []string, accept bool) error {
	var passed, failed, skipped int
	var failures []domain.CaseFailure
	for _, r := range results {
		switch r.Status {
		case domain.StatusPassed:
			passed++
		case domain.StatusFailed:
			failed++
			failures = append(failures, domain.CaseFailure{
				QualifiedName: r.QualifiedName,
				Dir:           r.Dir,
				Message:       r.Message,
			})
		case domain.StatusSkipped:
			skipped++
		}
	}

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalCases:      len(results),
			PassedCases:     passed,
			FailedCases:     failed,
			SkippedCases:    skipped,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Workers:         workers,
			Includes:        includes,
			Accept:          accept,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: failures,
	}
	return s.SaveOutput(&output)
}

// Load reads the last run results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

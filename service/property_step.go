package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spring-tools/bootready/domain"
	"github.com/spring-tools/bootready/internal/config"
	"github.com/spring-tools/bootready/internal/scanner"
)

// PropertyStep scans the configuration resources for deprecated property
// prefixes. Every occurrence is a WARN; the step always ends with a PASS
// confirming the scan itself completed.
type PropertyStep struct {
	checks   []config.PropertyCheck
	verify   config.VerifyConfig
	progress domain.ProgressManager
}

// NewPropertyStep creates the configuration property scan
func NewPropertyStep(checks []config.PropertyCheck, verify config.VerifyConfig, progress domain.ProgressManager) *PropertyStep {
	return &PropertyStep{checks: checks, verify: verify, progress: progress}
}

// Name returns the step name
func (s *PropertyStep) Name() string {
	return "deprecated properties"
}

// Run scans the conventional resources directory
func (s *PropertyStep) Run(ctx context.Context, project *domain.Project) ([]domain.Finding, error) {
	patterns := make([]scanner.Pattern, 0, len(s.checks))
	for _, check := range s.checks {
		patterns = append(patterns, scanner.Pattern{ID: check.Pattern, Text: check.Pattern})
	}

	root := filepath.Join(project.Dir, project.ResourcesDir)
	opts := scanner.Options{
		Extensions:       []string{".properties", ".yml", ".yaml"},
		ExcludeDirs:      s.verify.ExcludeDirs,
		RespectGitignore: s.verify.RespectGitignore,
		Concurrency:      s.verify.Concurrency,
	}

	task := s.progress.StartTask("scanning properties", scanner.New(root, opts).CountFiles())
	defer task.Complete()

	opts.OnFile = func() { task.Increment(1) }
	sc := scanner.New(root, opts)

	results, err := sc.Scan(ctx, patterns)
	if err != nil {
		return nil, err
	}

	var findings []domain.Finding
	for _, check := range s.checks {
		for _, match := range results[check.Pattern] {
			findings = append(findings, domain.Finding{
				Step:           s.Name(),
				Classification: domain.ClassWarn,
				Message:        fmt.Sprintf("deprecated property '%s'", check.Pattern),
				Detail:         check.Message,
				Location:       fmt.Sprintf("%s:%d", filepath.Join(project.ResourcesDir, match.Path), match.Line),
			})
		}
	}

	// The completion PASS is unconditional: it confirms the scan ran even
	// when deprecated properties were found.
	findings = append(findings, domain.Finding{
		Step:           s.Name(),
		Classification: domain.ClassPass,
		Message:        "configuration property scan complete",
	})

	return findings, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/spring-tools/bootready/domain"
	"github.com/spring-tools/bootready/internal/buildtool"
	"github.com/spring-tools/bootready/internal/config"
)

// DependencyStep scans the build manifests for deprecated dependency
// coordinates (WARN) and for migration-bridge artifacts (BRIDGE). The two
// tables are independent; a bridge is "in progress", not a problem.
type DependencyStep struct {
	deprecated []config.DependencyCheck
	bridges    []config.DependencyCheck
}

// NewDependencyStep creates the manifest dependency scan
func NewDependencyStep(checks config.ChecksConfig) *DependencyStep {
	return &DependencyStep{
		deprecated: checks.DeprecatedDependencies,
		bridges:    checks.Bridges,
	}
}

// Name returns the step name
func (s *DependencyStep) Name() string {
	return "dependencies"
}

// Run searches every manifest for each table entry
func (s *DependencyStep) Run(_ context.Context, project *domain.Project) ([]domain.Finding, error) {
	var findings []domain.Finding

	for _, check := range s.deprecated {
		matches, err := buildtool.FindDependency(project, check.Pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			findings = append(findings, domain.Finding{
				Step:           s.Name(),
				Classification: domain.ClassWarn,
				Message:        fmt.Sprintf("deprecated dependency '%s' found", check.Pattern),
				Detail:         check.Message,
				Location:       match.Manifest,
			})
		}
	}

	for _, check := range s.bridges {
		matches, err := buildtool.FindDependency(project, check.Pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			findings = append(findings, domain.Finding{
				Step:           s.Name(),
				Classification: domain.ClassBridge,
				Message:        fmt.Sprintf("migration bridge '%s' in use", check.Pattern),
				Detail:         check.Message,
				Location:       match.Manifest,
			})
		}
	}

	return findings, nil
}

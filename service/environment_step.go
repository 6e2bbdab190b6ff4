package service

import (
	"context"
	"fmt"

	"github.com/spring-tools/bootready/domain"
	"github.com/spring-tools/bootready/internal/config"
	"github.com/spring-tools/bootready/internal/javaenv"
)

// EnvironmentStep checks the installed Java runtime against the minimum and
// recommended major versions. The two checks are independent: the minimum is
// binding (FAIL below), the recommendation is advisory (WARN below).
type EnvironmentStep struct {
	prober javaenv.Prober
	java   config.JavaConfig
}

// NewEnvironmentStep creates the Java runtime check
func NewEnvironmentStep(prober javaenv.Prober, java config.JavaConfig) *EnvironmentStep {
	return &EnvironmentStep{prober: prober, java: java}
}

// Name returns the step name
func (s *EnvironmentStep) Name() string {
	return "java version"
}

// Run probes the runtime and classifies both thresholds
func (s *EnvironmentStep) Run(ctx context.Context, _ *domain.Project) ([]domain.Finding, error) {
	major, err := s.prober.MajorVersion(ctx)
	if err != nil {
		return []domain.Finding{{
			Step:           s.Name(),
			Classification: domain.ClassFail,
			Message:        "unable to determine the installed Java version",
			Detail:         err.Error(),
		}}, nil
	}

	var findings []domain.Finding

	if major >= s.java.MinMajor {
		findings = append(findings, domain.Finding{
			Step:           s.Name(),
			Classification: domain.ClassPass,
			Message:        fmt.Sprintf("Java %d meets the minimum (Java %d)", major, s.java.MinMajor),
		})
	} else {
		findings = append(findings, domain.Finding{
			Step:           s.Name(),
			Classification: domain.ClassFail,
			Message:        fmt.Sprintf("Java %d is below the minimum (Java %d)", major, s.java.MinMajor),
			Detail:         fmt.Sprintf("install Java %d or newer before upgrading", s.java.MinMajor),
		})
	}

	if major >= s.java.RecommendedMajor {
		findings = append(findings, domain.Finding{
			Step:           s.Name(),
			Classification: domain.ClassPass,
			Message:        fmt.Sprintf("Java %d meets the recommendation (Java %d)", major, s.java.RecommendedMajor),
		})
	} else {
		findings = append(findings, domain.Finding{
			Step:           s.Name(),
			Classification: domain.ClassWarn,
			Message:        fmt.Sprintf("Java %d is below the recommended Java %d", major, s.java.RecommendedMajor),
			Detail:         "newer LTS releases get the best Spring Boot 4 support",
		})
	}

	return findings, nil
}

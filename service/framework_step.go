package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/spring-tools/bootready/domain"
	"github.com/spring-tools/bootready/internal/buildtool"
	"github.com/spring-tools/bootready/internal/config"
)

// FrameworkStep checks the Spring Boot version declared in the build
// manifest: PASS on the target line, WARN on the ready prior-minor line,
// FAIL on anything older.
type FrameworkStep struct {
	boot config.SpringBootConfig
}

// NewFrameworkStep creates the declared framework version check
func NewFrameworkStep(boot config.SpringBootConfig) *FrameworkStep {
	return &FrameworkStep{boot: boot}
}

// Name returns the step name
func (s *FrameworkStep) Name() string {
	return "spring boot version"
}

// Run extracts the declared version and classifies it
func (s *FrameworkStep) Run(_ context.Context, project *domain.Project) ([]domain.Finding, error) {
	version, err := buildtool.SpringBootVersion(project)
	if err != nil {
		return []domain.Finding{{
			Step:           s.Name(),
			Classification: domain.ClassFail,
			Message:        "no Spring Boot version declared in the build manifest",
			Detail:         err.Error(),
		}}, nil
	}

	switch {
	case strings.HasPrefix(version, s.boot.TargetPrefix):
		return []domain.Finding{{
			Step:           s.Name(),
			Classification: domain.ClassPass,
			Message:        fmt.Sprintf("Spring Boot %s declared", version),
		}}, nil

	case strings.HasPrefix(version, s.boot.ReadyPrefix):
		return []domain.Finding{{
			Step:           s.Name(),
			Classification: domain.ClassWarn,
			Message:        fmt.Sprintf("Spring Boot %s declared; ready for the %sx upgrade", version, s.boot.TargetPrefix),
		}}, nil

	default:
		return []domain.Finding{{
			Step:           s.Name(),
			Classification: domain.ClassFail,
			Message:        fmt.Sprintf("Spring Boot %s declared; upgrade to the latest %sx release first", version, s.boot.ReadyPrefix),
		}}, nil
	}
}

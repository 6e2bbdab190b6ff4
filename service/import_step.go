package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spring-tools/bootready/domain"
	"github.com/spring-tools/bootready/internal/config"
	"github.com/spring-tools/bootready/internal/scanner"
)

// ImportStep scans the Java sources for deprecated import statements. The
// scan root spans the main and test trees: annotations like @MockBean only
// appear in test code. Each table entry reports a WARN per matching line;
// entries with an explicit PASS branch emit a PASS when the pattern is
// absent.
type ImportStep struct {
	checks   []config.ImportCheck
	verify   config.VerifyConfig
	progress domain.ProgressManager
}

// NewImportStep creates the source import scan
func NewImportStep(checks []config.ImportCheck, verify config.VerifyConfig, progress domain.ProgressManager) *ImportStep {
	return &ImportStep{checks: checks, verify: verify, progress: progress}
}

// Name returns the step name
func (s *ImportStep) Name() string {
	return "deprecated imports"
}

// Run scans the conventional source tree in one pass over the files
func (s *ImportStep) Run(ctx context.Context, project *domain.Project) ([]domain.Finding, error) {
	patterns := make([]scanner.Pattern, 0, len(s.checks))
	for _, check := range s.checks {
		patterns = append(patterns, scanner.Pattern{
			ID:         check.Pattern,
			Text:       check.Pattern,
			Exclusions: check.Exclusions,
		})
	}

	root := filepath.Join(project.Dir, project.SourceDir)
	opts := scanner.Options{
		Extensions:       []string{".java"},
		ExcludeDirs:      s.verify.ExcludeDirs,
		RespectGitignore: s.verify.RespectGitignore,
		Concurrency:      s.verify.Concurrency,
	}

	task := s.progress.StartTask("scanning imports", scanner.New(root, opts).CountFiles())
	defer task.Complete()

	opts.OnFile = func() { task.Increment(1) }
	sc := scanner.New(root, opts)

	results, err := sc.Scan(ctx, patterns)
	if err != nil {
		return nil, err
	}

	var findings []domain.Finding
	for _, check := range s.checks {
		matches := results[check.Pattern]

		if len(matches) == 0 {
			if check.PassWhenAbsent {
				findings = append(findings, domain.Finding{
					Step:           s.Name(),
					Classification: domain.ClassPass,
					Message:        check.PassMessage,
				})
			}
			continue
		}

		for _, match := range matches {
			findings = append(findings, domain.Finding{
				Step:           s.Name(),
				Classification: domain.ClassWarn,
				Message:        fmt.Sprintf("deprecated import '%s'", check.Pattern),
				Detail:         check.Message,
				Location:       fmt.Sprintf("%s:%d", filepath.Join(project.SourceDir, match.Path), match.Line),
			})
		}
	}

	return findings, nil
}

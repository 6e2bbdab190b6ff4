package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spring-tools/bootready/domain"
)

// SequentialRunner executes steps in order and folds every finding into the
// tally. A step error never aborts the run: it becomes a FAIL finding and the
// next step still executes, so one broken probe cannot hide the rest of the
// report.
type SequentialRunner struct {
	logger *slog.Logger
}

// NewStepRunner creates a sequential step runner
func NewStepRunner(logger *slog.Logger) *SequentialRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SequentialRunner{logger: logger}
}

// Run executes the steps in order
func (r *SequentialRunner) Run(ctx context.Context, project *domain.Project, steps []domain.Step) ([]domain.Finding, domain.Tally) {
	var all []domain.Finding
	var tally domain.Tally

	for _, step := range steps {
		r.logger.Debug("running step", "step", step.Name())

		findings, err := step.Run(ctx, project)
		if err != nil {
			r.logger.Warn("step failed", "step", step.Name(), "error", err)
			findings = []domain.Finding{{
				Step:           step.Name(),
				Classification: domain.ClassFail,
				Message:        fmt.Sprintf("%s check could not run", step.Name()),
				Detail:         err.Error(),
			}}
		}

		for _, finding := range findings {
			tally.Add(finding.Classification)
		}
		all = append(all, findings...)

		r.logger.Debug("step finished", "step", step.Name(), "findings", len(findings))
	}

	return all, tally
}

package service

import (
	"context"

	"github.com/spring-tools/bootready/domain"
)

// ReminderStep emits the unconditional manual verification reminder. Static
// checks cannot prove the application starts, so the run always carries one
// WARN pointing at the startup smoke test.
type ReminderStep struct{}

// NewReminderStep creates the manual verification reminder
func NewReminderStep() *ReminderStep {
	return &ReminderStep{}
}

// Name returns the step name
func (s *ReminderStep) Name() string {
	return "manual verification"
}

// Run always returns the startup reminder
func (s *ReminderStep) Run(_ context.Context, _ *domain.Project) ([]domain.Finding, error) {
	return []domain.Finding{{
		Step:           s.Name(),
		Classification: domain.ClassWarn,
		Message:        "manual startup verification required",
		Detail:         "start the application, confirm the log is error-free, check the health endpoint, then stop it",
	}}, nil
}

package service

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spring-tools/bootready/domain"
)

// CommandRunner executes a build command in a project directory. Extracted so
// tests can stub the build tool.
type CommandRunner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
}

// ExecRunner runs commands through the OS
type ExecRunner struct{}

// Run executes the command with output discarded; only the exit status matters
func (ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %s", err, lastLine(out))
	}
	return nil
}

func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	return lines[len(lines)-1]
}

// BuildStep runs the opt-in compile and test hooks through the project's own
// build command. Both hooks are disabled by default; when disabled the step
// records an INFO finding so the skip is visible without affecting the tally.
type BuildStep struct {
	runBuild bool
	runTests bool
	runner   CommandRunner
}

// NewBuildStep creates the opt-in build verification hooks
func NewBuildStep(runBuild, runTests bool, runner CommandRunner) *BuildStep {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &BuildStep{runBuild: runBuild, runTests: runTests, runner: runner}
}

// Name returns the step name
func (s *BuildStep) Name() string {
	return "build hooks"
}

// Run executes the enabled hooks with the detected build command
func (s *BuildStep) Run(ctx context.Context, project *domain.Project) ([]domain.Finding, error) {
	if !s.runBuild && !s.runTests {
		return []domain.Finding{{
			Step:           s.Name(),
			Classification: domain.ClassInfo,
			Message:        "compile and test hooks skipped (enable with --run-build / --run-tests)",
		}}, nil
	}

	var findings []domain.Finding
	if s.runBuild {
		findings = append(findings, s.execute(ctx, project, "compile", compileGoal(project.BuildTool)))
	}
	if s.runTests {
		findings = append(findings, s.execute(ctx, project, "test", "test"))
	}
	return findings, nil
}

func (s *BuildStep) execute(ctx context.Context, project *domain.Project, label, goal string) domain.Finding {
	if err := s.runner.Run(ctx, project.Dir, project.BuildCommand, goal); err != nil {
		return domain.Finding{
			Step:           s.Name(),
			Classification: domain.ClassFail,
			Message:        fmt.Sprintf("%s failed (%s %s)", label, project.BuildCommand, goal),
			Detail:         err.Error(),
		}
	}
	return domain.Finding{
		Step:           s.Name(),
		Classification: domain.ClassPass,
		Message:        fmt.Sprintf("%s succeeded (%s %s)", label, project.BuildCommand, goal),
	}
}

func compileGoal(tool domain.BuildTool) string {
	if tool == domain.BuildToolGradle {
		return "compileJava"
	}
	return "compile"
}

package service

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/spring-tools/bootready/domain"
)

// NewProgressManager returns a bar-rendering manager when progress is wanted
// and the environment can display it, and a no-op manager otherwise. Bars go
// to stderr so they never mix with report output on stdout.
func NewProgressManager(enabled bool) domain.ProgressManager {
	if enabled && IsInteractiveEnvironment() {
		return &barProgress{}
	}
	return &NoOpProgressManager{}
}

// IsInteractiveEnvironment reports whether progress bars can be rendered:
// stderr must be a terminal and the process must not run under CI.
func IsInteractiveEnvironment() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// barProgress renders one progressbar per scan task
type barProgress struct {
	tasks []*progressbar.ProgressBar
}

func (pm *barProgress) StartTask(description string, total int) domain.TaskProgress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(24),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	pm.tasks = append(pm.tasks, bar)
	return &barTask{bar: bar}
}

func (pm *barProgress) IsInteractive() bool {
	return true
}

// Close finishes any task a step left running
func (pm *barProgress) Close() {
	for _, bar := range pm.tasks {
		_ = bar.Finish()
	}
	pm.tasks = nil
}

type barTask struct {
	bar *progressbar.ProgressBar
}

func (tp *barTask) Increment(n int) {
	_ = tp.bar.Add(n)
}

func (tp *barTask) Complete() {
	_ = tp.bar.Finish()
}

// NoOpProgressManager discards all progress reporting. Used for JSON/YAML
// output, CI, and non-terminal runs.
type NoOpProgressManager struct{}

// StartTask returns a no-op task progress
func (pm *NoOpProgressManager) StartTask(_ string, _ int) domain.TaskProgress {
	return &noopTask{}
}

// IsInteractive returns false for no-op manager
func (pm *NoOpProgressManager) IsInteractive() bool {
	return false
}

// Close is a no-op
func (pm *NoOpProgressManager) Close() {}

type noopTask struct{}

func (tp *noopTask) Increment(_ int) {}

func (tp *noopTask) Complete() {}

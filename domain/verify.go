package domain

import (
	"context"
	"io"
)

// Classification is the tag attached to a single finding
type Classification string

const (
	// ClassPass marks a condition that was explicitly confirmed satisfied
	ClassPass Classification = "pass"

	// ClassFail marks a condition incompatible with Spring Boot 4 that must
	// be fixed before the project is ready
	ClassFail Classification = "fail"

	// ClassWarn marks an advisory condition that should be reviewed but does
	// not block readiness on its own
	ClassWarn Classification = "warn"

	// ClassBridge marks use of a temporary compatibility dependency; the
	// migration is in progress rather than broken
	ClassBridge Classification = "bridge"

	// ClassInfo marks informational output; it is not counted in the tally
	ClassInfo Classification = "info"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// BuildTool identifies the build system detected in the project directory
type BuildTool string

const (
	BuildToolMaven  BuildTool = "maven"
	BuildToolGradle BuildTool = "gradle"
)

// Verdict is the overall outcome derived from the final tally
type Verdict string

const (
	// VerdictReady means no failures and no active bridges
	VerdictReady Verdict = "ready"

	// VerdictInProgress means no failures but at least one migration bridge
	// is still active
	VerdictInProgress Verdict = "in_progress"

	// VerdictIncomplete means at least one check failed
	VerdictIncomplete Verdict = "incomplete"
)

// Finding is a single classified result emitted by a verification step
type Finding struct {
	// Step is the name of the step that produced the finding
	Step string `json:"step" yaml:"step"`

	// Classification is the PASS/FAIL/WARN/BRIDGE/INFO tag
	Classification Classification `json:"classification" yaml:"classification"`

	// Message is the human-readable description
	Message string `json:"message" yaml:"message"`

	// Detail carries remediation guidance, if any
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`

	// Location is a file (or file:line) reference when the finding points at
	// a concrete place in the project
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

// Tally holds the four counters accumulated over a run
type Tally struct {
	Pass   int `json:"pass" yaml:"pass"`
	Fail   int `json:"fail" yaml:"fail"`
	Warn   int `json:"warn" yaml:"warn"`
	Bridge int `json:"bridge" yaml:"bridge"`
}

// Add increments the counter matching the classification. INFO findings are
// not counted.
func (t *Tally) Add(c Classification) {
	switch c {
	case ClassPass:
		t.Pass++
	case ClassFail:
		t.Fail++
	case ClassWarn:
		t.Warn++
	case ClassBridge:
		t.Bridge++
	}
}

// Total returns the number of classified findings
func (t *Tally) Total() int {
	return t.Pass + t.Fail + t.Warn + t.Bridge
}

// Verdict derives the overall outcome from the counters
func (t *Tally) Verdict() Verdict {
	if t.Fail > 0 {
		return VerdictIncomplete
	}
	if t.Bridge > 0 {
		return VerdictInProgress
	}
	return VerdictReady
}

// Project describes the project under verification. It is assembled once by
// build-tool detection and passed read-only to every step.
type Project struct {
	// Dir is the project root directory
	Dir string `json:"dir" yaml:"dir"`

	// BuildTool is the detected build system
	BuildTool BuildTool `json:"build_tool" yaml:"build_tool"`

	// BuildCommand is the wrapper script or global binary used to invoke the
	// build (display and opt-in build hooks only)
	BuildCommand string `json:"build_command" yaml:"build_command"`

	// Manifests are the build files found in the project root
	Manifests []string `json:"manifests" yaml:"manifests"`

	// SourceDir is the conventional source tree, relative to Dir
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// ResourcesDir is the conventional configuration directory, relative to Dir
	ResourcesDir string `json:"resources_dir" yaml:"resources_dir"`
}

// VerifyRequest represents a request to verify a project directory
type VerifyRequest struct {
	// Path is the project root to inspect
	Path string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	ShowDetails  bool

	// Opt-in hooks, disabled by default
	RunBuild bool
	RunTests bool

	// Configuration
	ConfigPath string
}

// VerifyResponse is the complete result of a verification run
type VerifyResponse struct {
	// Project is the detected project description
	Project Project `json:"project" yaml:"project"`

	// Findings are all classified results in emission order
	Findings []Finding `json:"findings" yaml:"findings"`

	// Summary holds the four counters
	Summary Tally `json:"summary" yaml:"summary"`

	// Verdict is the overall outcome
	Verdict Verdict `json:"verdict" yaml:"verdict"`

	// Metadata
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	DurationMs  int64  `json:"duration_ms" yaml:"duration_ms"`
	Version     string `json:"version" yaml:"version"`
}

// Step is a single independent inspection. Steps never abort the run: a
// non-nil error is recorded as a FAIL finding by the runner, and execution
// continues with the next step.
type Step interface {
	// Name returns the step name used for section headers and Finding.Step
	Name() string

	// Run inspects the project and returns classified findings
	Run(ctx context.Context, project *Project) ([]Finding, error)
}

// StepRunner executes an ordered list of steps and folds their findings
type StepRunner interface {
	Run(ctx context.Context, project *Project, steps []Step) ([]Finding, Tally)
}

// OutputFormatter writes a verification response in a given format
type OutputFormatter interface {
	Write(response *VerifyResponse, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader loads verification configuration
type ConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*VerifyRequest, error)

	// LoadDefaultConfig loads the default configuration
	LoadDefaultConfig() *VerifyRequest
}

// ProgressManager creates progress tasks for long-running scans
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress
	IsInteractive() bool
	Close()
}

// TaskProgress tracks progress of a single task
type TaskProgress interface {
	Increment(n int)
	Complete()
}

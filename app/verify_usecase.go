package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spring-tools/bootready/domain"
	"github.com/spring-tools/bootready/internal/buildtool"
	"github.com/spring-tools/bootready/internal/config"
	"github.com/spring-tools/bootready/internal/javaenv"
	"github.com/spring-tools/bootready/internal/version"
	"github.com/spring-tools/bootready/service"
)

// VerifyUseCase orchestrates a full verification run: configuration loading,
// build tool detection, step execution and output.
type VerifyUseCase struct {
	formatter domain.OutputFormatter
	runner    domain.StepRunner
	progress  domain.ProgressManager
	prober    javaenv.Prober
	buildHook service.CommandRunner
	logger    *slog.Logger
}

// VerifyUseCaseBuilder assembles a VerifyUseCase with optional overrides;
// every dependency left unset falls back to the production implementation.
type VerifyUseCaseBuilder struct {
	uc VerifyUseCase
}

// NewVerifyUseCaseBuilder creates a new builder
func NewVerifyUseCaseBuilder() *VerifyUseCaseBuilder {
	return &VerifyUseCaseBuilder{}
}

// WithFormatter sets the output formatter
func (b *VerifyUseCaseBuilder) WithFormatter(f domain.OutputFormatter) *VerifyUseCaseBuilder {
	b.uc.formatter = f
	return b
}

// WithRunner sets the step runner
func (b *VerifyUseCaseBuilder) WithRunner(r domain.StepRunner) *VerifyUseCaseBuilder {
	b.uc.runner = r
	return b
}

// WithProgress sets the progress manager
func (b *VerifyUseCaseBuilder) WithProgress(p domain.ProgressManager) *VerifyUseCaseBuilder {
	b.uc.progress = p
	return b
}

// WithProber sets the Java runtime prober
func (b *VerifyUseCaseBuilder) WithProber(p javaenv.Prober) *VerifyUseCaseBuilder {
	b.uc.prober = p
	return b
}

// WithBuildHook sets the command runner used by the opt-in build hooks
func (b *VerifyUseCaseBuilder) WithBuildHook(r service.CommandRunner) *VerifyUseCaseBuilder {
	b.uc.buildHook = r
	return b
}

// WithLogger sets the logger
func (b *VerifyUseCaseBuilder) WithLogger(l *slog.Logger) *VerifyUseCaseBuilder {
	b.uc.logger = l
	return b
}

// Build creates the VerifyUseCase with the configured dependencies
func (b *VerifyUseCaseBuilder) Build() *VerifyUseCase {
	uc := b.uc
	if uc.logger == nil {
		uc.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if uc.progress == nil {
		uc.progress = service.NewProgressManager(false)
	}
	if uc.runner == nil {
		uc.runner = service.NewStepRunner(uc.logger)
	}
	if uc.prober == nil {
		uc.prober = javaenv.NewProber()
	}
	if uc.buildHook == nil {
		uc.buildHook = service.ExecRunner{}
	}
	return &uc
}

// Execute performs the complete verification workflow. The returned response
// carries the tally the caller maps to an exit code; a non-nil error means
// the run itself could not proceed (bad input, no build tool, output failure).
func (uc *VerifyUseCase) Execute(ctx context.Context, req domain.VerifyRequest) (*domain.VerifyResponse, error) {
	start := time.Now()

	if req.Path == "" {
		return nil, domain.NewInvalidInputError("no project path specified", nil)
	}

	cfg, err := config.LoadConfigWithTarget(req.ConfigPath, req.Path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration", err)
	}

	// Detection is the single fatal check: without a build tool there is no
	// project to verify.
	project, err := buildtool.Detect(req.Path)
	if err != nil {
		return nil, err
	}
	project.SourceDir = cfg.Verify.SourceDir
	project.ResourcesDir = cfg.Verify.ResourcesDir

	uc.logger.Info("project detected",
		"dir", project.Dir,
		"build_tool", project.BuildTool,
		"build_command", project.BuildCommand)

	defer uc.progress.Close()

	runBuild := req.RunBuild || cfg.Checks.RunBuild
	runTests := req.RunTests || cfg.Checks.RunTests

	steps := []domain.Step{
		service.NewEnvironmentStep(uc.prober, cfg.Java),
		service.NewFrameworkStep(cfg.SpringBoot),
		service.NewDependencyStep(cfg.Checks),
		service.NewImportStep(cfg.Checks.DeprecatedImports, cfg.Verify, uc.progress),
		service.NewPropertyStep(cfg.Checks.DeprecatedProperties, cfg.Verify, uc.progress),
		service.NewRemovedStep(cfg.Verify),
		service.NewBuildStep(runBuild, runTests, uc.buildHook),
		service.NewReminderStep(),
	}

	findings, tally := uc.runner.Run(ctx, project, steps)

	response := &domain.VerifyResponse{
		Project:     *project,
		Findings:    findings,
		Summary:     tally,
		Verdict:     tally.Verdict(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		DurationMs:  time.Since(start).Milliseconds(),
		Version:     version.Version,
	}

	if uc.formatter != nil {
		format := req.OutputFormat
		if format == "" {
			format = domain.OutputFormat(cfg.Output.Format)
		}
		writer := req.OutputWriter
		if writer == nil {
			writer = os.Stdout
		}
		if err := uc.formatter.Write(response, format, writer); err != nil {
			return nil, domain.NewOutputError("failed to write output", err)
		}
	}

	return response, nil
}

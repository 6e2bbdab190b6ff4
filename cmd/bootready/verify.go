package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/spring-tools/bootready/app"
	"github.com/spring-tools/bootready/domain"
	"github.com/spring-tools/bootready/service"
)

// VerifyExitError carries an explicit process exit code through cobra
type VerifyExitError struct {
	Code    int
	Message string
}

func (e *VerifyExitError) Error() string {
	return e.Message
}

var (
	verifyConfigPath  string
	verifyFormat      string
	verifyJSON        bool
	verifyNoColor     bool
	verifyVerbose     bool
	verifyShowDetails bool
	verifyRunBuild    bool
	verifyRunTests    bool
)

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [path]",
		Short: "Check a project's Spring Boot 4 migration readiness",
		Long: `Run all readiness checks against a Maven or Gradle project.

Exit codes:
  0 - No failed checks
  1 - At least one check failed, or no build tool was detected
  2 - Tool error (bad configuration, output failure, etc.)

Examples:
  # Check the current directory
  bootready verify

  # Check a specific project
  bootready verify ~/work/shop-backend

  # JSON output for machine parsing
  bootready verify --json .

  # Also compile and run the test suite
  bootready verify --run-build --run-tests .`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runVerify,
		SilenceUsage:  true, // Don't print usage on errors (we handle our own output)
		SilenceErrors: true, // Don't print error messages (we handle our own output)
	}

	cmd.Flags().StringVarP(&verifyConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringVarP(&verifyFormat, "format", "f", "",
		"Output format: text, json, yaml")
	cmd.Flags().BoolVar(&verifyJSON, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().BoolVar(&verifyNoColor, "no-color", false,
		"Disable colored output")
	cmd.Flags().BoolVarP(&verifyVerbose, "verbose", "v", false,
		"Enable debug logging")
	cmd.Flags().BoolVarP(&verifyShowDetails, "details", "d", false,
		"Show remediation details under each finding")
	cmd.Flags().BoolVar(&verifyRunBuild, "run-build", false,
		"Also compile the project with its own build tool")
	cmd.Flags().BoolVar(&verifyRunTests, "run-tests", false,
		"Also run the project's test suite")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	format := domain.OutputFormat(verifyFormat)
	if verifyJSON {
		format = domain.OutputFormatJSON
	}
	if verifyNoColor || (format != "" && format != domain.OutputFormatText) {
		color.NoColor = true
	}

	logger := newLogger(verifyVerbose)

	uc := app.NewVerifyUseCaseBuilder().
		WithFormatter(service.NewOutputFormatter(verifyShowDetails)).
		WithProgress(service.NewProgressManager(format == "" || format == domain.OutputFormatText)).
		WithLogger(logger).
		Build()

	response, err := uc.Execute(cmd.Context(), domain.VerifyRequest{
		Path:         path,
		OutputFormat: format,
		OutputWriter: cmd.OutOrStdout(),
		ShowDetails:  verifyShowDetails,
		RunBuild:     verifyRunBuild,
		RunTests:     verifyRunTests,
		ConfigPath:   verifyConfigPath,
	})
	if err != nil {
		// A missing build tool is a verification verdict, not a tool error
		if domain.IsDetectionError(err) {
			return &VerifyExitError{Code: 1, Message: err.Error()}
		}
		return &VerifyExitError{Code: 2, Message: err.Error()}
	}

	if response.Summary.Fail > 0 {
		return &VerifyExitError{Code: 1, Message: ""}
	}
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
		NoColor:    verifyNoColor,
	}))
}

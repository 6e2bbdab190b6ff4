package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/spring-tools/bootready/domain"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct {
	// ShowDetails prints remediation detail lines under each text finding
	ShowDetails bool
}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter(showDetails bool) *OutputFormatterImpl {
	return &OutputFormatterImpl{ShowDetails: showDetails}
}

var classTags = map[domain.Classification]*color.Color{
	domain.ClassPass:   color.New(color.FgGreen),
	domain.ClassFail:   color.New(color.FgRed, color.Bold),
	domain.ClassWarn:   color.New(color.FgYellow),
	domain.ClassBridge: color.New(color.FgCyan),
	domain.ClassInfo:   color.New(color.FgWhite),
}

// Write writes the verification response in the specified format
func (f *OutputFormatterImpl) Write(response *domain.VerifyResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return writeJSON(writer, response)
	case domain.OutputFormatYAML:
		return writeYAML(writer, response)
	case domain.OutputFormatText:
		return f.writeText(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// writeJSON writes data as indented JSON to the writer
func writeJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func writeYAML(writer io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

func (f *OutputFormatterImpl) writeText(response *domain.VerifyResponse, writer io.Writer) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Spring Boot 4 readiness check: %s\n", response.Project.Dir))
	sb.WriteString(fmt.Sprintf("Build tool: %s (%s)\n", response.Project.BuildTool, response.Project.BuildCommand))

	currentStep := ""
	for _, finding := range response.Findings {
		if finding.Step != currentStep {
			currentStep = finding.Step
			sb.WriteString(fmt.Sprintf("\n--- %s ---\n", currentStep))
		}

		sb.WriteString(fmt.Sprintf("%s %s", formatTag(finding.Classification), finding.Message))
		if finding.Location != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", finding.Location))
		}
		sb.WriteString("\n")

		if f.ShowDetails && finding.Detail != "" {
			sb.WriteString(fmt.Sprintf("         %s\n", finding.Detail))
		}
	}

	sb.WriteString("\n=== Summary ===\n")
	sb.WriteString(fmt.Sprintf("Passed:  %d\n", response.Summary.Pass))
	sb.WriteString(fmt.Sprintf("Failed:  %d\n", response.Summary.Fail))
	sb.WriteString(fmt.Sprintf("Warnings: %d\n", response.Summary.Warn))
	sb.WriteString(fmt.Sprintf("Bridges: %d\n", response.Summary.Bridge))
	sb.WriteString("\n")
	sb.WriteString(verdictLine(response.Verdict, response.Summary))
	sb.WriteString("\n")

	if response.Summary.Warn > 0 {
		sb.WriteString("Review the warnings above before upgrading.\n")
	}

	_, err := io.WriteString(writer, sb.String())
	if err != nil {
		return domain.NewOutputError("failed to write text output", err)
	}
	return nil
}

func formatTag(c domain.Classification) string {
	tag := strings.ToUpper(string(c))
	if col, ok := classTags[c]; ok {
		return col.Sprintf("[%-6s]", tag)
	}
	return fmt.Sprintf("[%-6s]", tag)
}

func verdictLine(v domain.Verdict, tally domain.Tally) string {
	switch v {
	case domain.VerdictReady:
		return classTags[domain.ClassPass].Sprint("The project is ready for the Spring Boot 4 upgrade.")
	case domain.VerdictInProgress:
		return classTags[domain.ClassBridge].Sprintf(
			"Migration in progress: %d compatibility bridge(s) still active. Remove them before the final release.", tally.Bridge)
	default:
		return classTags[domain.ClassFail].Sprintf("Migration incomplete: %d check(s) failed. Fix the failures above.", tally.Fail)
	}
}

package javaenv

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// versionToken matches the quoted version in `java -version` output, e.g.
//
//	openjdk version "21.0.1" 2023-10-17
//	java version "1.8.0_392"
var versionToken = regexp.MustCompile(`version "([0-9][0-9._]*)"`)

// Prober reports the installed Java runtime's major version
type Prober interface {
	MajorVersion(ctx context.Context) (int, error)
}

// ExecProber probes the runtime by running `java -version`
type ExecProber struct {
	// Command overrides the java binary name, for tests
	Command string
}

// NewProber returns a prober backed by the java binary on PATH
func NewProber() *ExecProber {
	return &ExecProber{Command: "java"}
}

// MajorVersion runs the version-report command and parses the major version.
// The JVM prints version information to stderr.
func (p *ExecProber) MajorVersion(ctx context.Context) (int, error) {
	out, err := exec.CommandContext(ctx, p.Command, "-version").CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("failed to run %s -version: %w", p.Command, err)
	}
	return ParseMajor(string(out))
}

// ParseMajor extracts the Java major version from version-report output.
// Legacy `1.x` version strings map to major x.
func ParseMajor(output string) (int, error) {
	m := versionToken.FindStringSubmatch(output)
	if m == nil {
		return 0, fmt.Errorf("no version string in output: %q", strings.TrimSpace(output))
	}

	parts := strings.Split(strings.ReplaceAll(m[1], "_", "."), ".")
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", m[1], err)
	}

	if major == 1 && len(parts) > 1 {
		minor, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid legacy version %q: %w", m[1], err)
		}
		return minor, nil
	}

	return major, nil
}

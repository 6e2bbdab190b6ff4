package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Strictness selects a threshold preset for generated configuration
type Strictness string

const (
	// StrictnessStandard uses the default checks only
	StrictnessStandard Strictness = "standard"

	// StrictnessStrict additionally enables the compile and test hooks
	StrictnessStrict Strictness = "strict"
)

const configHeader = `# bootready configuration
# Readiness checks for the Spring Boot 3.x to 4.0 migration.
#
# All pattern tables are data-driven: add or remove entries without
# touching the tool. Patterns are literal substrings.
`

const minimalTemplate = `# bootready configuration (minimal)
java:
  min_major: 17
  recommended_major: 21

spring_boot:
  target_prefix: "4."
  ready_prefix: "3.5."

output:
  format: text
  color: auto
`

// GetMinimalConfigTemplate returns a small config with essential options only
func GetMinimalConfigTemplate() string {
	return minimalTemplate
}

// GetFullConfigTemplate renders the complete default configuration as
// documented YAML, adjusted for the chosen strictness.
func GetFullConfigTemplate(strictness Strictness) string {
	cfg := DefaultConfig()
	if strictness == StrictnessStrict {
		cfg.Checks.RunBuild = true
		cfg.Checks.RunTests = true
	}

	var sb strings.Builder
	sb.WriteString(configHeader)
	sb.WriteString("\n")

	out, err := yaml.Marshal(cfg)
	if err != nil {
		// DefaultConfig always marshals; keep the header usable regardless
		return sb.String() + fmt.Sprintf("# failed to render defaults: %v\n", err)
	}
	sb.Write(out)

	return sb.String()
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/spring-tools/bootready/internal/constants"
)

// Config represents the main configuration structure
type Config struct {
	// Verify holds scan configuration
	Verify VerifyConfig `json:"verify" mapstructure:"verify" yaml:"verify"`

	// Java holds runtime version thresholds
	Java JavaConfig `json:"java" mapstructure:"java" yaml:"java"`

	// SpringBoot holds framework version prefixes
	SpringBoot SpringBootConfig `json:"spring_boot" mapstructure:"spring_boot" yaml:"spring_boot"`

	// Checks holds the declarative pattern tables
	Checks ChecksConfig `json:"checks" mapstructure:"checks" yaml:"checks"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`
}

// VerifyConfig holds scan configuration
type VerifyConfig struct {
	// SourceDir is the source root, relative to the project root. It spans
	// the main and test trees so test-only imports are found too.
	SourceDir string `json:"source_dir" mapstructure:"source_dir" yaml:"source_dir"`

	// ResourcesDir is the conventional configuration directory
	ResourcesDir string `json:"resources_dir" mapstructure:"resources_dir" yaml:"resources_dir"`

	// ExcludeDirs are directory names skipped during scans
	ExcludeDirs []string `json:"exclude_dirs" mapstructure:"exclude_dirs" yaml:"exclude_dirs"`

	// RespectGitignore applies the project's .gitignore during scans
	RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore" yaml:"respect_gitignore"`

	// Concurrency bounds parallel file reads inside a scan (0 = NumCPU)
	Concurrency int `json:"concurrency" mapstructure:"concurrency" yaml:"concurrency"`
}

// JavaConfig holds runtime version thresholds
type JavaConfig struct {
	// MinMajor is the minimum supported Java major version (FAIL below)
	MinMajor int `json:"min_major" mapstructure:"min_major" yaml:"min_major"`

	// RecommendedMajor is the advisory Java major version (WARN below)
	RecommendedMajor int `json:"recommended_major" mapstructure:"recommended_major" yaml:"recommended_major"`
}

// SpringBootConfig holds framework version prefixes
type SpringBootConfig struct {
	// TargetPrefix is the major line being migrated to
	TargetPrefix string `json:"target_prefix" mapstructure:"target_prefix" yaml:"target_prefix"`

	// ReadyPrefix is the latest prior-minor line, ready for upgrade
	ReadyPrefix string `json:"ready_prefix" mapstructure:"ready_prefix" yaml:"ready_prefix"`
}

// DependencyCheck is one entry in a manifest pattern table
type DependencyCheck struct {
	// Pattern is the artifact coordinate substring to search for
	Pattern string `json:"pattern" mapstructure:"pattern" yaml:"pattern"`

	// Message describes the finding when the pattern is present
	Message string `json:"message" mapstructure:"message" yaml:"message"`
}

// ImportCheck is one entry in the source import pattern table
type ImportCheck struct {
	// Pattern is the import/package prefix to search for
	Pattern string `json:"pattern" mapstructure:"pattern" yaml:"pattern"`

	// Message describes the needed replacement
	Message string `json:"message" mapstructure:"message" yaml:"message"`

	// Exclusions suppress matches on lines that also contain these prefixes
	Exclusions []string `json:"exclusions,omitempty" mapstructure:"exclusions" yaml:"exclusions,omitempty"`

	// PassWhenAbsent emits an explicit PASS when the pattern is not found
	PassWhenAbsent bool `json:"pass_when_absent" mapstructure:"pass_when_absent" yaml:"pass_when_absent"`

	// PassMessage is the message for the PASS branch
	PassMessage string `json:"pass_message,omitempty" mapstructure:"pass_message" yaml:"pass_message,omitempty"`
}

// PropertyCheck is one entry in the configuration property pattern table
type PropertyCheck struct {
	// Pattern is the property name prefix to search for
	Pattern string `json:"pattern" mapstructure:"pattern" yaml:"pattern"`

	// Message describes the needed replacement
	Message string `json:"message" mapstructure:"message" yaml:"message"`
}

// ChecksConfig holds the declarative pattern tables and opt-in hooks
type ChecksConfig struct {
	// DeprecatedDependencies are manifest patterns reported as WARN
	DeprecatedDependencies []DependencyCheck `json:"deprecated_dependencies" mapstructure:"deprecated_dependencies" yaml:"deprecated_dependencies"`

	// Bridges are migration-bridge manifest patterns reported as BRIDGE
	Bridges []DependencyCheck `json:"bridges" mapstructure:"bridges" yaml:"bridges"`

	// DeprecatedImports are source import prefixes reported as WARN
	DeprecatedImports []ImportCheck `json:"deprecated_imports" mapstructure:"deprecated_imports" yaml:"deprecated_imports"`

	// DeprecatedProperties are configuration property prefixes reported as WARN
	DeprecatedProperties []PropertyCheck `json:"deprecated_properties" mapstructure:"deprecated_properties" yaml:"deprecated_properties"`

	// RunBuild enables the opt-in compile hook (disabled by default)
	RunBuild bool `json:"run_build" mapstructure:"run_build" yaml:"run_build"`

	// RunTests enables the opt-in test hook (disabled by default)
	RunTests bool `json:"run_tests" mapstructure:"run_tests" yaml:"run_tests"`
}

// OutputConfig holds output formatting configuration
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// Color controls colored text output: auto, always, never
	Color string `json:"color" mapstructure:"color" yaml:"color"`

	// ShowDetails controls whether remediation detail lines are printed
	ShowDetails bool `json:"show_details" mapstructure:"show_details" yaml:"show_details"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Verify: VerifyConfig{
			SourceDir:    constants.DefaultSourceDir,
			ResourcesDir: constants.DefaultResourcesDir,
			ExcludeDirs: []string{
				// Build outputs
				"target",
				"build",
				"out",
				// Wrapper and caches
				".gradle",
				".mvn",
				// Version control
				".git",
			},
			RespectGitignore: true,
			Concurrency:      0,
		},
		Java: JavaConfig{
			MinMajor:         constants.MinJavaMajor,
			RecommendedMajor: constants.RecommendedJavaMajor,
		},
		SpringBoot: SpringBootConfig{
			TargetPrefix: constants.TargetBootPrefix,
			ReadyPrefix:  constants.ReadyBootPrefix,
		},
		Checks: ChecksConfig{
			DeprecatedDependencies: []DependencyCheck{
				{
					Pattern: "spring-cloud-sleuth",
					Message: "Spring Cloud Sleuth is discontinued; use Micrometer Tracing",
				},
				{
					Pattern: "springfox",
					Message: "Springfox is unmaintained; use springdoc-openapi",
				},
				{
					Pattern: "spring-security-oauth2-autoconfigure",
					Message: "legacy Spring Security OAuth is unsupported; use Spring Security 7 OAuth2 support",
				},
				{
					Pattern: "spring-boot-properties-migrator",
					Message: "spring-boot-properties-migrator must be removed before release",
				},
			},
			Bridges: []DependencyCheck{
				{
					Pattern: "spring-boot-jackson2",
					Message: "Jackson 2 compatibility bridge is active",
				},
				{
					Pattern: "spring-boot-autoconfigure-classic",
					Message: "classic auto-configuration bridge is active",
				},
				{
					Pattern: "spring-boot-test-autoconfigure-classic",
					Message: "classic test auto-configuration bridge is active",
				},
			},
			DeprecatedImports: []ImportCheck{
				{
					Pattern: "com.fasterxml.jackson",
					Message: "Jackson 2 imports found; Spring Boot 4 uses Jackson 3 (tools.jackson)",
				},
				{
					Pattern: "org.springframework.lang.",
					Message: "Spring nullability annotations are deprecated; use JSpecify (org.jspecify.annotations)",
				},
				{
					Pattern:        "org.springframework.boot.test.mock.mockito",
					Message:        "@MockBean/@SpyBean are removed; use @MockitoBean/@MockitoSpyBean from org.springframework.test.context.bean.override.mockito",
					PassWhenAbsent: true,
					PassMessage:    "no removed @MockBean/@SpyBean imports found",
				},
				{
					Pattern: "org.springframework.boot.autoconfigure.domain.EntityScan",
					Message: "@EntityScan moved out of org.springframework.boot.autoconfigure.domain; update the import",
				},
				{
					Pattern: "import javax.",
					Message: "javax.* imports found; Jakarta EE namespaces (jakarta.*) are required",
					Exclusions: []string{
						"javax.crypto",
						"javax.net",
						"javax.naming",
						"javax.sql",
						"javax.security",
						"javax.management",
						"javax.imageio",
						"javax.sound",
						"javax.swing",
						"javax.xml",
					},
				},
			},
			DeprecatedProperties: []PropertyCheck{
				{
					Pattern: "spring.mvc.converters.preferred-json-mapper",
					Message: "spring.mvc.converters.preferred-json-mapper is removed in Spring Boot 4",
				},
				{
					Pattern: "spring.http.encoding.",
					Message: "spring.http.encoding.* properties are replaced by server.servlet.encoding.*",
				},
				{
					Pattern: "management.metrics.export.",
					Message: "management.metrics.export.* properties moved to management.<product>.metrics.export.*",
				},
				{
					Pattern: "spring.jackson.",
					Message: "spring.jackson.* properties apply to Jackson 2 only; review for Jackson 3",
				},
			},
			RunBuild: false,
			RunTests: false,
		},
		Output: OutputConfig{
			Format:      "text",
			Color:       "auto",
			ShowDetails: false,
		},
	}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context:
// when no explicit path is given, config files are discovered starting from
// the target directory and walking upward.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// New viper instance per load to avoid shared state
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common
// locations, starting at the target path and walking up to the root.
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		"bootready.yaml",
		"bootready.yml",
		".bootready.yaml",
		".bootready.toml",
		"bootready.json",
		".bootready.json",
	}

	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			volume := filepath.VolumeName(absPath)
			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}

				parent := filepath.Dir(dir)
				if parent == dir ||
					dir == volume ||
					(volume != "" && dir == volume+string(filepath.Separator)) {
					break
				}
			}
		}
	}

	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, constants.ToolName), candidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		configDir := filepath.Join(home, ".config", constants.ToolName)
		if config := searchConfigInDirectory(configDir, candidates); config != "" {
			return config
		}
	}

	if envConfig := os.Getenv(constants.EnvVarPrefix + "_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Verify.SourceDir == "" {
		return fmt.Errorf("verify.source_dir cannot be empty")
	}
	if c.Verify.ResourcesDir == "" {
		return fmt.Errorf("verify.resources_dir cannot be empty")
	}
	if c.Verify.Concurrency < 0 {
		return fmt.Errorf("verify.concurrency must be >= 0, got %d", c.Verify.Concurrency)
	}

	if c.Java.MinMajor < 1 {
		return fmt.Errorf("java.min_major must be >= 1, got %d", c.Java.MinMajor)
	}
	if c.Java.RecommendedMajor < c.Java.MinMajor {
		return fmt.Errorf("java.recommended_major (%d) must be >= min_major (%d)",
			c.Java.RecommendedMajor, c.Java.MinMajor)
	}

	if c.SpringBoot.TargetPrefix == "" {
		return fmt.Errorf("spring_boot.target_prefix cannot be empty")
	}
	if c.SpringBoot.ReadyPrefix == "" {
		return fmt.Errorf("spring_boot.ready_prefix cannot be empty")
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"yaml": true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format '%s', must be one of: text, json, yaml", c.Output.Format)
	}

	validColors := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColors[c.Output.Color] {
		return fmt.Errorf("invalid output.color '%s', must be one of: auto, always, never", c.Output.Color)
	}

	for i, check := range c.Checks.DeprecatedImports {
		if check.Pattern == "" {
			return fmt.Errorf("checks.deprecated_imports[%d].pattern cannot be empty", i)
		}
	}
	for i, check := range c.Checks.DeprecatedDependencies {
		if check.Pattern == "" {
			return fmt.Errorf("checks.deprecated_dependencies[%d].pattern cannot be empty", i)
		}
	}
	for i, check := range c.Checks.Bridges {
		if check.Pattern == "" {
			return fmt.Errorf("checks.bridges[%d].pattern cannot be empty", i)
		}
	}
	for i, check := range c.Checks.DeprecatedProperties {
		if check.Pattern == "" {
			return fmt.Errorf("checks.deprecated_properties[%d].pattern cannot be empty", i)
		}
	}

	return nil
}

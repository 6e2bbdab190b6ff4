package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "bootready"

	// ConfigFileName is the default config file name
	ConfigFileName = "bootready.yaml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "BOOTREADY"
)

// Build manifest file names, probed in order. The first match fixes the
// build tool for the run.
const (
	MavenManifest     = "pom.xml"
	GradleManifest    = "build.gradle"
	GradleKtsManifest = "build.gradle.kts"
)

// Build invocation conventions: wrapper script preferred, global binary as
// fallback. Used for display and the opt-in build/test hooks only.
const (
	MavenWrapper  = "mvnw"
	MavenBinary   = "mvn"
	GradleWrapper = "gradlew"
	GradleBinary  = "gradle"
)

// Java version thresholds for Spring Boot 4
const (
	// MinJavaMajor is the minimum supported Java major version
	MinJavaMajor = 17

	// RecommendedJavaMajor is the recommended Java major version
	RecommendedJavaMajor = 21
)

// Spring Boot version prefixes
const (
	// TargetBootPrefix is the major line being migrated to
	TargetBootPrefix = "4."

	// ReadyBootPrefix is the latest prior-minor line, considered ready for
	// the upgrade
	ReadyBootPrefix = "3.5."
)

// Conventional project layout. The source root covers both the main and
// test trees: several deprecated imports (@MockBean, JUnit 4) only occur in
// test code.
const (
	DefaultSourceDir    = "src"
	DefaultResourcesDir = "src/main/resources"
)

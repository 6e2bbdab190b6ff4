package buildtool

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spring-tools/bootready/domain"
)

// mavenProject is the subset of pom.xml needed for version extraction
type mavenProject struct {
	XMLName xml.Name    `xml:"project"`
	Parent  mavenParent `xml:"parent"`
}

type mavenParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

var (
	// <spring-boot.version>3.5.2</spring-boot.version> property fallback for
	// projects that import the BOM instead of using the starter parent
	mavenBootProperty = regexp.MustCompile(`<spring-boot\.version>\s*([^<\s]+)\s*</spring-boot\.version>`)

	// id 'org.springframework.boot' version '3.5.2' (Groovy DSL) and
	// id("org.springframework.boot") version "3.5.2" (Kotlin DSL)
	gradleBootPlugin = regexp.MustCompile(`id\s*[("']+org\.springframework\.boot["')]*\s+version\s*[("']+([^"')\s]+)["')]*`)
)

// SpringBootVersion extracts the declared Spring Boot version from the
// project's build manifest. The lookup is tool-specific: the parent version
// (or BOM property) for Maven, the boot plugin version for Gradle.
func SpringBootVersion(project *domain.Project) (string, error) {
	switch project.BuildTool {
	case domain.BuildToolMaven:
		return mavenSpringBootVersion(project.Dir)
	case domain.BuildToolGradle:
		return gradleSpringBootVersion(project.Dir)
	default:
		return "", fmt.Errorf("unknown build tool: %s", project.BuildTool)
	}
}

func mavenSpringBootVersion(dir string) (string, error) {
	content, err := os.ReadFile(filepath.Join(dir, "pom.xml"))
	if err != nil {
		return "", fmt.Errorf("failed to read pom.xml: %w", err)
	}

	var pom mavenProject
	if err := xml.Unmarshal(content, &pom); err != nil {
		return "", fmt.Errorf("failed to parse pom.xml: %w", err)
	}

	if pom.Parent.ArtifactID == "spring-boot-starter-parent" && pom.Parent.Version != "" {
		return pom.Parent.Version, nil
	}

	if m := mavenBootProperty.FindSubmatch(content); m != nil {
		return string(m[1]), nil
	}

	return "", fmt.Errorf("no Spring Boot version declared in pom.xml")
}

func gradleSpringBootVersion(dir string) (string, error) {
	for _, name := range []string{"build.gradle", "build.gradle.kts"} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if m := gradleBootPlugin.FindSubmatch(content); m != nil {
			return string(m[1]), nil
		}
	}
	return "", fmt.Errorf("no Spring Boot plugin version declared in build script")
}

// ManifestMatch records a manifest file that contained a searched pattern
type ManifestMatch struct {
	Manifest string
	Pattern  string
}

// FindDependency searches every build manifest for the given coordinate
// pattern (plain substring match, the way the manifests declare artifacts).
func FindDependency(project *domain.Project, pattern string) ([]ManifestMatch, error) {
	var matches []ManifestMatch

	for _, manifest := range project.Manifests {
		content, err := os.ReadFile(filepath.Join(project.Dir, manifest))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", manifest, err)
		}
		if strings.Contains(string(content), pattern) {
			matches = append(matches, ManifestMatch{Manifest: manifest, Pattern: pattern})
		}
	}

	return matches, nil
}

package buildtool

import (
	"os"
	"path/filepath"

	"github.com/spring-tools/bootready/domain"
	"github.com/spring-tools/bootready/internal/constants"
)

// Detect probes the project directory for build manifests and fixes the
// build tool for the run. Maven is probed first; the first match wins.
// A missing manifest is the only fatal condition in a verification run.
func Detect(dir string) (*domain.Project, error) {
	if _, err := os.Stat(filepath.Join(dir, constants.MavenManifest)); err == nil {
		return newProject(dir, domain.BuildToolMaven), nil
	}

	for _, manifest := range []string{constants.GradleManifest, constants.GradleKtsManifest} {
		if _, err := os.Stat(filepath.Join(dir, manifest)); err == nil {
			return newProject(dir, domain.BuildToolGradle), nil
		}
	}

	return nil, domain.NewDetectionError(dir)
}

func newProject(dir string, tool domain.BuildTool) *domain.Project {
	return &domain.Project{
		Dir:          dir,
		BuildTool:    tool,
		BuildCommand: resolveBuildCommand(dir, tool),
		Manifests:    collectManifests(dir),
		SourceDir:    constants.DefaultSourceDir,
		ResourcesDir: constants.DefaultResourcesDir,
	}
}

// resolveBuildCommand prefers the project's wrapper script and falls back to
// the globally-installed binary when the wrapper is absent.
func resolveBuildCommand(dir string, tool domain.BuildTool) string {
	wrapper, binary := constants.MavenWrapper, constants.MavenBinary
	if tool == domain.BuildToolGradle {
		wrapper, binary = constants.GradleWrapper, constants.GradleBinary
	}

	if info, err := os.Stat(filepath.Join(dir, wrapper)); err == nil && !info.IsDir() {
		return "./" + wrapper
	}
	return binary
}

// collectManifests returns every build file present in the project root,
// in a fixed order. All of them are searched during dependency scans so a
// multi-file Gradle setup is covered.
func collectManifests(dir string) []string {
	candidates := []string{
		constants.MavenManifest,
		constants.GradleManifest,
		constants.GradleKtsManifest,
		"settings.gradle",
		"settings.gradle.kts",
		filepath.Join("gradle", "libs.versions.toml"),
	}

	var manifests []string
	for _, candidate := range candidates {
		if info, err := os.Stat(filepath.Join(dir, candidate)); err == nil && !info.IsDir() {
			manifests = append(manifests, candidate)
		}
	}
	return manifests
}

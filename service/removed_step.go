package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spring-tools/bootready/domain"
	"github.com/spring-tools/bootready/internal/buildtool"
	"github.com/spring-tools/bootready/internal/config"
	"github.com/spring-tools/bootready/internal/scanner"
)

const (
	undertowStarter = "spring-boot-starter-undertow"
	junit4Artifact  = "junit:junit"
	spockGroup      = "org.spockframework"
)

// junit4Imports are the JUnit 4 entry points that survive on the classpath
// through transitive dependencies, so the source tree is checked as well as
// the manifests. The substrings do not match their JUnit 5 counterparts.
var junit4Imports = []string{
	"org.junit.Test",
	"org.junit.runner.RunWith",
}

// RemovedStep checks for features Spring Boot 4 no longer ships: the Undertow
// servlet container and JUnit 4 support (both FAIL), plus the optional Spock
// framework check (WARN, silent when absent).
type RemovedStep struct {
	verify config.VerifyConfig
}

// NewRemovedStep creates the removed feature check
func NewRemovedStep(verify config.VerifyConfig) *RemovedStep {
	return &RemovedStep{verify: verify}
}

// Name returns the step name
func (s *RemovedStep) Name() string {
	return "removed features"
}

// Run checks manifests and sources for removed features
func (s *RemovedStep) Run(ctx context.Context, project *domain.Project) ([]domain.Finding, error) {
	var findings []domain.Finding

	undertow, err := buildtool.FindDependency(project, undertowStarter)
	if err != nil {
		return nil, err
	}
	if len(undertow) == 0 {
		findings = append(findings, domain.Finding{
			Step:           s.Name(),
			Classification: domain.ClassPass,
			Message:        "no removed embedded servlet container found",
		})
	}
	for _, match := range undertow {
		findings = append(findings, domain.Finding{
			Step:           s.Name(),
			Classification: domain.ClassFail,
			Message:        "Undertow support is removed in Spring Boot 4",
			Detail:         "switch to spring-boot-starter-tomcat or spring-boot-starter-jetty",
			Location:       match.Manifest,
		})
	}

	junitFindings, err := s.checkJUnit4(ctx, project)
	if err != nil {
		return nil, err
	}
	findings = append(findings, junitFindings...)

	spock, err := buildtool.FindDependency(project, spockGroup)
	if err != nil {
		return nil, err
	}
	for _, match := range spock {
		findings = append(findings, domain.Finding{
			Step:           s.Name(),
			Classification: domain.ClassWarn,
			Message:        "Spock framework detected",
			Detail:         "verify your Spock version supports Spring Boot 4 before upgrading",
			Location:       match.Manifest,
		})
	}

	return findings, nil
}

// checkJUnit4 looks for JUnit 4 both as a declared dependency and as source
// imports, since the library often arrives transitively.
func (s *RemovedStep) checkJUnit4(ctx context.Context, project *domain.Project) ([]domain.Finding, error) {
	var findings []domain.Finding

	deps, err := buildtool.FindDependency(project, junit4Artifact)
	if err != nil {
		return nil, err
	}
	for _, match := range deps {
		findings = append(findings, domain.Finding{
			Step:           s.Name(),
			Classification: domain.ClassFail,
			Message:        "JUnit 4 dependency declared; support is removed in Spring Boot 4",
			Detail:         "migrate the test suite to JUnit Jupiter",
			Location:       match.Manifest,
		})
	}

	patterns := make([]scanner.Pattern, 0, len(junit4Imports))
	for _, imp := range junit4Imports {
		patterns = append(patterns, scanner.Pattern{ID: imp, Text: imp})
	}

	sc := scanner.New(filepath.Join(project.Dir, project.SourceDir), scanner.Options{
		Extensions:       []string{".java"},
		ExcludeDirs:      s.verify.ExcludeDirs,
		RespectGitignore: s.verify.RespectGitignore,
		Concurrency:      s.verify.Concurrency,
	})
	results, err := sc.Scan(ctx, patterns)
	if err != nil {
		return nil, err
	}

	for _, imp := range junit4Imports {
		for _, match := range results[imp] {
			findings = append(findings, domain.Finding{
				Step:           s.Name(),
				Classification: domain.ClassFail,
				Message:        fmt.Sprintf("JUnit 4 import '%s'; support is removed in Spring Boot 4", imp),
				Detail:         "migrate the test suite to JUnit Jupiter",
				Location:       fmt.Sprintf("%s:%d", filepath.Join(project.SourceDir, match.Path), match.Line),
			})
		}
	}

	if len(findings) == 0 {
		findings = append(findings, domain.Finding{
			Step:           s.Name(),
			Classification: domain.ClassPass,
			Message:        "no removed test framework usage found",
		})
	}

	return findings, nil
}

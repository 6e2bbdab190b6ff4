package buildtool

import (
	"testing"

	"github.com/spring-tools/bootready/domain"
)

const pomWithParent = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
	<parent>
		<groupId>org.springframework.boot</groupId>
		<artifactId>spring-boot-starter-parent</artifactId>
		<version>3.5.2</version>
	</parent>
	<groupId>com.example</groupId>
	<artifactId>demo</artifactId>
	<dependencies>
		<dependency>
			<groupId>org.springframework.boot</groupId>
			<artifactId>spring-boot-starter-web</artifactId>
		</dependency>
	</dependencies>
</project>`

const pomWithProperty = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
	<groupId>com.example</groupId>
	<artifactId>demo</artifactId>
	<properties>
		<spring-boot.version>4.0.0</spring-boot.version>
	</properties>
</project>`

func TestSpringBootVersion_MavenParent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pom.xml", pomWithParent)

	project, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	version, err := SpringBootVersion(project)
	if err != nil {
		t.Fatalf("SpringBootVersion should not return error: %v", err)
	}
	if version != "3.5.2" {
		t.Errorf("Version should be '3.5.2', got '%s'", version)
	}
}

func TestSpringBootVersion_MavenProperty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pom.xml", pomWithProperty)

	project, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	version, err := SpringBootVersion(project)
	if err != nil {
		t.Fatalf("SpringBootVersion should not return error: %v", err)
	}
	if version != "4.0.0" {
		t.Errorf("Version should be '4.0.0', got '%s'", version)
	}
}

func TestSpringBootVersion_MavenMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pom.xml", "<project><groupId>com.example</groupId></project>")

	project, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if _, err := SpringBootVersion(project); err == nil {
		t.Error("SpringBootVersion should return error when no version is declared")
	}
}

func TestSpringBootVersion_GradleGroovy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "build.gradle", `plugins {
	id 'java'
	id 'org.springframework.boot' version '3.5.1'
}`)

	project, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	version, err := SpringBootVersion(project)
	if err != nil {
		t.Fatalf("SpringBootVersion should not return error: %v", err)
	}
	if version != "3.5.1" {
		t.Errorf("Version should be '3.5.1', got '%s'", version)
	}
}

func TestSpringBootVersion_GradleKotlin(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "build.gradle.kts", `plugins {
	java
	id("org.springframework.boot") version "4.0.0"
}`)

	project, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	version, err := SpringBootVersion(project)
	if err != nil {
		t.Fatalf("SpringBootVersion should not return error: %v", err)
	}
	if version != "4.0.0" {
		t.Errorf("Version should be '4.0.0', got '%s'", version)
	}
}

func TestFindDependency(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pom.xml", pomWithParent)

	project, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	matches, err := FindDependency(project, "spring-boot-starter-web")
	if err != nil {
		t.Fatalf("FindDependency should not return error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Should find 1 match, got %d", len(matches))
	}
	if matches[0].Manifest != "pom.xml" {
		t.Errorf("Match should point at pom.xml, got '%s'", matches[0].Manifest)
	}

	matches, err = FindDependency(project, "spring-boot-starter-undertow")
	if err != nil {
		t.Fatalf("FindDependency should not return error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Should find no matches, got %d", len(matches))
	}
}

func TestFindDependency_SearchesAllManifests(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "build.gradle", "plugins {}")
	writeFile(t, dir, "settings.gradle", "include 'spring-boot-jackson2-module'")

	project, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	matches, err := FindDependency(project, "spring-boot-jackson2")
	if err != nil {
		t.Fatalf("FindDependency should not return error: %v", err)
	}
	if len(matches) != 1 || matches[0].Manifest != "settings.gradle" {
		t.Errorf("Should match settings.gradle, got %v", matches)
	}
}

func TestSpringBootVersion_UnknownTool(t *testing.T) {
	project := &domain.Project{BuildTool: domain.BuildTool("ant")}
	if _, err := SpringBootVersion(project); err == nil {
		t.Error("SpringBootVersion should return error for unknown build tool")
	}
}

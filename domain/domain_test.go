package domain

import (
	"errors"
	"testing"
)

// Error tests

func TestDomainError_Error(t *testing.T) {
	// Without cause
	err := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
	}
	expected := "[TEST_ERROR] Test message"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}

	// With cause
	cause := errors.New("underlying error")
	errWithCause := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
		Cause:   cause,
	}
	expectedWithCause := "[TEST_ERROR] Test message: underlying error"
	if errWithCause.Error() != expectedWithCause {
		t.Errorf("Expected '%s', got '%s'", expectedWithCause, errWithCause.Error())
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
		Cause:   cause,
	}

	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	errNoCause := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
	}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestNewDetectionError(t *testing.T) {
	err := NewDetectionError("/work/project")

	domainErr, ok := err.(DomainError)
	if !ok {
		t.Fatal("Should return DomainError type")
	}
	if domainErr.Code != ErrCodeDetectionFailed {
		t.Errorf("Expected code '%s', got '%s'", ErrCodeDetectionFailed, domainErr.Code)
	}
	if !IsDetectionError(err) {
		t.Error("IsDetectionError should be true for detection errors")
	}
	if IsDetectionError(errors.New("other")) {
		t.Error("IsDetectionError should be false for other errors")
	}
}

func TestNewConfigError(t *testing.T) {
	err := NewConfigError("invalid config", nil)

	domainErr := err.(DomainError)
	if domainErr.Code != ErrCodeConfigError {
		t.Errorf("Expected code '%s', got '%s'", ErrCodeConfigError, domainErr.Code)
	}
}

func TestNewProbeError(t *testing.T) {
	cause := errors.New("exec failed")
	err := NewProbeError("java probe failed", cause)

	domainErr := err.(DomainError)
	if domainErr.Code != ErrCodeProbeError {
		t.Errorf("Expected code '%s', got '%s'", ErrCodeProbeError, domainErr.Code)
	}
	if domainErr.Cause != cause {
		t.Error("Cause should be set")
	}
}

func TestNewUnsupportedFormatError(t *testing.T) {
	err := NewUnsupportedFormatError("xml")

	domainErr := err.(DomainError)
	if domainErr.Code != ErrCodeUnsupportedFormat {
		t.Errorf("Expected code '%s', got '%s'", ErrCodeUnsupportedFormat, domainErr.Code)
	}
	if domainErr.Message != "unsupported format: xml" {
		t.Errorf("Unexpected message: %s", domainErr.Message)
	}
}

// Classification tests

func TestClassification_Constants(t *testing.T) {
	classes := map[Classification]string{
		ClassPass:   "pass",
		ClassFail:   "fail",
		ClassWarn:   "warn",
		ClassBridge: "bridge",
		ClassInfo:   "info",
	}

	for class, expected := range classes {
		if string(class) != expected {
			t.Errorf("Classification %s should equal '%s'", class, expected)
		}
	}
}

// Tally tests

func TestTally_Add(t *testing.T) {
	var tally Tally

	tally.Add(ClassPass)
	tally.Add(ClassPass)
	tally.Add(ClassFail)
	tally.Add(ClassWarn)
	tally.Add(ClassBridge)
	tally.Add(ClassInfo) // not counted

	if tally.Pass != 2 {
		t.Errorf("Pass should be 2, got %d", tally.Pass)
	}
	if tally.Fail != 1 {
		t.Errorf("Fail should be 1, got %d", tally.Fail)
	}
	if tally.Warn != 1 {
		t.Errorf("Warn should be 1, got %d", tally.Warn)
	}
	if tally.Bridge != 1 {
		t.Errorf("Bridge should be 1, got %d", tally.Bridge)
	}
	if tally.Total() != 5 {
		t.Errorf("Total should be 5, got %d", tally.Total())
	}
}

func TestTally_Verdict(t *testing.T) {
	tests := []struct {
		name    string
		tally   Tally
		verdict Verdict
	}{
		{"clean run", Tally{Pass: 5}, VerdictReady},
		{"warnings only", Tally{Pass: 3, Warn: 2}, VerdictReady},
		{"bridge active", Tally{Pass: 3, Bridge: 1}, VerdictInProgress},
		{"bridge and warnings", Tally{Pass: 3, Warn: 1, Bridge: 2}, VerdictInProgress},
		{"failure", Tally{Pass: 3, Fail: 1}, VerdictIncomplete},
		{"failure beats bridge", Tally{Fail: 1, Bridge: 1}, VerdictIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tally.Verdict(); got != tt.verdict {
				t.Errorf("Verdict should be '%s', got '%s'", tt.verdict, got)
			}
		})
	}
}

// Build tool tests

func TestBuildTool_Constants(t *testing.T) {
	if string(BuildToolMaven) != "maven" {
		t.Errorf("BuildToolMaven should equal 'maven', got '%s'", BuildToolMaven)
	}
	if string(BuildToolGradle) != "gradle" {
		t.Errorf("BuildToolGradle should equal 'gradle', got '%s'", BuildToolGradle)
	}
}

// Output format tests

func TestOutputFormat_Constants(t *testing.T) {
	formats := map[OutputFormat]string{
		OutputFormatText: "text",
		OutputFormatJSON: "json",
		OutputFormatYAML: "yaml",
	}

	for format, expected := range formats {
		if string(format) != expected {
			t.Errorf("OutputFormat %s should equal '%s'", format, expected)
		}
	}
}

// Finding tests

func TestFinding_Fields(t *testing.T) {
	finding := Finding{
		Step:           "framework version",
		Classification: ClassWarn,
		Message:        "Spring Boot 3.5.2 declared",
		Detail:         "3.5.x is ready for upgrade to 4.0",
		Location:       "pom.xml",
	}

	if finding.Classification != ClassWarn {
		t.Errorf("Classification should be 'warn', got '%s'", finding.Classification)
	}
	if finding.Location != "pom.xml" {
		t.Errorf("Location should be 'pom.xml', got '%s'", finding.Location)
	}
}

package service

import (
	"github.com/spring-tools/bootready/domain"
	"github.com/spring-tools/bootready/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.VerifyRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return c.convertToVerifyRequest(cfg), nil
}

// LoadDefaultConfig loads the default configuration, discovering a config
// file from the working directory when present.
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.VerifyRequest {
	cfg, err := config.LoadConfigWithTarget("", "")
	if err != nil {
		cfg = config.DefaultConfig()
	}
	return c.convertToVerifyRequest(cfg)
}

// MergeConfig merges CLI flags into a file-based request. Only explicitly set
// values from the override win.
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.VerifyRequest, override *domain.VerifyRequest) *domain.VerifyRequest {
	merged := *base

	if override.Path != "" {
		merged.Path = override.Path
	}
	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.ShowDetails {
		merged.ShowDetails = override.ShowDetails
	}
	if override.RunBuild {
		merged.RunBuild = override.RunBuild
	}
	if override.RunTests {
		merged.RunTests = override.RunTests
	}
	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	return &merged
}

func (c *ConfigurationLoaderImpl) convertToVerifyRequest(cfg *config.Config) *domain.VerifyRequest {
	return &domain.VerifyRequest{
		OutputFormat: domain.OutputFormat(cfg.Output.Format),
		ShowDetails:  cfg.Output.ShowDetails,
		RunBuild:     cfg.Checks.RunBuild,
		RunTests:     cfg.Checks.RunTests,
	}
}

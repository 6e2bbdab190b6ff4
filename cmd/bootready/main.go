package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spring-tools/bootready/internal/version"
)

var (
	// Version information (set via ldflags during build)
	Version = version.Version
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bootready",
		Short: "bootready - Spring Boot 4 migration readiness checker",
		Long: `bootready inspects a Maven or Gradle project and reports how ready it is
for the Spring Boot 3.x to 4.0 upgrade: runtime and framework versions,
deprecated dependencies and imports, compatibility bridges, and removed
features.`,
		Version: Version,
	}

	rootCmd.AddCommand(verifyCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		// Handle custom exit codes from the verify command
		if exitErr, ok := err.(*VerifyExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			// Silently exit with the specified code (output already printed)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("bootready version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}

package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/runcode/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "runcode",
	Short: "JavaScript code execution server with a shared namespace",
	Long: `runcode accepts JavaScript snippets over HTTP and runs them against one
long-lived interpreter. Every request sees the bindings left by earlier
requests, and the response carries printed output followed by the value of
each top-level expression line.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("runcode %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

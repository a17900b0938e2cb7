package cmd

import (
	"fmt"
	"os"

	"github.com/fran-roca/aml-intelligence/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aml-intelligence",
	Short: "Interactive AML case-review demo",
	Long: `A demo anti-money-laundering case-review console.

The tool holds a fixed in-memory queue of mock client notifications and maps
free-text queries onto keyword filters, canned analysis narratives, and
compiled investigation reports. All state is volatile and lost on exit.

Quick Start:
  aml-intelligence dashboard               # Interactive investigation console
  aml-intelligence clients                 # Show the notification queue
  aml-intelligence query "high-risk"       # One-shot query
  aml-intelligence report -q "high-risk"   # Compile and export a report`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	outputFormat string
	verbose      bool
	logger       *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit raw descriptor wrapping sites",
	Long: `audit scans Go packages for calls that wrap raw file descriptors
into safe wrapper types and for type declarations that carry the
safety marker. It reports every wrapping site together with the
acknowledgment the caller recorded, and can enforce a policy over
those sites.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = zap.NewNop()
		if verbose {
			l, err := zap.NewDevelopment()
			if err == nil {
				logger = l
			}
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "auto", "output format: table, yaml or auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log scan progress")
}

// tableOutput reports whether rendered table output should be used.
// In auto mode tables go to terminals and YAML goes everywhere else.
func tableOutput() bool {
	switch outputFormat {
	case "table":
		return true
	case "yaml":
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

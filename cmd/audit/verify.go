package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/iosafe/audit"
)

var (
	verifyDir    string
	verifyPolicy string
)

var verifyCmd = &cobra.Command{
	Use:   "verify [packages]",
	Short: "Check wrapping sites against a policy",
	Long: `verify scans the given package patterns and checks every wrapping
site against a YAML policy file. It exits non-zero when any site
violates the policy.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		patterns := args
		if len(patterns) == 0 {
			patterns = []string{"./..."}
		}

		policy, err := audit.LoadPolicy(verifyPolicy)
		if err != nil {
			return err
		}

		report, err := audit.Scan(verifyDir, patterns...)
		if err != nil {
			return err
		}

		logger.Debug("verifying",
			zap.String("policy", verifyPolicy),
			zap.Int("sites", len(report.Sites)))

		findings := policy.Check(report)
		if len(findings) == 0 {
			fmt.Printf("OK: %d wrapping site(s), %d marked declaration(s)\n",
				len(report.Sites), len(report.Declarations))
			return nil
		}

		for _, f := range findings {
			fmt.Fprintf(os.Stderr, "%v\n", f)
		}
		return fmt.Errorf("%d policy violation(s)", len(findings))
	},
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyDir, "dir", "C", ".", "directory to load packages from")
	verifyCmd.Flags().StringVarP(&verifyPolicy, "policy", "p", "iosafe-policy.yaml", "policy file")
	rootCmd.AddCommand(verifyCmd)
}

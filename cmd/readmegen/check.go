package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blogkit/internal/check"
	"blogkit/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit docs for relative links and images that resolve nowhere",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		issues, err := check.Docs(os.DirFS("."), cfg.Index.DocsDir)
		if err != nil {
			return err
		}
		if len(issues) == 0 {
			output.Successf("no broken references under %s", cfg.Index.DocsDir)
			return nil
		}

		for _, issue := range issues {
			output.Warnf("%s", issue)
		}
		return fmt.Errorf("%d broken references", len(issues))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blogkit/internal/output"
	"blogkit/internal/scan"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the discovered articles as a tree without writing anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ref, err := loadOptions(cmd)
		if err != nil {
			return err
		}

		cat, err := scan.Build(os.DirFS("."), cfg.Index.DocsDir, scan.Options{
			Ref:        ref,
			ConfigName: cfg.Index.ConfigName,
		})
		if err != nil {
			return err
		}

		fmt.Print(output.CatalogTree(cfg.Index.DocsDir, cat.Records()))
		output.Dimf("%d articles", cat.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

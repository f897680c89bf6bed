package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"blogkit/internal/build"
	"blogkit/internal/domain/config"
	domainerr "blogkit/internal/domain/errors"
	"blogkit/internal/domain/site"
	"blogkit/internal/gitmeta"
	"blogkit/internal/output"
)

var cmdFlags struct {
	config   string
	docs     string
	template string
	output   string
	repo     string
	branch   string
	sort     bool
	verbose  bool
}

var rootCmd = &cobra.Command{
	Use:   "readmegen",
	Short: "Regenerate the bilingual article index in README.md",
	Long: "readmegen walks the docs tree, collects the English and Chinese\n" +
		"variants of every article and rewrites the index table between the\n" +
		"template markers of README.md.",
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLogging(cmdFlags.verbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ref, err := loadOptions(cmd)
		if err != nil {
			return err
		}

		b := build.Builder{Cfg: cfg, Ref: ref, FS: os.DirFS(".")}
		res, err := b.Run()
		if err != nil {
			return err
		}
		output.Successf("indexed %d articles -> %s", res.Articles, res.Output)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cmdFlags.config, "config", "c", config.DefaultPath, "Path to the tool config file")
	pf.StringVar(&cmdFlags.docs, "docs", "", "Docs directory to scan")
	pf.StringVar(&cmdFlags.repo, "repo", "", "GitHub repository as owner/name")
	pf.StringVar(&cmdFlags.branch, "branch", "", "Branch used when building links")
	pf.BoolVarP(&cmdFlags.verbose, "verbose", "v", false, "Enable debug logging")

	f := rootCmd.Flags()
	f.StringVar(&cmdFlags.template, "template", "", "README template path")
	f.StringVarP(&cmdFlags.output, "output", "o", "", "Output README path")
	f.BoolVar(&cmdFlags.sort, "sort", true, "Sort table rows by the English column")
}

// loadConfig merges the config file with whatever flags were set on
// the command line. Flags win.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadOrDefault(cmdFlags.config)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("docs") {
		cfg.Index.DocsDir = cmdFlags.docs
	}
	if cmd.Flags().Changed("template") {
		cfg.Index.Template = cmdFlags.template
	}
	if cmd.Flags().Changed("output") {
		cfg.Index.Output = cmdFlags.output
	}
	if cmd.Flags().Changed("sort") {
		cfg.Index.SortLinks = cmdFlags.sort
	}
	if cmdFlags.repo != "" {
		owner, name, ok := strings.Cut(cmdFlags.repo, "/")
		if !ok || owner == "" || name == "" {
			return cfg, fmt.Errorf("--repo must look like owner/name, got %q", cmdFlags.repo)
		}
		cfg.Repo.Owner, cfg.Repo.Name = owner, name
	}
	if cmdFlags.branch != "" {
		cfg.Repo.Branch = cmdFlags.branch
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadOptions additionally resolves the repository reference, falling
// back to the GitHub Actions environment and the local checkout.
func loadOptions(cmd *cobra.Command) (config.Config, site.RepoRef, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, site.RepoRef{}, err
	}

	ref, err := cfg.ResolveRef(func() (site.RepoRef, error) {
		return gitmeta.Detect(".")
	})
	if err != nil {
		return cfg, ref, err
	}
	return cfg, ref, nil
}

func main() {
	// GITHUB_REPOSITORY 这类变量本地跑的时候可以放进 .env
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		output.Errorf("readmegen: %v", err)
		if errors.Is(err, domainerr.ErrInvalid) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"blogkit/internal/domain/config"
	domainerr "blogkit/internal/domain/errors"
	"blogkit/internal/domain/site"
	"blogkit/internal/gitmeta"
	"blogkit/internal/output"
	"blogkit/internal/rewrite"
)

var cmdFlags struct {
	config  string
	repo    string
	branch  string
	dryRun  bool
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "imglink <file.md> [file.md ...]",
	Short: "Rewrite relative image references to absolute github.com URLs",
	Long: "imglink resolves every relative image reference of the given\n" +
		"Markdown files against the repository checkout and replaces it in\n" +
		"place with the ?raw=true blob URL GitHub serves the image from.\n" +
		"Code blocks and inline code spans are never touched.",
	Args: cobra.MinimumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLogging(cmdFlags.verbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&cmdFlags.config, "config", "c", config.DefaultPath, "Path to the tool config file")
	f.StringVar(&cmdFlags.repo, "repo", "", "GitHub repository as owner/name")
	f.StringVar(&cmdFlags.branch, "branch", "", "Branch used when building links")
	f.BoolVarP(&cmdFlags.dryRun, "dry-run", "n", false, "Report rewrites without touching any file")
	f.BoolVarP(&cmdFlags.verbose, "verbose", "v", false, "Enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cmdFlags.config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmdFlags.repo != "" {
		owner, name, ok := strings.Cut(cmdFlags.repo, "/")
		if !ok || owner == "" || name == "" {
			return fmt.Errorf("--repo must look like owner/name, got %q", cmdFlags.repo)
		}
		cfg.Repo.Owner, cfg.Repo.Name = owner, name
	}
	if cmdFlags.branch != "" {
		cfg.Repo.Branch = cmdFlags.branch
	}

	ref, err := cfg.ResolveRef(func() (site.RepoRef, error) {
		return gitmeta.Detect(".")
	})
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	changed := 0
	for _, path := range args {
		var touched bool
		if cmdFlags.dryRun {
			touched, err = preview(path, ref, wd)
		} else {
			touched, err = rewrite.File(path, ref, wd)
		}
		if err != nil {
			return err
		}
		if touched {
			changed++
		}
	}

	output.Successf("processed %d files (%d changed)", len(args), changed)
	return nil
}

// preview runs the rewrite in memory and reports what would change.
func preview(path string, ref site.RepoRef, wd string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}

	out, n := rewrite.Rewrite(string(data), filepath.Dir(abs), wd, ref)
	if n == 0 || out == string(data) {
		return false, nil
	}
	output.Warnf("would rewrite %d references in %s", n, path)
	return true, nil
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		output.Errorf("imglink: %v", err)
		if errors.Is(err, domainerr.ErrInvalid) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

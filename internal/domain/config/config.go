package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"blogkit/internal/domain/content"
	domainerr "blogkit/internal/domain/errors"
	"blogkit/internal/domain/site"
)

// DefaultPath is where both tools look for the shared config file.
const DefaultPath = "blogkit.yaml"

type Config struct {
	Repo  RepoConfig  `yaml:"repo"`
	Index IndexConfig `yaml:"index"`
}

// RepoConfig names the GitHub repository links are generated for.
// Fields left empty here are filled from the environment or from the
// local git checkout, see ResolveRef.
type RepoConfig struct {
	Owner  string `yaml:"owner"`
	Name   string `yaml:"name"`
	Branch string `yaml:"branch"`
}

type IndexConfig struct {
	DocsDir    string `yaml:"docs_dir"`
	Template   string `yaml:"template"`
	Output     string `yaml:"output"`
	SortLinks  bool   `yaml:"sort_links"`
	ConfigName string `yaml:"dir_config"`
}

func Default() Config {
	return Config{
		Index: IndexConfig{
			DocsDir:    "docs",
			Template:   "README_TEMPLATE.md",
			Output:     "README.md",
			SortLinks:  true,
			ConfigName: content.DirConfigName,
		},
	}
}

func (c Config) Validate() error {
	var ve domainerr.ValidationError

	if strings.TrimSpace(c.Index.DocsDir) == "" {
		ve.Add("index.docs_dir", "must not be empty")
	}
	if strings.TrimSpace(c.Index.Output) == "" {
		ve.Add("index.output", "must not be empty")
	}
	if name := strings.TrimSpace(c.Index.ConfigName); name == "" {
		ve.Add("index.dir_config", "must not be empty")
	} else if strings.ContainsRune(name, '/') {
		ve.Add("index.dir_config", "must be a bare file name")
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	// 直接 Unmarshal 到 cfg 上:文件里写到的字段覆盖默认值,没写的保留 Default
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but treats a missing file as the
// default configuration.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	return cfg, err
}

// ResolveRef merges the repository reference from the config, the
// GitHub Actions environment and the detect callback, in that order of
// precedence. Each source only fills fields the previous ones left
// empty. A detect failure is not an error by itself; whatever is still
// missing afterwards surfaces through validation.
func (c Config) ResolveRef(detect func() (site.RepoRef, error)) (site.RepoRef, error) {
	ref := site.RepoRef{
		Owner:  c.Repo.Owner,
		Name:   c.Repo.Name,
		Branch: c.Repo.Branch,
	}

	if ref.Owner == "" || ref.Name == "" {
		if owner, name, ok := strings.Cut(os.Getenv("GITHUB_REPOSITORY"), "/"); ok {
			if ref.Owner == "" {
				ref.Owner = owner
			}
			if ref.Name == "" {
				ref.Name = name
			}
		}
	}
	if ref.Branch == "" {
		ref.Branch = os.Getenv("GITHUB_REF_NAME")
	}

	if detect != nil && (ref.Owner == "" || ref.Name == "" || ref.Branch == "") {
		if det, err := detect(); err == nil {
			if ref.Owner == "" {
				ref.Owner = det.Owner
			}
			if ref.Name == "" {
				ref.Name = det.Name
			}
			if ref.Branch == "" {
				ref.Branch = det.Branch
			}
		}
	}

	if ref.Branch == "" {
		ref.Branch = "main"
	}

	if err := ref.Validate(); err != nil {
		return ref, err
	}
	return ref, nil
}

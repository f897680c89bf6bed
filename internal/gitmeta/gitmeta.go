package gitmeta

import (
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/rs/zerolog/log"

	"blogkit/internal/domain/site"
)

// Detect opens the repository containing dir and derives the GitHub
// owner and name from the origin remote plus the branch HEAD sits on.
// Fields it cannot determine come back empty; only a missing
// repository is an error.
func Detect(dir string) (site.RepoRef, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return site.RepoRef{}, fmt.Errorf("open git repository: %w", err)
	}

	var ref site.RepoRef
	if remote, err := repo.Remote("origin"); err == nil && len(remote.Config().URLs) > 0 {
		owner, name, perr := ParseRemote(remote.Config().URLs[0])
		if perr != nil {
			log.Debug().Err(perr).Msg("origin remote is not a github url")
		} else {
			ref.Owner, ref.Name = owner, name
		}
	}

	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		ref.Branch = head.Name().Short()
	}
	return ref, nil
}

// ParseRemote extracts owner and repository name from a GitHub remote
// URL. The https, ssh and scp-like forms are accepted, with or without
// the .git suffix.
func ParseRemote(raw string) (owner, name string, err error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, ".git")

	switch {
	case strings.HasPrefix(s, "https://github.com/"):
		s = strings.TrimPrefix(s, "https://github.com/")
	case strings.HasPrefix(s, "http://github.com/"):
		s = strings.TrimPrefix(s, "http://github.com/")
	case strings.HasPrefix(s, "git@github.com:"):
		s = strings.TrimPrefix(s, "git@github.com:")
	case strings.HasPrefix(s, "ssh://git@github.com/"):
		s = strings.TrimPrefix(s, "ssh://git@github.com/")
	default:
		return "", "", fmt.Errorf("unsupported remote %q", raw)
	}

	owner, rest, ok := strings.Cut(s, "/")
	if !ok || owner == "" || rest == "" {
		return "", "", fmt.Errorf("cannot parse owner/name from %q", raw)
	}
	name = rest
	if i := strings.IndexByte(name, '/'); i >= 0 {
		name = name[:i]
	}
	return owner, name, nil
}

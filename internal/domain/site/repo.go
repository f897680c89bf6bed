package site

import (
	"net/url"
	"strings"

	domainerr "blogkit/internal/domain/errors"
)

const githubBase = "https://github.com"

// RepoRef identifies the GitHub repository and branch that generated
// links point at.
type RepoRef struct {
	Owner  string
	Name   string
	Branch string
}

func (r RepoRef) Validate() error {
	var ve domainerr.ValidationError

	if strings.TrimSpace(r.Owner) == "" {
		ve.Add("repo.owner", "must not be empty")
	}
	if strings.TrimSpace(r.Name) == "" {
		ve.Add("repo.name", "must not be empty")
	}
	if strings.TrimSpace(r.Branch) == "" {
		ve.Add("repo.branch", "must not be empty")
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

func (r RepoRef) Slug() string {
	return r.Owner + "/" + r.Name
}

func (r RepoRef) String() string {
	return r.Slug() + "@" + r.Branch
}

// BlobURL returns the web view URL of the file at relPath, which must
// be slash-separated and relative to the repository root.
func (r RepoRef) BlobURL(relPath string) string {
	return githubBase + "/" + r.Slug() + "/blob/" + r.Branch + "/" + EncodePath(relPath)
}

// TreeURL is like BlobURL but points at a directory listing.
func (r RepoRef) TreeURL(relPath string) string {
	return githubBase + "/" + r.Slug() + "/tree/" + r.Branch + "/" + EncodePath(relPath)
}

// RawBlobURL returns the blob URL with the raw content query GitHub
// respects inside embedded images.
func (r RepoRef) RawBlobURL(relPath string) string {
	return r.BlobURL(relPath) + "?raw=true"
}

// EncodePath escapes every segment of a slash-separated path while the
// separators stay literal. Spaces and non-ASCII names survive as %XX
// escapes that GitHub resolves back to the original file.
func EncodePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

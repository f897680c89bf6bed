package rewrite

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"blogkit/internal/domain/site"
)

var (
	mdImageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	htmlImgRe = regexp.MustCompile(`(<img\b[^>]*?\bsrc=")([^"]+)(")`)
)

// Rewrite replaces every relative image reference in the prose
// segments of src with an absolute repository URL and reports how many
// references it touched. Code segments pass through untouched. fileDir
// is the directory holding the source file and workDir the repository
// root; both must resolve against the same base, in practice absolute
// paths.
func Rewrite(src, fileDir, workDir string, ref site.RepoRef) (string, int) {
	segs := Split(src)
	n := 0
	for i := 0; i < len(segs); i += 2 {
		segs[i] = rewriteProse(segs[i], fileDir, workDir, ref, &n)
	}
	return strings.Join(segs, ""), n
}

func rewriteProse(text, fileDir, workDir string, ref site.RepoRef, n *int) string {
	text = mdImageRe.ReplaceAllStringFunc(text, func(m string) string {
		g := mdImageRe.FindStringSubmatch(m)
		u, ok := resolve(g[2], fileDir, workDir, ref)
		if !ok {
			return m
		}
		*n++
		return "![" + g[1] + "](" + u + ")"
	})
	text = htmlImgRe.ReplaceAllStringFunc(text, func(m string) string {
		g := htmlImgRe.FindStringSubmatch(m)
		u, ok := resolve(g[2], fileDir, workDir, ref)
		if !ok {
			return m
		}
		*n++
		return g[1] + u + g[3]
	})
	return text
}

// resolve turns one relative reference into a raw blob URL. Targets
// that already carry a scheme stay as they are, which also makes the
// whole rewrite idempotent.
func resolve(target, fileDir, workDir string, ref site.RepoRef) (string, bool) {
	if strings.HasPrefix(target, "http") {
		return "", false
	}
	abs := filepath.Join(fileDir, filepath.FromSlash(target))
	rel, err := filepath.Rel(workDir, abs)
	if err != nil {
		return "", false
	}
	return ref.RawBlobURL(filepath.ToSlash(rel)), true
}

// File rewrites path in place and reports whether the content changed.
func File(path string, ref site.RepoRef, workDir string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}

	out, n := Rewrite(string(data), filepath.Dir(abs), workDir, ref)
	if n == 0 || out == string(data) {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	log.Debug().Str("file", path).Int("links", n).Msg("rewrote image links")
	return true, nil
}

package scan

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/rs/zerolog/log"

	"blogkit/internal/domain/content"
	"blogkit/internal/domain/site"
)

// Options controls one documentation tree scan.
type Options struct {
	// Ref builds the published URLs for discovered files.
	Ref site.RepoRef
	// ConfigName is the per-directory config file, article.json when
	// empty.
	ConfigName string
}

// Build walks the docs tree rooted at root inside fsys and returns the
// catalog of discovered article records. Paths inside fsys are used
// verbatim when building repository URLs, so fsys must be rooted at
// the repository checkout.
func Build(fsys fs.FS, root string, opts Options) (*content.Catalog, error) {
	if opts.ConfigName == "" {
		opts.ConfigName = content.DirConfigName
	}

	cat := content.NewCatalog()
	if err := walkDir(fsys, root, opts, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// walkDir applies the per-directory rules: a readable config file takes
// over the whole directory and stops recursion, otherwise every entry
// not reserved by the digit prefix is scanned by convention.
func walkDir(fsys fs.FS, dir string, opts Options, cat *content.Catalog) error {
	if data, err := fs.ReadFile(fsys, path.Join(dir, opts.ConfigName)); err == nil {
		cfg, derr := content.DecodeDirConfig(data)
		if derr == nil {
			applyDirConfig(fsys, dir, cfg, opts, cat)
			return nil
		}
		// 配置坏掉的目录按无配置处理,继续往下扫
		log.Warn().Str("dir", dir).Err(derr).Msg("ignoring malformed directory config")
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}

	for _, e := range entries {
		name := e.Name()
		if startsWithDigit(name) {
			continue
		}
		p := path.Join(dir, name)
		if e.IsDir() {
			if err := walkDir(fsys, p, opts, cat); err != nil {
				return err
			}
			continue
		}
		if isMarkdown(name) {
			recordFile(p, opts.Ref, cat)
		}
	}
	return nil
}

// applyDirConfig turns one configured directory into at most one
// record. The article keeps the directory's name.
func applyDirConfig(fsys fs.FS, dir string, cfg content.DirConfig, opts Options, cat *content.Catalog) {
	if cfg.WIP {
		log.Debug().Str("dir", dir).Msg("skipping work-in-progress article")
		return
	}

	rec := cat.Upsert(path.Base(dir))

	if cfg.IsSeries() {
		if cfg.Title.EN != "" {
			rec.EN = content.Link{Title: cfg.Title.EN, URL: opts.Ref.TreeURL(dir)}
		}
		if cfg.Title.ZH != "" {
			rec.ZH = content.Link{Title: cfg.Title.ZH, URL: opts.Ref.TreeURL(dir)}
		}
		return
	}

	found := false
	if p, ok := firstMarkdown(fsys, path.Join(dir, "en")); ok {
		rec.EN = content.Link{Title: pickTitle(cfg.Title.EN, p), URL: opts.Ref.BlobURL(p)}
		found = true
	}
	if p, ok := firstMarkdown(fsys, path.Join(dir, "zh")); ok {
		rec.ZH = content.Link{Title: pickTitle(cfg.Title.ZH, p), URL: opts.Ref.BlobURL(p)}
		found = true
	}
	if found {
		return
	}

	// 没有语言子目录时退回平铺结构:一个文件按配置声明的语言挂链接
	if !cfg.Title.Any() {
		return
	}
	if p, ok := firstMarkdown(fsys, dir); ok {
		if cfg.Title.EN != "" {
			rec.EN = content.Link{Title: cfg.Title.EN, URL: opts.Ref.BlobURL(p)}
		}
		if cfg.Title.ZH != "" {
			rec.ZH = content.Link{Title: cfg.Title.ZH, URL: opts.Ref.BlobURL(p)}
		}
	}
}

// recordFile attributes one conventionally discovered Markdown file.
// A path segment literally named en or zh names the language and the
// segment before it names the article; otherwise the parent directory
// names the article and the file counts as English.
func recordFile(p string, ref site.RepoRef, cat *content.Catalog) {
	segs := strings.Split(p, "/")
	title := trimExt(segs[len(segs)-1])

	lang := ""
	name := ""
	for i := len(segs) - 2; i >= 1; i-- {
		if segs[i] == "en" || segs[i] == "zh" {
			lang = segs[i]
			name = segs[i-1]
			break
		}
	}
	if name == "" {
		if len(segs) >= 2 {
			name = segs[len(segs)-2]
		} else {
			name = title
		}
	}

	rec := cat.Upsert(name)
	link := content.Link{Title: title, URL: ref.BlobURL(p)}
	if lang == "zh" {
		rec.ZH = link
	} else {
		rec.EN = link
	}
}

// firstMarkdown returns the lexically first Markdown file directly
// inside dir.
func firstMarkdown(fsys fs.FS, dir string) (string, bool) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if !e.IsDir() && isMarkdown(e.Name()) {
			return path.Join(dir, e.Name()), true
		}
	}
	return "", false
}

func pickTitle(configured, p string) string {
	if configured != "" {
		return configured
	}
	return trimExt(path.Base(p))
}

func trimExt(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

func isMarkdown(name string) bool {
	return path.Ext(name) == ".md"
}

func startsWithDigit(name string) bool {
	return len(name) > 0 && name[0] >= '0' && name[0] <= '9'
}

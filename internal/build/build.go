package build

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"blogkit/internal/domain/config"
	"blogkit/internal/domain/site"
	"blogkit/internal/render"
	"blogkit/internal/scan"
)

// Builder generates the README index for one repository checkout.
type Builder struct {
	Cfg config.Config
	Ref site.RepoRef
	// FS is where the docs tree and the template are read from. It
	// must be rooted at the repository checkout so scanned paths line
	// up with the generated URLs. Nil means the working directory.
	FS fs.FS
}

type Result struct {
	Articles int
	Output   string
}

// Generate renders the README without touching disk.
func (b *Builder) Generate() ([]byte, *Result, error) {
	fsys := b.FS
	if fsys == nil {
		fsys = os.DirFS(".")
	}

	cat, err := scan.Build(fsys, b.Cfg.Index.DocsDir, scan.Options{
		Ref:        b.Ref,
		ConfigName: b.Cfg.Index.ConfigName,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan docs: %w", err)
	}

	preamble := render.Preamble(fsys, b.Cfg.Index.Template)
	table := render.Table(cat.Records(), b.Cfg.Index.SortLinks)

	var buf bytes.Buffer
	if err := render.WriteReadme(&buf, preamble, table); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), &Result{Articles: cat.Len(), Output: b.Cfg.Index.Output}, nil
}

// Run generates the README and overwrites the configured output file.
func (b *Builder) Run() (*Result, error) {
	data, res, err := b.Generate()
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(b.Cfg.Index.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	if err := os.WriteFile(b.Cfg.Index.Output, data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", b.Cfg.Index.Output, err)
	}
	return res, nil
}

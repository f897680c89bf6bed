package check

import (
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Issue is one unresolved relative reference found in a Markdown file.
type Issue struct {
	File   string
	Target string
	Kind   string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: broken %s -> %s", i.File, i.Kind, i.Target)
}

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
		extension.Strikethrough,
		extension.Table,
	),
)

// Docs parses every Markdown file under root and reports relative link
// and image targets that do not resolve to anything in fsys. Absolute
// URLs, anchors and mail links are left to the reader's browser.
func Docs(fsys fs.FS, root string) ([]Issue, error) {
	var issues []Issue

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".md" {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		issues = append(issues, auditFile(fsys, p, data)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issues, nil
}

func auditFile(fsys fs.FS, p string, src []byte) []Issue {
	doc := md.Parser().Parse(text.NewReader(src))

	var issues []Issue
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			if issue, bad := verify(fsys, p, string(node.Destination), "link"); bad {
				issues = append(issues, issue)
			}
		case *ast.Image:
			if issue, bad := verify(fsys, p, string(node.Destination), "image"); bad {
				issues = append(issues, issue)
			}
		}
		return ast.WalkContinue, nil
	})
	return issues
}

func verify(fsys fs.FS, file, dest, kind string) (Issue, bool) {
	switch {
	case dest == "",
		strings.HasPrefix(dest, "#"),
		strings.HasPrefix(dest, "//"),
		strings.HasPrefix(dest, "mailto:"),
		strings.Contains(dest, "://"):
		return Issue{}, false
	}

	target := dest
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		target = target[:i]
	}
	if target == "" {
		return Issue{}, false
	}
	if u, err := url.PathUnescape(target); err == nil {
		target = u
	}

	target = path.Join(path.Dir(file), target)
	if _, err := fs.Stat(fsys, target); err != nil {
		return Issue{File: file, Target: dest, Kind: kind}, true
	}
	return Issue{}, false
}

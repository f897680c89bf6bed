package rewrite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blogkit/internal/domain/site"
)

var testRef = site.RepoRef{Owner: "octo", Name: "blog", Branch: "main"}

func TestRewriteResolvesRelativePaths(t *testing.T) {
	src := "intro\n![diagram](../imgs/pic.png)\ndone\n"
	out, n := Rewrite(src, "/repo/docs/a/b", "/repo", testRef)

	if n != 1 {
		t.Fatalf("Rewrite() n = %d, want 1", n)
	}
	want := "intro\n![diagram](https://github.com/octo/blog/blob/main/docs/a/imgs/pic.png?raw=true)\ndone\n"
	if out != want {
		t.Errorf("Rewrite() = %q, want %q", out, want)
	}
}

func TestRewriteIsIdempotent(t *testing.T) {
	src := "![a](./x.png)\n<img src=\"y.jpg\"> and ![b](https://cdn.example.com/z.png)\n"
	once, n1 := Rewrite(src, "/repo/docs/t", "/repo", testRef)
	if n1 != 2 {
		t.Fatalf("first Rewrite() n = %d, want 2", n1)
	}

	twice, n2 := Rewrite(once, "/repo/docs/t", "/repo", testRef)
	if n2 != 0 {
		t.Errorf("second Rewrite() n = %d, want 0", n2)
	}
	if twice != once {
		t.Errorf("second Rewrite() changed output:\n%q\n%q", once, twice)
	}
}

func TestRewriteLeavesCodeAlone(t *testing.T) {
	src := "prose ![p](a.png)\n\n```md\n![fenced](b.png)\n```\n\ninline `![span](c.png)` end\n"
	out, n := Rewrite(src, "/repo/docs", "/repo", testRef)

	if n != 1 {
		t.Fatalf("Rewrite() n = %d, want 1", n)
	}
	for _, untouched := range []string{"![fenced](b.png)", "`![span](c.png)`"} {
		if !strings.Contains(out, untouched) {
			t.Errorf("code content %q was rewritten:\n%s", untouched, out)
		}
	}
	if strings.Contains(out, "![p](a.png)") {
		t.Error("prose image was not rewritten")
	}
}

func TestRewriteHTMLImgKeepsAttributes(t *testing.T) {
	src := `<img width="320" src="shot.png" alt="shot">`
	out, n := Rewrite(src, "/repo/docs/t", "/repo", testRef)

	if n != 1 {
		t.Fatalf("Rewrite() n = %d, want 1", n)
	}
	want := `<img width="320" src="https://github.com/octo/blog/blob/main/docs/t/shot.png?raw=true" alt="shot">`
	if out != want {
		t.Errorf("Rewrite() = %q, want %q", out, want)
	}
}

func TestRewriteSkipsAbsoluteTargets(t *testing.T) {
	src := "![a](https://example.com/a.png) and <img src=\"http://example.com/b.png\">"
	out, n := Rewrite(src, "/repo/docs", "/repo", testRef)

	if n != 0 {
		t.Errorf("Rewrite() n = %d, want 0", n)
	}
	if out != src {
		t.Errorf("Rewrite() changed absolute targets:\n%q", out)
	}
}

func TestRewriteEncodesEscapableSegments(t *testing.T) {
	src := "![屏幕](img/屏幕 截图.png)"
	out, n := Rewrite(src, "/repo/docs/文章", "/repo", testRef)

	if n != 1 {
		t.Fatalf("Rewrite() n = %d, want 1", n)
	}
	want := "![屏幕](https://github.com/octo/blog/blob/main/docs/%E6%96%87%E7%AB%A0/img/%E5%B1%8F%E5%B9%95%20%E6%88%AA%E5%9B%BE.png?raw=true)"
	if out != want {
		t.Errorf("Rewrite() = %q, want %q", out, want)
	}
}

func TestFileRewritesInPlace(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "docs", "topic")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(sub, "article.md")
	if err := os.WriteFile(path, []byte("![p](pic.png)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed, err := File(path, testRef, dir)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if !changed {
		t.Fatal("File() changed = false, want true")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "![p](https://github.com/octo/blog/blob/main/docs/topic/pic.png?raw=true)\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}

	changed, err = File(path, testRef, dir)
	if err != nil {
		t.Fatalf("second File() error = %v", err)
	}
	if changed {
		t.Error("second File() changed = true, want false")
	}
}

package render

import (
	"io/fs"
	"strings"
)

const (
	markerStart = "<!-- START -->"
	markerEnd   = "<!-- END -->"
)

// DefaultPreamble replaces the template when the file is missing or
// carries no marker pair. It is used verbatim, markers included.
const DefaultPreamble = "# My blogs\n\n" + markerStart + "\ngenerated table\n" + markerEnd + "\n"

// Preamble returns everything before the START marker of the template
// at templatePath. The template counts only when both markers are
// present, START first; otherwise, and when the file cannot be read,
// DefaultPreamble is returned.
func Preamble(fsys fs.FS, templatePath string) string {
	if templatePath == "" {
		return DefaultPreamble
	}
	data, err := fs.ReadFile(fsys, templatePath)
	if err != nil {
		return DefaultPreamble
	}

	text := string(data)
	start := strings.Index(text, markerStart)
	if start < 0 || !strings.Contains(text[start+len(markerStart):], markerEnd) {
		return DefaultPreamble
	}
	return text[:start]
}

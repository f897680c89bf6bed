package render

import (
	"io"
	"sort"
	"strings"

	"blogkit/internal/domain/content"
)

// Table renders the bilingual index as a Markdown table. With sorted
// set, rows are ordered by their rendered English cell; otherwise they
// keep discovery order.
func Table(records []content.ArticleRecord, sorted bool) string {
	rows := make([]content.ArticleRecord, len(records))
	copy(rows, records)
	if sorted {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].EN.Cell() < rows[j].EN.Cell()
		})
	}

	var b strings.Builder
	b.WriteString("| Link | 中文版 |\n")
	b.WriteString("| ---- | ---- |\n")
	for _, r := range rows {
		b.WriteString("| ")
		b.WriteString(r.EN.Cell())
		b.WriteString(" | ")
		b.WriteString(r.ZH.Cell())
		b.WriteString(" |\n")
	}
	return b.String()
}

// WriteReadme writes the preamble followed by the generated table.
func WriteReadme(w io.Writer, preamble, table string) error {
	if _, err := io.WriteString(w, preamble); err != nil {
		return err
	}
	_, err := io.WriteString(w, table)
	return err
}

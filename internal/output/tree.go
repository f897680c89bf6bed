package output

import (
	"github.com/disiqueira/gotree/v3"

	"blogkit/internal/domain/content"
)

// CatalogTree renders discovered records as a visual tree, one node
// per article with a child per available language.
func CatalogTree(rootLabel string, records []content.ArticleRecord) string {
	tree := gotree.New(rootLabel)
	for _, rec := range records {
		node := tree.Add(rec.Name)
		if !rec.EN.IsZero() {
			node.Add("en: " + rec.EN.Title)
		}
		if !rec.ZH.IsZero() {
			node.Add("zh: " + rec.ZH.Title)
		}
	}
	return tree.Print()
}

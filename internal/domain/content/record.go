package content

// NA fills a table cell when an article has no link for that language.
const NA = "N/A"

// Link is one published article link in a single language.
type Link struct {
	Title string
	URL   string
}

func (l Link) IsZero() bool {
	return l.URL == ""
}

// Cell renders the link as a Markdown table cell, or NA when unset.
func (l Link) Cell() string {
	if l.IsZero() {
		return NA
	}
	return "[" + l.Title + "](" + l.URL + ")"
}

// ArticleRecord collects the per-language links discovered for one
// article. Both sides start unset and are filled as the scan finds the
// English and Chinese variants.
type ArticleRecord struct {
	Name string
	EN   Link
	ZH   Link
}

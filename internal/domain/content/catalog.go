package content

// Catalog accumulates article records in discovery order. Upsert hands
// back the existing record when the same name shows up again, so the
// English and Chinese variants of one article merge into one row.
type Catalog struct {
	order []string
	items map[string]*ArticleRecord
}

func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string]*ArticleRecord)}
}

func (c *Catalog) Upsert(name string) *ArticleRecord {
	if rec, ok := c.items[name]; ok {
		return rec
	}
	rec := &ArticleRecord{Name: name}
	c.items[name] = rec
	c.order = append(c.order, name)
	return rec
}

func (c *Catalog) Get(name string) (*ArticleRecord, bool) {
	rec, ok := c.items[name]
	return rec, ok
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// Records returns copies of the accumulated records in first-seen
// order.
func (c *Catalog) Records() []ArticleRecord {
	out := make([]ArticleRecord, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, *c.items[name])
	}
	return out
}

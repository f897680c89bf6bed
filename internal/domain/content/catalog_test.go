package content

import "testing"

func TestCatalogUpsertMerges(t *testing.T) {
	cat := NewCatalog()

	first := cat.Upsert("topic")
	first.EN = Link{Title: "Topic", URL: "https://example.com/en"}

	again := cat.Upsert("topic")
	if again != first {
		t.Fatal("Upsert() returned a new record for an existing name")
	}
	again.ZH = Link{Title: "主题", URL: "https://example.com/zh"}

	if cat.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cat.Len())
	}
	rec := cat.Records()[0]
	if rec.EN.Title != "Topic" || rec.ZH.Title != "主题" {
		t.Errorf("record did not merge both languages: %+v", rec)
	}
}

func TestCatalogKeepsDiscoveryOrder(t *testing.T) {
	cat := NewCatalog()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		cat.Upsert(name)
	}
	cat.Upsert("zeta") // repeat must not move the row

	recs := cat.Records()
	want := []string{"zeta", "alpha", "mid"}
	if len(recs) != len(want) {
		t.Fatalf("Records() len = %d, want %d", len(recs), len(want))
	}
	for i, name := range want {
		if recs[i].Name != name {
			t.Errorf("Records()[%d].Name = %v, want %v", i, recs[i].Name, name)
		}
	}
}

func TestLinkCell(t *testing.T) {
	tests := []struct {
		name string
		link Link
		want string
	}{
		{name: "Unset", link: Link{}, want: "N/A"},
		{name: "Set", link: Link{Title: "Intro", URL: "https://example.com"}, want: "[Intro](https://example.com)"},
		{name: "TitleOnly", link: Link{Title: "ghost"}, want: "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.link.Cell(); got != tt.want {
				t.Errorf("Cell() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeDirConfig(t *testing.T) {
	cfg, err := DecodeDirConfig([]byte(`{"type":"series","title":{"en":"Go Series","zh":"Go 系列"}}`))
	if err != nil {
		t.Fatalf("DecodeDirConfig() error = %v", err)
	}
	if !cfg.IsSeries() {
		t.Error("IsSeries() = false, want true")
	}
	if cfg.Title.EN != "Go Series" || cfg.Title.ZH != "Go 系列" {
		t.Errorf("titles = %+v", cfg.Title)
	}
	if cfg.WIP {
		t.Error("WIP = true, want false")
	}

	if _, err := DecodeDirConfig([]byte(`{"wip": maybe}`)); err == nil {
		t.Error("DecodeDirConfig() = nil error for malformed JSON")
	}
}

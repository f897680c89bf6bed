package content

import (
	"encoding/json"
	"fmt"
)

// DirConfigName is the per-directory marker file. Its presence stops
// convention-based discovery for that directory and everything below.
const DirConfigName = "article.json"

// TypeSeries marks a directory whose link points at the directory
// listing instead of a single file.
const TypeSeries = "series"

// LangTitles carries per-language display titles from a directory
// config. An empty field falls back to the file-derived title.
type LangTitles struct {
	EN string `json:"en"`
	ZH string `json:"zh"`
}

func (t LangTitles) Any() bool {
	return t.EN != "" || t.ZH != ""
}

// DirConfig is the decoded form of one article.json.
type DirConfig struct {
	WIP   bool       `json:"wip"`
	Type  string     `json:"type"`
	Title LangTitles `json:"title"`
}

func (c DirConfig) IsSeries() bool {
	return c.Type == TypeSeries
}

func DecodeDirConfig(data []byte) (DirConfig, error) {
	var cfg DirConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DirConfig{}, fmt.Errorf("parse directory config: %w", err)
	}
	return cfg, nil
}

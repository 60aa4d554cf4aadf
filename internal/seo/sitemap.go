package seo

import (
	"encoding/xml"
	"strings"
	"time"
)

// sitemap.orgのurlset形式。
type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Entry はサイトマップの1ページ分。
type Entry struct {
	Path       string
	LastMod    time.Time
	ChangeFreq string
	Priority   string
}

// BuildSitemap は静的ページ＋渡されたエントリからXMLを組み立てる。
func BuildSitemap(baseURL string, entries []Entry) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	//固定ページ
	statics := []Entry{
		{Path: "/", ChangeFreq: "daily", Priority: "1.0"},
		{Path: "/products", ChangeFreq: "daily", Priority: "0.9"},
		{Path: "/blog", ChangeFreq: "weekly", Priority: "0.7"},
	}

	for _, e := range append(statics, entries...) {
		u := urlEntry{
			Loc:        base + e.Path,
			ChangeFreq: e.ChangeFreq,
			Priority:   e.Priority,
		}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), body...), nil
}

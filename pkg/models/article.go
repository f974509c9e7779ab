package models

import "time"

// ArticleListing is one row from a myMoment article overview page.
// Discovery persists these fields into new work records.
type ArticleListing struct {
	ID          string
	Title       string
	Author      string
	Category    string
	URL         string
	EditedAt    *time.Time
	PublishedAt *time.Time
}

// ArticleDetail is a full article fetched during preparation.
type ArticleDetail struct {
	ArticleListing

	// Content is the extracted plain text of the article body.
	Content string

	// RawHTML is the body markup as served, kept for re-extraction.
	RawHTML string

	ScrapedAt time.Time
}

// ArticleFilter narrows which articles discovery picks up.
type ArticleFilter struct {
	// Tabs are myMoment overview tabs to scan ("alle", "meine", ...).
	// Empty means the default tab.
	Tabs []string

	// Category keeps only articles in the given category. Empty
	// matches all.
	Category string

	// Keywords keeps only articles whose title contains at least one
	// keyword (case-insensitive). Empty matches all.
	Keywords []string
}

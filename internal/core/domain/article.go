package domain

import "errors"

var ErrBookmarkNotFound = errors.New("bookmark not found")

// ArticleSource identifies the publisher of an article.
type ArticleSource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Article is a single news item as delivered by GET /api/news.
type Article struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	Image       string        `json:"image"`
	PublishedAt string        `json:"publishedAt"`
	Source      ArticleSource `json:"source"`
}

// Bookmark is a saved article. The article URL is its identity: the UI
// deduplicates, disables controls, and issues deletes by URL, never by the
// backend-assigned ID.
type Bookmark struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      string `json:"source"`
}

// BookmarkOf projects an article into the flat shape POST /api/bookmarks
// expects (source collapses to the publisher name).
func BookmarkOf(a Article) Bookmark {
	return Bookmark{
		Title:       a.Title,
		URL:         a.URL,
		Description: a.Description,
		Image:       a.Image,
		PublishedAt: a.PublishedAt,
		Source:      a.Source.Name,
	}
}

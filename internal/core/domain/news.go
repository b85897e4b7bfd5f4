package domain

// NewsArticle is a read-only editorial item. There is no mutation path:
// articles arrive through the home snapshot or the bundled samples.
type NewsArticle struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Region      string `json:"region"`
	PublishedAt string `json:"published_at,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	Content     string `json:"content,omitempty"`
}

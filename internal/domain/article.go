package domain

// Article is a news article in the NewsAPI shape. URL "#" means the
// article has no real link.
type Article struct {
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Source      ArticleSource `json:"source"`
	PublishedAt string        `json:"publishedAt"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage,omitempty"`
}

type ArticleSource struct {
	Name string `json:"name"`
}

package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mindfulme/internal/domain"
	"mindfulme/internal/source"
)

const (
	SourceID   = "newsapi"
	SourceName = "NewsAPI"

	removedMarker  = "[Removed]"
	minTitleLength = 10
)

// Config holds NewsAPI source configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Source implements service.NewsSource for NewsAPI.
type Source struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// New creates a new NewsAPI source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: source.NewHTTPClient(cfg.Timeout),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     logger.With("source", SourceID),
	}
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// Configured reports whether an API key is available.
func (s *Source) Configured() bool {
	return s.apiKey != ""
}

// FetchArticles searches for category plus general wellness terms, newest
// first, and drops articles that are unusable on the dashboard. At most
// limit articles are returned; total is the count before truncation.
func (s *Source) FetchArticles(ctx context.Context, category string, limit int) (articles []domain.Article, total int, err error) {
	if !s.Configured() {
		return nil, 0, fmt.Errorf("fetch articles: no api key")
	}

	query := url.Values{
		"q":        {SearchQuery(category)},
		"sortBy":   {"publishedAt"},
		"language": {"en"},
		"pageSize": {strconv.Itoa(limit)},
	}
	headers := http.Header{"X-Api-Key": {s.apiKey}}

	var resp APIResponse
	if err := source.GetJSON(ctx, s.httpClient, s.baseURL+"/v2/everything", query, headers, &resp, checkErrNewsAPI); err != nil {
		return nil, 0, fmt.Errorf("fetch articles: %w", err)
	}
	if resp.Articles == nil {
		return nil, 0, fmt.Errorf("fetch articles: %w", source.ErrEmptyResponse)
	}

	relevant := s.transform(resp.Articles)

	s.logger.Debug("fetched articles",
		"category", category,
		"received", len(resp.Articles),
		"relevant", len(relevant),
	)

	total = len(relevant)
	if len(relevant) > limit {
		relevant = relevant[:limit]
	}
	return relevant, total, nil
}

// SearchQuery broadens category with general wellness terms.
func SearchQuery(category string) string {
	return fmt.Sprintf(`%s OR mindfulness OR wellness OR "mental health"`, category)
}

func (s *Source) transform(raw []Article) []domain.Article {
	articles := make([]domain.Article, 0, len(raw))
	for _, a := range raw {
		if !relevant(a) {
			continue
		}
		article := domain.Article{
			Title:       *a.Title,
			Description: *a.Description,
			Source:      domain.ArticleSource{Name: a.Source.Name},
			PublishedAt: a.PublishedAt,
			URL:         a.URL,
		}
		if article.URL == "" {
			article.URL = "#"
		}
		if a.URLToImage != nil {
			article.URLToImage = *a.URLToImage
		}
		articles = append(articles, article)
	}
	return articles
}

func relevant(a Article) bool {
	if a.Title == nil || a.Description == nil || *a.Description == "" {
		return false
	}
	if len(*a.Title) <= minTitleLength {
		return false
	}
	return !strings.Contains(*a.Title, removedMarker) && !strings.Contains(*a.Description, removedMarker)
}

// Check for error in NewsAPI response
func checkErrNewsAPI(body []byte) error {
	var resp struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err == nil && resp.Status == "error" {
		return fmt.Errorf("%s: %s", resp.Code, resp.Message)
	}
	return nil
}

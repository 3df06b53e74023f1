package quotable

import (
	"context"
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
	SourceID   = "quotable"
	SourceName = "Quotable.io"
)

// Config holds Quotable source configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Source implements service.QuoteSource for the Quotable API.
type Source struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// New creates a new Quotable source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: source.NewHTTPClient(cfg.Timeout),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger.With("source", SourceID),
	}
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchQuotes fetches up to limit quotes matching tags. An answer without
// any quote is an error.
func (s *Source) FetchQuotes(ctx context.Context, tags string, limit int) ([]domain.Quote, error) {
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if tags != "" {
		query.Set("tags", tags)
	}

	var resp APIResponse
	if err := source.GetJSON(ctx, s.httpClient, s.baseURL+"/quotes", query, nil, &resp, nil); err != nil {
		return nil, fmt.Errorf("fetch quotes: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("fetch quotes: %w", source.ErrEmptyResponse)
	}

	s.logger.Debug("fetched quotes", "count", len(resp.Results), "tags", tags)

	return s.transform(resp.Results), nil
}

func (s *Source) transform(results []Quote) []domain.Quote {
	quotes := make([]domain.Quote, 0, len(results))
	for _, q := range results {
		quotes = append(quotes, domain.Quote{
			ID:      q.ID,
			Content: q.Content,
			Author:  q.Author,
			Tags:    q.Tags,
		})
	}
	return quotes
}

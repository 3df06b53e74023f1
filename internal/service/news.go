package service

import (
	"context"
	"log/slog"
	"strings"

	"mindfulme/internal/domain"
	"mindfulme/internal/fallback"
)

const (
	DefaultNewsCategory = "mental health"

	SourceNewsLive     = "External API - NewsAPI"
	SourceNewsCurated  = "Curated Mental Health News (No API Key)"
	SourceNewsFallback = "Fallback News Collection (External API Error)"
	noteNewsFallback   = "NewsAPI temporarily unavailable"
)

type NewsService struct {
	source   NewsSource
	fallback *fallback.Store
	logger   *slog.Logger
}

func NewNewsService(source NewsSource, fb *fallback.Store, logger *slog.Logger) *NewsService {
	return &NewsService{
		source:   source,
		fallback: fb,
		logger:   logger.With("service", "news"),
	}
}

// News returns up to limit articles for category. It never fails.
func (s *NewsService) News(ctx context.Context, category string, limit int) *domain.NewsResponse {
	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultNewsCategory
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	if !s.source.Configured() {
		s.logger.Debug("no news api key, serving curated articles", "category", category)
		return s.curated(SourceNewsCurated, "", category, limit)
	}

	articles, total, err := s.source.FetchArticles(ctx, category, limit)
	if err != nil {
		s.logger.Warn("news upstream failed, using fallback",
			"upstream", s.source.Name(),
			"category", category,
			"error", err,
		)
		return s.curated(SourceNewsFallback, noteNewsFallback, category, limit)
	}

	s.logger.Info("served live news", "category", category, "count", len(articles))
	resp := &domain.NewsResponse{
		Envelope:     domain.NewEnvelope(SourceNewsLive),
		Articles:     articles,
		TotalResults: total,
		Category:     category,
	}
	resp.Cacheable = true
	return resp
}

func (s *NewsService) curated(source, note, category string, limit int) *domain.NewsResponse {
	filtered := s.fallback.News(category)
	total := len(filtered)
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	resp := &domain.NewsResponse{
		Envelope:     domain.NewEnvelope(source),
		Articles:     filtered,
		TotalResults: total,
		Category:     category,
	}
	resp.Note = note
	return resp
}

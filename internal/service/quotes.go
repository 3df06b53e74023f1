package service

import (
	"context"
	"log/slog"

	"mindfulme/internal/domain"
	"mindfulme/internal/fallback"
)

const (
	DefaultQuoteTags = "motivational,inspirational,wisdom"

	SourceQuotesLive     = "External API - Quotable.io"
	SourceQuotesFallback = "Fallback Data (External API Unavailable)"
	noteQuotesFallback   = "Quotable API temporarily unavailable"
)

type QuoteService struct {
	source   QuoteSource
	fallback *fallback.Store
	logger   *slog.Logger
}

func NewQuoteService(source QuoteSource, fb *fallback.Store, logger *slog.Logger) *QuoteService {
	return &QuoteService{
		source:   source,
		fallback: fb,
		logger:   logger.With("service", "quotes"),
	}
}

// Quotes always succeeds: upstream failures are answered from the fallback
// pool and flagged through Source and Note.
func (s *QuoteService) Quotes(ctx context.Context, tags string, limit int) *domain.QuotesResponse {
	if tags == "" {
		tags = DefaultQuoteTags
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	quotes, err := s.source.FetchQuotes(ctx, tags, limit)
	if err == nil {
		s.logger.Info("served live quotes", "count", len(quotes))
		resp := &domain.QuotesResponse{
			Envelope: domain.NewEnvelope(SourceQuotesLive),
			Data:     quotes,
			Count:    len(quotes),
		}
		resp.Cacheable = true
		return resp
	}

	s.logger.Warn("quote upstream failed, using fallback", "upstream", s.source.Name(), "error", err)

	sampled := s.fallback.Quotes(limit)
	resp := &domain.QuotesResponse{
		Envelope: domain.NewEnvelope(SourceQuotesFallback),
		Data:     sampled,
		Count:    len(sampled),
	}
	resp.Note = noteQuotesFallback
	return resp
}

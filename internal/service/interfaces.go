package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"mindfulme/internal/domain"
)

type QuoteSource interface {
	Name() string
	FetchQuotes(ctx context.Context, tags string, limit int) ([]domain.Quote, error)
}

type WeatherSource interface {
	Name() string
	Configured() bool
	FetchWeather(ctx context.Context, lat, lon float64) (*domain.Weather, error)
}

type NewsSource interface {
	Name() string
	Configured() bool
	FetchArticles(ctx context.Context, category string, limit int) ([]domain.Article, int, error)
}

type Publisher interface {
	PublishMood(ctx context.Context, entry *domain.MoodEntry, insight domain.Insight) error
	Close() error
}

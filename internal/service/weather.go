package service

import (
	"context"
	"log/slog"

	"mindfulme/internal/domain"
	"mindfulme/internal/fallback"
)

const (
	SourceWeatherLive     = "External API - OpenWeatherMap"
	SourceWeatherDemo     = "Demo Weather Data (No API Key)"
	SourceWeatherFallback = "Fallback Weather Data (External API Error)"
	noteWeatherFallback   = "OpenWeatherMap API temporarily unavailable"
)

type WeatherService struct {
	source   WeatherSource
	fallback *fallback.Store
	logger   *slog.Logger
}

func NewWeatherService(source WeatherSource, fb *fallback.Store, logger *slog.Logger) *WeatherService {
	return &WeatherService{
		source:   source,
		fallback: fb,
		logger:   logger.With("service", "weather"),
	}
}

// Weather validates the raw coordinates and returns current conditions.
// The only error it reports is ErrInvalidCoordinates; without a key it
// serves demo data and on upstream failure the canned record.
func (s *WeatherService) Weather(ctx context.Context, rawLat, rawLon string) (*domain.WeatherResponse, error) {
	lat, err := ParseCoordinate(rawLat)
	if err != nil {
		return nil, err
	}
	lon, err := ParseCoordinate(rawLon)
	if err != nil {
		return nil, err
	}

	if !s.source.Configured() {
		s.logger.Debug("no weather api key, serving demo data")
		return &domain.WeatherResponse{
			Envelope: domain.NewEnvelope(SourceWeatherDemo),
			Data:     s.fallback.DemoWeather(),
		}, nil
	}

	weather, err := s.source.FetchWeather(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("weather upstream failed, using fallback",
			"upstream", s.source.Name(),
			"lat", lat,
			"lon", lon,
			"error", err,
		)
		resp := &domain.WeatherResponse{
			Envelope: domain.NewEnvelope(SourceWeatherFallback),
			Data:     s.fallback.Weather(),
		}
		resp.Note = noteWeatherFallback
		return resp, nil
	}

	s.logger.Info("served live weather", "lat", lat, "lon", lon)
	resp := &domain.WeatherResponse{
		Envelope: domain.NewEnvelope(SourceWeatherLive),
		Data:     weather,
	}
	resp.Cacheable = true
	return resp, nil
}

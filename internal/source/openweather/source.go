package openweather

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
	SourceID   = "openweather"
	SourceName = "OpenWeatherMap"
)

// Config holds OpenWeatherMap source configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Source implements service.WeatherSource for OpenWeatherMap.
type Source struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// New creates a new OpenWeatherMap source.
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

// FetchWeather fetches current conditions in imperial units.
func (s *Source) FetchWeather(ctx context.Context, lat, lon float64) (*domain.Weather, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("fetch weather: no api key")
	}

	query := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"appid": {s.apiKey},
		"units": {"imperial"},
	}

	var resp APIResponse
	if err := source.GetJSON(ctx, s.httpClient, s.baseURL+"/data/2.5/weather", query, nil, &resp, nil); err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}
	if len(resp.Weather) == 0 {
		return nil, fmt.Errorf("fetch weather: %w", source.ErrEmptyResponse)
	}

	s.logger.Debug("fetched weather", "location", resp.Name, "condition", resp.Weather[0].Main)

	return s.transform(&resp), nil
}

func (s *Source) transform(resp *APIResponse) *domain.Weather {
	w := &domain.Weather{
		Name: resp.Name,
		Main: domain.WeatherMain{
			Temp:      resp.Main.Temp,
			FeelsLike: resp.Main.FeelsLike,
			Humidity:  resp.Main.Humidity,
		},
		Wind: domain.Wind{Speed: resp.Wind.Speed},
	}
	for _, c := range resp.Weather {
		w.Conditions = append(w.Conditions, domain.WeatherCondition{
			Main:        c.Main,
			Description: c.Description,
			Icon:        c.Icon,
		})
	}
	return w
}

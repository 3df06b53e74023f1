package server

import (
	"net/http"
	"time"

	"mindfulme/internal/domain"
	"mindfulme/internal/service"
)

const demoMode = "Demo Mode"

type healthResponse struct {
	Status    string      `json:"status"`
	Timestamp string      `json:"timestamp"`
	Server    string      `json:"server"`
	Version   string      `json:"version"`
	Uptime    int64       `json:"uptime"`
	APIs      apiModes    `json:"apis"`
	Endpoints []string    `json:"endpoints"`
	Cache     cacheStatus `json:"cache"`
}

type apiModes struct {
	Quotable string `json:"quotable"`
	Weather  string `json:"weather"`
	News     string `json:"news"`
}

type cacheStatus struct {
	Entries int    `json:"entries"`
	TTL     string `json:"ttl"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	modes := apiModes{
		Quotable: service.SourceQuotesLive,
		Weather:  demoMode,
		News:     demoMode,
	}
	if s.opts.WeatherConfigured {
		modes.Weather = service.SourceWeatherLive
	}
	if s.opts.NewsConfigured {
		modes.News = service.SourceNewsLive
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: domain.Now(),
		Server:    s.serverName(),
		Version:   Version,
		Uptime:    int64(time.Since(s.started).Seconds()),
		APIs:      modes,
		Endpoints: []string{
			"GET /api/quotes",
			"GET /api/weather/:lat/:lon",
			"GET /api/news/:category",
			"POST /api/mood",
		},
		Cache: cacheStatus{Entries: s.cache.Len(), TTL: s.cache.TTL().String()},
	})
}

type docsResponse struct {
	Name         string             `json:"name"`
	Version      string             `json:"version"`
	Description  string             `json:"description"`
	ExternalAPIs map[string]apiDocs `json:"externalAPIs"`
	Endpoints    map[string]string  `json:"endpoints"`
	Timestamp    string             `json:"timestamp"`
}

type apiDocs struct {
	URL           string `json:"url"`
	Purpose       string `json:"purpose"`
	Status        string `json:"status"`
	Documentation string `json:"documentation"`
}

func keyStatus(configured bool) string {
	if configured {
		return "Active (API Key Provided)"
	}
	return "Demo Mode (No API Key)"
}

func (s *Server) handleDocs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, docsResponse{
		Name:        "MindfulMe API",
		Version:     Version,
		Description: "Mental wellness dashboard backed by three external APIs",
		ExternalAPIs: map[string]apiDocs{
			"quotable": {
				URL:           "https://api.quotable.io",
				Purpose:       "Inspirational quotes for mental wellness",
				Status:        "Active (Free - No key required)",
				Documentation: "https://github.com/lukePeavey/quotable",
			},
			"openweathermap": {
				URL:           "https://api.openweathermap.org",
				Purpose:       "Weather data for mood-weather correlation",
				Status:        keyStatus(s.opts.WeatherConfigured),
				Documentation: "https://openweathermap.org/api",
			},
			"newsapi": {
				URL:           "https://newsapi.org",
				Purpose:       "Mental health news aggregation",
				Status:        keyStatus(s.opts.NewsConfigured),
				Documentation: "https://newsapi.org/docs",
			},
		},
		Endpoints: map[string]string{
			"GET /health":                "Server health and external API status",
			"GET /api/quotes":            "Inspirational quotes from Quotable",
			"GET /api/weather/:lat/:lon": "Current weather from OpenWeatherMap",
			"GET /api/news/:category":    "Mental health news from NewsAPI",
			"POST /api/mood":             "Mood logging with a supportive insight",
		},
		Timestamp: domain.Now(),
	})
}

package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"mindfulme/internal/cache"
	"mindfulme/internal/domain"
	"mindfulme/internal/fallback"
	"mindfulme/internal/service"
	"mindfulme/internal/service/mocks"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	quoteSource   *mocks.MockQuoteSource
	weatherSource *mocks.MockWeatherSource
	newsSource    *mocks.MockNewsSource
	publisher     *mocks.MockPublisher

	cache   *cache.Cache
	logger  *slog.Logger
	handler http.Handler
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	s.quoteSource = mocks.NewMockQuoteSource(s.ctrl)
	s.weatherSource = mocks.NewMockWeatherSource(s.ctrl)
	s.newsSource = mocks.NewMockNewsSource(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.quoteSource.EXPECT().Name().Return("Quotable.io").AnyTimes()
	s.weatherSource.EXPECT().Name().Return("OpenWeatherMap").AnyTimes()
	s.newsSource.EXPECT().Name().Return("NewsAPI").AnyTimes()

	c, err := cache.New(5*time.Minute, 100)
	s.Require().NoError(err)
	s.cache = c

	fb := fallback.NewSeededStore(7)
	srv := New(Services{
		Quotes:  service.NewQuoteService(s.quoteSource, fb, s.logger),
		Weather: service.NewWeatherService(s.weatherSource, fb, s.logger),
		News:    service.NewNewsService(s.newsSource, fb, s.logger),
		Mood:    service.NewMoodService(s.publisher, s.logger),
	}, s.cache, Options{ServerID: "test", WeatherConfigured: true}, s.logger)
	s.handler = srv.Routes()
}

func (s *ServerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (s *ServerTestSuite) TestQuotes_CachedByteIdentical() {
	live := []domain.Quote{{ID: "a", Content: "Be here now.", Author: "Ram Dass"}}
	s.quoteSource.EXPECT().FetchQuotes(gomock.Any(), service.DefaultQuoteTags, 5).Return(live, nil).Times(1)

	first := s.do(http.MethodGet, "/api/quotes?limit=5", "")
	time.Sleep(1100 * time.Millisecond)
	second := s.do(http.MethodGet, "/api/quotes?limit=5", "")

	s.Equal(http.StatusOK, first.Code)
	s.Equal(http.StatusOK, second.Code)
	s.Equal("MISS", first.Header().Get("X-Cache"))
	s.Equal("HIT", second.Header().Get("X-Cache"))
	s.Equal(first.Body.Bytes(), second.Body.Bytes())
	s.Equal(1, s.cache.Len())

	body := s.decode(first)
	s.Equal(true, body["success"])
	s.Equal(service.SourceQuotesLive, body["source"])
	s.EqualValues(1, body["count"])
}

func (s *ServerTestSuite) TestQuotes_FallbackNotCached() {
	s.quoteSource.EXPECT().FetchQuotes(gomock.Any(), service.DefaultQuoteTags, 3).
		Return(nil, errors.New("upstream down")).Times(2)

	for range 2 {
		rec := s.do(http.MethodGet, "/api/quotes?limit=3", "")
		s.Equal(http.StatusOK, rec.Code)

		body := s.decode(rec)
		s.Equal(true, body["success"])
		s.Contains(body["source"], "Fallback")
		s.NotEmpty(body["note"])
		s.LessOrEqual(len(body["data"].([]any)), 3)
	}
	s.Equal(0, s.cache.Len())
}

func (s *ServerTestSuite) TestQuotes_QueryOrderIsSeparateKey() {
	s.quoteSource.EXPECT().FetchQuotes(gomock.Any(), "wisdom", 2).
		Return([]domain.Quote{{Content: "x", Author: "y"}}, nil).Times(2)

	s.do(http.MethodGet, "/api/quotes?tags=wisdom&limit=2", "")
	s.do(http.MethodGet, "/api/quotes?limit=2&tags=wisdom", "")

	s.Equal(2, s.cache.Len())
}

func (s *ServerTestSuite) TestWeather_InvalidCoordinates() {
	rec := s.do(http.MethodGet, "/api/weather/abc/10", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decode(rec)
	s.Equal(false, body["success"])
	s.Equal("Invalid coordinates", body["error"])
	s.Equal("Please provide valid latitude and longitude numbers", body["message"])
	s.Equal(0, s.cache.Len())
}

func (s *ServerTestSuite) TestWeather_Live() {
	s.weatherSource.EXPECT().Configured().Return(true)
	s.weatherSource.EXPECT().FetchWeather(gomock.Any(), 40.7, -74.0).Return(&domain.Weather{
		Name:       "New York",
		Main:       domain.WeatherMain{Temp: 70, FeelsLike: 71, Humidity: 50},
		Conditions: []domain.WeatherCondition{{Main: "Clear", Description: "clear sky", Icon: "01d"}},
		Wind:       domain.Wind{Speed: 3},
	}, nil)

	rec := s.do(http.MethodGet, "/api/weather/40.7/-74.0", "")

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(service.SourceWeatherLive, body["source"])
	data := body["data"].(map[string]any)
	s.Equal("New York", data["name"])
	s.Equal("Clear", data["weather"].([]any)[0].(map[string]any)["main"])
	s.Equal(1, s.cache.Len())
}

func (s *ServerTestSuite) TestNews_CategoryFilter() {
	s.newsSource.EXPECT().Configured().Return(false)

	rec := s.do(http.MethodGet, "/api/news/workplace", "")

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(service.SourceNewsCurated, body["source"])
	s.Equal("workplace", body["category"])
	articles := body["articles"].([]any)
	s.Require().Len(articles, 1)
	s.Contains(articles[0].(map[string]any)["title"], "Workplace")
}

func (s *ServerTestSuite) TestNews_DefaultCategory() {
	s.newsSource.EXPECT().Configured().Return(false)

	rec := s.do(http.MethodGet, "/api/news?limit=1", "")

	body := s.decode(rec)
	s.Equal(service.DefaultNewsCategory, body["category"])
	s.Len(body["articles"].([]any), 1)
	s.EqualValues(2, body["totalResults"])
}

func (s *ServerTestSuite) TestMood_Good() {
	s.publisher.EXPECT().PublishMood(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	rec := s.do(http.MethodPost, "/api/mood", `{"mood":"good","score":4,"context":{"weather":"Clear"}}`)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(true, body["success"])
	s.Equal("Mood logged successfully", body["message"])
	data := body["data"].(map[string]any)
	s.Equal("good", data["mood"])
	s.EqualValues(4, data["score"])
	s.NotEmpty(data["id"])
	s.Equal("Clear", data["context"].(map[string]any)["weather"])
	insight := body["insight"].(map[string]any)
	s.Contains(insight["message"], "good headspace")
	s.Len(insight["recommendations"], 3)
}

func (s *ServerTestSuite) TestMood_MissingFields() {
	rec := s.do(http.MethodPost, "/api/mood", `{"mood":"anxious"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decode(rec)
	s.Equal(false, body["success"])
	s.Equal("Missing required fields", body["error"])
	s.Equal("Mood and score are required", body["message"])
}

func (s *ServerTestSuite) TestMood_InvalidScore() {
	rec := s.do(http.MethodPost, "/api/mood", `{"mood":"okay","score":"12"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid score", s.decode(rec)["error"])
}

func (s *ServerTestSuite) TestMood_MalformedBody() {
	rec := s.do(http.MethodPost, "/api/mood", `{"mood":`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid request body", s.decode(rec)["error"])
}

func (s *ServerTestSuite) TestNotFound() {
	rec := s.do(http.MethodGet, "/api/unknown", "")

	s.Equal(http.StatusNotFound, rec.Code)
	body := s.decode(rec)
	s.Equal(false, body["success"])
	s.Equal("Not found", body["error"])
	s.Contains(body["message"], "/api/unknown")
	s.Contains(body["availableEndpoints"], "/api/quotes")
}

func (s *ServerTestSuite) TestWrongMethodIsNotFound() {
	rec := s.do(http.MethodDelete, "/api/quotes", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal("healthy", body["status"])
	s.Equal("MindfulMe-test", body["server"])
	s.Equal(Version, body["version"])
	apis := body["apis"].(map[string]any)
	s.Equal(service.SourceQuotesLive, apis["quotable"])
	s.Equal(service.SourceWeatherLive, apis["weather"])
	s.Equal("Demo Mode", apis["news"])
	s.EqualValues(0, body["cache"].(map[string]any)["entries"])
}

func (s *ServerTestSuite) TestDocs() {
	rec := s.do(http.MethodGet, "/api", "")

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal("MindfulMe API", body["name"])
	apis := body["externalAPIs"].(map[string]any)
	s.Len(apis, 3)
	s.Equal("Demo Mode (No API Key)", apis["newsapi"].(map[string]any)["status"])
	s.Equal("Active (API Key Provided)", apis["openweathermap"].(map[string]any)["status"])
}

func (s *ServerTestSuite) TestCORS() {
	rec := s.do(http.MethodOptions, "/api/mood", "")

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = s.do(http.MethodGet, "/health", "")
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *ServerTestSuite) TestPanicBecomes500() {
	broken := New(Services{}, s.cache, Options{ServerID: "test"}, s.logger).Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
	rec := httptest.NewRecorder()
	broken.ServeHTTP(rec, req)

	s.Equal(http.StatusInternalServerError, rec.Code)
	body := s.decode(rec)
	s.Equal(false, body["success"])
	s.Equal("Internal server error", body["error"])
	s.Equal("Something went wrong. Please try again later.", body["message"])
}

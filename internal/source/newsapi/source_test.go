package newsapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

const articlesBody = `{
	"status":"ok",
	"totalResults":5,
	"articles":[
		{"source":{"id":null,"name":"Wellness Weekly"},"title":"Sleep hygiene and your mood","description":"How rest shapes resilience","url":"https://news.example/sleep","publishedAt":"2025-02-01T10:00:00Z","urlToImage":"https://news.example/sleep.jpg"},
		{"source":{"name":"Short"},"title":"Too short","description":"Title has ten chars","url":"https://news.example/short","publishedAt":"2025-02-01T09:00:00Z"},
		{"source":{"name":"Gone"},"title":"[Removed]","description":"[Removed]","url":"https://removed.com","publishedAt":"2025-02-01T08:00:00Z"},
		{"source":{"name":"NoDesc"},"title":"An article without description","description":null,"url":"https://news.example/nodesc","publishedAt":"2025-02-01T07:00:00Z"},
		{"source":{"name":"Mind Daily"},"title":"Mindfulness at the workplace","description":"Short breaks help teams","url":"","publishedAt":"2025-02-01T06:00:00Z"}
	]
}`

func TestFetchArticles_FiltersAndMaps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/v2/everything", r.URL.Path)
		assert.Equal(t, `stress OR mindfulness OR wellness OR "mental health"`, q.Get("q"))
		assert.Equal(t, "publishedAt", q.Get("sortBy"))
		assert.Equal(t, "en", q.Get("language"))
		assert.Equal(t, "10", q.Get("pageSize"))
		assert.Equal(t, "key", r.Header.Get("X-Api-Key"))
		w.Write([]byte(articlesBody))
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL, APIKey: "key", Timeout: time.Second}, testLogger())

	articles, total, err := s.FetchArticles(context.Background(), "stress", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, articles, 2)

	assert.Equal(t, "Sleep hygiene and your mood", articles[0].Title)
	assert.Equal(t, "Wellness Weekly", articles[0].Source.Name)
	assert.Equal(t, "https://news.example/sleep.jpg", articles[0].URLToImage)
	assert.Equal(t, "#", articles[1].URL)
}

func TestFetchArticles_TruncatesToLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(articlesBody))
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL, APIKey: "key", Timeout: time.Second}, testLogger())

	articles, total, err := s.FetchArticles(context.Background(), "stress", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, articles, 1)
}

func TestFetchArticles_InBandError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","code":"rateLimited","message":"Too many requests"}`))
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL, APIKey: "key", Timeout: time.Second}, testLogger())

	_, _, err := s.FetchArticles(context.Background(), "stress", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rateLimited")
}

func TestFetchArticles_MissingArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL, APIKey: "key", Timeout: time.Second}, testLogger())

	_, _, err := s.FetchArticles(context.Background(), "stress", 10)
	assert.Error(t, err)
}

func TestFetchArticles_NoKey(t *testing.T) {
	s := New(Config{BaseURL: "http://unused", Timeout: time.Second}, testLogger())

	assert.False(t, s.Configured())
	_, _, err := s.FetchArticles(context.Background(), "stress", 10)
	assert.Error(t, err)
}

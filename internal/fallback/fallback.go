// Package fallback holds the static content served when an upstream API is
// unreachable or has no credential configured.
package fallback

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"mindfulme/internal/domain"
)

var quotes = []domain.Quote{
	{
		Content: "The greatest revolution of our generation is the discovery that human beings, by changing the inner attitudes of their minds, can change the outer aspects of their lives.",
		Author:  "William James",
	},
	{
		Content: "What mental health needs is more sunlight, more candor, and more unashamed conversation.",
		Author:  "Glenn Close",
	},
	{
		Content: "Self-care is not selfish. You cannot serve from an empty vessel.",
		Author:  "Eleanor Brown",
	},
	{
		Content: "You are stronger than you think and more resilient than you imagine.",
		Author:  "Unknown",
	},
	{
		Content: "Progress, not perfection.",
		Author:  "Unknown",
	},
}

type newsItem struct {
	article domain.Article
	age     time.Duration
}

var news = []newsItem{
	{
		article: domain.Article{
			Title:       "Breakthrough Study Links Daily Mindfulness to Reduced Anxiety",
			Description: "New research shows 10 minutes of daily mindfulness can reduce anxiety by 35%",
			Source:      domain.ArticleSource{Name: "Mental Health Research Journal"},
			URL:         "https://example.com/mindfulness-study",
		},
		age: 2 * time.Hour,
	},
	{
		article: domain.Article{
			Title:       "Digital Therapy Apps Show Promise in Mental Health Treatment",
			Description: "Clinical trials demonstrate effectiveness of app-based therapeutic interventions",
			Source:      domain.ArticleSource{Name: "Digital Health Today"},
			URL:         "https://example.com/digital-therapy",
		},
		age: 5 * time.Hour,
	},
	{
		article: domain.Article{
			Title:       "Workplace Mental Health Programs Show 400% ROI",
			Description: "Companies investing in mental health support see significant returns",
			Source:      domain.ArticleSource{Name: "Business Wellness Today"},
			URL:         "https://example.com/workplace-mental-health",
		},
		age: 8 * time.Hour,
	},
}

var demoConditions = []string{"Clear", "Clouds", "Rain"}

// Store hands out fallback content. Sampling draws from rng, so a seeded
// source gives reproducible output.
type Store struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewStore(rng *rand.Rand) *Store {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Store{rng: rng, now: time.Now}
}

// NewSeededStore returns a Store with a deterministic random source.
func NewSeededStore(seed uint64) *Store {
	return NewStore(rand.New(rand.NewPCG(seed, seed)))
}

// PoolSize is the number of fallback quotes available.
func (s *Store) PoolSize() int {
	return len(quotes)
}

// Quotes returns min(n, PoolSize()) distinct quotes in random order.
func (s *Store) Quotes(n int) []domain.Quote {
	if n <= 0 {
		return []domain.Quote{}
	}
	if n > len(quotes) {
		n = len(quotes)
	}

	s.mu.Lock()
	perm := s.rng.Perm(len(quotes))
	s.mu.Unlock()

	out := make([]domain.Quote, n)
	for i := 0; i < n; i++ {
		out[i] = quotes[perm[i]]
	}
	return out
}

// News returns the pool articles whose title or description contains
// category, case-insensitively, with publish times relative to now.
func (s *Store) News(category string) []domain.Article {
	needle := strings.ToLower(category)
	now := s.now().UTC()

	out := make([]domain.Article, 0, len(news))
	for _, item := range news {
		a := item.article
		if !strings.Contains(strings.ToLower(a.Title), needle) &&
			!strings.Contains(strings.ToLower(a.Description), needle) {
			continue
		}
		a.PublishedAt = now.Add(-item.age).Format(time.RFC3339)
		out = append(out, a)
	}
	return out
}

// Weather is the fixed record served when the weather API errors out.
func (s *Store) Weather() *domain.Weather {
	return &domain.Weather{
		Name: "Weather Service Unavailable",
		Main: domain.WeatherMain{Temp: 72, FeelsLike: 75, Humidity: 60},
		Conditions: []domain.WeatherCondition{
			{Main: "Clear", Description: "fallback data", Icon: "01d"},
		},
		Wind: domain.Wind{Speed: 5},
	}
}

// DemoWeather synthesises plausible weather for installs without a key.
func (s *Store) DemoWeather() *domain.Weather {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &domain.Weather{
		Name: "Demo Location",
		Main: domain.WeatherMain{
			Temp:      float64(65 + s.rng.IntN(21)),
			FeelsLike: float64(65 + s.rng.IntN(21)),
			Humidity:  40 + s.rng.IntN(41),
		},
		Conditions: []domain.WeatherCondition{
			{Main: demoConditions[s.rng.IntN(len(demoConditions))], Description: "demo weather data", Icon: "01d"},
		},
		Wind: domain.Wind{Speed: float64(s.rng.IntN(16))},
	}
}

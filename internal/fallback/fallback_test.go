package fallback

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotes_DistinctAndBounded(t *testing.T) {
	s := NewSeededStore(42)

	for _, n := range []int{1, 3, 5, 10} {
		got := s.Quotes(n)

		want := n
		if want > s.PoolSize() {
			want = s.PoolSize()
		}
		require.Len(t, got, want)

		seen := make(map[string]bool)
		for _, q := range got {
			assert.False(t, seen[q.Content], "duplicate quote %q", q.Content)
			seen[q.Content] = true
			assert.Contains(t, quotes, q)
		}
	}
}

func TestQuotes_NonPositive(t *testing.T) {
	s := NewSeededStore(1)
	assert.Empty(t, s.Quotes(0))
	assert.Empty(t, s.Quotes(-3))
}

func TestQuotes_SeedIsDeterministic(t *testing.T) {
	a := NewSeededStore(7).Quotes(5)
	b := NewSeededStore(7).Quotes(5)
	assert.Equal(t, a, b)
}

func TestNews_FilterByCategory(t *testing.T) {
	s := NewSeededStore(1)

	got := s.News("workplace")
	require.Len(t, got, 1)
	for _, a := range got {
		text := strings.ToLower(a.Title + " " + a.Description)
		assert.Contains(t, text, "workplace")
	}
}

func TestNews_CaseInsensitive(t *testing.T) {
	s := NewSeededStore(1)

	assert.Len(t, s.News("MENTAL HEALTH"), 2)
	assert.Len(t, s.News("mindfulness"), 1)
	assert.Empty(t, s.News("astronomy"))
}

func TestNews_PublishedRelativeToNow(t *testing.T) {
	s := NewSeededStore(1)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	got := s.News("mindfulness")
	require.Len(t, got, 1)
	assert.Equal(t, "2025-03-01T10:00:00Z", got[0].PublishedAt)
}

func TestWeather_Canned(t *testing.T) {
	w := NewSeededStore(1).Weather()

	assert.Equal(t, 72.0, w.Main.Temp)
	assert.Equal(t, 60, w.Main.Humidity)
	assert.Equal(t, 5.0, w.Wind.Speed)
	require.Len(t, w.Conditions, 1)
	assert.Equal(t, "Clear", w.Conditions[0].Main)
}

func TestDemoWeather_Ranges(t *testing.T) {
	s := NewSeededStore(99)

	for i := 0; i < 200; i++ {
		w := s.DemoWeather()
		assert.GreaterOrEqual(t, w.Main.Temp, 65.0)
		assert.LessOrEqual(t, w.Main.Temp, 85.0)
		assert.GreaterOrEqual(t, w.Main.Humidity, 40)
		assert.LessOrEqual(t, w.Main.Humidity, 80)
		require.Len(t, w.Conditions, 1)
		assert.Contains(t, demoConditions, w.Conditions[0].Main)
	}
}

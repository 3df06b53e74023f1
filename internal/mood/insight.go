// Package mood maps a logged mood to a short supportive insight.
package mood

import (
	"strings"

	"mindfulme/internal/domain"
)

var insights = map[string]domain.Insight{
	domain.MoodAmazing: {
		Message: "Your positive energy is wonderful! This is a great time to build on these good feelings.",
		Recommendations: []string{
			"Practice gratitude by writing down what's contributing to this positive mood",
			"Share your joy with others - positivity is contagious",
			"Consider engaging in activities that maintain this energy level",
		},
	},
	domain.MoodGood: {
		Message: "You're in a good headspace today! This is perfect for productivity and connection.",
		Recommendations: []string{
			"Take advantage of this positive mood to tackle challenging tasks",
			"Reach out to friends or family you care about",
			"Practice mindfulness to fully appreciate this moment",
		},
	},
	domain.MoodOkay: {
		Message: "It's completely normal to have neutral days. You're doing just fine.",
		Recommendations: []string{
			"Be gentle with yourself - not every day needs to be extraordinary",
			"Try a small act of self-care that usually brings you comfort",
			"Consider light exercise or time in nature to boost your mood",
		},
	},
	domain.MoodDown: {
		Message: "It's okay to have difficult days. Your feelings are valid and this will pass.",
		Recommendations: []string{
			"Reach out to someone you trust for support",
			"Practice self-compassion - be as kind to yourself as you would a good friend",
			"Consider professional support if these feelings persist",
		},
	},
	domain.MoodAnxious: {
		Message: "Anxiety is challenging, but you have the strength to work through this.",
		Recommendations: []string{
			"Try the 4-7-8 breathing technique: inhale for 4, hold for 7, exhale for 8",
			"Use grounding techniques like the 5-4-3-2-1 method",
			"Consider speaking with a mental health professional if anxiety persists",
		},
	},
}

// Insight returns the entry for label, or the "okay" entry when the label
// is unknown. The score does not change the lookup.
func Insight(label string, score int) domain.Insight {
	in, ok := insights[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		in = insights[domain.MoodOkay]
	}
	recs := make([]string, len(in.Recommendations))
	copy(recs, in.Recommendations)
	return domain.Insight{Message: in.Message, Recommendations: recs}
}

// Known reports whether label has its own insight entry.
func Known(label string) bool {
	_, ok := insights[strings.ToLower(strings.TrimSpace(label))]
	return ok
}

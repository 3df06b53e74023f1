package domain

import "encoding/json"

// Mood labels recognised by the insight table.
const (
	MoodAmazing = "amazing"
	MoodGood    = "good"
	MoodOkay    = "okay"
	MoodDown    = "down"
	MoodAnxious = "anxious"
)

type MoodEntry struct {
	ID        string          `json:"id"`
	Mood      string          `json:"mood"`
	Score     int             `json:"score"`
	Timestamp string          `json:"timestamp"`
	Context   json.RawMessage `json:"context"`
	Processed string          `json:"processed"`
}

type Insight struct {
	Message         string   `json:"message"`
	Recommendations []string `json:"recommendations"`
}

package domain

import "time"

// Envelope carries the fields every JSON response shares.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Source    string `json:"source,omitempty"`
	Note      string `json:"note,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`

	// Cacheable marks responses built from a live upstream payload.
	Cacheable bool `json:"-"`
}

func NewEnvelope(source string) Envelope {
	return Envelope{
		Success:   true,
		Source:    source,
		Timestamp: Now(),
	}
}

// Now formats the current time the way every envelope reports it.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

type QuotesResponse struct {
	Envelope
	Data  []Quote `json:"data"`
	Count int     `json:"count"`
}

type WeatherResponse struct {
	Envelope
	Data *Weather `json:"data"`
}

type NewsResponse struct {
	Envelope
	Articles     []Article `json:"articles"`
	TotalResults int       `json:"totalResults"`
	Category     string    `json:"category"`
}

type MoodResponse struct {
	Envelope
	Data    *MoodEntry `json:"data"`
	Insight *Insight   `json:"insight"`
}

type ErrorResponse struct {
	Envelope
	AvailableEndpoints []string `json:"availableEndpoints,omitempty"`
}

func NewErrorResponse(errMsg, message string) *ErrorResponse {
	return &ErrorResponse{
		Envelope: Envelope{
			Success:   false,
			Error:     errMsg,
			Message:   message,
			Timestamp: Now(),
		},
	}
}

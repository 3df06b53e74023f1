package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"mindfulme/internal/domain"
	"mindfulme/internal/mood"
)

const (
	minScore = 1
	maxScore = 5

	moodLoggedMessage = "Mood logged successfully"
)

// MoodRequest is the body of POST /api/mood. Score stays raw because
// clients send it either as a number or as a numeric string.
type MoodRequest struct {
	Mood      string          `json:"mood"`
	Score     json.RawMessage `json:"score"`
	Timestamp string          `json:"timestamp"`
	Context   json.RawMessage `json:"context"`
}

type MoodService struct {
	publisher Publisher
	logger    *slog.Logger
	newID     func() string
}

// NewMoodService creates the mood service. publisher may be nil, in which
// case entries are only echoed back.
func NewMoodService(publisher Publisher, logger *slog.Logger) *MoodService {
	return &MoodService{
		publisher: publisher,
		logger:    logger.With("service", "mood"),
		newID:     uuid.NewString,
	}
}

func (s *MoodService) Log(ctx context.Context, req MoodRequest) (*domain.MoodResponse, error) {
	label := strings.TrimSpace(req.Mood)
	if label == "" {
		return nil, fmt.Errorf("%w: mood", ErrMissingFields)
	}

	score, err := parseScore(req.Score)
	if err != nil {
		return nil, err
	}

	now := domain.Now()
	entry := &domain.MoodEntry{
		ID:        s.newID(),
		Mood:      label,
		Score:     score,
		Timestamp: req.Timestamp,
		Context:   normalizeContext(req.Context),
		Processed: now,
	}
	if entry.Timestamp == "" {
		entry.Timestamp = now
	}

	insight := mood.Insight(label, score)

	s.logger.Info("mood logged", "id", entry.ID, "mood", label, "score", score)

	if s.publisher != nil {
		if err := s.publisher.PublishMood(ctx, entry, insight); err != nil {
			s.logger.Error("failed to publish mood event", "id", entry.ID, "error", err)
		}
	}

	return &domain.MoodResponse{
		Envelope: domain.Envelope{
			Success:   true,
			Message:   moodLoggedMessage,
			Timestamp: now,
		},
		Data:    entry,
		Insight: &insight,
	}, nil
}

// parseScore accepts 4, 4.0 or "4". Absent, null, zero and empty values
// count as missing.
func parseScore(raw json.RawMessage) (int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, fmt.Errorf("%w: score", ErrMissingFields)
	}

	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidScore, err)
	}

	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		x = strings.TrimSpace(x)
		if x == "" {
			return 0, fmt.Errorf("%w: score", ErrMissingFields)
		}
		parsed, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidScore, x)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidScore, v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: not finite", ErrInvalidScore)
	}
	if f == 0 {
		return 0, fmt.Errorf("%w: score", ErrMissingFields)
	}

	score := int(math.Trunc(f))
	if score < minScore || score > maxScore {
		return 0, fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidScore, score, minScore, maxScore)
	}
	return score, nil
}

func normalizeContext(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(trimmed)
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"mindfulme/internal/service"
)

const maxMoodBody = 1 << 20

// proxyFunc produces the envelope for a GET proxy endpoint. cacheable
// reports whether the payload came from a live upstream.
type proxyFunc func(r *http.Request) (payload any, cacheable bool, err error)

// cached wraps fn with a read-through/write-through cache keyed by the
// request URI, query string included.
func (s *Server) cached(fn proxyFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.RequestURI()

		if body, ok := s.cache.Get(key); ok {
			s.logger.Debug("cache hit", "key", key)
			w.Header().Set("X-Cache", "HIT")
			writeRaw(w, http.StatusOK, body)
			return
		}

		payload, cacheable, err := fn(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		body, err := json.Marshal(payload)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("encode response: %w", err))
			return
		}

		if cacheable {
			s.cache.Set(key, body)
		}
		w.Header().Set("X-Cache", "MISS")
		writeRaw(w, http.StatusOK, body)
	}
}

func (s *Server) quotes(r *http.Request) (any, bool, error) {
	q := r.URL.Query()
	resp := s.services.Quotes.Quotes(r.Context(), q.Get("tags"), service.ParseLimit(q.Get("limit"), service.DefaultLimit))
	return resp, resp.Cacheable, nil
}

func (s *Server) weather(r *http.Request) (any, bool, error) {
	resp, err := s.services.Weather.Weather(r.Context(), r.PathValue("lat"), r.PathValue("lon"))
	if err != nil {
		return nil, false, err
	}
	return resp, resp.Cacheable, nil
}

func (s *Server) news(r *http.Request) (any, bool, error) {
	limit := service.ParseLimit(r.URL.Query().Get("limit"), service.DefaultLimit)
	resp := s.services.News.News(r.Context(), r.PathValue("category"), limit)
	return resp, resp.Cacheable, nil
}

func (s *Server) handleMood(w http.ResponseWriter, r *http.Request) {
	var req service.MoodRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMoodBody)).Decode(&req); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", service.ErrInvalidBody, err))
		return
	}

	resp, err := s.services.Mood.Log(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, notFound(r.URL.RequestURI()))
}

// writeError maps service errors to client errors; anything unrecognised
// is logged and answered with the generic 500 envelope.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCoordinates):
		writeJSON(w, http.StatusBadRequest, badRequest("Invalid coordinates", "Please provide valid latitude and longitude numbers"))
	case errors.Is(err, service.ErrMissingFields):
		writeJSON(w, http.StatusBadRequest, badRequest("Missing required fields", "Mood and score are required"))
	case errors.Is(err, service.ErrInvalidScore):
		writeJSON(w, http.StatusBadRequest, badRequest("Invalid score", "Score must be a number between 1 and 5"))
	case errors.Is(err, service.ErrInvalidBody):
		writeJSON(w, http.StatusBadRequest, badRequest("Invalid request body", "Request body must be a JSON object"))
	default:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, internalError())
	}
}

package server

import (
	"encoding/json"
	"net/http"

	"mindfulme/internal/domain"
)

var availableEndpoints = []string{
	"/health",
	"/api",
	"/api/quotes",
	"/api/weather/:lat/:lon",
	"/api/news/:category",
	"/api/mood",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(internalError())
	}
	writeRaw(w, status, body)
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func badRequest(errMsg, message string) *domain.ErrorResponse {
	return domain.NewErrorResponse(errMsg, message)
}

func internalError() *domain.ErrorResponse {
	return domain.NewErrorResponse("Internal server error", "Something went wrong. Please try again later.")
}

func notFound(uri string) *domain.ErrorResponse {
	resp := domain.NewErrorResponse("Not found", "The requested resource "+uri+" was not found")
	resp.AvailableEndpoints = availableEndpoints
	return resp
}

package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"interview-prep/internal/analysis"
	"interview-prep/internal/apperr"
	"interview-prep/internal/gemini"
	"interview-prep/internal/interview"
)

type API struct {
	analysis  *analysis.Service
	interview *interview.Service
}

func NewAPI(llm gemini.Generator) *API {
	return &API{
		analysis:  analysis.NewService(llm),
		interview: interview.NewService(llm),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps the error taxonomy onto HTTP statuses: validation
// failures are the caller's to fix, everything else is a server-side
// generation failure.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *apperr.ValidationError
	if errors.As(err, &vErr) {
		writeError(w, http.StatusBadRequest, vErr.Message)
		return
	}
	log.Printf("api: %v", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}

package api

import (
	"encoding/json"
	"net/http"
)

type analyzeRequest struct {
	JobDescriptionText string `json:"jobDescriptionText"`
}

// AnalyzeHandler turns a pasted job description into structured prep
// material
// @Summary Analyze a job description
// @Description Extract role insights, generate categorized interview questions and attach skill-gap recommendations
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body analyzeRequest true "Job description to analyze"
// @Success 200 {object} analysis.Result
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /analyze [post]
func (a *API) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := a.analysis.Analyze(r.Context(), req.JobDescriptionText)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

package api

import (
	"encoding/json"
	"net/http"

	"interview-prep/internal/interview"
)

const (
	actionStart    = "start"
	actionContinue = "continue"
)

type interviewRequest struct {
	JobDescriptionText string              `json:"jobDescriptionText"`
	RoleTitle          string              `json:"roleTitle"`
	ChatHistory        []interview.Message `json:"chatHistory"`
	Action             string              `json:"action"`
}

type interviewResponse struct {
	ChatHistory []interview.Message `json:"chatHistory"`
}

// InterviewHandler runs one mock-interview transition
// @Summary Start or continue a mock interview
// @Description "start" resets the session and returns the opening question; "continue" folds the candidate's latest answer into the conversation and appends the interviewer's reply
// @Tags interview
// @Accept json
// @Produce json
// @Param request body interviewRequest true "Transition request"
// @Success 200 {object} interviewResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /interview [post]
func (a *API) InterviewHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req interviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var (
		history []interview.Message
		err     error
	)
	switch req.Action {
	case actionStart:
		history, err = a.interview.Start(r.Context(), req.JobDescriptionText, req.RoleTitle)
	case actionContinue:
		history, err = a.interview.Continue(r.Context(), req.JobDescriptionText, req.RoleTitle, req.ChatHistory)
	default:
		writeError(w, http.StatusBadRequest, "invalid action for interview")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, interviewResponse{ChatHistory: history})
}

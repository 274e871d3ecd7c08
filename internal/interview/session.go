// Package interview drives a turn-based mock interview. A session has no
// server-side state: the caller supplies the full message history on every
// transition and receives a new history back, so every transition is a pure
// function of (prior history, input).
package interview

import (
	"context"
	"fmt"
	"strings"

	"interview-prep/internal/apperr"
	"interview-prep/internal/gemini"
)

// Message roles as stored in the conversation history.
const (
	RoleUser   = "user"
	RoleAI     = "ai"
	RoleSystem = "system"
)

// Message is one turn of the conversation. The ordered message log is the
// entire session state.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

const (
	startFallback    = "I'm sorry, I couldn't generate a question at this time."
	continueFallback = "I'm sorry, I couldn't generate feedback or a new question."
)

type Service struct {
	llm gemini.Generator
}

func NewService(llm gemini.Generator) *Service {
	return &Service{llm: llm}
}

func buildStartPrompt(jobDescription, roleTitle string) string {
	return fmt.Sprintf(`You are an AI interviewer for a "%s" role. Based on the following job description, ask the first interview question. Focus on a general opening question or a key technical/behavioral aspect.

Job Description:
"%s"

Begin by greeting the candidate and asking your first question.`, roleTitle, jobDescription)
}

func buildContinuePrompt(jobDescription, roleTitle, lastAnswer string) string {
	return fmt.Sprintf(`You are an AI interviewer for a "%s" role. The candidate just responded to the previous question: "%s".

First, provide brief, constructive feedback on their answer.
Second, ask a relevant follow-up question or the next question in the interview sequence.
Ensure the feedback and next question are based on the context of the job description and previous conversation.

Job Description:
"%s"`, roleTitle, lastAnswer, jobDescription)
}

// Start opens a new interview. Any prior history is discarded: the returned
// history contains exactly one AI message with the opening question.
func (s *Service) Start(ctx context.Context, jobDescription, roleTitle string) ([]Message, error) {
	if err := validateSessionInput(jobDescription, roleTitle); err != nil {
		return nil, err
	}

	req := gemini.Request{
		Contents: []gemini.Content{gemini.UserText(buildStartPrompt(jobDescription, roleTitle))},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 200,
		},
	}

	resp, err := s.llm.Generate(ctx, req)
	if err != nil {
		return nil, &apperr.GenerationError{Err: err}
	}

	text := resp.Text()
	if text == "" {
		text = startFallback
	}
	return []Message{{Role: RoleAI, Text: text}}, nil
}

// Continue folds the candidate's latest answer (the last entry of history,
// appended by the caller) into the conversation: the model is asked for
// feedback plus a follow-up question, and its reply is appended as one AI
// message. The input history is never mutated.
func (s *Service) Continue(ctx context.Context, jobDescription, roleTitle string, history []Message) ([]Message, error) {
	if err := validateSessionInput(jobDescription, roleTitle); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, apperr.Validationf("chat history is empty: start an interview first")
	}

	lastAnswer := history[len(history)-1].Text

	// Instruction turn first, then the conversation in original order.
	// The model API knows only user/model roles, so every non-user turn
	// collapses to model.
	contents := make([]gemini.Content, 0, len(history)+1)
	contents = append(contents, gemini.UserText(buildContinuePrompt(jobDescription, roleTitle, lastAnswer)))
	for _, msg := range history {
		role := gemini.RoleModel
		if msg.Role == RoleUser {
			role = gemini.RoleUser
		}
		contents = append(contents, gemini.Content{Role: role, Parts: []gemini.Part{{Text: msg.Text}}})
	}

	req := gemini.Request{
		Contents: contents,
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 300,
		},
	}

	resp, err := s.llm.Generate(ctx, req)
	if err != nil {
		return nil, &apperr.GenerationError{Err: err}
	}

	text := resp.Text()
	if text == "" {
		text = continueFallback
	}

	next := make([]Message, len(history), len(history)+1)
	copy(next, history)
	return append(next, Message{Role: RoleAI, Text: text}), nil
}

func validateSessionInput(jobDescription, roleTitle string) error {
	if strings.TrimSpace(jobDescription) == "" {
		return apperr.Validationf("job description is required")
	}
	if strings.TrimSpace(roleTitle) == "" {
		return apperr.Validationf("role title is required")
	}
	return nil
}

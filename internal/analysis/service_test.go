package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"interview-prep/internal/apperr"
	"interview-prep/internal/gemini"
)

type stubGenerator struct {
	calls     int
	requests  []gemini.Request
	responses []gemini.Response
	err       error
}

func (s *stubGenerator) Generate(ctx context.Context, req gemini.Request) (gemini.Response, error) {
	s.calls++
	s.requests = append(s.requests, req)
	if s.err != nil {
		return gemini.Response{}, s.err
	}
	if len(s.responses) == 0 {
		return gemini.Response{}, nil
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp, nil
}

func textResponse(text string) gemini.Response {
	return gemini.Response{Candidates: []gemini.Candidate{{
		Content: gemini.Content{Role: gemini.RoleModel, Parts: []gemini.Part{{Text: text}}},
	}}}
}

func TestAnalyzeRejectsEmptyJobDescription(t *testing.T) {
	stub := &stubGenerator{}
	svc := NewService(stub)

	for _, jd := range []string{"", "   ", "\n\t "} {
		_, err := svc.Analyze(context.Background(), jd)
		var vErr *apperr.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("jd %q: expected ValidationError, got %v", jd, err)
		}
	}
	if stub.calls != 0 {
		t.Errorf("validation must happen before any generation call, got %d calls", stub.calls)
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	stub := &stubGenerator{responses: []gemini.Response{
		textResponse(`{"roleTitle":"Senior Backend Engineer","requiredSkills":["Python","Kubernetes"],"tools":[],"softSkills":[]}`),
		textResponse(`{"technical":[{"id":"q1","question":"Explain a Kubernetes rollout strategy.","answerFramework":"...","sampleAnswer":"..."}],"behavioral":[],"situational":[],"cultureFit":[]}`),
	}}
	svc := NewService(stub)

	result, err := svc.Analyze(context.Background(), "Senior Backend Engineer... Python, Kubernetes...")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Insights.RoleTitle != "Senior Backend Engineer" {
		t.Errorf("unexpected role title %q", result.Insights.RoleTitle)
	}
	if len(result.Insights.RequiredSkills) != 2 {
		t.Errorf("expected 2 required skills, got %v", result.Insights.RequiredSkills)
	}

	if len(result.Questions.Technical) != 1 {
		t.Fatalf("expected 1 technical question, got %d", len(result.Questions.Technical))
	}
	q := result.Questions.Technical[0]
	if q.ID != "q1" || q.Question != "Explain a Kubernetes rollout strategy." {
		t.Errorf("unexpected technical question: %+v", q)
	}
	if len(result.Questions.Behavioral) != 0 || len(result.Questions.Situational) != 0 || len(result.Questions.CultureFit) != 0 {
		t.Errorf("expected empty remaining categories: %+v", result.Questions)
	}

	if len(result.SkillGaps) != 2 {
		t.Errorf("expected 2 skill gap placeholders, got %d", len(result.SkillGaps))
	}
	if stub.calls != 2 {
		t.Errorf("expected 2 generation calls, got %d", stub.calls)
	}
}

func TestAnalyzeSequencesStages(t *testing.T) {
	stub := &stubGenerator{responses: []gemini.Response{
		textResponse(`{"roleTitle":"Data Analyst","requiredSkills":["SQL"],"tools":["Tableau"],"softSkills":["communication"]}`),
		textResponse(`{"technical":[],"behavioral":[],"situational":[],"cultureFit":[]}`),
	}}
	svc := NewService(stub)

	if _, err := svc.Analyze(context.Background(), "some JD"); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(stub.requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(stub.requests))
	}

	// The question prompt must reference the extracted insights.
	questionsPrompt := stub.requests[1].Contents[0].Parts[0].Text
	for _, want := range []string{"Data Analyst", "SQL", "Tableau", "communication"} {
		if !strings.Contains(questionsPrompt, want) {
			t.Errorf("questions prompt missing %q", want)
		}
	}

	// Both stages carry a structured-output contract.
	for i, req := range stub.requests {
		if req.GenerationConfig == nil || req.GenerationConfig.ResponseSchema == nil {
			t.Errorf("request %d missing response schema", i)
		} else if req.GenerationConfig.ResponseMIMEType != "application/json" {
			t.Errorf("request %d missing JSON mime type", i)
		}
	}
}

func TestAnalyzeFallsBackOnEmptyOutput(t *testing.T) {
	// Run twice to confirm the fallback is deterministic.
	for i := 0; i < 2; i++ {
		stub := &stubGenerator{} // always returns an empty response
		svc := NewService(stub)

		result, err := svc.Analyze(context.Background(), "some JD")
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if result.Insights.RoleTitle != "Unknown Role" {
			t.Errorf("expected fallback role title, got %q", result.Insights.RoleTitle)
		}
		if len(result.Insights.RequiredSkills) != 0 || len(result.Insights.Tools) != 0 || len(result.Insights.SoftSkills) != 0 {
			t.Errorf("expected empty insight lists, got %+v", result.Insights)
		}
		if len(result.Questions.Technical) != 0 || len(result.Questions.CultureFit) != 0 {
			t.Errorf("expected empty question lists, got %+v", result.Questions)
		}
		if len(result.SkillGaps) != 0 {
			t.Errorf("no required skills means no skill gaps, got %+v", result.SkillGaps)
		}
	}
}

func TestAnalyzeFallsBackOnUnparseableOutput(t *testing.T) {
	stub := &stubGenerator{responses: []gemini.Response{
		textResponse("```json\nnot json at all\n```"),
		textResponse("also not json"),
	}}
	svc := NewService(stub)

	result, err := svc.Analyze(context.Background(), "some JD")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.Insights.RoleTitle != "Unknown Role" {
		t.Errorf("expected fallback insights, got %+v", result.Insights)
	}
	if len(result.Questions.Behavioral) != 0 {
		t.Errorf("expected fallback questions, got %+v", result.Questions)
	}
}

func TestAnalyzePropagatesGenerationFailure(t *testing.T) {
	stub := &stubGenerator{err: errors.New("retries exhausted")}
	svc := NewService(stub)

	result, err := svc.Analyze(context.Background(), "some JD")
	if result != nil {
		t.Errorf("expected no partial result, got %+v", result)
	}
	var genErr *apperr.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T: %v", err, err)
	}
	if !strings.Contains(genErr.Error(), "retries exhausted") {
		t.Errorf("error lost the upstream message: %v", genErr)
	}
}

func TestQuestionIDBackfill(t *testing.T) {
	stub := &stubGenerator{responses: []gemini.Response{
		textResponse(`{"roleTitle":"QA","requiredSkills":["testing"],"tools":[],"softSkills":[]}`),
		textResponse(`{"technical":[{"id":"","question":"q?","answerFramework":"f","sampleAnswer":"a"},{"id":"keep-me","question":"q2?","answerFramework":"f","sampleAnswer":"a"}],"behavioral":[],"situational":[],"cultureFit":[]}`),
	}}
	svc := NewService(stub)

	result, err := svc.Analyze(context.Background(), "some JD")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	qs := result.Questions.Technical
	if len(qs) != 2 {
		t.Fatalf("expected 2 technical questions, got %d", len(qs))
	}
	if qs[0].ID == "" {
		t.Error("empty id was not backfilled")
	}
	if qs[1].ID != "keep-me" {
		t.Errorf("existing id was rewritten: %q", qs[1].ID)
	}
}

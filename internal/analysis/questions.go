package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"interview-prep/internal/gemini"
)

func buildQuestionsPrompt(jobDescription string, insights RoleInsights) string {
	return fmt.Sprintf(`Based on the job description and the extracted role: "%s", generate a diverse set of interview questions across technical, behavioral, situational, and culture-fit categories. For each question, provide a brief answer framework and a sample answer. Ensure answers are ATS-friendly.

Return the output as a JSON object with four keys: "technical", "behavioral", "situational" and "cultureFit". Each key holds an array of objects with "id", "question", "answerFramework" and "sampleAnswer" fields. Ensure each question has a unique 'id' (a simple string is fine).

Job Description:
"%s"

Extracted Role Title: %s
Required Skills: %s
Tools: %s
Soft Skills: %s`,
		insights.RoleTitle,
		jobDescription,
		insights.RoleTitle,
		strings.Join(insights.RequiredSkills, ", "),
		strings.Join(insights.Tools, ", "),
		strings.Join(insights.SoftSkills, ", "))
}

func questionItemSchema() *gemini.Schema {
	return gemini.ObjectSchema(map[string]*gemini.Schema{
		"id":              gemini.StringSchema(),
		"question":        gemini.StringSchema(),
		"answerFramework": gemini.StringSchema(),
		"sampleAnswer":    gemini.StringSchema(),
	})
}

func questionsSchema() *gemini.Schema {
	return gemini.ObjectSchema(map[string]*gemini.Schema{
		"technical":   gemini.ArrayOf(questionItemSchema()),
		"behavioral":  gemini.ArrayOf(questionItemSchema()),
		"situational": gemini.ArrayOf(questionItemSchema()),
		"cultureFit":  gemini.ArrayOf(questionItemSchema()),
	})
}

func emptyQuestionSet() QuestionSet {
	return QuestionSet{
		Technical:   []InterviewQuestion{},
		Behavioral:  []InterviewQuestion{},
		Situational: []InterviewQuestion{},
		CultureFit:  []InterviewQuestion{},
	}
}

func (s *Service) generateQuestions(ctx context.Context, jobDescription string, insights RoleInsights) (QuestionSet, error) {
	req := gemini.Request{
		Contents: []gemini.Content{gemini.UserText(buildQuestionsPrompt(jobDescription, insights))},
		GenerationConfig: &gemini.GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   questionsSchema(),
		},
	}

	resp, err := s.llm.Generate(ctx, req)
	if err != nil {
		return QuestionSet{}, err
	}

	text := stripCodeFences(resp.Text())
	if text == "" {
		log.Println("analysis: empty questions output, using fallback")
		return emptyQuestionSet(), nil
	}

	var questions QuestionSet
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		log.Printf("analysis: unparseable questions output, using fallback: %v", err)
		return emptyQuestionSet(), nil
	}

	questions.Technical = normalizeQuestions(questions.Technical)
	questions.Behavioral = normalizeQuestions(questions.Behavioral)
	questions.Situational = normalizeQuestions(questions.Situational)
	questions.CultureFit = normalizeQuestions(questions.CultureFit)
	return questions, nil
}

// normalizeQuestions guarantees a non-nil list and backfills IDs the model
// left empty.
func normalizeQuestions(qs []InterviewQuestion) []InterviewQuestion {
	if qs == nil {
		return []InterviewQuestion{}
	}
	for i := range qs {
		if qs[i].ID == "" {
			qs[i].ID = uuid.NewString()
		}
	}
	return qs
}

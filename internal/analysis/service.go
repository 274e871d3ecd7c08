package analysis

import (
	"context"
	"log"
	"strings"
	"time"

	"interview-prep/internal/apperr"
	"interview-prep/internal/gemini"
)

// Service runs the two-stage analysis pipeline: insight extraction feeds
// question generation, then placeholder skill-gap recommendations are
// attached. One call, one immutable Result.
type Service struct {
	llm gemini.Generator
}

func NewService(llm gemini.Generator) *Service {
	return &Service{llm: llm}
}

var placeholderSkillGaps = []SkillGap{
	{
		Skill:          "ITIL Knowledge",
		Recommendation: "Consider a LinkedIn Learning or Coursera course on ITIL Foundation for career advancement in service management.",
	},
	{
		Skill:          "Advanced Data Analytics",
		Recommendation: "Explore certifications in SQL, Python for Data Analysis, or Tableau to strengthen your analytical skills.",
	},
}

func (s *Service) Analyze(ctx context.Context, jobDescription string) (*Result, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, apperr.Validationf("job description is required")
	}

	started := time.Now()

	insights, err := s.extractInsights(ctx, jobDescription)
	if err != nil {
		return nil, &apperr.GenerationError{Err: err}
	}
	log.Printf("analysis: extracted insights for %q (%d skills)", insights.RoleTitle, len(insights.RequiredSkills))

	questions, err := s.generateQuestions(ctx, jobDescription, insights)
	if err != nil {
		return nil, &apperr.GenerationError{Err: err}
	}

	result := &Result{
		Insights:  insights,
		Questions: questions,
		SkillGaps: skillGaps(insights),
	}
	log.Printf("analysis: completed in %s", time.Since(started))
	return result, nil
}

// skillGaps returns the fixed recommendations whenever the role demands at
// least one skill. Resume-aware gap analysis is out of scope.
func skillGaps(insights RoleInsights) []SkillGap {
	if len(insights.RequiredSkills) == 0 {
		return []SkillGap{}
	}
	gaps := make([]SkillGap, len(placeholderSkillGaps))
	copy(gaps, placeholderSkillGaps)
	return gaps
}

// stripCodeFences removes markdown fencing some models wrap around JSON
// replies.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

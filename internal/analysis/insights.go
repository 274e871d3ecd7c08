package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"interview-prep/internal/gemini"
)

func buildInsightsPrompt(jobDescription string) string {
	return fmt.Sprintf(`Analyze the following job description and extract the key information.
Return the output as a JSON object with the following structure:
{
  "roleTitle": "Exact Job Title from JD",
  "requiredSkills": ["skill1", "skill2", ...],
  "tools": ["tool1", "tool2", ...],
  "softSkills": ["soft skill1", "soft skill2", ...]
}

Job Description:
"%s"`, jobDescription)
}

func insightsSchema() *gemini.Schema {
	return gemini.ObjectSchema(map[string]*gemini.Schema{
		"roleTitle":      gemini.StringSchema(),
		"requiredSkills": gemini.ArrayOf(gemini.StringSchema()),
		"tools":          gemini.ArrayOf(gemini.StringSchema()),
		"softSkills":     gemini.ArrayOf(gemini.StringSchema()),
	}, "roleTitle", "requiredSkills", "tools", "softSkills")
}

// fallbackInsights is the documented zero value returned when the model's
// reply is empty or unparseable. Deterministic so the pipeline degrades
// gracefully instead of failing the whole analysis.
func fallbackInsights() RoleInsights {
	return RoleInsights{
		RoleTitle:      "Unknown Role",
		RequiredSkills: []string{},
		Tools:          []string{},
		SoftSkills:     []string{},
	}
}

func (s *Service) extractInsights(ctx context.Context, jobDescription string) (RoleInsights, error) {
	req := gemini.Request{
		Contents: []gemini.Content{gemini.UserText(buildInsightsPrompt(jobDescription))},
		GenerationConfig: &gemini.GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   insightsSchema(),
		},
	}

	resp, err := s.llm.Generate(ctx, req)
	if err != nil {
		return RoleInsights{}, err
	}

	text := stripCodeFences(resp.Text())
	if text == "" {
		log.Println("analysis: empty insights output, using fallback")
		return fallbackInsights(), nil
	}

	var insights RoleInsights
	if err := json.Unmarshal([]byte(text), &insights); err != nil {
		log.Printf("analysis: unparseable insights output, using fallback: %v", err)
		return fallbackInsights(), nil
	}

	if insights.RoleTitle == "" {
		insights.RoleTitle = "Unknown Role"
	}
	if insights.RequiredSkills == nil {
		insights.RequiredSkills = []string{}
	}
	if insights.Tools == nil {
		insights.Tools = []string{}
	}
	if insights.SoftSkills == nil {
		insights.SoftSkills = []string{}
	}
	return insights, nil
}

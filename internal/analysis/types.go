package analysis

// RoleInsights is the structured record extracted from a job description.
// Immutable after creation.
type RoleInsights struct {
	RoleTitle      string   `json:"roleTitle"`
	RequiredSkills []string `json:"requiredSkills"`
	Tools          []string `json:"tools"`
	SoftSkills     []string `json:"softSkills"`
}

type InterviewQuestion struct {
	ID              string `json:"id"`
	Question        string `json:"question"`
	AnswerFramework string `json:"answerFramework"`
	SampleAnswer    string `json:"sampleAnswer"`
}

// QuestionSet groups generated questions into the four interview
// categories. Order within a category is generation order. IDs are unique
// within their category only.
type QuestionSet struct {
	Technical   []InterviewQuestion `json:"technical"`
	Behavioral  []InterviewQuestion `json:"behavioral"`
	Situational []InterviewQuestion `json:"situational"`
	CultureFit  []InterviewQuestion `json:"cultureFit"`
}

// SkillGap is a study recommendation. These are fixed placeholders, not
// derived from resume content.
type SkillGap struct {
	Skill          string `json:"skill"`
	Recommendation string `json:"recommendation"`
}

// Result is the full outcome of one analysis request.
type Result struct {
	Insights  RoleInsights `json:"insights"`
	Questions QuestionSet  `json:"questions"`
	SkillGaps []SkillGap   `json:"skillGaps"`
}

package gemini

// Roles understood by the generateContent endpoint.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerationConfig bounds and shapes a single generation. ResponseSchema
// asks the model to conform its reply to a machine-checkable shape.
type GenerationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
}

type Request struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type Candidate struct {
	Content Content `json:"content"`
}

type Response struct {
	Candidates []Candidate `json:"candidates"`
}

// Text returns the first candidate's first text part, or "" when the model
// returned nothing usable.
func (r Response) Text() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}

// UserText builds a single-turn user content from raw text.
func UserText(text string) Content {
	return Content{Role: RoleUser, Parts: []Part{{Text: text}}}
}

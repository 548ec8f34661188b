package quiz

const (
	TypeSingleChoice   = "single_choice"
	TypeMultipleChoice = "multiple_choice"
)

type Option struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"` // single_choice | multiple_choice
	Options []Option `json:"options"`
}

type Meta struct {
	Topic          string `json:"topic"`
	Source         string `json:"source"`
	Version        string `json:"version"`
	TotalQuestions int    `json:"total_questions"`
}

// Envelope is the response body for blocks whose source needs normalizing.
type Envelope struct {
	Meta      Meta       `json:"meta"`
	Questions []Question `json:"questions"`
}

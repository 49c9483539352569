package models

// Question is a single multiple-choice quiz question
type Question struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// QuizContent is an ordered sequence of questions for one standard.
// Immutable once fetched. A quiz may legitimately be empty when the
// generator failed; callers must not assume at least one question.
type QuizContent struct {
	Questions []Question `json:"questions"`
}

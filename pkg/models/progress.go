package models

// MasteryThreshold is the quiz score at which a standard counts as mastered.
const MasteryThreshold = 80

// Star amounts for the two one-time bonuses
const (
	LessonStars  = 10 // First completion of a standard's lesson
	MasteryStars = 20 // First quiz score at or above MasteryThreshold
)

// Settings holds per-user audio preferences
type Settings struct {
	UseTTS  bool `json:"useTTS"`
	BGMusic bool `json:"bgMusic"`
}

// ProgressRecord tracks one user's progress across all standards.
// It is persisted as a single JSON document keyed by the user.
type ProgressRecord struct {
	CompletedLessons []string       `json:"completedLessons"` // Standard IDs, membership only
	QuizScores       map[string]int `json:"quizScores"`       // Standard ID -> highest score (0-100)
	Stars            int            `json:"stars"`
	Settings         Settings       `json:"settings"`
}

// NewProgressRecord returns the default record for a fresh user
func NewProgressRecord() ProgressRecord {
	return ProgressRecord{
		CompletedLessons: []string{},
		QuizScores:       make(map[string]int),
		Stars:            0,
		Settings: Settings{
			UseTTS:  true,
			BGMusic: false,
		},
	}
}

// HasCompletedLesson reports whether the lesson for a standard was ever finished
func (p *ProgressRecord) HasCompletedLesson(standardID string) bool {
	for _, id := range p.CompletedLessons {
		if id == standardID {
			return true
		}
	}
	return false
}

// MarkLessonCompleted adds the standard to the completed set and reports
// whether it was newly added.
func (p *ProgressRecord) MarkLessonCompleted(standardID string) bool {
	if p.HasCompletedLesson(standardID) {
		return false
	}
	p.CompletedLessons = append(p.CompletedLessons, standardID)
	return true
}

// RecordQuizScore merges a new score for a standard, keeping the historical
// maximum. It reports whether this score crossed the mastery threshold for
// the first time.
func (p *ProgressRecord) RecordQuizScore(standardID string, score int) bool {
	if p.QuizScores == nil {
		p.QuizScores = make(map[string]int)
	}
	previous := p.QuizScores[standardID]
	best := previous
	if score > best {
		best = score
	}
	// Always write the entry: a 0% attempt still marks the standard as
	// attempted.
	p.QuizScores[standardID] = best
	return score >= MasteryThreshold && previous < MasteryThreshold
}

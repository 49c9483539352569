// Package session drives one student's journey through the academy:
// authentication, the dashboard, lessons, and quizzes. A Session is the
// single owner of its user's progress record; every scoring event goes
// through a load-mutate-save cycle against the progress store.
package session

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/example/hootacademy/internal/ai"
	"github.com/example/hootacademy/pkg/models"
)

// State identifies where the session currently is
type State string

const (
	StateAuthenticating State = "authenticating"
	StateDashboard      State = "dashboard"
	StateLessonLoading  State = "lesson_loading"
	StateLessonActive   State = "lesson_active"
	StateQuizLoading    State = "quiz_loading"
	StateQuizActive     State = "quiz_active"
	StateQuizResults    State = "quiz_results"
)

// ErrBadState is returned when an operation is not allowed in the
// session's current state.
var ErrBadState = errors.New("operation not allowed in current state")

// ContentGenerator produces lesson and quiz content for a standard
type ContentGenerator interface {
	GenerateLesson(ctx context.Context, standard models.Standard) (models.LessonContent, error)
	GenerateQuiz(ctx context.Context, standard models.Standard) (models.QuizContent, error)
}

// ProgressStore persists one progress record per user key
type ProgressStore interface {
	Load(userKey string) (models.ProgressRecord, error)
	Save(userKey string, record models.ProgressRecord) error
}

// Session is the per-student state machine. It is not safe for
// concurrent use; the front end serializes operations per student.
type Session struct {
	generator ContentGenerator
	store     ProgressStore

	state    State
	userKey  string
	standard *models.Standard

	lesson     models.LessonContent
	slideIndex int

	quiz          models.QuizContent
	questionIndex int
	answered      bool
	selected      int
	correct       int
	finalScore    int
}

// New creates a session waiting for authentication
func New(generator ContentGenerator, store ProgressStore) *Session {
	return &Session{
		generator: generator,
		store:     store,
		state:     StateAuthenticating,
		selected:  -1,
	}
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// UserKey returns the authenticated user key, empty while authenticating
func (s *Session) UserKey() string {
	return s.userKey
}

// Standard returns the active standard, nil outside a lesson or quiz
func (s *Session) Standard() *models.Standard {
	return s.standard
}

// SignIn binds the session to an authenticated (or guest) user key and
// enters the dashboard. Credential checks happen before this call.
func (s *Session) SignIn(userKey string) error {
	if s.state != StateAuthenticating {
		return fmt.Errorf("%w: already signed in", ErrBadState)
	}
	if userKey == "" {
		return errors.New("user key must not be empty")
	}
	s.userKey = userKey
	s.state = StateDashboard
	return nil
}

// SignOut clears the user, the active standard, and all in-memory
// content, returning to authentication. Persisted progress survives.
func (s *Session) SignOut() {
	s.userKey = ""
	s.clearActivity()
	s.state = StateAuthenticating
}

// ExitToDashboard abandons any in-progress lesson or quiz without
// penalty and returns to the dashboard.
func (s *Session) ExitToDashboard() error {
	if s.state == StateAuthenticating {
		return fmt.Errorf("%w: not signed in", ErrBadState)
	}
	s.clearActivity()
	s.state = StateDashboard
	return nil
}

func (s *Session) clearActivity() {
	s.standard = nil
	s.lesson = models.LessonContent{}
	s.slideIndex = 0
	s.resetQuizAttempt()
	s.quiz = models.QuizContent{}
}

// Progress loads the current user's progress record
func (s *Session) Progress() (models.ProgressRecord, error) {
	if s.userKey == "" {
		return models.ProgressRecord{}, fmt.Errorf("%w: not signed in", ErrBadState)
	}
	return s.store.Load(s.userKey)
}

// SelectLesson starts a lesson for a standard. Allowed from the
// dashboard only. A failed fetch degrades to the single-slide fallback,
// so the lesson is never empty.
func (s *Session) SelectLesson(ctx context.Context, standard models.Standard) error {
	if s.state != StateDashboard {
		return fmt.Errorf("%w: lessons start from the dashboard", ErrBadState)
	}

	s.standard = &standard
	s.state = StateLessonLoading

	lesson, err := s.generator.GenerateLesson(ctx, standard)
	if err != nil || len(lesson.Slides) == 0 {
		lesson = ai.FallbackLesson()
	}

	s.lesson = lesson
	s.slideIndex = 0
	s.state = StateLessonActive
	return nil
}

// Lesson returns the active lesson content
func (s *Session) Lesson() models.LessonContent {
	return s.lesson
}

// SlideIndex returns the index of the slide being shown
func (s *Session) SlideIndex() int {
	return s.slideIndex
}

// CurrentSlide returns the slide being shown
func (s *Session) CurrentSlide() (models.Slide, error) {
	if s.state != StateLessonActive {
		return models.Slide{}, fmt.Errorf("%w: no active lesson", ErrBadState)
	}
	return s.lesson.Slides[s.slideIndex], nil
}

// OnTerminalSlide reports whether the last slide is showing
func (s *Session) OnTerminalSlide() bool {
	return s.state == StateLessonActive && s.slideIndex == len(s.lesson.Slides)-1
}

// NextSlide advances to the next slide
func (s *Session) NextSlide() error {
	if s.state != StateLessonActive {
		return fmt.Errorf("%w: no active lesson", ErrBadState)
	}
	if s.slideIndex >= len(s.lesson.Slides)-1 {
		return fmt.Errorf("%w: already on the last slide", ErrBadState)
	}
	s.slideIndex++
	return nil
}

// PrevSlide steps back one slide
func (s *Session) PrevSlide() error {
	if s.state != StateLessonActive {
		return fmt.Errorf("%w: no active lesson", ErrBadState)
	}
	if s.slideIndex == 0 {
		return fmt.Errorf("%w: already on the first slide", ErrBadState)
	}
	s.slideIndex--
	return nil
}

// CompleteLesson finishes the lesson from its terminal slide, granting
// the one-time 10-star bonus on first completion, then fetches the quiz
// and enters it. An empty quiz resolves straight to results with a
// score of 0.
func (s *Session) CompleteLesson(ctx context.Context) error {
	if !s.OnTerminalSlide() {
		return fmt.Errorf("%w: lesson is not on its final slide", ErrBadState)
	}

	record, err := s.store.Load(s.userKey)
	if err != nil {
		return fmt.Errorf("failed to load progress: %v", err)
	}
	if record.MarkLessonCompleted(s.standard.ID) {
		record.Stars += models.LessonStars
	}
	if err := s.store.Save(s.userKey, record); err != nil {
		return fmt.Errorf("failed to save progress: %v", err)
	}

	return s.loadQuiz(ctx)
}

// loadQuiz fetches a fresh question set and enters the quiz
func (s *Session) loadQuiz(ctx context.Context) error {
	s.state = StateQuizLoading

	quiz, err := s.generator.GenerateQuiz(ctx, *s.standard)
	if err != nil {
		// Degraded content, not a hard error
		quiz = models.QuizContent{}
	}

	s.quiz = quiz
	s.resetQuizAttempt()

	if len(s.quiz.Questions) == 0 {
		// Nothing to answer; a zero-question quiz scores 0
		s.finalScore = 0
		s.state = StateQuizResults
		return nil
	}
	s.state = StateQuizActive
	return nil
}

func (s *Session) resetQuizAttempt() {
	s.questionIndex = 0
	s.answered = false
	s.selected = -1
	s.correct = 0
	s.finalScore = 0
}

// Quiz returns the active question set
func (s *Session) Quiz() models.QuizContent {
	return s.quiz
}

// QuestionIndex returns the index of the question being shown
func (s *Session) QuestionIndex() int {
	return s.questionIndex
}

// CurrentQuestion returns the question being shown
func (s *Session) CurrentQuestion() (models.Question, error) {
	if s.state != StateQuizActive {
		return models.Question{}, fmt.Errorf("%w: no active quiz", ErrBadState)
	}
	return s.quiz.Questions[s.questionIndex], nil
}

// Answered reports whether the current question is locked in
func (s *Session) Answered() bool {
	return s.answered
}

// SelectedOption returns the locked-in option index, -1 if none
func (s *Session) SelectedOption() int {
	return s.selected
}

// SelectOption locks in an answer for the current question. Further
// selections on the same question are rejected.
func (s *Session) SelectOption(index int) error {
	if s.state != StateQuizActive {
		return fmt.Errorf("%w: no active quiz", ErrBadState)
	}
	if s.answered {
		return fmt.Errorf("%w: question already answered", ErrBadState)
	}

	question := s.quiz.Questions[s.questionIndex]
	if index < 0 || index >= len(question.Options) {
		return fmt.Errorf("option index %d out of range", index)
	}

	s.selected = index
	s.answered = true
	if index == question.CorrectIndex {
		s.correct++
	}
	return nil
}

// NextQuestion advances past an answered question. Past the last
// question it computes the percentage score and enters results.
func (s *Session) NextQuestion() error {
	if s.state != StateQuizActive {
		return fmt.Errorf("%w: no active quiz", ErrBadState)
	}
	if !s.answered {
		return fmt.Errorf("%w: answer the question first", ErrBadState)
	}

	if s.questionIndex < len(s.quiz.Questions)-1 {
		s.questionIndex++
		s.answered = false
		s.selected = -1
		return nil
	}

	s.finalScore = percentScore(s.correct, len(s.quiz.Questions))
	s.state = StateQuizResults
	return nil
}

// percentScore guards the zero-question case: an empty quiz scores 0,
// never a division fault.
func percentScore(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// Score returns the final percentage, valid in the results state
func (s *Session) Score() (int, error) {
	if s.state != StateQuizResults {
		return 0, fmt.Errorf("%w: quiz is not finished", ErrBadState)
	}
	return s.finalScore, nil
}

// CompleteQuiz records the attempt: the stored score for the standard
// becomes the maximum ever achieved, and crossing the mastery threshold
// for the first time grants the one-time 20-star bonus. Returns to the
// dashboard with the active standard cleared.
func (s *Session) CompleteQuiz() error {
	if s.state != StateQuizResults {
		return fmt.Errorf("%w: quiz is not finished", ErrBadState)
	}

	record, err := s.store.Load(s.userKey)
	if err != nil {
		return fmt.Errorf("failed to load progress: %v", err)
	}
	if record.RecordQuizScore(s.standard.ID, s.finalScore) {
		record.Stars += models.MasteryStars
	}
	if err := s.store.Save(s.userKey, record); err != nil {
		return fmt.Errorf("failed to save progress: %v", err)
	}

	s.clearActivity()
	s.state = StateDashboard
	return nil
}

// RetryQuiz discards the finished attempt and re-enters the quiz with a
// freshly generated question set. Stored scores are untouched until
// CompleteQuiz runs again.
func (s *Session) RetryQuiz(ctx context.Context) error {
	if s.state != StateQuizResults {
		return fmt.Errorf("%w: quiz is not finished", ErrBadState)
	}
	return s.loadQuiz(ctx)
}

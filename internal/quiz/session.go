// Package quiz implements the quiz session state machine: drawing questions
// from the pool, walking them in order, scoring answers and producing the
// final result. It performs no I/O; callers persist sessions and results.
package quiz

import (
	"errors"
	"math/rand/v2"
	"time"
)

const (
	// DefaultMaxQuestions is how many questions one quiz draws from the pool.
	DefaultMaxQuestions = 10
	OptionCount         = 4
)

var (
	ErrEmptyPool         = errors.New("no questions available")
	ErrNoActiveSession   = errors.New("no quiz in progress")
	ErrSessionExhausted  = errors.New("all questions have already been answered")
	ErrIncompleteSession = errors.New("quiz still has unanswered questions")
)

// Question is the engine's copy of a bank question. Sessions hold these by
// value so later edits to the bank cannot change a quiz in flight.
type Question struct {
	ID         uint                `json:"id"`
	Prompt     string              `json:"prompt"`
	Options    [OptionCount]string `json:"options"`
	Correct    int                 `json:"correct"` // 1-based
	Difficulty string              `json:"difficulty"`
}

type AnswerRecord struct {
	Question  string              `json:"question"`
	Options   [OptionCount]string `json:"options"`
	Selected  int                 `json:"selected"`
	Correct   int                 `json:"correct"`
	IsCorrect bool                `json:"is_correct"`
}

// Session is the in-progress quiz of one user. len(Answers) == Cursor holds
// after every operation.
type Session struct {
	UserID    uint           `json:"user_id"`
	Questions []Question     `json:"questions"`
	Cursor    int            `json:"cursor"`
	Score     int            `json:"score"`
	StartedAt time.Time      `json:"started_at"`
	Answers   []AnswerRecord `json:"answers"`
}

// PublicQuestion is what a player sees: no correct index.
type PublicQuestion struct {
	ID         uint                `json:"id"`
	Prompt     string              `json:"prompt"`
	Options    [OptionCount]string `json:"options"`
	Difficulty string              `json:"difficulty"`
}

type View struct {
	Question PublicQuestion
	Position int // 1-based
	Total    int
}

type FinalResult struct {
	Score      int
	Total      int
	Percentage float64
	TimeTaken  int
	Answers    []AnswerRecord
}

// Shuffler permutes n elements through swap, with the rand.Shuffle contract.
type Shuffler func(n int, swap func(i, j int))

// Start draws a uniformly random ordering of pool, keeps the first
// min(limit, len(pool)) questions and returns the new session with its first
// question. A non-positive limit means DefaultMaxQuestions; a nil shuffle
// uses math/rand/v2.
func Start(userID uint, pool []Question, limit int, now time.Time, shuffle Shuffler) (*Session, View, error) {
	if len(pool) == 0 {
		return nil, View{}, ErrEmptyPool
	}
	if limit <= 0 {
		limit = DefaultMaxQuestions
	}
	if shuffle == nil {
		shuffle = rand.Shuffle
	}

	drawn := make([]Question, len(pool))
	copy(drawn, pool)
	shuffle(len(drawn), func(i, j int) { drawn[i], drawn[j] = drawn[j], drawn[i] })
	if len(drawn) > limit {
		drawn = drawn[:limit]
	}

	s := &Session{
		UserID:    userID,
		Questions: drawn,
		StartedAt: now,
		Answers:   make([]AnswerRecord, 0, len(drawn)),
	}
	return s, s.viewAt(0), nil
}

func (s *Session) Total() int {
	return len(s.Questions)
}

// Complete reports whether every question has been answered.
func (s *Session) Complete() bool {
	return s.Cursor >= len(s.Questions)
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (View, error) {
	if s == nil {
		return View{}, ErrNoActiveSession
	}
	if s.Complete() {
		return View{}, ErrSessionExhausted
	}
	return s.viewAt(s.Cursor), nil
}

// SubmitAnswer records selected for the current question and advances the
// cursor. Any value other than the correct index, including out-of-range
// ones, counts as wrong. complete is true once the last question has been
// answered; the returned View is then zero.
func (s *Session) SubmitAnswer(selected int) (next View, complete bool, err error) {
	if s == nil {
		return View{}, false, ErrNoActiveSession
	}
	if s.Complete() {
		return View{}, true, ErrSessionExhausted
	}

	q := s.Questions[s.Cursor]
	isCorrect := selected == q.Correct
	s.Answers = append(s.Answers, AnswerRecord{
		Question:  q.Prompt,
		Options:   q.Options,
		Selected:  selected,
		Correct:   q.Correct,
		IsCorrect: isCorrect,
	})
	if isCorrect {
		s.Score++
	}
	s.Cursor++

	if s.Complete() {
		return View{}, true, nil
	}
	return s.viewAt(s.Cursor), false, nil
}

// SubmitAnswerAt is SubmitAnswer guarded by the 1-based position the client
// believes it is answering. A mismatch means the request replays or skips a
// step and is rejected without touching the session.
func (s *Session) SubmitAnswerAt(position, selected int) (View, bool, error) {
	if s == nil {
		return View{}, false, ErrNoActiveSession
	}
	if s.Complete() || position != s.Cursor+1 {
		return View{}, s.Complete(), ErrSessionExhausted
	}
	return s.SubmitAnswer(selected)
}

// Finish computes the final result. It does not clear anything; the caller
// owns removing the session from wherever it is stored.
func (s *Session) Finish(now time.Time) (FinalResult, error) {
	if s == nil {
		return FinalResult{}, ErrNoActiveSession
	}
	if !s.Complete() {
		return FinalResult{}, ErrIncompleteSession
	}

	answers := make([]AnswerRecord, len(s.Answers))
	copy(answers, s.Answers)
	return FinalResult{
		Score:      s.Score,
		Total:      len(s.Questions),
		Percentage: Percentage(s.Score, len(s.Questions)),
		TimeTaken:  ElapsedSeconds(s.StartedAt, now),
		Answers:    answers,
	}, nil
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Questions = append([]Question(nil), s.Questions...)
	c.Answers = append(make([]AnswerRecord, 0, len(s.Questions)), s.Answers...)
	return &c
}

func (s *Session) viewAt(i int) View {
	q := s.Questions[i]
	return View{
		Question: PublicQuestion{
			ID:         q.ID,
			Prompt:     q.Prompt,
			Options:    q.Options,
			Difficulty: q.Difficulty,
		},
		Position: i + 1,
		Total:    len(s.Questions),
	}
}

// Percentage is 100*score/total, or 0 for an empty quiz.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return 100 * float64(score) / float64(total)
}

// ElapsedSeconds floors now-start to whole seconds, clamped at zero.
func ElapsedSeconds(start, now time.Time) int {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/apquiz/config"
	"github.com/lshigami/apquiz/internal/dto"
	"github.com/lshigami/apquiz/internal/model"
	"github.com/lshigami/apquiz/internal/quiz"
	"github.com/lshigami/apquiz/internal/repository"
	"github.com/lshigami/apquiz/internal/session"
	"github.com/rs/zerolog/log"
)

// ErrStoreUnavailable wraps any persistence or session-store failure.
var ErrStoreUnavailable = errors.New("store unavailable")

// QuizService drives one user's quiz from start to the persisted result.
type QuizService interface {
	// StartQuiz discards any quiz the user had in progress and begins a new one.
	StartQuiz(ctx context.Context, userID uint) (*dto.QuestionViewDTO, error)
	CurrentQuestion(ctx context.Context, userID uint) (*dto.QuizProgressDTO, error)
	SubmitAnswer(ctx context.Context, userID uint, req dto.SubmitAnswerDTO) (*dto.AnswerOutcomeDTO, error)
	// FinishQuiz writes exactly one result per completed quiz. A second call
	// returns quiz.ErrNoActiveSession.
	FinishQuiz(ctx context.Context, userID uint) (*dto.QuizResultDetailDTO, error)
	AbandonQuiz(ctx context.Context, userID uint) error
}

type quizService struct {
	questions    repository.QuestionRepository
	results      repository.QuizResultRepository
	sessions     session.Store
	maxQuestions int
	now          func() time.Time
	shuffle      quiz.Shuffler
}

func NewQuizService(
	questions repository.QuestionRepository,
	results repository.QuizResultRepository,
	sessions session.Store,
	cfg *config.Config,
) QuizService {
	return &quizService{
		questions:    questions,
		results:      results,
		sessions:     sessions,
		maxQuestions: cfg.Quiz.MaxQuestions,
		now:          time.Now,
	}
}

// storeError passes quiz state errors through and marks everything else as
// an infrastructure failure.
func storeError(err error) error {
	switch {
	case errors.Is(err, quiz.ErrNoActiveSession),
		errors.Is(err, quiz.ErrSessionExhausted),
		errors.Is(err, quiz.ErrIncompleteSession),
		errors.Is(err, quiz.ErrEmptyPool):
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

func (s *quizService) StartQuiz(ctx context.Context, userID uint) (*dto.QuestionViewDTO, error) {
	bank, err := s.questions.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("StartQuiz: failed to load question pool")
		return nil, storeError(err)
	}

	pool := make([]quiz.Question, len(bank))
	for i, q := range bank {
		pool[i] = toQuizQuestion(q)
	}

	sess, first, err := quiz.Start(userID, pool, s.maxQuestions, s.now(), s.shuffle)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("StartQuiz: cannot start")
		return nil, err
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("StartQuiz: failed to store session")
		return nil, storeError(err)
	}

	log.Info().Uint("userID", userID).Int("total", sess.Total()).Msg("Quiz started")
	view := toQuestionView(first)
	return &view, nil
}

func (s *quizService) CurrentQuestion(ctx context.Context, userID uint) (*dto.QuizProgressDTO, error) {
	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}

	progress := &dto.QuizProgressDTO{Answered: sess.Cursor, Total: sess.Total()}
	if sess.Complete() {
		progress.ReadyToFinish = true
		return progress, nil
	}
	current, err := sess.Current()
	if err != nil {
		return nil, err
	}
	view := toQuestionView(current)
	progress.Current = &view
	return progress, nil
}

func (s *quizService) SubmitAnswer(ctx context.Context, userID uint, req dto.SubmitAnswerDTO) (*dto.AnswerOutcomeDTO, error) {
	if req.Answer == nil {
		return nil, fmt.Errorf("answer is required")
	}
	selected := *req.Answer

	var (
		next     quiz.View
		complete bool
	)
	err := s.sessions.Update(ctx, userID, func(sess *quiz.Session) error {
		var err error
		if req.Position > 0 {
			next, complete, err = sess.SubmitAnswerAt(req.Position, selected)
		} else {
			next, complete, err = sess.SubmitAnswer(selected)
		}
		return err
	})
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Int("position", req.Position).Msg("SubmitAnswer rejected")
		return nil, storeError(err)
	}

	out := &dto.AnswerOutcomeDTO{Complete: complete}
	if !complete {
		view := toQuestionView(next)
		out.Next = &view
	}
	return out, nil
}

func (s *quizService) FinishQuiz(ctx context.Context, userID uint) (*dto.QuizResultDetailDTO, error) {
	// Check before taking so an early call never removes a live session.
	current, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	if !current.Complete() {
		return nil, quiz.ErrIncompleteSession
	}

	sess, err := s.sessions.Take(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}

	now := s.now()
	final, err := sess.Finish(now)
	if err != nil {
		// A restart raced us between Get and Take.
		s.restoreSession(ctx, sess)
		return nil, err
	}

	result := model.QuizResult{
		UserID:         userID,
		Score:          final.Score,
		TotalQuestions: final.Total,
		Percentage:     final.Percentage,
		TimeTaken:      final.TimeTaken,
		Timestamp:      now,
	}
	if err := s.results.Create(ctx, &result); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("FinishQuiz: failed to save result")
		s.restoreSession(ctx, sess)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	log.Info().
		Uint("userID", userID).
		Uint("resultID", result.ID).
		Int("score", final.Score).
		Int("total", final.Total).
		Int("timeTaken", final.TimeTaken).
		Msg("Quiz finished")

	detail := &dto.QuizResultDetailDTO{
		ResultID:   result.ID,
		Score:      final.Score,
		Total:      final.Total,
		Percentage: final.Percentage,
		TimeTaken:  final.TimeTaken,
		Answers:    make([]dto.AnswerRecordDTO, len(final.Answers)),
	}
	for i, a := range final.Answers {
		detail.Answers[i] = dto.AnswerRecordDTO{
			Question:  a.Question,
			Options:   a.Options,
			Selected:  a.Selected,
			Correct:   a.Correct,
			IsCorrect: a.IsCorrect,
		}
	}
	return detail, nil
}

// restoreSession puts a taken session back unless the user started a new
// quiz in the meantime.
func (s *quizService) restoreSession(ctx context.Context, sess *quiz.Session) {
	restored, err := s.sessions.PutIfAbsent(ctx, sess)
	if err != nil {
		log.Error().Err(err).Uint("userID", sess.UserID).Msg("FinishQuiz: failed to restore session")
		return
	}
	if !restored {
		log.Warn().Uint("userID", sess.UserID).Msg("FinishQuiz: newer quiz in progress, session not restored")
	}
}

func (s *quizService) AbandonQuiz(ctx context.Context, userID uint) error {
	if err := s.sessions.Delete(ctx, userID); err != nil {
		return storeError(err)
	}
	return nil
}

func toQuizQuestion(q model.Question) quiz.Question {
	return quiz.Question{
		ID:         q.ID,
		Prompt:     q.Prompt,
		Options:    q.Options(),
		Correct:    q.CorrectAnswer,
		Difficulty: q.Difficulty,
	}
}

func toQuestionView(v quiz.View) dto.QuestionViewDTO {
	return dto.QuestionViewDTO{
		ID:         v.Question.ID,
		Question:   v.Question.Prompt,
		Options:    v.Question.Options,
		Difficulty: v.Question.Difficulty,
		Position:   v.Position,
		Total:      v.Total,
	}
}

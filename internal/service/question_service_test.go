package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lshigami/apquiz/internal/dto"
	"github.com/lshigami/apquiz/internal/model"
)

func TestAddQuestionDefaultsDifficulty(t *testing.T) {
	repo := bank(0)
	svc := NewQuestionService(repo, &fakeGenerator{err: ErrGeneratorUnavailable})

	resp, err := svc.AddQuestion(context.Background(), dto.QuestionCreateDTO{
		Question: "Sum of 1..10?", Option1: "45", Option2: "55", Option3: "65", Option4: "50", CorrectAnswer: 2,
	})
	if err != nil {
		t.Fatalf("AddQuestion failed: %v", err)
	}
	if resp.ID != 1 || resp.Question != "Sum of 1..10?" || resp.Option2 != "55" || resp.CorrectAnswer != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Difficulty != model.DifficultyMedium {
		t.Fatalf("difficulty = %q, want medium", resp.Difficulty)
	}
	if repo.questions[0].Prompt != "Sum of 1..10?" {
		t.Fatalf("prompt not stored: %+v", repo.questions[0])
	}
}

func TestAddQuestionIsVisibleToNextQuiz(t *testing.T) {
	repo := bank(0)
	qs := NewQuestionService(repo, &fakeGenerator{})
	_, err := qs.AddQuestion(context.Background(), dto.QuestionCreateDTO{
		Question: "New?", Option1: "1", Option2: "2", Option3: "3", Option4: "4", CorrectAnswer: 3, Difficulty: "hard",
	})
	if err != nil {
		t.Fatalf("AddQuestion failed: %v", err)
	}

	f := newQuizFixture(0)
	f.svc.questions = repo
	view, err := f.svc.StartQuiz(context.Background(), 1)
	if err != nil {
		t.Fatalf("StartQuiz failed: %v", err)
	}
	if view.Question != "New?" || view.Difficulty != "hard" {
		t.Fatalf("new question not drawn: %+v", view)
	}
}

func TestAddQuestionStoreFailure(t *testing.T) {
	repo := bank(0)
	repo.err = errDiskFull
	svc := NewQuestionService(repo, &fakeGenerator{})
	_, err := svc.AddQuestion(context.Background(), dto.QuestionCreateDTO{Question: "q", CorrectAnswer: 1})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
}

func TestListQuestions(t *testing.T) {
	svc := NewQuestionService(bank(3), &fakeGenerator{})
	list, err := svc.ListQuestions(context.Background())
	if err != nil {
		t.Fatalf("ListQuestions failed: %v", err)
	}
	if len(list) != 3 || list[2].Question != "Q3" || list[2].CorrectAnswer != 3 {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestGenerateQuestionDraftAndSave(t *testing.T) {
	draft := &dto.QuestionCreateDTO{
		Question: "10th term of 2, 4, 6?", Option1: "18", Option2: "20", Option3: "22", Option4: "24",
		CorrectAnswer: 2, Difficulty: "easy",
	}
	repo := bank(0)
	svc := NewQuestionService(repo, &fakeGenerator{draft: draft})
	ctx := context.Background()

	out, err := svc.GenerateQuestion(ctx, dto.GenerateQuestionDTO{})
	if err != nil {
		t.Fatalf("GenerateQuestion failed: %v", err)
	}
	if out.Saved != nil || len(repo.questions) != 0 || out.Draft.Question != draft.Question {
		t.Fatalf("draft-only call saved or lost the question: %+v", out)
	}

	out, err = svc.GenerateQuestion(ctx, dto.GenerateQuestionDTO{Save: true})
	if err != nil {
		t.Fatalf("GenerateQuestion(save) failed: %v", err)
	}
	if out.Saved == nil || out.Saved.ID != 1 || len(repo.questions) != 1 {
		t.Fatalf("save did not persist: %+v", out)
	}
}

func TestGenerateQuestionUnavailable(t *testing.T) {
	svc := NewQuestionService(bank(0), &fakeGenerator{err: ErrGeneratorUnavailable})
	if _, err := svc.GenerateQuestion(context.Background(), dto.GenerateQuestionDTO{}); !errors.Is(err, ErrGeneratorUnavailable) {
		t.Fatalf("err = %v, want ErrGeneratorUnavailable", err)
	}
}

func TestResultServiceHistoryAndAll(t *testing.T) {
	repo := &fakeResultRepo{users: map[uint]string{1: "alice", 2: "bob"}}
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()
	_ = repo.Create(ctx, &model.QuizResult{UserID: 1, Score: 4, TotalQuestions: 10, Percentage: 40, Timestamp: base})
	_ = repo.Create(ctx, &model.QuizResult{UserID: 2, Score: 8, TotalQuestions: 10, Percentage: 80, Timestamp: base.Add(time.Hour)})
	_ = repo.Create(ctx, &model.QuizResult{UserID: 1, Score: 9, TotalQuestions: 10, Percentage: 90, Timestamp: base.Add(2 * time.Hour)})

	svc := NewResultService(repo)
	history, err := svc.GetUserHistory(ctx, 1)
	if err != nil {
		t.Fatalf("GetUserHistory failed: %v", err)
	}
	if len(history) != 2 || history[0].Score != 9 || history[1].Percentage != 40 {
		t.Fatalf("unexpected history: %+v", history)
	}

	all, err := svc.GetAllResults(ctx)
	if err != nil {
		t.Fatalf("GetAllResults failed: %v", err)
	}
	if len(all) != 3 || all[0].Username != "alice" || all[1].Username != "bob" {
		t.Fatalf("unexpected all results: %+v", all)
	}

	empty, err := svc.GetUserHistory(ctx, 99)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("empty history = %#v, %v", empty, err)
	}
}

func TestResultServiceStoreFailure(t *testing.T) {
	svc := NewResultService(&fakeResultRepo{err: errDiskFull})
	if _, err := svc.GetUserHistory(context.Background(), 1); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
}

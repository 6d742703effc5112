package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lshigami/apquiz/internal/dto"
	"github.com/lshigami/apquiz/internal/model"
	"github.com/lshigami/apquiz/internal/repository"
)

var errDiskFull = errors.New("disk full")

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*model.User
	nextID uint
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[u.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cp := *u
	f.users[u.Username] = &cp
	return nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type fakeQuestionRepo struct {
	mu        sync.Mutex
	questions []model.Question
	err       error
}

func bank(n int) *fakeQuestionRepo {
	f := &fakeQuestionRepo{}
	for i := 1; i <= n; i++ {
		f.questions = append(f.questions, model.Question{
			ID:            uint(i),
			Prompt:        fmt.Sprintf("Q%d", i),
			Option1:       "a",
			Option2:       "b",
			Option3:       "c",
			Option4:       "d",
			CorrectAnswer: (i-1)%4 + 1,
			Difficulty:    model.DifficultyMedium,
		})
	}
	return f
}

func (f *fakeQuestionRepo) Create(_ context.Context, q *model.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	q.ID = uint(len(f.questions) + 1)
	f.questions = append(f.questions, *q)
	return nil
}

func (f *fakeQuestionRepo) CreateBatch(ctx context.Context, qs []model.Question) error {
	for i := range qs {
		if err := f.Create(ctx, &qs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeQuestionRepo) FindAll(context.Context) ([]model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.Question(nil), f.questions...), nil
}

func (f *fakeQuestionRepo) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.questions)), f.err
}

type fakeResultRepo struct {
	mu      sync.Mutex
	results []model.QuizResult
	users   map[uint]string
	err     error

	// onCreate runs at the start of Create, outside the lock.
	onCreate func()
}

func (f *fakeResultRepo) Create(_ context.Context, r *model.QuizResult) error {
	if f.onCreate != nil {
		f.onCreate()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	r.ID = uint(len(f.results) + 1)
	f.results = append(f.results, *r)
	return nil
}

func (f *fakeResultRepo) FindByUserID(_ context.Context, userID uint) ([]model.QuizResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []model.QuizResult
	for _, r := range f.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (f *fakeResultRepo) FindAllWithUsers(context.Context) ([]repository.ResultWithUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]repository.ResultWithUser, 0, len(f.results))
	for i := len(f.results) - 1; i >= 0; i-- {
		r := f.results[i]
		out = append(out, repository.ResultWithUser{
			ID: r.ID, UserID: r.UserID, Username: f.users[r.UserID],
			Score: r.Score, TotalQuestions: r.TotalQuestions, Percentage: r.Percentage,
			TimeTaken: r.TimeTaken, Timestamp: r.Timestamp,
		})
	}
	return out, nil
}

func (f *fakeResultRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.results)
}

type fakeGenerator struct {
	draft *dto.QuestionCreateDTO
	err   error
}

func (f *fakeGenerator) GenerateQuestion(context.Context, string, string) (*dto.QuestionCreateDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	d := *f.draft
	return &d, nil
}

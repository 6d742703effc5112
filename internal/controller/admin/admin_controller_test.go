package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/apquiz/internal/dto"
	"github.com/lshigami/apquiz/internal/service"
)

type stubQuestionService struct {
	added       []dto.QuestionCreateDTO
	generateErr error
	lastGen     dto.GenerateQuestionDTO
}

func (s *stubQuestionService) AddQuestion(_ context.Context, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	s.added = append(s.added, req)
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}
	return &dto.QuestionResponseDTO{ID: uint(len(s.added)), Question: req.Question, CorrectAnswer: req.CorrectAnswer, Difficulty: difficulty}, nil
}

func (s *stubQuestionService) ListQuestions(context.Context) ([]dto.QuestionResponseDTO, error) {
	return []dto.QuestionResponseDTO{{ID: 1, Question: "Q1", CorrectAnswer: 2}}, nil
}

func (s *stubQuestionService) GenerateQuestion(_ context.Context, req dto.GenerateQuestionDTO) (*dto.GeneratedQuestionDTO, error) {
	s.lastGen = req
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return &dto.GeneratedQuestionDTO{Draft: dto.QuestionCreateDTO{Question: "drafted", CorrectAnswer: 1}}, nil
}

type stubResultService struct{}

func (stubResultService) GetUserHistory(context.Context, uint) ([]dto.QuizResultDTO, error) {
	return nil, nil
}

func (stubResultService) GetAllResults(context.Context) ([]dto.QuizResultWithUserDTO, error) {
	return []dto.QuizResultWithUserDTO{{ID: 1, Username: "alice", Email: "alice@example.com", Score: 7, Timestamp: time.Now()}}, nil
}

func newRouter(qs *stubQuestionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewAdminController(qs, stubResultService{})
	r.GET("/admin", ctrl.Overview)
	r.GET("/admin/questions", ctrl.ListQuestions)
	r.POST("/admin/questions", ctrl.AddQuestion)
	r.POST("/admin/questions/generate", ctrl.GenerateQuestion)
	r.GET("/admin/results", ctrl.ListResults)
	return r
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddQuestionValidation(t *testing.T) {
	valid := `{"question":"Q?","option1":"1","option2":"2","option3":"3","option4":"4","correct_answer":3`
	cases := []struct {
		name string
		body string
		code int
	}{
		{"valid default difficulty", valid + `}`, http.StatusCreated},
		{"valid hard", valid + `,"difficulty":"hard"}`, http.StatusCreated},
		{"bad difficulty", valid + `,"difficulty":"extreme"}`, http.StatusBadRequest},
		{"correct out of range", `{"question":"Q?","option1":"1","option2":"2","option3":"3","option4":"4","correct_answer":5}`, http.StatusBadRequest},
		{"correct zero", `{"question":"Q?","option1":"1","option2":"2","option3":"3","option4":"4","correct_answer":0}`, http.StatusBadRequest},
		{"missing option", `{"question":"Q?","option1":"1","option2":"2","option3":"3","correct_answer":1}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		qs := &stubQuestionService{}
		w := perform(newRouter(qs), http.MethodPost, "/admin/questions", tc.body)
		if w.Code != tc.code {
			t.Fatalf("%s: status = %d, want %d (%s)", tc.name, w.Code, tc.code, w.Body.String())
		}
		if tc.code == http.StatusBadRequest && len(qs.added) != 0 {
			t.Fatalf("%s: invalid question reached the service", tc.name)
		}
	}
}

func TestAddQuestionForm(t *testing.T) {
	qs := &stubQuestionService{}
	body := "question=Q%3F&option1=1&option2=2&option3=3&option4=4&correct_answer=2&difficulty=easy"
	req := httptest.NewRequest(http.MethodPost, "/admin/questions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	newRouter(qs).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if len(qs.added) != 1 || qs.added[0].Question != "Q?" || qs.added[0].CorrectAnswer != 2 || qs.added[0].Difficulty != "easy" {
		t.Fatalf("unexpected question: %+v", qs.added)
	}
}

func TestOverviewAndLists(t *testing.T) {
	r := newRouter(&stubQuestionService{})

	w := perform(r, http.MethodGet, "/admin", "")
	if w.Code != http.StatusOK {
		t.Fatalf("overview status = %d", w.Code)
	}
	var overview dto.AdminOverviewDTO
	_ = json.Unmarshal(w.Body.Bytes(), &overview)
	if len(overview.Questions) != 1 || len(overview.Results) != 1 || overview.Results[0].Username != "alice" {
		t.Fatalf("unexpected overview: %+v", overview)
	}

	if w := perform(r, http.MethodGet, "/admin/questions", ""); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"correct_answer":2`) {
		t.Fatalf("questions: %d %s", w.Code, w.Body.String())
	}
	if w := perform(r, http.MethodGet, "/admin/results", ""); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"email":"alice@example.com"`) {
		t.Fatalf("results: %d %s", w.Code, w.Body.String())
	}
}

func TestGenerateQuestion(t *testing.T) {
	qs := &stubQuestionService{}
	r := newRouter(qs)

	if w := perform(r, http.MethodPost, "/admin/questions/generate", ""); w.Code != http.StatusOK {
		t.Fatalf("empty body status = %d (%s)", w.Code, w.Body.String())
	}
	if w := perform(r, http.MethodPost, "/admin/questions/generate", `{"topic":"sums","difficulty":"hard","save":true}`); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if qs.lastGen.Topic != "sums" || !qs.lastGen.Save {
		t.Fatalf("request not forwarded: %+v", qs.lastGen)
	}

	qs.generateErr = service.ErrGeneratorUnavailable
	if w := perform(r, http.MethodPost, "/admin/questions/generate", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("unconfigured status = %d, want 503", w.Code)
	}
}

package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/apquiz/internal/dto"
	"github.com/lshigami/apquiz/internal/model"
	"github.com/lshigami/apquiz/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	AddQuestion(ctx context.Context, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	ListQuestions(ctx context.Context) ([]dto.QuestionResponseDTO, error)
	GenerateQuestion(ctx context.Context, req dto.GenerateQuestionDTO) (*dto.GeneratedQuestionDTO, error)
}

type questionService struct {
	repo      repository.QuestionRepository
	generator QuestionGenerator
}

func NewQuestionService(repo repository.QuestionRepository, generator QuestionGenerator) QuestionService {
	return &questionService{repo: repo, generator: generator}
}

func (s *questionService) AddQuestion(ctx context.Context, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question := model.Question{}
	copier.Copy(&question, &req)
	question.Prompt = req.Question
	if question.Difficulty == "" {
		question.Difficulty = model.DifficultyMedium
	}

	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Msg("Failed to create question in service")
		return nil, storeError(err)
	}
	log.Info().Uint("questionID", question.ID).Str("difficulty", question.Difficulty).Msg("Question added")

	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *questionService) ListQuestions(ctx context.Context) ([]dto.QuestionResponseDTO, error) {
	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	resp := make([]dto.QuestionResponseDTO, len(questions))
	for i, q := range questions {
		resp[i] = toQuestionResponse(q)
	}
	return resp, nil
}

func (s *questionService) GenerateQuestion(ctx context.Context, req dto.GenerateQuestionDTO) (*dto.GeneratedQuestionDTO, error) {
	draft, err := s.generator.GenerateQuestion(ctx, req.Topic, req.Difficulty)
	if err != nil {
		return nil, err
	}

	out := &dto.GeneratedQuestionDTO{Draft: *draft}
	if req.Save {
		saved, err := s.AddQuestion(ctx, *draft)
		if err != nil {
			return nil, err
		}
		out.Saved = saved
	}
	return out, nil
}

func toQuestionResponse(q model.Question) dto.QuestionResponseDTO {
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, &q)
	resp.Question = q.Prompt
	return resp
}

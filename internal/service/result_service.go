package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/apquiz/internal/dto"
	"github.com/lshigami/apquiz/internal/repository"
)

type ResultService interface {
	// GetUserHistory returns the user's results, newest first.
	GetUserHistory(ctx context.Context, userID uint) ([]dto.QuizResultDTO, error)
	GetAllResults(ctx context.Context) ([]dto.QuizResultWithUserDTO, error)
}

type resultService struct {
	repo repository.QuizResultRepository
}

func NewResultService(repo repository.QuizResultRepository) ResultService {
	return &resultService{repo: repo}
}

func (s *resultService) GetUserHistory(ctx context.Context, userID uint) ([]dto.QuizResultDTO, error) {
	results, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	resp := make([]dto.QuizResultDTO, 0, len(results))
	if len(results) == 0 {
		return resp, nil
	}
	copier.Copy(&resp, &results)
	return resp, nil
}

func (s *resultService) GetAllResults(ctx context.Context) ([]dto.QuizResultWithUserDTO, error) {
	rows, err := s.repo.FindAllWithUsers(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	resp := make([]dto.QuizResultWithUserDTO, 0, len(rows))
	if len(rows) == 0 {
		return resp, nil
	}
	copier.Copy(&resp, &rows)
	return resp, nil
}

package repository

import (
	"context"
	"time"

	"github.com/lshigami/apquiz/internal/model"
	"gorm.io/gorm"
)

// ResultWithUser is a quiz result joined with the owning user's name and email.
type ResultWithUser struct {
	ID             uint
	UserID         uint
	Username       string
	Email          string
	Score          int
	TotalQuestions int
	Percentage     float64
	TimeTaken      int
	Timestamp      time.Time
}

type QuizResultRepository interface {
	Create(ctx context.Context, result *model.QuizResult) error
	FindByUserID(ctx context.Context, userID uint) ([]model.QuizResult, error)
	FindAllWithUsers(ctx context.Context) ([]ResultWithUser, error)
}

type quizResultRepository struct {
	db *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) QuizResultRepository {
	return &quizResultRepository{db: db}
}

func (r *quizResultRepository) Create(ctx context.Context, result *model.QuizResult) error {
	return r.db.WithContext(ctx).Omit("User").Create(result).Error
}

// FindByUserID returns the user's results, newest first.
func (r *quizResultRepository) FindByUserID(ctx context.Context, userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizResultRepository) FindAllWithUsers(ctx context.Context) ([]ResultWithUser, error) {
	var rows []ResultWithUser
	err := r.db.WithContext(ctx).
		Table("quiz_results AS qr").
		Select("qr.id, qr.user_id, u.username, u.email, qr.score, qr.total_questions, qr.percentage, qr.time_taken, qr.timestamp").
		Joins("JOIN users AS u ON u.id = qr.user_id").
		Order("qr.timestamp DESC, qr.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

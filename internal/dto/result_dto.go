package dto

import "time"

type QuizResultDTO struct {
	ID             uint      `json:"id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	TimeTaken      int       `json:"time_taken"`
	Timestamp      time.Time `json:"timestamp"`
}

type QuizResultWithUserDTO struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	TimeTaken      int       `json:"time_taken"`
	Timestamp      time.Time `json:"timestamp"`
}

type DashboardDTO struct {
	User    UserIdentity    `json:"user"`
	Results []QuizResultDTO `json:"results"`
}

type AdminOverviewDTO struct {
	Questions []QuestionResponseDTO   `json:"questions"`
	Results   []QuizResultWithUserDTO `json:"results"`
}

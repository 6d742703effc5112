package model

import "time"

// QuizResult is written once per completed quiz and never updated.
type QuizResult struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	Percentage     float64   `gorm:"not null" json:"percentage"`
	TimeTaken      int       `gorm:"not null" json:"time_taken"` // whole seconds
	Timestamp      time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

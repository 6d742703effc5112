package model

import (
	"time"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Question struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Prompt        string    `gorm:"column:question;type:text;not null" json:"question"`
	Option1       string    `gorm:"not null" json:"option1"`
	Option2       string    `gorm:"not null" json:"option2"`
	Option3       string    `gorm:"not null" json:"option3"`
	Option4       string    `gorm:"not null" json:"option4"`
	CorrectAnswer int       `gorm:"not null" json:"correct_answer"` // 1-4
	Difficulty    string    `gorm:"not null;default:'medium'" json:"difficulty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Options returns the four option texts in display order.
func (q Question) Options() [4]string {
	return [4]string{q.Option1, q.Option2, q.Option3, q.Option4}
}

func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

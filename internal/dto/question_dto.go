package dto

import "time"

// QuestionCreateDTO is the admin form for adding a question to the bank.
type QuestionCreateDTO struct {
	Question      string `json:"question" form:"question" binding:"required"`
	Option1       string `json:"option1" form:"option1" binding:"required"`
	Option2       string `json:"option2" form:"option2" binding:"required"`
	Option3       string `json:"option3" form:"option3" binding:"required"`
	Option4       string `json:"option4" form:"option4" binding:"required"`
	CorrectAnswer int    `json:"correct_answer" form:"correct_answer" binding:"required,min=1,max=4"`
	Difficulty    string `json:"difficulty" form:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

// QuestionResponseDTO is the admin view of a bank question, correct answer included.
type QuestionResponseDTO struct {
	ID            uint      `json:"id"`
	Question      string    `json:"question"`
	Option1       string    `json:"option1"`
	Option2       string    `json:"option2"`
	Option3       string    `json:"option3"`
	Option4       string    `json:"option4"`
	CorrectAnswer int       `json:"correct_answer"`
	Difficulty    string    `json:"difficulty"`
	CreatedAt     time.Time `json:"created_at"`
}

// GenerateQuestionDTO asks the LLM to draft one question.
type GenerateQuestionDTO struct {
	Topic      string `json:"topic" form:"topic"`
	Difficulty string `json:"difficulty" form:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Save       bool   `json:"save" form:"save"`
}

type GeneratedQuestionDTO struct {
	Draft QuestionCreateDTO    `json:"draft"`
	Saved *QuestionResponseDTO `json:"saved,omitempty"`
}

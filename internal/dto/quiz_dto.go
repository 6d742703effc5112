package dto

// QuestionViewDTO is what a player sees. It never carries the correct index.
type QuestionViewDTO struct {
	ID         uint      `json:"id"`
	Question   string    `json:"question"`
	Options    [4]string `json:"options"`
	Difficulty string    `json:"difficulty"`
	Position   int       `json:"position"`
	Total      int       `json:"total"`
}

type SubmitAnswerDTO struct {
	// Answer is the 1-based option index. Values outside 1..4 are accepted
	// and scored as wrong.
	Answer *int `json:"answer" form:"answer" binding:"required"`
	// Position, when set, is the 1-based question number the client is
	// answering. A stale value is rejected instead of scoring the next question.
	Position int `json:"position,omitempty" form:"position"`
}

type AnswerOutcomeDTO struct {
	Complete bool             `json:"complete"`
	Next     *QuestionViewDTO `json:"next,omitempty"`
}

// QuizProgressDTO is returned by GET /quiz/current.
type QuizProgressDTO struct {
	ReadyToFinish bool             `json:"ready_to_finish"`
	Current       *QuestionViewDTO `json:"current,omitempty"`
	Answered      int              `json:"answered"`
	Total         int              `json:"total"`
}

type AnswerRecordDTO struct {
	Question  string    `json:"question"`
	Options   [4]string `json:"options"`
	Selected  int       `json:"selected"`
	Correct   int       `json:"correct"`
	IsCorrect bool      `json:"is_correct"`
}

type QuizResultDetailDTO struct {
	ResultID   uint              `json:"result_id"`
	Score      int               `json:"score"`
	Total      int               `json:"total"`
	Percentage float64           `json:"percentage"`
	TimeTaken  int               `json:"time_taken"`
	Answers    []AnswerRecordDTO `json:"answers"`
}

package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/apquiz/internal/controller"
	"github.com/lshigami/apquiz/internal/dto"
	"github.com/lshigami/apquiz/internal/service"
)

type QuizController struct {
	quizService   service.QuizService
	resultService service.ResultService
}

func NewQuizController(quizService service.QuizService, resultService service.ResultService) *QuizController {
	return &QuizController{quizService: quizService, resultService: resultService}
}

// Dashboard godoc
// @Summary Own quiz history
// @Description Lists the caller's past results, newest first.
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (c *QuizController) Dashboard(ctx *gin.Context) {
	user, ok := controller.CurrentUser(ctx)
	if !ok {
		return
	}
	results, err := c.resultService.GetUserHistory(ctx.Request.Context(), user.UserID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DashboardDTO{User: user, Results: results})
}

// StartQuiz godoc
// @Summary Start a quiz
// @Description Draws up to 10 random questions and returns the first. Any quiz in progress is discarded.
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.QuestionViewDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "No questions available"
// @Router /quiz [get]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	user, ok := controller.CurrentUser(ctx)
	if !ok {
		return
	}
	view, err := c.quizService.StartQuiz(ctx.Request.Context(), user.UserID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// CurrentQuestion godoc
// @Summary Current question
// @Description Re-shows the question awaiting an answer, or reports that the quiz is ready to finish.
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.QuizProgressDTO
// @Failure 409 {object} dto.ErrorResponse "No quiz in progress"
// @Router /quiz/current [get]
func (c *QuizController) CurrentQuestion(ctx *gin.Context) {
	user, ok := controller.CurrentUser(ctx)
	if !ok {
		return
	}
	progress, err := c.quizService.CurrentQuestion(ctx.Request.Context(), user.UserID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Description Scores the answer and returns the next question, or complete=true after the last one.
// @Tags Quiz
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param answer body dto.SubmitAnswerDTO true "Selected option (1-4)"
// @Success 200 {object} dto.AnswerOutcomeDTO
// @Failure 400 {object} dto.ErrorResponse "Missing or non-integer answer"
// @Failure 409 {object} dto.ErrorResponse "No quiz in progress or already answered"
// @Router /quiz/answer [post]
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	user, ok := controller.CurrentUser(ctx)
	if !ok {
		return
	}
	var req dto.SubmitAnswerDTO
	if err := ctx.ShouldBind(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	outcome, err := c.quizService.SubmitAnswer(ctx.Request.Context(), user.UserID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, outcome)
}

// GetResult godoc
// @Summary Finish the quiz
// @Description Computes and saves the result of a fully answered quiz. Works once per quiz.
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.QuizResultDetailDTO
// @Failure 409 {object} dto.ErrorResponse "No quiz in progress or questions left"
// @Failure 503 {object} dto.ErrorResponse "Result could not be saved"
// @Router /quiz/result [get]
func (c *QuizController) GetResult(ctx *gin.Context) {
	user, ok := controller.CurrentUser(ctx)
	if !ok {
		return
	}
	result, err := c.quizService.FinishQuiz(ctx.Request.Context(), user.UserID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

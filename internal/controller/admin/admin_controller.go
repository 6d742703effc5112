package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/apquiz/internal/controller"
	"github.com/lshigami/apquiz/internal/dto"
	"github.com/lshigami/apquiz/internal/service"
)

type AdminController struct {
	questionService service.QuestionService
	resultService   service.ResultService
}

func NewAdminController(questionService service.QuestionService, resultService service.ResultService) *AdminController {
	return &AdminController{questionService: questionService, resultService: resultService}
}

// Overview godoc
// @Summary (Admin) Panel overview
// @Description The whole question bank and every result with its user.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminOverviewDTO
// @Failure 403 {object} dto.ErrorResponse "Admin privileges required"
// @Router /admin [get]
func (c *AdminController) Overview(ctx *gin.Context) {
	questions, err := c.questionService.ListQuestions(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	results, err := c.resultService.GetAllResults(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AdminOverviewDTO{Questions: questions, Results: results})
}

// ListQuestions godoc
// @Summary (Admin) List questions
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/questions [get]
func (c *AdminController) ListQuestions(ctx *gin.Context) {
	questions, err := c.questionService.ListQuestions(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// AddQuestion godoc
// @Summary (Admin) Add a question
// @Description Adds a question to the bank. Difficulty defaults to medium.
// @Tags Admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param question body dto.QuestionCreateDTO true "Question with four options and the correct index (1-4)"
// @Success 201 {object} dto.QuestionResponseDTO "Question added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/questions [post]
func (c *AdminController) AddQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBind(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	question, err := c.questionService.AddQuestion(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// GenerateQuestion godoc
// @Summary (Admin) Draft a question with Gemini
// @Description Asks the LLM for a new arithmetic progression question. With save=true the draft is added to the bank.
// @Tags Admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateQuestionDTO false "Topic, difficulty and whether to save"
// @Success 200 {object} dto.GeneratedQuestionDTO
// @Failure 502 {object} dto.ErrorResponse "Unusable LLM output"
// @Failure 503 {object} dto.ErrorResponse "GEMINI_API_KEY not configured"
// @Router /admin/questions/generate [post]
func (c *AdminController) GenerateQuestion(ctx *gin.Context) {
	var req dto.GenerateQuestionDTO
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBind(&req); err != nil {
			controller.RespondBindError(ctx, err)
			return
		}
	}

	out, err := c.questionService.GenerateQuestion(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, out)
}

// ListResults godoc
// @Summary (Admin) All results
// @Description Every quiz result joined with the user's name and email, newest first.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizResultWithUserDTO
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/results [get]
func (c *AdminController) ListResults(ctx *gin.Context) {
	results, err := c.resultService.GetAllResults(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

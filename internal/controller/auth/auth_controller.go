package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/apquiz/internal/controller"
	"github.com/lshigami/apquiz/internal/dto"
	"github.com/lshigami/apquiz/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
	quizService service.QuizService
}

func NewAuthController(authService service.AuthService, quizService service.QuizService) *AuthController {
	return &AuthController{authService: authService, quizService: quizService}
}

// Register godoc
// @Summary Register a new account
// @Description Creates a user. Passwords are stored as bcrypt hashes.
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param account body dto.RegisterDTO true "Account details"
// @Success 201 {object} dto.UserResponseDTO "Registration successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or passwords do not match"
// @Failure 409 {object} dto.ErrorResponse "Username already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterDTO
	if err := ctx.ShouldBind(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a bearer token for the other endpoints.
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param credentials body dto.LoginDTO true "Username and password"
// @Success 200 {object} dto.TokenResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid username or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBind(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, token)
}

// Logout godoc
// @Summary Log out
// @Description Discards any quiz in progress. The client drops its token.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	user, ok := controller.CurrentUser(ctx)
	if !ok {
		return
	}
	if err := c.quizService.AbandonQuiz(ctx.Request.Context(), user.UserID); err != nil {
		// Logging out still succeeds; the session expires on its own.
		log.Warn().Err(err).Uint("userID", user.UserID).Msg("Logout: failed to drop quiz session")
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "You have been logged out."})
}

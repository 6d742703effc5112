// Package controller holds what the HTTP handlers in its sub-packages share:
// turning service errors into status codes and reading the caller.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/apquiz/internal/dto"
	"github.com/lshigami/apquiz/internal/middleware"
	"github.com/lshigami/apquiz/internal/quiz"
	"github.com/lshigami/apquiz/internal/repository"
	"github.com/lshigami/apquiz/internal/service"
	"github.com/rs/zerolog/log"
)

type errorMapping struct {
	target  error
	status  int
	message string
	hint    string
}

var errorMappings = []errorMapping{
	{quiz.ErrEmptyPool, http.StatusConflict, "No questions available. Please contact administrator.", ""},
	{quiz.ErrNoActiveSession, http.StatusConflict, "No quiz in progress. Please start a new quiz.", "GET /api/v1/quiz"},
	{quiz.ErrSessionExhausted, http.StatusConflict, "This question has already been answered.", "GET /api/v1/quiz/current"},
	{quiz.ErrIncompleteSession, http.StatusConflict, "Quiz is not finished yet. Answer the remaining questions.", "GET /api/v1/quiz/current"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password!", ""},
	{service.ErrPasswordMismatch, http.StatusBadRequest, "Passwords do not match!", ""},
	{repository.ErrDuplicateUsername, http.StatusConflict, "Username already exists!", ""},
	{service.ErrGeneratorUnavailable, http.StatusServiceUnavailable, "Question generation is not configured.", ""},
	{service.ErrMalformedGeneration, http.StatusBadGateway, "The generated question could not be understood. Please try again.", ""},
	{service.ErrStoreUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", ""},
}

// RespondError writes the error response for err. Unknown errors become 500
// without leaking their text.
func RespondError(ctx *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			resp := dto.ErrorResponse{Message: m.message}
			if m.hint != "" {
				resp.Details = []string{m.hint}
			}
			if m.status >= http.StatusInternalServerError {
				log.Error().Err(err).Str("path", ctx.FullPath()).Str("request_id", middleware.GetRequestID(ctx)).Msg("Request failed")
			}
			ctx.JSON(m.status, resp)
			return
		}
	}

	log.Error().Err(err).Str("path", ctx.FullPath()).Str("request_id", middleware.GetRequestID(ctx)).Msg("Unhandled error")
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Something went wrong. Please try again."})
}

// RespondBindError reports a request body that failed binding or validation.
func RespondBindError(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// CurrentUser returns the caller, or writes 401 and returns false.
func CurrentUser(ctx *gin.Context) (dto.UserIdentity, bool) {
	identity, ok := middleware.Identity(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Please login to continue."})
		return dto.UserIdentity{}, false
	}
	return identity, true
}

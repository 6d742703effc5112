package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/apquiz/internal/dto"
	"github.com/rs/zerolog/log"
)

const identityKey = "identity"

// TokenParser turns a bearer token into the caller's identity.
type TokenParser interface {
	ParseToken(token string) (*dto.UserIdentity, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// identity on the context for handlers.
func RequireAuth(parser TokenParser) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Please login to continue."})
			return
		}

		identity, err := parser.ParseToken(strings.TrimSpace(token))
		if err != nil {
			log.Debug().Err(err).Str("path", ctx.FullPath()).Msg("Rejected bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Session expired. Please login again."})
			return
		}
		ctx.Set(identityKey, *identity)
		ctx.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, ok := Identity(ctx)
		if !ok || !identity.IsAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Access denied. Admin privileges required."})
			return
		}
		ctx.Next()
	}
}

// Identity returns the authenticated caller set by RequireAuth.
func Identity(ctx *gin.Context) (dto.UserIdentity, bool) {
	v, ok := ctx.Get(identityKey)
	if !ok {
		return dto.UserIdentity{}, false
	}
	identity, ok := v.(dto.UserIdentity)
	return identity, ok
}

// SetIdentity is used by tests to bypass token parsing.
func SetIdentity(ctx *gin.Context, identity dto.UserIdentity) {
	ctx.Set(identityKey, identity)
}

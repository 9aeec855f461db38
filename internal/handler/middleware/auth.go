package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/handler/httperr"
	"foodbridge/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

var (
	errMissingToken = errors.New("missing bearer token")
	errRoleMissing  = errors.New("role missing from actor")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		a, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxActorKey, a)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role actor.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}
		if !a.Has(role) {
			httperr.AbortWithError(c, http.StatusForbidden, errRoleMissing, "Insufficient permissions",
				gin.H{"code": "unauthorized", "required_role": role.String()})
			return
		}
		c.Next()
	}
}

func GetActor(c *gin.Context) (actor.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return actor.Actor{}, false
	}
	a, ok := v.(actor.Actor)
	return a, ok
}

// SetActor is used by handler tests that skip token validation.
func SetActor(c *gin.Context, a actor.Actor) {
	c.Set(ctxActorKey, a)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

package http

import (
	"net/http"
	"strings"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/jwt"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName        = "Authorization"
	participantContextKey = "participant"
)

// NewAuthMiddleware resolves the caller from a bearer token and stores its
// address in the request context.
func NewAuthMiddleware(secretKey string, tokenParser jwt.TokenParser, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken([]byte(secretKey), parts[1])
		if err != nil {
			logger.Warn("failed to parse caller token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		participant, err := claims.Participant()
		if err != nil {
			logger.Warn("invalid caller address in token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(participantContextKey, participant)
		c.Next()
	}
}

func callerFromContext(c *gin.Context) (domain.Address, bool) {
	value, exists := c.Get(participantContextKey)
	if !exists {
		return domain.Address{}, false
	}

	caller, ok := value.(domain.Address)
	return caller, ok
}

// requireCaller writes 401 and returns false when no caller was resolved.
func requireCaller(c *gin.Context) (domain.Address, bool) {
	caller, ok := callerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "caller is not authenticated"})
	}

	return caller, ok
}

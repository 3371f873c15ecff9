package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lucito/internal/auth"
)

const userContextKey = "user"

// authenticate resolves the bearer token into an auth payload on the
// request context. Requests without a valid token never reach the handler.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication verification failed."})
			return
		}

		payload, err := auth.Parse(strings.TrimSpace(parts[1]), s.cfg.Auth.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication verification failed."})
			return
		}

		c.Set(userContextKey, payload)
		c.Next()
	}
}

// currentUser returns the auth payload attached by the middleware.
func currentUser(c *gin.Context) (*auth.Payload, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	payload, ok := v.(*auth.Payload)
	return payload, ok
}

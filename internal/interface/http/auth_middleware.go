package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/faq-service/internal/domain/auth"
)

// authMiddleware admits requests carrying a valid bearer token. Every
// rejection produces the same response so callers cannot tell which check
// failed.
func authMiddleware(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, found := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			abortWithError(c, unauthorizedError(nil))
			return
		}
		claims, err := svc.ValidateToken(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, unauthorizedError(err))
			return
		}
		setCaller(c, claims)
		c.Next()
	}
}

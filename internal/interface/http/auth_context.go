package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/yanqian/faq-service/internal/domain/auth"
)

const callerKey = "auth_caller"

// setCaller records the authenticated identity on the gin context and tags
// the active span with it.
func setCaller(c *gin.Context, claims auth.Claims) {
	c.Set(callerKey, claims)
	trace.SpanFromContext(c.Request.Context()).SetAttributes(attribute.Int64("enduser.id", claims.UserID))
}

// callerID returns the user id established by authMiddleware.
func callerID(c *gin.Context) (int64, bool) {
	value, ok := c.Get(callerKey)
	if !ok {
		return 0, false
	}
	claims, ok := value.(auth.Claims)
	if !ok || claims.UserID <= 0 {
		return 0, false
	}
	return claims.UserID, true
}

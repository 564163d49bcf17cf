package httptransport

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-cms/internal/domain/auth"
	"portfolio-cms/internal/platform/logging"
)

// ContextUserID is the gin context key carrying the authenticated subject.
const ContextUserID = "user_id"

// NewRequestGate returns the middleware guarding privileged routes. Every
// failure mode (missing header, malformed token, bad signature, expiry) is
// reported to the client as the same generic unauthorized response; the
// specific cause is only logged.
func NewRequestGate(codec *auth.Codec, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			logger.Warn("request to %s rejected: no credential", c.Request.URL.Path)
			RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
			c.Abort()
			return
		}

		token := header
		if strings.HasPrefix(token, "Bearer ") {
			token = token[len("Bearer "):]
		}

		subject, err := codec.Verify(token)
		if err != nil {
			logger.Warn("request to %s rejected: %v", c.Request.URL.Path, err)
			RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
			c.Abort()
			return
		}

		c.Set(ContextUserID, subject)
		c.Next()
	}
}

// UserID extracts the authenticated subject attached by the request gate.
func UserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

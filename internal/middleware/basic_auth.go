package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innajain/ledger-sub000/internal/utils"
)

// BasicAuthMiddleware creates a Gin middleware that validates HTTP Basic
// credentials against a single shared PBKDF2-SHA512 password hash. The
// username is accepted but ignored. An empty configured hash rejects every
// request.
func BasicAuthMiddleware(passwordHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		_, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="ledger"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Basic authentication required"})
			return
		}

		if passwordHash == "" || !utils.CheckPasswordHash(password, passwordHash) {
			logger.Warn("Rejected request with invalid credentials")
			c.Header("WWW-Authenticate", `Basic realm="ledger"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		c.Next()
	}
}

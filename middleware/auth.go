package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/Oppro-net-Development/ManagerX/config"
	"github.com/Oppro-net-Development/ManagerX/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts the caller's Discord bearer token or validates the
// bot's internal API key. The token is not verified here; the guild
// permission check downstream is what proves it against Discord.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if strings.HasPrefix(authHeader, "Bot ") {
			key := strings.TrimPrefix(authHeader, "Bot ")
			if key == cfg.InternalAPIKey {
				c.Set("authType", "bot")
				c.Next()
				return
			}

			utils.LogError("[AuthMiddleware] Invalid bot API key from %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "invalid bot API key",
			})
			return
		}

		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token != "" {
				c.Set("authType", "user")
				c.Set("token", token)
				c.Next()
				return
			}
		}

		// Legacy dashboard builds sent the Discord token in the POST body
		// instead of the Authorization header.
		if token := peekBodyToken(c); token != "" {
			utils.LogWarn("[AuthMiddleware] Body token fallback used from %s", c.ClientIP())
			c.Set("authType", "user")
			c.Set("token", token)
			c.Next()
			return
		}

		utils.LogWarn("[AuthMiddleware] Missing Authorization header from %s", c.ClientIP())
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"detail": "missing Authorization header",
		})
	}
}

// peekBodyToken reads a "token" field out of a JSON request body without
// consuming it for the handler.
func peekBodyToken(c *gin.Context) string {
	if c.Request.Body == nil || c.Request.Method == http.MethodGet {
		return ""
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Token
}

package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/Oppro-net-Development/ManagerX/cache"
	"github.com/Oppro-net-Development/ManagerX/models"
	"github.com/Oppro-net-Development/ManagerX/pkg/discordapi"
	"github.com/Oppro-net-Development/ManagerX/utils"
	"github.com/gin-gonic/gin"
)

// adminCacheTTL bounds how long a positive admin check is trusted before the
// token is proven against Discord again.
const adminCacheTTL = 60 * time.Second

// fetchUserGuilds is swapped out in tests.
var fetchUserGuilds = func(token string) ([]models.DiscordGuild, error) {
	return discordapi.NewBearerClient(token).CurrentUserGuilds()
}

// RequireGuildAdmin checks against Discord that the caller holds the
// ADMINISTRATOR permission on the guild in the :id route parameter. Positive
// results are cached so repeated settings loads don't hammer Discord.
func RequireGuildAdmin(store cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guildID := c.Param("id")

		// Internal bot always allowed
		if c.GetString("authType") == "bot" {
			c.Next()
			return
		}

		token := c.GetString("token")
		if token == "" {
			utils.LogWarn("[RequireGuildAdmin] Missing token for guildID=%s from %s", guildID, c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "missing Authorization header"})
			return
		}

		cacheKey := adminCacheKey(token, guildID)
		if cached, err := store.Get(c.Request.Context(), cacheKey); err == nil && cached == "1" {
			c.Next()
			return
		}

		guilds, err := fetchUserGuilds(token)
		if err != nil {
			if errors.Is(err, discordapi.ErrTokenExpired) {
				utils.LogWarn("[RequireGuildAdmin] Expired token for guildID=%s from %s", guildID, c.ClientIP())
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token abgelaufen"})
				return
			}
			utils.LogError("[RequireGuildAdmin] Discord validation failed: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Discord API Kommunikationsfehler"})
			return
		}

		var guild *models.DiscordGuild
		for i := range guilds {
			if guilds[i].ID == guildID {
				guild = &guilds[i]
				break
			}
		}

		if guild == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "Server nicht gefunden"})
			return
		}

		if !guild.HasAdmin() {
			utils.LogWarn("[RequireGuildAdmin] Access denied for guildID=%s from %s", guildID, c.ClientIP())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Du hast keine Admin-Rechte"})
			return
		}

		if err := store.Set(c.Request.Context(), cacheKey, "1", adminCacheTTL); err != nil {
			utils.LogWarn("[RequireGuildAdmin] Failed to cache admin check: %v", err)
		}
		c.Next()
	}
}

// adminCacheKey hashes the token so raw Discord tokens never land in redis.
func adminCacheKey(token, guildID string) string {
	sum := sha256.Sum256([]byte(token))
	return "admin:" + hex.EncodeToString(sum[:8]) + ":" + guildID
}

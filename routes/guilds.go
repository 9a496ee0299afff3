package routes

import (
	"errors"
	"net/http"

	"github.com/Oppro-net-Development/ManagerX/models"
	"github.com/Oppro-net-Development/ManagerX/pkg/discordapi"
	"github.com/Oppro-net-Development/ManagerX/utils"

	"github.com/gin-gonic/gin"
)

// Discord lookups behind vars so handler tests can stub them.
var (
	fetchUserGuilds = func(token string) ([]models.DiscordGuild, error) {
		return discordapi.NewBearerClient(token).CurrentUserGuilds()
	}
	fetchGuildChannels = func(token, guildID string) ([]models.DiscordChannel, error) {
		return discordapi.NewBearerClient(token).GuildChannels(guildID)
	}
)

// UserGuilds returns the guilds where the caller has admin rights. Upstream
// failures degrade to an empty list; the guild picker then shows its
// "no servers" message instead of an error page.
func UserGuilds(c *gin.Context) {
	token := c.GetString("token")

	guilds, err := fetchUserGuilds(token)
	if err != nil {
		utils.LogWarn("[Guilds] Failed to fetch guilds: %v", err)
		c.JSON(http.StatusOK, []models.DiscordGuild{})
		return
	}

	admin := make([]models.DiscordGuild, 0, len(guilds))
	for _, g := range guilds {
		if g.HasAdmin() {
			admin = append(admin, g)
		}
	}

	c.JSON(http.StatusOK, admin)
}

// GuildChannels returns the guild's channels restricted to the three types
// the settings dropdowns know about (text, voice, category).
func GuildChannels(c *gin.Context) {
	token := c.GetString("token")
	guildID := c.Param("id")

	channels, err := fetchGuildChannels(token, guildID)
	if err != nil {
		if errors.Is(err, discordapi.ErrTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token abgelaufen"})
			return
		}
		utils.LogError("[Guilds] Channel fetch failed for guildID=%s: %v", guildID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Discord API Fehler"})
		return
	}

	filtered := make([]models.DiscordChannel, 0, len(channels))
	for _, ch := range channels {
		switch ch.Type {
		case models.ChannelTypeText, models.ChannelTypeVoice, models.ChannelTypeCategory:
			filtered = append(filtered, ch)
		}
	}

	c.JSON(http.StatusOK, gin.H{"channels": filtered})
}

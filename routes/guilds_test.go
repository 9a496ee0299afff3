package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Oppro-net-Development/ManagerX/models"
	"github.com/Oppro-net-Development/ManagerX/pkg/discordapi"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuildsRouter(token string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("token", token)
		c.Next()
	})
	router.GET("/api/user/guilds", UserGuilds)
	router.GET("/api/guild/:id/channels", GuildChannels)
	return router
}

func TestUserGuildsFiltersToAdmin(t *testing.T) {
	orig := fetchUserGuilds
	defer func() { fetchUserGuilds = orig }()

	fetchUserGuilds = func(token string) ([]models.DiscordGuild, error) {
		assert.Equal(t, "tok", token)
		return []models.DiscordGuild{
			{ID: "1", Name: "admin guild", Permissions: 0x8},
			{ID: "2", Name: "member guild", Permissions: 0x400},
			{ID: "3", Name: "owner guild", Permissions: 0x8 | 0x400},
		}, nil
	}

	w := doJSON(newGuildsRouter("tok"), http.MethodGet, "/api/user/guilds", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var guilds []models.DiscordGuild
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &guilds))
	require.Len(t, guilds, 2)
	assert.Equal(t, "1", guilds[0].ID)
	assert.Equal(t, "3", guilds[1].ID)
}

func TestUserGuildsDegradesToEmptyListOnUpstreamError(t *testing.T) {
	orig := fetchUserGuilds
	defer func() { fetchUserGuilds = orig }()

	fetchUserGuilds = func(string) ([]models.DiscordGuild, error) {
		return nil, fmt.Errorf("discord: %w", discordapi.ErrUpstreamFailure)
	}

	w := doJSON(newGuildsRouter("tok"), http.MethodGet, "/api/user/guilds", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGuildChannelsFiltersTypes(t *testing.T) {
	orig := fetchGuildChannels
	defer func() { fetchGuildChannels = orig }()

	fetchGuildChannels = func(token, guildID string) ([]models.DiscordChannel, error) {
		assert.Equal(t, "42", guildID)
		return []models.DiscordChannel{
			{ID: "1", Name: "general", Type: models.ChannelTypeText},
			{ID: "2", Name: "voice", Type: models.ChannelTypeVoice},
			{ID: "3", Name: "category", Type: models.ChannelTypeCategory},
			{ID: "4", Name: "announcements", Type: 5},
			{ID: "5", Name: "forum", Type: 15},
		}, nil
	}

	w := doJSON(newGuildsRouter("tok"), http.MethodGet, "/api/guild/42/channels", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Channels []models.DiscordChannel `json:"channels"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Channels, 3)
	for _, ch := range body.Channels {
		assert.Contains(t, []int{0, 2, 4}, ch.Type)
	}
}

func TestGuildChannelsExpiredToken(t *testing.T) {
	orig := fetchGuildChannels
	defer func() { fetchGuildChannels = orig }()

	fetchGuildChannels = func(string, string) ([]models.DiscordChannel, error) {
		return nil, discordapi.ErrTokenExpired
	}

	w := doJSON(newGuildsRouter("stale"), http.MethodGet, "/api/guild/42/channels", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token abgelaufen", detailOf(t, w))
}

func TestGuildChannelsUpstreamError(t *testing.T) {
	orig := fetchGuildChannels
	defer func() { fetchGuildChannels = orig }()

	fetchGuildChannels = func(string, string) ([]models.DiscordChannel, error) {
		return nil, errors.New("connection reset")
	}

	w := doJSON(newGuildsRouter("tok"), http.MethodGet, "/api/guild/42/channels", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Discord API Fehler", detailOf(t, w))
}

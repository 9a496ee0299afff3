package discordapi

import (
	"fmt"
)

// URLs
const (
	oAuthAuthURL  = "https://discord.com/api/oauth2/authorize"
	oAuthTokenURL = "https://discord.com/api/oauth2/token"

	userInfoURL             = "https://discord.com/api/users/@me"
	userGuildsURL           = "https://discord.com/api/users/@me/guilds"
	guildChannelsURLFormat  = "https://discord.com/api/guilds/%s/channels"
)

// errors
var (
	ErrTokenExpired     = fmt.Errorf("discord token expired")
	ErrUpstreamFailure  = fmt.Errorf("discord api request failed")
	ErrNotInitialized   = fmt.Errorf("discordapi not initialized")
)

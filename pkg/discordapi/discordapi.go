// Package discordapi wraps the subset of Discord's OAuth2 and REST API the
// dashboard backend needs: code exchange, token refresh and the user-scoped
// resource reads (identity, guilds, channels).
package discordapi

import (
	"golang.org/x/oauth2"
)

// Config represents a configuration for the Discord application
type Config struct {
	ClientID     string `env:"DISCORD_CLIENT_ID"`
	ClientSecret string `env:"DISCORD_CLIENT_SECRET"`
	RedirectURI  string `env:"DISCORD_REDIRECT_URI"`
}

var oauthConf *oauth2.Config

// Init initializes the package with the given configuration
func Init(config Config) {
	oauthConf = &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURL:  config.RedirectURI,
		Scopes:       []string{"identify", "guilds"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   oAuthAuthURL,
			TokenURL:  oAuthTokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthCodeURL builds the Discord authorization URL carrying the given state.
func AuthCodeURL(state string) string {
	return oauthConf.AuthCodeURL(state)
}

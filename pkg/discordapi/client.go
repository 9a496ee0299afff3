package discordapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/Oppro-net-Development/ManagerX/models"
)

// Client represents a Discord API client initialized with a user token.
// When built from a full token pair the underlying transport refreshes the
// access token on expiry; a bearer-only client reports ErrTokenExpired
// instead, which is what the dashboard's 401 contract requires.
type Client struct {
	*http.Client
}

// NewClient initializes a client with a full OAuth token; expired tokens are
// refreshed transparently by the oauth2 transport.
func NewClient(token oauth2.Token) *Client {
	ctx := context.Background()
	ts := oauthConf.TokenSource(ctx, &token)
	return &Client{oauth2.NewClient(ctx, ts)}
}

// NewBearerClient initializes a client from a bare access token, with no
// refresh capability.
func NewBearerClient(accessToken string) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	c := oauth2.NewClient(ctx, ts)
	c.Timeout = 5 * time.Second
	return &Client{c}
}

// CurrentUser gets the token owner's identity.
func (c *Client) CurrentUser() (user models.DiscordUser, err error) {
	body, _, err := c.request(http.MethodGet, userInfoURL)
	if err != nil {
		return
	}

	err = json.Unmarshal(body, &user)
	if err != nil {
		err = fmt.Errorf("error parsing user response: %s\n%s", string(body), err)
	}
	return
}

// CurrentUserGuilds gets all guilds the token owner is a member of.
func (c *Client) CurrentUserGuilds() ([]models.DiscordGuild, error) {
	body, _, err := c.request(http.MethodGet, userGuildsURL)
	if err != nil {
		return nil, err
	}

	var guilds []models.DiscordGuild
	err = json.Unmarshal(body, &guilds)
	if err != nil {
		return nil, fmt.Errorf("error parsing guilds response: %s\n%s", string(body), err)
	}
	return guilds, nil
}

// GuildChannels gets a guild's full channel list.
func (c *Client) GuildChannels(guildID string) ([]models.DiscordChannel, error) {
	body, _, err := c.request(http.MethodGet, fmt.Sprintf(guildChannelsURLFormat, guildID))
	if err != nil {
		return nil, err
	}

	var channels []models.DiscordChannel
	err = json.Unmarshal(body, &channels)
	if err != nil {
		return nil, fmt.Errorf("error parsing channels response: %s\n%s", string(body), err)
	}
	return channels, nil
}

func (c *Client) request(method, url string) ([]byte, int, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return body, resp.StatusCode, ErrTokenExpired
	case resp.StatusCode != http.StatusOK:
		return body, resp.StatusCode, fmt.Errorf("%w: HTTP %d: %s", ErrUpstreamFailure, resp.StatusCode, string(body))
	}
	return body, resp.StatusCode, nil
}

package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Oppro-net-Development/ManagerX/models"
)

const (
	guildIconURLFormat  = "https://cdn.discordapp.com/icons/%s/%s.png"
	placeholderIconPath = "img/placeholder_icon.png"
)

// Guilds fetches the guilds the logged-in user administers. An empty slice
// is a valid result; the caller renders the "no servers with admin rights"
// message instead of an empty list.
func (c *Client) Guilds(ctx context.Context) ([]models.DiscordGuild, error) {
	resp, err := c.Do(ctx, http.MethodGet, "/user/guilds", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{StatusCode: resp.StatusCode, Detail: readDetail(resp)}
	}

	var guilds []models.DiscordGuild
	if err := json.NewDecoder(resp.Body).Decode(&guilds); err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Detail: err.Error()}
	}
	return guilds, nil
}

// GuildIconURL builds the CDN icon URL for a guild card, falling back to the
// bundled placeholder for guilds without an icon hash.
func GuildIconURL(g models.DiscordGuild) string {
	if g.Icon == "" {
		return placeholderIconPath
	}
	return fmt.Sprintf(guildIconURLFormat, g.ID, g.Icon)
}

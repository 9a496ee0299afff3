package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Oppro-net-Development/ManagerX/models"
)

// ChannelGroups is the channel list partitioned for the three settings
// dropdowns. Channel types outside text/voice/category are omitted entirely.
type ChannelGroups struct {
	Text     []models.DiscordChannel
	Voice    []models.DiscordChannel
	Category []models.DiscordChannel
}

// PartitionChannels splits a channel list by type code. The partition is
// exclusive: a channel lands in exactly one group or none.
func PartitionChannels(channels []models.DiscordChannel) ChannelGroups {
	var groups ChannelGroups
	for _, ch := range channels {
		switch ch.Type {
		case models.ChannelTypeText:
			groups.Text = append(groups.Text, ch)
		case models.ChannelTypeVoice:
			groups.Voice = append(groups.Voice, ch)
		case models.ChannelTypeCategory:
			groups.Category = append(groups.Category, ch)
		}
	}
	return groups
}

// LoadChannels fetches the guild's channel list once and returns it
// partitioned for the dropdowns.
func (c *Client) LoadChannels(ctx context.Context, guildID string) (ChannelGroups, error) {
	resp, err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/guild/%s/channels", guildID), nil)
	if err != nil {
		return ChannelGroups{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ChannelGroups{}, &RequestError{StatusCode: resp.StatusCode, Detail: readDetail(resp)}
	}

	var payload struct {
		Channels []models.DiscordChannel `json:"channels"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ChannelGroups{}, &RequestError{StatusCode: resp.StatusCode, Detail: err.Error()}
	}

	return PartitionChannels(payload.Channels), nil
}

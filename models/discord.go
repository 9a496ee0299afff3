package models

// AdminPermission is the ADMINISTRATOR bit in Discord's permission bitfield.
// The dashboard only lists and edits guilds where the user carries it.
const AdminPermission uint64 = 0x8

// Channel type codes recognized by the dashboard dropdowns. Anything else
// (threads, forums, announcements) is filtered out before it reaches a form.
const (
	ChannelTypeText     = 0
	ChannelTypeVoice    = 2
	ChannelTypeCategory = 4
)

type DiscordTokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    uint32 `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}

type DiscordUser struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`
}

type DiscordGuild struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Owner       bool   `json:"owner"`
	Permissions uint64 `json:"permissions,string"`
}

type DiscordChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
}

// HasAdmin reports whether the guild entry carries the ADMINISTRATOR bit.
func (g DiscordGuild) HasAdmin() bool {
	return g.Permissions&AdminPermission == AdminPermission
}

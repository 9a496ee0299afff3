package models

// Per-guild dashboard settings. JSON field names are the wire contract shared
// with the web dashboard and the bot; bson tags mirror them for storage.

type TempVCSettings struct {
	GuildID          string `bson:"guild_id" json:"-"`
	CreatorChannelID string `bson:"creator_channel_id" json:"creator_channel_id"`
	CategoryID       string `bson:"category_id" json:"category_id"`
	AutoDeleteTime   int    `bson:"auto_delete_time" json:"auto_delete_time"`
	UIEnabled        bool   `bson:"ui_enabled" json:"ui_enabled"`
	UIPrefix         string `bson:"ui_prefix" json:"ui_prefix"`
}

type WelcomeSettings struct {
	GuildID          string `bson:"guild_id" json:"-"`
	ChannelID        string `bson:"channel_id" json:"channel_id"`
	WelcomeMessage   string `bson:"welcome_message" json:"welcome_message"`
	Enabled          bool   `bson:"enabled" json:"enabled"`
	EmbedEnabled     bool   `bson:"embed_enabled" json:"embed_enabled"`
	EmbedColor       string `bson:"embed_color" json:"embed_color"`
	EmbedTitle       string `bson:"embed_title" json:"embed_title"`
	EmbedDescription string `bson:"embed_description" json:"embed_description"`
	EmbedThumbnail   bool   `bson:"embed_thumbnail" json:"embed_thumbnail"`
	EmbedFooter      string `bson:"embed_footer" json:"embed_footer"`
	PingUser         bool   `bson:"ping_user" json:"ping_user"`
	DeleteAfter      int    `bson:"delete_after" json:"delete_after"`
}

type LevelSettings struct {
	GuildID           string `bson:"guild_id" json:"-"`
	Enabled           bool   `bson:"levelsystem_enabled" json:"levelsystem_enabled"`
	MinXP             int    `bson:"min_xp" json:"min_xp"`
	MaxXP             int    `bson:"max_xp" json:"max_xp"`
	XPCooldown        int    `bson:"xp_cooldown" json:"xp_cooldown"`
	LevelUpChannel    string `bson:"level_up_channel" json:"level_up_channel"`
	PrestigeEnabled   bool   `bson:"prestige_enabled" json:"prestige_enabled"`
	PrestigeMinLevel  int    `bson:"prestige_min_level" json:"prestige_min_level"`
}

// Defaults served when a guild has never saved the module.

func DefaultTempVCSettings(guildID string) TempVCSettings {
	return TempVCSettings{
		GuildID:          guildID,
		CreatorChannelID: "",
		CategoryID:       "",
		AutoDeleteTime:   0,
		UIEnabled:        false,
		UIPrefix:         "🔧",
	}
}

func DefaultWelcomeSettings(guildID string) WelcomeSettings {
	return WelcomeSettings{
		GuildID:        guildID,
		ChannelID:      "",
		WelcomeMessage: "Willkommen {user} auf {server}!",
		Enabled:        true,
		EmbedEnabled:   false,
		EmbedColor:     "#00ff00",
		EmbedTitle:     "Willkommen!",
		EmbedThumbnail: false,
		PingUser:       false,
		DeleteAfter:    0,
	}
}

func DefaultLevelSettings(guildID string) LevelSettings {
	return LevelSettings{
		GuildID:          guildID,
		Enabled:          true,
		MinXP:            10,
		MaxXP:            20,
		XPCooldown:       30,
		LevelUpChannel:   "",
		PrestigeEnabled:  true,
		PrestigeMinLevel: 50,
	}
}

// Update payloads accepted on the settings POST routes. The Token field is a
// legacy fallback: early dashboard builds sent the Discord token in the body
// instead of the Authorization header.

type TempVCUpdate struct {
	Token            string `json:"token"`
	CreatorChannelID string `json:"creator_channel_id"`
	CategoryID       string `json:"category_id"`
	AutoDeleteTime   int    `json:"auto_delete_time"`
	UIEnabled        bool   `json:"ui_enabled"`
	UIPrefix         string `json:"ui_prefix"`
}

type WelcomeUpdate struct {
	Token            string `json:"token"`
	ChannelID        string `json:"channel_id"`
	WelcomeMessage   string `json:"welcome_message"`
	Enabled          bool   `json:"enabled"`
	EmbedEnabled     bool   `json:"embed_enabled"`
	EmbedColor       string `json:"embed_color"`
	EmbedTitle       string `json:"embed_title"`
	EmbedDescription string `json:"embed_description"`
	EmbedThumbnail   bool   `json:"embed_thumbnail"`
	EmbedFooter      string `json:"embed_footer"`
	PingUser         bool   `json:"ping_user"`
	DeleteAfter      int    `json:"delete_after"`
}

type LevelUpdate struct {
	Token            string `json:"token"`
	Enabled          bool   `json:"levelsystem_enabled"`
	MinXP            int    `json:"min_xp"`
	MaxXP            int    `json:"max_xp"`
	XPCooldown       int    `json:"xp_cooldown"`
	LevelUpChannel   string `json:"level_up_channel"`
	PrestigeEnabled  bool   `json:"prestige_enabled"`
	PrestigeMinLevel int    `json:"prestige_min_level"`
}

package dashboard

// The three settings modules as schema instances. Field names and defaults
// are the wire contract shared with the backend.

func TempVCSchema() Schema {
	return Schema{
		{Name: "creator_channel_id", Kind: KindText},
		{Name: "category_id", Kind: KindText},
		{Name: "auto_delete_time", Kind: KindInt, DefaultInt: 0},
		{Name: "ui_enabled", Kind: KindBool, DefaultBool: false},
		{Name: "ui_prefix", Kind: KindText, DefaultText: "🔧"},
	}
}

func WelcomeSchema() Schema {
	return Schema{
		{Name: "channel_id", Kind: KindText},
		{Name: "welcome_message", Kind: KindText},
		{Name: "enabled", Kind: KindBool, DefaultBool: true},
		{Name: "embed_enabled", Kind: KindBool, DefaultBool: false},
		{Name: "embed_color", Kind: KindText, DefaultText: "#00ff00"},
		{Name: "embed_title", Kind: KindText},
		{Name: "embed_description", Kind: KindText},
		{Name: "embed_thumbnail", Kind: KindBool, DefaultBool: false},
		{Name: "embed_footer", Kind: KindText},
		{Name: "ping_user", Kind: KindBool, DefaultBool: false},
		{Name: "delete_after", Kind: KindInt, DefaultInt: 0},
	}
}

func LevelSchema() Schema {
	return Schema{
		{Name: "levelsystem_enabled", Kind: KindBool, DefaultBool: true},
		{Name: "min_xp", Kind: KindInt, DefaultInt: 10},
		{Name: "max_xp", Kind: KindInt, DefaultInt: 20},
		{Name: "xp_cooldown", Kind: KindInt, DefaultInt: 30},
		{Name: "level_up_channel", Kind: KindText},
		{Name: "prestige_enabled", Kind: KindBool, DefaultBool: true},
		{Name: "prestige_min_level", Kind: KindInt, DefaultInt: 50},
	}
}

func NewTempVCForm(client *Client) *RemoteForm {
	return newRemoteForm(client, "/guild/%s/tempvc", TempVCSchema())
}

func NewWelcomeForm(client *Client) *RemoteForm {
	return newRemoteForm(client, "/guild/%s/welcome", WelcomeSchema())
}

func NewLevelForm(client *Client) *RemoteForm {
	return newRemoteForm(client, "/guild/%s/levelsystem", LevelSchema())
}

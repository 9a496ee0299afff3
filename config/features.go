package config

import (
	"os"
	"strings"

	"github.com/Oppro-net-Development/ManagerX/utils"
	"gopkg.in/yaml.v2"
)

// Features mirrors the bot's config.yaml so the API and the bot agree on
// which dashboard modules are switched on. An unknown or missing path counts
// as enabled; only an explicit boolean false disables a feature.
type Features struct {
	tree map[interface{}]interface{}
}

// Feature paths checked by the settings routes.
const (
	FeatureTempVC      = "features.cogs.server_management.tempvc"
	FeatureWelcome     = "features.cogs.server_management.welcome"
	FeatureLevelsystem = "features.cogs.server_management.levelsystem"
)

// LoadFeatures reads the bot's YAML config. A missing file is not an error:
// every feature is then treated as enabled.
func LoadFeatures(path string) *Features {
	data, err := os.ReadFile(path)
	if err != nil {
		utils.LogWarn("[Config] Feature config %s not found, all features enabled", path)
		return &Features{}
	}

	var tree map[interface{}]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		utils.LogError("[Config] Failed to parse feature config %s: %v", path, err)
		return &Features{}
	}

	utils.LogSuccess("[Config] Feature config loaded from %s", path)
	return &Features{tree: tree}
}

// Enabled walks a dotted path through the YAML tree. Only a boolean leaf can
// disable a feature; anything else (missing key, non-bool value) enables it.
func (f *Features) Enabled(path string) bool {
	if f == nil || f.tree == nil {
		return true
	}

	var current interface{} = f.tree
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[interface{}]interface{})
		if !ok {
			return true
		}
		current, ok = m[key]
		if !ok {
			return true
		}
	}

	if b, ok := current.(bool); ok {
		return b
	}
	return true
}

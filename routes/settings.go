package routes

import (
	"net/http"
	"strconv"

	"github.com/Oppro-net-Development/ManagerX/config"
	"github.com/Oppro-net-Development/ManagerX/db"
	"github.com/Oppro-net-Development/ManagerX/models"
	"github.com/Oppro-net-Development/ManagerX/utils"

	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	store    db.SettingsStore
	features *config.Features
}

// featureEnabled aborts with the module's disabled message when the feature
// is switched off in the bot config. The "deaktiviert" detail is what the
// dashboard matches on to distinguish this from a generic error.
func (h *settingsHandler) featureEnabled(c *gin.Context, path, name string) bool {
	if h.features.Enabled(path) {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"detail": name + " Feature ist deaktiviert"})
	return false
}

func isSnowflake(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

// --- TempVC ---

func (h *settingsHandler) GetTempVC(c *gin.Context) {
	if !h.featureEnabled(c, config.FeatureTempVC, "TempVC") {
		return
	}
	guildID := c.Param("id")

	settings, err := h.store.GetTempVC(c.Request.Context(), guildID)
	if err != nil {
		utils.LogError("[Settings] TempVC load failed for guildID=%s: %v", guildID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Interner Datenbank-Fehler"})
		return
	}
	if settings == nil {
		defaults := models.DefaultTempVCSettings(guildID)
		settings = &defaults
	}

	c.JSON(http.StatusOK, settings)
}

func (h *settingsHandler) SaveTempVC(c *gin.Context) {
	if !h.featureEnabled(c, config.FeatureTempVC, "TempVC") {
		return
	}
	guildID := c.Param("id")

	var payload models.TempVCUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid json"})
		return
	}

	if !isSnowflake(payload.CreatorChannelID) || !isSnowflake(payload.CategoryID) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Kanal- und Kategorie-IDs müssen Zahlen sein"})
		return
	}

	settings := models.TempVCSettings{
		GuildID:          guildID,
		CreatorChannelID: payload.CreatorChannelID,
		CategoryID:       payload.CategoryID,
		AutoDeleteTime:   payload.AutoDeleteTime,
		UIEnabled:        payload.UIEnabled,
		UIPrefix:         payload.UIPrefix,
	}
	if err := h.store.SetTempVC(c.Request.Context(), settings); err != nil {
		utils.LogError("[Settings] TempVC save failed for guildID=%s: %v", guildID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Interner Datenbank-Fehler"})
		return
	}

	utils.LogSuccess("[Settings] TempVC saved for guildID=%s", guildID)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Daten wurden permanent gespeichert"})
}

// --- Welcome ---

func (h *settingsHandler) GetWelcome(c *gin.Context) {
	if !h.featureEnabled(c, config.FeatureWelcome, "Welcome") {
		return
	}
	guildID := c.Param("id")

	settings, err := h.store.GetWelcome(c.Request.Context(), guildID)
	if err != nil {
		utils.LogError("[Settings] Welcome load failed for guildID=%s: %v", guildID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Interner Datenbank-Fehler"})
		return
	}
	if settings == nil {
		defaults := models.DefaultWelcomeSettings(guildID)
		settings = &defaults
	}

	c.JSON(http.StatusOK, settings)
}

func (h *settingsHandler) SaveWelcome(c *gin.Context) {
	if !h.featureEnabled(c, config.FeatureWelcome, "Welcome") {
		return
	}
	guildID := c.Param("id")

	var payload models.WelcomeUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid json"})
		return
	}

	// Channel may be unset while the module is disabled
	if payload.ChannelID != "" && !isSnowflake(payload.ChannelID) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Ungültige Channel-ID"})
		return
	}

	settings := models.WelcomeSettings{
		GuildID:          guildID,
		ChannelID:        payload.ChannelID,
		WelcomeMessage:   payload.WelcomeMessage,
		Enabled:          payload.Enabled,
		EmbedEnabled:     payload.EmbedEnabled,
		EmbedColor:       payload.EmbedColor,
		EmbedTitle:       payload.EmbedTitle,
		EmbedDescription: payload.EmbedDescription,
		EmbedThumbnail:   payload.EmbedThumbnail,
		EmbedFooter:      payload.EmbedFooter,
		PingUser:         payload.PingUser,
		DeleteAfter:      payload.DeleteAfter,
	}
	if err := h.store.SetWelcome(c.Request.Context(), settings); err != nil {
		utils.LogError("[Settings] Welcome save failed for guildID=%s: %v", guildID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Interner Datenbank-Fehler"})
		return
	}

	utils.LogSuccess("[Settings] Welcome saved for guildID=%s", guildID)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Welcome-Einstellungen gespeichert"})
}

// --- Levelsystem ---

func (h *settingsHandler) GetLevel(c *gin.Context) {
	if !h.featureEnabled(c, config.FeatureLevelsystem, "Levelsystem") {
		return
	}
	guildID := c.Param("id")

	settings, err := h.store.GetLevel(c.Request.Context(), guildID)
	if err != nil {
		utils.LogError("[Settings] Levelsystem load failed for guildID=%s: %v", guildID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Interner Datenbank-Fehler"})
		return
	}
	if settings == nil {
		defaults := models.DefaultLevelSettings(guildID)
		settings = &defaults
	}

	c.JSON(http.StatusOK, settings)
}

func (h *settingsHandler) SaveLevel(c *gin.Context) {
	if !h.featureEnabled(c, config.FeatureLevelsystem, "Levelsystem") {
		return
	}
	guildID := c.Param("id")

	var payload models.LevelUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid json"})
		return
	}

	if payload.LevelUpChannel != "" && !isSnowflake(payload.LevelUpChannel) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Ungültige Channel-ID"})
		return
	}

	settings := models.LevelSettings{
		GuildID:          guildID,
		Enabled:          payload.Enabled,
		MinXP:            payload.MinXP,
		MaxXP:            payload.MaxXP,
		XPCooldown:       payload.XPCooldown,
		LevelUpChannel:   payload.LevelUpChannel,
		PrestigeEnabled:  payload.PrestigeEnabled,
		PrestigeMinLevel: payload.PrestigeMinLevel,
	}
	if err := h.store.SetLevel(c.Request.Context(), settings); err != nil {
		utils.LogError("[Settings] Levelsystem save failed for guildID=%s: %v", guildID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Interner Datenbank-Fehler"})
		return
	}

	utils.LogSuccess("[Settings] Levelsystem saved for guildID=%s", guildID)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Levelsystem-Einstellungen gespeichert"})
}

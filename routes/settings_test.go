package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Oppro-net-Development/ManagerX/config"
	"github.com/Oppro-net-Development/ManagerX/db"
	"github.com/Oppro-net-Development/ManagerX/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSettingsRouter(t *testing.T, features *config.Features) (*gin.Engine, *db.MemorySettingsStore) {
	t.Helper()

	store := db.NewMemorySettingsStore()
	sh := &settingsHandler{store: store, features: features}

	router := gin.New()
	guild := router.Group("/api/guild/:id")
	guild.GET("/tempvc", sh.GetTempVC)
	guild.POST("/tempvc", sh.SaveTempVC)
	guild.GET("/welcome", sh.GetWelcome)
	guild.POST("/welcome", sh.SaveWelcome)
	guild.GET("/levelsystem", sh.GetLevel)
	guild.POST("/levelsystem", sh.SaveLevel)
	return router, store
}

func featuresFromYAML(t *testing.T, content string) *config.Features {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return config.LoadFeatures(path)
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func detailOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	detail, _ := body["detail"].(string)
	return detail
}

func TestGetTempVCServesDefaultsWhenUnsaved(t *testing.T) {
	router, _ := newSettingsRouter(t, &config.Features{})

	w := doJSON(router, http.MethodGet, "/api/guild/42/tempvc", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.TempVCSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "🔧", got.UIPrefix)
	assert.Equal(t, 0, got.AutoDeleteTime)
	assert.Empty(t, got.CreatorChannelID)
}

func TestSaveTempVCRoundTrip(t *testing.T) {
	router, store := newSettingsRouter(t, &config.Features{})

	w := doJSON(router, http.MethodPost, "/api/guild/42/tempvc", models.TempVCUpdate{
		CreatorChannelID: "123456789012345678",
		CategoryID:       "876543210987654321",
		AutoDeleteTime:   30,
		UIEnabled:        true,
		UIPrefix:         "VC",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Daten wurden permanent gespeichert", body["message"])

	saved, err := store.GetTempVC(context.Background(), "42")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "123456789012345678", saved.CreatorChannelID)
	assert.Equal(t, 30, saved.AutoDeleteTime)

	// and the GET now reflects it
	w = doJSON(router, http.MethodGet, "/api/guild/42/tempvc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.TempVCSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "VC", got.UIPrefix)
}

func TestSaveTempVCRejectsNonNumericIDs(t *testing.T) {
	router, store := newSettingsRouter(t, &config.Features{})

	for _, payload := range []models.TempVCUpdate{
		{CreatorChannelID: "abc", CategoryID: "123"},
		{CreatorChannelID: "123", CategoryID: ""},
		{CreatorChannelID: "", CategoryID: ""},
	} {
		w := doJSON(router, http.MethodPost, "/api/guild/42/tempvc", payload)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Kanal- und Kategorie-IDs müssen Zahlen sein", detailOf(t, w))
	}

	saved, err := store.GetTempVC(context.Background(), "42")
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestTempVCFeatureDisabled(t *testing.T) {
	features := featuresFromYAML(t, `
features:
  cogs:
    server_management:
      tempvc: false
`)
	router, _ := newSettingsRouter(t, features)

	w := doJSON(router, http.MethodGet, "/api/guild/42/tempvc", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "TempVC Feature ist deaktiviert", detailOf(t, w))

	w = doJSON(router, http.MethodPost, "/api/guild/42/tempvc", models.TempVCUpdate{
		CreatorChannelID: "123", CategoryID: "456",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	// the other modules are untouched by the tempvc switch
	w = doJSON(router, http.MethodGet, "/api/guild/42/welcome", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetWelcomeServesDefaultsWhenUnsaved(t *testing.T) {
	router, _ := newSettingsRouter(t, &config.Features{})

	w := doJSON(router, http.MethodGet, "/api/guild/42/welcome", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.WelcomeSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Willkommen {user} auf {server}!", got.WelcomeMessage)
	assert.Equal(t, "#00ff00", got.EmbedColor)
	assert.True(t, got.Enabled)
}

func TestSaveWelcomeAllowsEmptyChannel(t *testing.T) {
	router, store := newSettingsRouter(t, &config.Features{})

	w := doJSON(router, http.MethodPost, "/api/guild/42/welcome", models.WelcomeUpdate{
		ChannelID:      "",
		WelcomeMessage: "Hi {user}",
		Enabled:        false,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Welcome-Einstellungen gespeichert", body["message"])

	saved, err := store.GetWelcome(context.Background(), "42")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Hi {user}", saved.WelcomeMessage)
}

func TestSaveWelcomeRejectsBadChannel(t *testing.T) {
	router, _ := newSettingsRouter(t, &config.Features{})

	w := doJSON(router, http.MethodPost, "/api/guild/42/welcome", models.WelcomeUpdate{
		ChannelID: "not-a-snowflake",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Ungültige Channel-ID", detailOf(t, w))
}

func TestGetLevelServesDefaultsWhenUnsaved(t *testing.T) {
	router, _ := newSettingsRouter(t, &config.Features{})

	w := doJSON(router, http.MethodGet, "/api/guild/42/levelsystem", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.LevelSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 10, got.MinXP)
	assert.Equal(t, 20, got.MaxXP)
	assert.Equal(t, 30, got.XPCooldown)
	assert.Equal(t, 50, got.PrestigeMinLevel)
	assert.True(t, got.PrestigeEnabled)
}

func TestSaveLevelRoundTrip(t *testing.T) {
	router, store := newSettingsRouter(t, &config.Features{})

	w := doJSON(router, http.MethodPost, "/api/guild/42/levelsystem", models.LevelUpdate{
		Enabled:          true,
		MinXP:            5,
		MaxXP:            15,
		XPCooldown:       60,
		LevelUpChannel:   "123456789012345678",
		PrestigeEnabled:  false,
		PrestigeMinLevel: 80,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Levelsystem-Einstellungen gespeichert", body["message"])

	saved, err := store.GetLevel(context.Background(), "42")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 5, saved.MinXP)
	assert.Equal(t, 80, saved.PrestigeMinLevel)
}

func TestSaveLevelRejectsBadChannel(t *testing.T) {
	router, _ := newSettingsRouter(t, &config.Features{})

	w := doJSON(router, http.MethodPost, "/api/guild/42/levelsystem", models.LevelUpdate{
		LevelUpChannel: "general",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Ungültige Channel-ID", detailOf(t, w))
}

func TestSettingsAreScopedPerGuild(t *testing.T) {
	router, _ := newSettingsRouter(t, &config.Features{})

	w := doJSON(router, http.MethodPost, "/api/guild/1/tempvc", models.TempVCUpdate{
		CreatorChannelID: "111", CategoryID: "222", UIPrefix: "A",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/guild/2/tempvc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.TempVCSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "🔧", got.UIPrefix)
}

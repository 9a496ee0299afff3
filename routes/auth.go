package routes

import (
	"net/http"

	"github.com/Oppro-net-Development/ManagerX/config"
	"github.com/Oppro-net-Development/ManagerX/pkg/discordapi"
	"github.com/Oppro-net-Development/ManagerX/utils"

	"github.com/gin-gonic/gin"
)

// DiscordLogin redirects the user to Discord's consent screen with a signed
// state parameter.
func DiscordLogin(c *gin.Context) {
	cfg := c.MustGet("config").(*config.Config)

	state, err := utils.GenerateState(cfg.StateSecret)
	if err != nil {
		utils.LogError("[Auth] Failed to sign state token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create state"})
		return
	}

	c.Redirect(http.StatusFound, discordapi.AuthCodeURL(state))
}

// AuthCallback exchanges the authorization code for a Discord token pair and
// returns it together with the user's identity. The dashboard stores the
// tokens client-side; the backend keeps no session of its own.
func AuthCallback(c *gin.Context) {
	cfg := c.MustGet("config").(*config.Config)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "missing code"})
		return
	}

	if err := utils.ValidateState(cfg.StateSecret, c.Query("state")); err != nil {
		utils.LogWarn("[Auth] Invalid OAuth state from %s: %v", c.ClientIP(), err)
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid state"})
		return
	}

	token, err := discordapi.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		utils.LogError("[Auth] Token exchange failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Discord Token Austausch fehlgeschlagen"})
		return
	}

	user, err := discordapi.NewBearerClient(token.AccessToken).CurrentUser()
	if err != nil {
		utils.LogError("[Auth] Failed to fetch user after login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to get user"})
		return
	}

	utils.LogSuccess("[Auth] Login completed for userID=%s", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"access_token":  token.AccessToken,
		"refresh_token": token.RefreshToken,
		"user":          user,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshAccessToken trades a refresh token for a new token pair. Discord
// rotates refresh tokens, so the response always carries the new one.
func RefreshAccessToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "missing refresh_token"})
		return
	}

	token, err := discordapi.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.LogWarn("[Auth] Token refresh failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Token-Refresh fehlgeschlagen"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  token.AccessToken,
		"refresh_token": token.RefreshToken,
	})
}

package routes

import (
	"github.com/Oppro-net-Development/ManagerX/cache"
	"github.com/Oppro-net-Development/ManagerX/config"
	"github.com/Oppro-net-Development/ManagerX/db"
	"github.com/Oppro-net-Development/ManagerX/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all route groups
func RegisterRoutes(router *gin.Engine, cfg *config.Config, settings db.SettingsStore, permCache cache.Store) {

	// Share config across requests
	router.Use(func(c *gin.Context) {
		c.Set("config", cfg)
		c.Next()
	})

	// Public auth routes
	router.GET("/auth/discord/login", DiscordLogin)
	router.GET("/api/auth/callback", AuthCallback)
	router.POST("/api/auth/refresh", RefreshAccessToken)

	// Public stats (the landing page widget polls this without a session)
	router.GET("/api/managerx/stats", GetStats)
	router.GET("/api/v2/stats", GetStats)

	// Protected API group
	api := router.Group("/api")
	api.Use(
		middleware.AuthMiddleware(cfg),
		middleware.RateLimitMiddleware(),
	)

	api.GET("/user/guilds", UserGuilds)
	api.POST("/managerx/stats", ReportStats)

	// Guild settings routes (protected + admin check)
	sh := &settingsHandler{store: settings, features: cfg.Features}
	guild := api.Group("/guild/:id")
	guild.Use(middleware.RequireGuildAdmin(permCache))

	guild.GET("/channels", GuildChannels)
	guild.GET("/tempvc", sh.GetTempVC)
	guild.POST("/tempvc", sh.SaveTempVC)
	guild.GET("/welcome", sh.GetWelcome)
	guild.POST("/welcome", sh.SaveWelcome)
	guild.GET("/levelsystem", sh.GetLevel)
	guild.POST("/levelsystem", sh.SaveLevel)
}

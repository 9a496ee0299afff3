package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Oppro-net-Development/ManagerX/cache"
	"github.com/Oppro-net-Development/ManagerX/config"
	"github.com/Oppro-net-Development/ManagerX/db"
	"github.com/Oppro-net-Development/ManagerX/jobs"
	"github.com/Oppro-net-Development/ManagerX/routes"

	"github.com/Oppro-net-Development/ManagerX/middleware"
	"github.com/Oppro-net-Development/ManagerX/pkg/discordapi"
	"github.com/Oppro-net-Development/ManagerX/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	utils.InitSessionLogger()

	cfg := config.Load()
	db.Connect(cfg.MongoURI, cfg.DatabaseName)
	defer db.Disconnect()

	discordapi.Init(discordapi.Config{
		ClientID:     cfg.DiscordClientID,
		ClientSecret: cfg.DiscordClientSecret,
		RedirectURI:  cfg.DiscordRedirectURI,
	})

	// Permission cache: redis when configured, in-process otherwise
	var permCache cache.Store
	if cfg.RedisAddr != "" {
		rs, err := cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rs.Close()
		permCache = rs
		utils.LogSuccess("[Main] Using redis permission cache at %s", cfg.RedisAddr)
	} else {
		permCache = cache.NewMemoryStore()
	}

	routes.InitStats(cfg.StatsFile)
	jobs.Init(permCache)
	defer jobs.Close()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(cfg),
		gin.Recovery(),
	)

	router.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	// Register all routes (auth, guilds, settings, stats)
	routes.RegisterRoutes(router, cfg, db.NewMongoSettingsStore(), permCache)

	// Start the server
	go func() {
		log.Printf("Server running on %s", cfg.ListenAddr)
		if err := router.Run(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")
}

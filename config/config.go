package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/Oppro-net-Development/ManagerX/utils"
	"github.com/joho/godotenv"
)

// Config holds all environment configuration values
type Config struct {
	MongoURI            string   `env:"MONGO_URI"`
	DatabaseName        string   `env:"MONGO_DB"`
	DiscordClientID     string   `env:"DISCORD_CLIENT_ID"`
	DiscordClientSecret string   `env:"DISCORD_CLIENT_SECRET"`
	DiscordRedirectURI  string   `env:"DISCORD_REDIRECT_URI"`
	ListenAddr          string   `env:"LISTEN_ADDR"`
	FrontendURL         []string `env:"FRONTEND_URL"`
	InternalAPIKey      string   `env:"INTERNAL_API_KEY"`
	StateSecret         string   `env:"STATE_SECRET"`
	StatsFile           string   `env:"STATS_FILE"`
	FeaturesFile        string   `env:"FEATURES_FILE"`
	RedisAddr           string   `env:"REDIS_ADDR"`
	RedisPassword       string   `env:"REDIS_PASSWORD"`
	RedisDB             int      `env:"REDIS_DB"`

	Features *Features
}

func Load() *Config {
	utils.LogInfo("[Config] Loading environment configuration")

	// Load .env file only in development
	if err := godotenv.Load(); err == nil {
		utils.LogInfo("[Config] Loaded .env file successfully")
	} else {
		utils.LogWarn("[Config] No .env file found, using system environment variables")
	}

	frontendEnv := getEnv("FRONTEND_URL", "http://localhost:5173")

	// Split comma-separated URLs into slice
	var frontendURLs []string
	for _, url := range strings.Split(frontendEnv, ",") {
		url = strings.TrimSpace(url)
		if url != "" {
			frontendURLs = append(frontendURLs, url)
		}
	}
	if len(frontendURLs) == 0 {
		frontendURLs = []string{"http://localhost:5173"}
		utils.LogWarn("[Config] FRONTEND_URL missing, defaulting to %s", frontendURLs[0])
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			utils.LogError("[Config] Invalid REDIS_DB value: %s", v)
			panic("invalid REDIS_DB value: " + v)
		}
		redisDB = n
	}

	cfg := &Config{
		MongoURI:            mustGetEnv("MONGO_URI"),
		DatabaseName:        getEnv("MONGO_DB", "managerx"),
		DiscordClientID:     mustGetEnv("DISCORD_CLIENT_ID"),
		DiscordClientSecret: mustGetEnv("DISCORD_CLIENT_SECRET"),
		DiscordRedirectURI:  mustGetEnv("DISCORD_REDIRECT_URI"),
		ListenAddr:          getEnv("LISTEN_ADDR", ":3002"),
		FrontendURL:         frontendURLs,
		InternalAPIKey:      mustGetEnv("INTERNAL_API_KEY"),
		StateSecret:         mustGetEnv("STATE_SECRET"),
		StatsFile:           getEnv("STATS_FILE", "bot_stats.json"),
		FeaturesFile:        getEnv("FEATURES_FILE", "config/config.yaml"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             redisDB,
	}

	cfg.Features = LoadFeatures(cfg.FeaturesFile)

	utils.LogSuccess("[Config] Configuration loaded successfully")
	utils.LogInfo("[Config] MongoDB: %s | Listen: %s | Frontend: %v", cfg.DatabaseName, cfg.ListenAddr, cfg.FrontendURL)

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		utils.LogError("[Config] Missing required environment variable: %s", key)
		panic("missing required environment variable: " + key)
	}
	return val
}

func getEnv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		utils.LogWarn("[Config] Using default value for %s: %s", key, def)
		return def
	}
	return val
}

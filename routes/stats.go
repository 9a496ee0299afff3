package routes

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/Oppro-net-Development/ManagerX/models"
	"github.com/Oppro-net-Development/ManagerX/utils"

	"github.com/gin-gonic/gin"
)

// statsCache holds the latest bot-reported snapshot. The bot process posts a
// new one every minute; the public widget endpoint serves it lock-free of any
// upstream dependency.
type statsCache struct {
	mu         sync.RWMutex
	snapshot   models.StatsSnapshot
	loaded     bool
	reportedAt time.Time
	filePath   string
}

var liveStats = &statsCache{}

// InitStats seeds the cache from the snapshot file the bot wrote last, so a
// restart doesn't serve placeholder numbers until the next report.
func InitStats(path string) {
	liveStats.mu.Lock()
	defer liveStats.mu.Unlock()
	liveStats.filePath = path

	data, err := os.ReadFile(path)
	if err != nil {
		utils.LogWarn("[Stats] No stats file at %s, serving defaults until first report", path)
		return
	}

	var snap models.StatsSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		utils.LogError("[Stats] Failed to parse stats file %s: %v", path, err)
		return
	}

	liveStats.snapshot = snap
	liveStats.loaded = true
	liveStats.reportedAt = time.Now()
	utils.LogSuccess("[Stats] Seeded stats cache from %s", path)
}

// GetStats serves the latest snapshot, or the documented defaults when the
// bot has never reported.
func GetStats(c *gin.Context) {
	liveStats.mu.RLock()
	defer liveStats.mu.RUnlock()

	if !liveStats.loaded {
		c.JSON(http.StatusOK, models.DefaultStatsSnapshot())
		return
	}
	c.JSON(http.StatusOK, liveStats.snapshot)
}

// ReportStats accepts the bot's periodic snapshot. Only the internal bot key
// may post here.
func ReportStats(c *gin.Context) {
	if c.GetString("authType") != "bot" {
		c.JSON(http.StatusForbidden, gin.H{"detail": "bot credentials required"})
		return
	}

	var snap models.StatsSnapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid json"})
		return
	}
	if snap.UpdatedAt == "" {
		snap.UpdatedAt = time.Now().Format("2006-01-02 15:04:05")
	}

	liveStats.mu.Lock()
	liveStats.snapshot = snap
	liveStats.loaded = true
	liveStats.reportedAt = time.Now()
	path := liveStats.filePath
	liveStats.mu.Unlock()

	// Persist best-effort so restarts keep the last report
	if path != "" {
		if data, err := json.MarshalIndent(snap, "", "    "); err == nil {
			if err := os.WriteFile(path, data, 0644); err != nil {
				utils.LogWarn("[Stats] Failed to persist stats file: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// MarkStatsStale flips the cached snapshot to Offline when the bot has not
// reported within maxAge. Called from the jobs scheduler.
func MarkStatsStale(maxAge time.Duration) bool {
	liveStats.mu.Lock()
	defer liveStats.mu.Unlock()

	if !liveStats.loaded || time.Since(liveStats.reportedAt) <= maxAge {
		return false
	}
	if liveStats.snapshot.BotInfo.Status == "Offline" {
		return false
	}

	liveStats.snapshot.BotInfo.Status = "Offline"
	return true
}

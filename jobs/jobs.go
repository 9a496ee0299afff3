package jobs

import (
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Oppro-net-Development/ManagerX/cache"
	"github.com/Oppro-net-Development/ManagerX/routes"
	"github.com/Oppro-net-Development/ManagerX/utils"
)

// statsMaxAge is how long a bot report stays trusted before the public stats
// flip to Offline.
const statsMaxAge = 3 * time.Minute

var scheduler *gocron.Scheduler

// Init starts the background maintenance jobs: the stats watchdog and, when
// the permission cache is in-process, its expiry sweep.
func Init(permCache cache.Store) {
	scheduler = gocron.NewScheduler(time.UTC)

	if _, err := scheduler.Every(1).Minute().Do(statsWatchdog); err != nil {
		utils.LogError("[Jobs] Failed to schedule stats watchdog: %v", err)
	}

	if mem, ok := permCache.(*cache.MemoryStore); ok {
		if _, err := scheduler.Every(1).Minute().Do(func() {
			if removed := mem.Sweep(); removed > 0 {
				utils.LogInfo("[Jobs] Permission cache sweep removed %d entries", removed)
			}
		}); err != nil {
			utils.LogError("[Jobs] Failed to schedule cache sweep: %v", err)
		}
	}

	scheduler.StartAsync()
	utils.LogSuccess("[Jobs] Background jobs started")
}

func statsWatchdog() {
	if routes.MarkStatsStale(statsMaxAge) {
		utils.LogWarn("[Jobs] Bot has not reported stats for %s, marking Offline", statsMaxAge)
	}
}

// Close stops the jobs scheduler
func Close() {
	if scheduler != nil {
		scheduler.Stop()
	}
}

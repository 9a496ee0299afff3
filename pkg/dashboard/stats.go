package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Oppro-net-Development/ManagerX/models"
)

// LatencyLevel is the visual classification of the bot's round-trip latency.
type LatencyLevel int

const (
	LatencyGood LatencyLevel = iota // below 80ms
	LatencyWarn                     // 80 to 180ms
	LatencyBad                      // above 180ms
)

// Latency band boundaries in milliseconds.
const (
	latencyGoodBelow = 80
	latencyWarnBelow = 180
)

const offlinePlaceholder = "---"

// StatsView is the rendered form of a stats snapshot: formatted counts,
// latency text and classification, online state.
type StatsView struct {
	ServerCount string
	UserCount   string
	Ping        string
	PingLevel   LatencyLevel
	Status      string
	Online      bool
}

// OfflineStatsView is what the widget shows on any fetch failure: explicit
// placeholders, never stale numbers.
func OfflineStatsView() StatsView {
	return StatsView{
		ServerCount: offlinePlaceholder,
		UserCount:   offlinePlaceholder,
		Ping:        offlinePlaceholder,
		PingLevel:   LatencyBad,
		Status:      "Offline",
	}
}

// FormatCount renders a counter the way the landing page does: 1500 becomes
// "1.5k+", 15000 "15k+", values below a thousand stay plain.
func FormatCount(n int) string {
	if n >= 1000 {
		s := fmt.Sprintf("%.1f", float64(n)/1000)
		s = strings.TrimSuffix(s, ".0")
		return s + "k+"
	}
	return fmt.Sprintf("%d+", n)
}

// ClassifyLatency maps a millisecond reading onto the three display bands.
func ClassifyLatency(ms float64) LatencyLevel {
	switch {
	case ms < latencyGoodBelow:
		return LatencyGood
	case ms < latencyWarnBelow:
		return LatencyWarn
	default:
		return LatencyBad
	}
}

// RenderStats converts a snapshot into its display view.
func RenderStats(snap models.StatsSnapshot) StatsView {
	ping := int(snap.BotInfo.Latency + 0.5)
	return StatsView{
		ServerCount: FormatCount(snap.Stats.ServerCount),
		UserCount:   FormatCount(snap.Stats.UserCount),
		Ping:        fmt.Sprintf("%dms", ping),
		PingLevel:   ClassifyLatency(snap.BotInfo.Latency),
		Status:      "Online",
		Online:      true,
	}
}

// DefaultPollInterval is the stats widget's poll cadence. The legacy pages
// disagreed (60s on the landing page, 15s on the status page); the slower
// one is kept so the widget stays within Discord-independent territory.
const DefaultPollInterval = 60 * time.Second

// StatsPoller polls the public stats endpoint and delivers a rendered view
// on every tick, online or not.
type StatsPoller struct {
	URL      string
	Interval time.Duration
	HTTP     *http.Client

	// OnUpdate receives every poll result, including the offline view.
	OnUpdate func(StatsView)
}

func NewStatsPoller(url string, onUpdate func(StatsView)) *StatsPoller {
	return &StatsPoller{
		URL:      url,
		Interval: DefaultPollInterval,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
		OnUpdate: onUpdate,
	}
}

// Run polls immediately and then on every interval until the context is
// canceled.
func (p *StatsPoller) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// Poll fetches one snapshot and returns its rendered view; failures of any
// kind yield the offline view.
func (p *StatsPoller) Poll(ctx context.Context) StatsView {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return OfflineStatsView()
	}

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return OfflineStatsView()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return OfflineStatsView()
	}

	var snap models.StatsSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return OfflineStatsView()
	}

	return RenderStats(snap)
}

func (p *StatsPoller) poll(ctx context.Context) {
	view := p.Poll(ctx)
	if p.OnUpdate != nil {
		p.OnUpdate(view)
	}
}

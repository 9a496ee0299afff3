package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0+"},
		{50, "50+"},
		{999, "999+"},
		{1000, "1k+"},
		{1500, "1.5k+"},
		{15000, "15k+"},
		{1234, "1.2k+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCount(tt.in), "FormatCount(%d)", tt.in)
	}
}

func TestClassifyLatency(t *testing.T) {
	assert.Equal(t, LatencyGood, ClassifyLatency(35))
	assert.Equal(t, LatencyGood, ClassifyLatency(79.9))
	assert.Equal(t, LatencyWarn, ClassifyLatency(80))
	assert.Equal(t, LatencyWarn, ClassifyLatency(179))
	assert.Equal(t, LatencyBad, ClassifyLatency(180))
	assert.Equal(t, LatencyBad, ClassifyLatency(500))
}

func TestPollRendersSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"stats": {"server_count": 1500, "user_count": 15000},
			"bot_info": {"latency": 35, "status": "Online"}
		}`))
	}))
	defer srv.Close()

	poller := NewStatsPoller(srv.URL, nil)
	view := poller.Poll(context.Background())

	assert.Equal(t, "1.5k+", view.ServerCount)
	assert.Equal(t, "15k+", view.UserCount)
	assert.Equal(t, "35ms", view.Ping)
	assert.Equal(t, LatencyGood, view.PingLevel)
	assert.Equal(t, "Online", view.Status)
	assert.True(t, view.Online)
}

func TestPollFailureYieldsOfflineView(t *testing.T) {
	tests := []struct {
		name string
		url  func() string
	}{
		{"connection refused", func() string { return "http://127.0.0.1:1" }},
		{"http error", func() string {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			return srv.URL
		}},
		{"garbage body", func() string {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>not json</html>"))
			}))
			return srv.URL
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poller := NewStatsPoller(tt.url(), nil)
			view := poller.Poll(context.Background())

			assert.Equal(t, "Offline", view.Status)
			assert.False(t, view.Online)
			assert.Equal(t, "---", view.ServerCount)
			assert.Equal(t, "---", view.UserCount)
			assert.Equal(t, "---", view.Ping)
		})
	}
}

func TestRunDeliversUpdatesUntilCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"stats":{"server_count":50,"user_count":100},"bot_info":{"latency":20,"status":"Online"}}`))
	}))
	defer srv.Close()

	got := make(chan StatsView, 1)
	poller := NewStatsPoller(srv.URL, func(v StatsView) {
		select {
		case got <- v:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	view := <-got
	assert.Equal(t, "50+", view.ServerCount)

	cancel()
	<-done
}
